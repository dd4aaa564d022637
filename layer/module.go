package layer

import (
	"context"
	"plugin"

	"github.com/gfxtrace/vktrace/core/log"
	"github.com/pkg/errors"
)

// Resolver is what PostSetupInternalPointers hands a user module so it can
// look up core functions by name (§6: "the core hands back a resolver the
// module uses to look up core functions (Rerecord_CommandBuffer,
// Split_CommandBuffer)"). The two functions this host actually registers
// are RerecordCommandBufferFunc and SplitCommandBufferFunc; the Resolver
// returns nil for any other name.
type Resolver func(name string) interface{}

// RerecordCommandBufferFunc is recorder.RerecordCommandBuffer's shape
// narrowed to the command-buffer handle alone; it takes no replay target.
type RerecordCommandBufferFunc func(commandBuffer uint64) error

// SplitCommandBufferFunc matches the core's command-buffer split entry
// point; a user module calls it to force a mid-buffer flush point.
type SplitCommandBufferFunc func(commandBuffer uint64) error

// Module is a loaded user-transform plugin (§6's "external user module"):
// each hook is nil if the *.so doesn't export it, letting SetupLayer etc.
// degrade to a no-op rather than panicking on a partially-implemented
// module.
type Module struct {
	path   string
	plug   *plugin.Plugin
	userData interface{}

	setupLayer                func(*LayerOptions)
	postSetupInternalPointers func(interface{}, Resolver)
	onCommandBufferSplit      func(uint64)
	shutdownLayer             func()
}

// Load opens path (a *.so built with `go build -buildmode=plugin`) and
// binds whichever of the four lifecycle hooks it exports. A module that
// exports none of them loads successfully but receives no callbacks — the
// "user-module misuse" case named in §7, logged rather than treated as
// fatal.
func Load(ctx context.Context, path string) (*Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "layer: opening user module %q", path)
	}
	m := &Module{path: path, plug: p}

	if sym, err := p.Lookup("SetupLayer"); err == nil {
		if f, ok := sym.(func(*LayerOptions)); ok {
			m.setupLayer = f
		}
	}
	if sym, err := p.Lookup("PostSetupInternalPointers"); err == nil {
		if f, ok := sym.(func(interface{}, Resolver)); ok {
			m.postSetupInternalPointers = f
		}
	}
	if sym, err := p.Lookup("OnCommandBufferSplit"); err == nil {
		if f, ok := sym.(func(uint64)); ok {
			m.onCommandBufferSplit = f
		}
	}
	if sym, err := p.Lookup("ShutdownLayer"); err == nil {
		if f, ok := sym.(func()); ok {
			m.shutdownLayer = f
		}
	}

	if m.setupLayer == nil && m.postSetupInternalPointers == nil &&
		m.onCommandBufferSplit == nil && m.shutdownLayer == nil {
		log.W(ctx, "layer: user module %q exports none of the four lifecycle hooks", path)
	}
	return m, nil
}

// SetupLayer calls the module's SetupLayer hook, if it has one, passing
// opts for it to call the LayerOptions_* forwarders against.
func (m *Module) SetupLayer(opts *LayerOptions) {
	if m.setupLayer != nil {
		m.setupLayer(opts)
	}
}

// PostSetupInternalPointers calls the module's hook with userData (an
// opaque token the module passes back into SendJson/LogMessage/
// GetCommandIndex) and resolve (the core-function lookup named in §6).
func (m *Module) PostSetupInternalPointers(userData interface{}, resolve Resolver) {
	m.userData = userData
	if m.postSetupInternalPointers != nil {
		m.postSetupInternalPointers(userData, resolve)
	}
}

// OnCommandBufferSplit notifies the module that commandBuffer was split,
// if it registered for the callback.
func (m *Module) OnCommandBufferSplit(commandBuffer uint64) {
	if m.onCommandBufferSplit != nil {
		m.onCommandBufferSplit(commandBuffer)
	}
}

// ShutdownLayer runs the module's optional teardown hook (§6).
func (m *Module) ShutdownLayer() {
	if m.shutdownLayer != nil {
		m.shutdownLayer()
	}
}

// NewResolver builds the Resolver PostSetupInternalPointers hands a module,
// backed by the two core functions it's allowed to look up.
func NewResolver(rerecord RerecordCommandBufferFunc, split SplitCommandBufferFunc) Resolver {
	return func(name string) interface{} {
		switch name {
		case "Rerecord_CommandBuffer":
			return rerecord
		case "Split_CommandBuffer":
			return split
		default:
			return nil
		}
	}
}

// SendJson forwards a JSON-encoded payload from the user module into the
// core's own reporting path (§6: "SendJson(user_data, char*, length)").
func SendJson(ctx context.Context, userData interface{}, data []byte) error {
	log.I(ctx, "layer: SendJson from %v: %s", userData, string(data))
	return nil
}

// LogMessage lets a user module route a message through the core's log
// handler (§6, §7's severity set). Debug, Warning and Error keep their
// severity; Critical is logged at Error severity and does not abort; Error
// and Critical records carry userData as their object; any other severity
// is logged as Info.
func LogMessage(ctx context.Context, userData interface{}, sev log.Severity, msg string) {
	switch sev {
	case log.Debug:
		log.D(ctx, "%s", msg)
	case log.Warning:
		log.W(ctx, "%s", msg)
	case log.Error, log.Critical:
		log.EObj(ctx, userData, "%s", msg)
	default:
		log.I(ctx, "%s", msg)
	}
}

// commandIndexKey is a userData sentinel type GetCommandIndex recognises;
// a real host associates a running command index with each userData token
// it hands to a module.
type commandIndexKey struct{ index uint64 }

// GetCommandIndex returns the current command index associated with
// userData, or 0 if userData wasn't produced by NewCommandIndexToken.
func GetCommandIndex(userData interface{}) uint64 {
	if k, ok := userData.(commandIndexKey); ok {
		return k.index
	}
	return 0
}

// NewCommandIndexToken wraps index as a userData value GetCommandIndex can
// recover.
func NewCommandIndexToken(index uint64) interface{} { return commandIndexKey{index: index} }
