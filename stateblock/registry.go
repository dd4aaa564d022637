// Package stateblock implements the state block (§4.5): a concurrent
// registry mapping every live handle of every Vulkan object kind to its
// Wrapper. The state block is kept current by a transform (see Observer in
// observer.go) — by sitting on the pipeline it observes every
// create/destroy path without the application's cooperation.
package stateblock

import (
	"sync"

	"github.com/gfxtrace/vktrace/api"
	"github.com/gfxtrace/vktrace/vk"
)

// ErrExists is returned by Create when the handle is already registered.
const ErrExists = regErr("stateblock: handle already exists")

type regErr string

func (e regErr) Error() string { return string(e) }

type entry struct {
	refcount int32
	wrapper  *api.Wrapper
}

// Registry is the per-kind handle table: a concurrent map<Handle,
// (refcount, *Wrapper)>, guarded by its own RWMutex so lookups of one kind
// never contend with mutations of another (§4.5, §5).
type Registry struct {
	mu   sync.RWMutex
	m    map[vk.Handle]*entry
	kind vk.Kind
}

// NewRegistry constructs an empty Registry for the given kind.
func NewRegistry(k vk.Kind) *Registry {
	return &Registry{m: map[vk.Handle]*entry{}, kind: k}
}

// Create inserts a brand-new wrapper for h. It fails with ErrExists if h is
// already registered (§4.5).
func (r *Registry) Create(h vk.Handle, w *api.Wrapper) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[h]; ok {
		return ErrExists
	}
	r.m[h] = &entry{refcount: 1, wrapper: w}
	return nil
}

// GetOrCreate looks up h, creating it with newFn if absent, and returns the
// (possibly pre-existing) wrapper. Every concurrent caller racing to create
// the same handle observes the same wrapper.
func (r *Registry) GetOrCreate(h vk.Handle, newFn func() *api.Wrapper) *api.Wrapper {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.m[h]; ok {
		e.refcount++
		return e.wrapper
	}
	w := newFn()
	r.m[h] = &entry{refcount: 1, wrapper: w}
	return w
}

// Get returns the wrapper for h, or nil if h is not registered.
func (r *Registry) Get(h vk.Handle) *api.Wrapper {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.m[h]; ok {
		return e.wrapper
	}
	return nil
}

// Erase decrements h's refcount, removing the entry once it reaches zero.
// It is a no-op if h is not registered.
func (r *Registry) Erase(h vk.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.m[h]
	if !ok {
		return
	}
	e.refcount--
	if e.refcount <= 0 {
		delete(r.m, h)
	}
}

// EraseIf removes every entry whose wrapper matches pred, under the write
// lock (§4.5).
func (r *Registry) EraseIf(pred func(*api.Wrapper) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for h, e := range r.m {
		if pred(e.wrapper) {
			delete(r.m, h)
		}
	}
}

// Len returns the number of live handles of this kind — used by the
// state-block-completeness property (§8) in tests.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Handles returns every handle currently registered, for completeness
// comparisons in tests.
func (r *Registry) Handles() []vk.Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]vk.Handle, 0, len(r.m))
	for h := range r.m {
		out = append(out, h)
	}
	return out
}

// GetUnused mints a handle not currently registered, starting from seed and
// incrementing — used to reconstruct device groups from replay (§4.5).
func (r *Registry) GetUnused(seed vk.Handle) vk.Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h := seed
	if h == vk.NullHandle {
		h = 1
	}
	for {
		if _, ok := r.m[h]; !ok {
			return h
		}
		h++
	}
}
