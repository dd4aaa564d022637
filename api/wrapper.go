// Package api defines the Wrapper record that shadows every live Vulkan
// object (§3) and the small set of auxiliary per-kind state it carries.
package api

import (
	"sync"

	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/vk"
)

// DispatchTable stands in for the driver's per-device/per-instance function
// table a dispatchable handle's first machine word points to. The core
// never calls through it (that belongs to the loader-glue, out of scope per
// §1); it only needs to be fixed up and compared.
type DispatchTable struct {
	id uintptr
}

// NewDispatchTable mints a DispatchTable with a given identity, letting a
// test assert that a parent's slot was propagated correctly (§8 property 6).
func NewDispatchTable(id uintptr) *DispatchTable { return &DispatchTable{id: id} }

func (d *DispatchTable) ID() uintptr {
	if d == nil {
		return 0
	}
	return d.id
}

// Wrapper is the core-owned record shadowing one live Vulkan object: the
// driver handle, a dispatch table pointer for dispatchable kinds, a deep
// clone of the creation/allocate/queue-lookup info in an owned arena, and
// kind-specific auxiliary state. Wrappers are shared-owned: every lookup of
// the same handle returns the same *Wrapper (§3).
type Wrapper struct {
	Handle   vk.Handle
	Kind     vk.Kind
	Dispatch *DispatchTable // nil for non-dispatchable kinds

	arena      *arena.Arena
	mu         sync.RWMutex
	createInfo interface{}
	aux        interface{}
}

// NewWrapper constructs a Wrapper for handle of the given kind. The wrapper
// owns arena for the lifetime of its cloned creation info.
func NewWrapper(h vk.Handle, k vk.Kind, dispatch *DispatchTable) *Wrapper {
	return &Wrapper{Handle: h, Kind: k, Dispatch: dispatch, arena: arena.New()}
}

// Arena returns the wrapper's owned arena, used by the creation data
// tracker to clone pCreateInfo into storage with the wrapper's lifetime.
func (w *Wrapper) Arena() *arena.Arena { return w.arena }

// SetCreateInfo stores the (already deep-cloned) creation info. Per the
// creation-info stability invariant (§3), the stored value is never
// mutated in place; a later call replaces it wholesale. Callers must clone
// before calling this and then leave it alone.
func (w *Wrapper) SetCreateInfo(ci interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.createInfo = ci
}

// CreateInfo returns the stored creation info. Callers type-assert to the
// concrete per-kind type (e.g. *vk.BufferCreateInfo).
func (w *Wrapper) CreateInfo() interface{} {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.createInfo
}

// SetAux replaces the wrapper's kind-specific auxiliary state (memory
// bindings, current mapping, pre/post closures — whatever a kind needs).
func (w *Wrapper) SetAux(a interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.aux = a
}

// Aux returns the wrapper's kind-specific auxiliary state.
func (w *Wrapper) Aux() interface{} {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.aux
}

// MutateAux runs fn with exclusive access to the wrapper's auxiliary state,
// for the in-place updates the minimal state tracker performs (map/unmap,
// command buffer closure queues).
func (w *Wrapper) MutateAux(fn func(cur interface{}) interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.aux = fn(w.aux)
}

// BufferAux is VkBuffer's auxiliary state (§3).
type BufferAux struct {
	RequiredSize uint64
	Bindings     []MemoryBinding
}

// MemoryBinding records one vkBindBufferMemory/vkBindImageMemory binding.
type MemoryBinding struct {
	Memory vk.Handle
	Offset uint64
}

// DeviceMemoryAux is VkDeviceMemory's auxiliary state (§3).
type DeviceMemoryAux struct {
	Size       uint64
	IsCoherent bool
	Mapping    *vk.MappedRegion // nil when unmapped
}

// Closure is a pre-run or post-run action associated with a command
// buffer's submission (§4.6).
type Closure func() error

// CommandBufferAux is VkCommandBuffer's auxiliary state (§3): deques of
// pre-run and post-run closures executed around submission.
type CommandBufferAux struct {
	Pre  []Closure
	Post []Closure
}
