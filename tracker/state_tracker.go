package tracker

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gfxtrace/vktrace/api"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// MinimalStateTracker extends CreationDataTracker's coverage with the
// handful of runtime-mutable fields named in §4.6: the cached memory-type
// table, a memory wrapper's size/coherence/current-mapping, and a command
// buffer's pre/post submission closures.
type MinimalStateTracker struct {
	transform.Base
	SB *stateblock.StateBlock

	mu          sync.Mutex
	memTypes    map[vk.Handle][]vk.MemoryType // keyed by physical device
	devicePD    map[vk.Handle]vk.Handle       // device -> owning physical device
}

// NewMinimalStateTracker constructs a MinimalStateTracker over sb.
func NewMinimalStateTracker(sb *stateblock.StateBlock) *MinimalStateTracker {
	return &MinimalStateTracker{
		SB:       sb,
		memTypes: map[vk.Handle][]vk.MemoryType{},
		devicePD: map[vk.Handle]vk.Handle{},
	}
}

func (t *MinimalStateTracker) CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	res := t.Base.CreateDevice(ctx, physicalDevice, pCreateInfo, pDevice)
	if res.Succeeded() {
		t.mu.Lock()
		t.devicePD[*pDevice] = physicalDevice
		t.mu.Unlock()
	}
	return res
}

func (t *MinimalStateTracker) GetPhysicalDeviceMemoryProperties(ctx context.Context, physicalDevice vk.Handle, pMemoryProperties *vk.PhysicalDeviceMemoryProperties) vk.Result {
	res := t.Base.GetPhysicalDeviceMemoryProperties(ctx, physicalDevice, pMemoryProperties)
	if res.Succeeded() && pMemoryProperties != nil {
		types := make([]vk.MemoryType, len(pMemoryProperties.MemoryTypes))
		copy(types, pMemoryProperties.MemoryTypes)
		t.mu.Lock()
		t.memTypes[physicalDevice] = types
		t.mu.Unlock()
	}
	return res
}

func (t *MinimalStateTracker) AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result {
	res := t.Base.AllocateMemory(ctx, device, pAllocateInfo, pMemory)
	if !res.Succeeded() {
		return res
	}
	w := t.SB.Get(*pMemory, vk.KindDeviceMemory)
	if w == nil {
		return res
	}
	coherent := false
	t.mu.Lock()
	pd := t.devicePD[device]
	if types, ok := t.memTypes[pd]; ok && int(pAllocateInfo.MemoryTypeIndex) < len(types) {
		coherent = types[pAllocateInfo.MemoryTypeIndex].PropertyFlags&vk.MemoryPropertyHostCoherent != 0
	}
	t.mu.Unlock()
	w.SetAux(&api.DeviceMemoryAux{Size: pAllocateInfo.AllocationSize, IsCoherent: coherent})
	return res
}

// MapMemory records {location, offset, clamped size, flags} on the memory
// wrapper's auxiliary state (§4.6); VK_WHOLE_SIZE is clamped against the
// allocation's recorded size.
func (t *MinimalStateTracker) MapMemory(ctx context.Context, device vk.Handle, memory vk.Handle, offset uint64, size int64, flags uint32, ppData *uint64) vk.Result {
	res := t.Base.MapMemory(ctx, device, memory, offset, size, flags, ppData)
	if !res.Succeeded() {
		return res
	}
	w := t.SB.Get(memory, vk.KindDeviceMemory)
	if w == nil {
		return res
	}
	w.MutateAux(func(cur interface{}) interface{} {
		aux, _ := cur.(*api.DeviceMemoryAux)
		if aux == nil {
			aux = &api.DeviceMemoryAux{}
		}
		clamped := uint64(size)
		if size == vk.WholeSize {
			clamped = aux.Size - offset
		}
		aux.Mapping = &vk.MappedRegion{Location: *ppData, Offset: offset, Size: clamped, Flags: flags}
		return aux
	})
	return res
}

func (t *MinimalStateTracker) UnmapMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	res := t.Base.UnmapMemory(ctx, device, memory)
	if !res.Succeeded() {
		return res
	}
	if w := t.SB.Get(memory, vk.KindDeviceMemory); w != nil {
		w.MutateAux(func(cur interface{}) interface{} {
			aux, _ := cur.(*api.DeviceMemoryAux)
			if aux == nil {
				aux = &api.DeviceMemoryAux{}
			}
			aux.Mapping = nil
			return aux
		})
	}
	return res
}

// BeginCommandBuffer clears the pre/post closure deques (§4.6): a buffer
// that is begun again starts with no recorded submission hooks.
func (t *MinimalStateTracker) BeginCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	res := t.Base.BeginCommandBuffer(ctx, commandBuffer)
	if res.Succeeded() {
		if w := t.SB.Get(commandBuffer, vk.KindCommandBuffer); w != nil {
			w.SetAux(&api.CommandBufferAux{})
		}
	}
	return res
}

// QueueSubmit runs every submitted buffer's pre-closures, forwards the
// submit, then runs every buffer's post-closures (§4.6). Closures may
// themselves issue Vulkan work (e.g. mapped-memory read-back). Each phase
// runs through a golang.org/x/sync/errgroup limited to one goroutine at a
// time, so the buffers' closure chains run one after another in the order
// the buffers appear in pCommandBuffers, and the whole pre-phase finishes
// before the submit is forwarded. A failing closure ends its own buffer's
// chain; the error is not reported and the submit is forwarded regardless.
func (t *MinimalStateTracker) QueueSubmit(ctx context.Context, queue vk.Handle, submitCount uint32, pCommandBuffers []vk.Handle, fence vk.Handle) vk.Result {
	auxes := make([]*api.CommandBufferAux, len(pCommandBuffers))
	for i, cb := range pCommandBuffers {
		if w := t.SB.Get(cb, vk.KindCommandBuffer); w != nil {
			if a, ok := w.Aux().(*api.CommandBufferAux); ok {
				auxes[i] = a
			}
		}
	}

	runPhase := func(pick func(*api.CommandBufferAux) []api.Closure) error {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(1)
		for _, aux := range auxes {
			aux := aux
			if aux == nil {
				continue
			}
			closures := pick(aux)
			g.Go(func() error {
				for _, c := range closures {
					if err := c(); err != nil {
						return err
					}
				}
				return nil
			})
		}
		return g.Wait()
	}

	_ = runPhase(func(a *api.CommandBufferAux) []api.Closure { return a.Pre })

	res := t.Base.QueueSubmit(ctx, queue, submitCount, pCommandBuffers, fence)

	_ = runPhase(func(a *api.CommandBufferAux) []api.Closure { return a.Post })

	return res
}
