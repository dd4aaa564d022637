package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/gfxtrace/vktrace/api"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

func newCreationTrackerOverDriver(sb *stateblock.StateBlock) *CreationDataTracker {
	obs := stateblock.NewObserver(sb)
	obs.Next = transform.NewDriver(0)
	ct := NewCreationDataTracker(sb)
	ct.Next = obs
	return ct
}

func TestCreationDataTrackerStoresClonedCreateInfo(t *testing.T) {
	sb := stateblock.New()
	ct := newCreationTrackerOverDriver(sb)
	ctx := context.Background()

	info := &vk.BufferCreateInfo{Size: 4096, QueueFamilyIndices: []uint32{0, 1}}
	var buffer vk.Handle
	if res := ct.CreateBuffer(ctx, 0, info, &buffer); !res.Succeeded() {
		t.Fatalf("CreateBuffer: %v", res)
	}
	w := sb.Get(buffer, vk.KindBuffer)
	if w == nil {
		t.Fatalf("expected buffer %v to be registered", buffer)
	}
	stored, ok := w.CreateInfo().(*vk.BufferCreateInfo)
	if !ok {
		t.Fatalf("expected *vk.BufferCreateInfo, got %T", w.CreateInfo())
	}
	if stored.Size != 4096 {
		t.Fatalf("Size: got %d", stored.Size)
	}

	info.QueueFamilyIndices[0] = 999
	if stored.QueueFamilyIndices[0] != 0 {
		t.Fatalf("stored create info aliases caller's memory: %v", stored.QueueFamilyIndices)
	}
}

func TestCreationDataTrackerGetDeviceQueueStoresLookupInfo(t *testing.T) {
	sb := stateblock.New()
	ct := newCreationTrackerOverDriver(sb)
	ctx := context.Background()

	var device vk.Handle
	ct.CreateDevice(ctx, 0, &vk.DeviceCreateInfo{}, &device)

	var queue vk.Handle
	if res := ct.GetDeviceQueue(ctx, device, 2, 3, &queue); !res.Succeeded() {
		t.Fatalf("GetDeviceQueue: %v", res)
	}
	w := sb.Get(queue, vk.KindQueue)
	if w == nil {
		t.Fatalf("expected queue to be registered")
	}
	info, ok := w.CreateInfo().(vk.QueueLookupInfo)
	if !ok {
		t.Fatalf("expected vk.QueueLookupInfo, got %T", w.CreateInfo())
	}
	if info.QueueFamilyIndex != 2 || info.QueueIndex != 3 {
		t.Fatalf("got %+v", info)
	}
}

func newMinimalStateTrackerOverDriver(sb *stateblock.StateBlock) *MinimalStateTracker {
	obs := stateblock.NewObserver(sb)
	obs.Next = transform.NewDriver(0)
	st := NewMinimalStateTracker(sb)
	st.Next = obs
	return st
}

func TestMinimalStateTrackerRecordsMemoryCoherence(t *testing.T) {
	sb := stateblock.New()
	st := newMinimalStateTrackerOverDriver(sb)
	ctx := context.Background()

	var device vk.Handle
	st.CreateDevice(ctx, 1, &vk.DeviceCreateInfo{}, &device)
	st.GetPhysicalDeviceMemoryProperties(ctx, 1, &vk.PhysicalDeviceMemoryProperties{
		MemoryTypes: []vk.MemoryType{
			{PropertyFlags: 0},
			{PropertyFlags: vk.MemoryPropertyHostCoherent},
		},
	})

	var mem vk.Handle
	st.AllocateMemory(ctx, device, &vk.MemoryAllocateInfo{AllocationSize: 1024, MemoryTypeIndex: 1}, &mem)

	w := sb.Get(mem, vk.KindDeviceMemory)
	if w == nil {
		t.Fatalf("expected memory to be registered")
	}
	aux, ok := w.Aux().(*api.DeviceMemoryAux)
	if !ok {
		t.Fatalf("expected *api.DeviceMemoryAux, got %T", w.Aux())
	}
	if !aux.IsCoherent {
		t.Fatalf("expected memory type 1 to be marked coherent")
	}
	if aux.Size != 1024 {
		t.Fatalf("Size: got %d", aux.Size)
	}
}

func TestMinimalStateTrackerMapUnmapLifecycle(t *testing.T) {
	sb := stateblock.New()
	st := newMinimalStateTrackerOverDriver(sb)
	ctx := context.Background()

	var device vk.Handle
	st.CreateDevice(ctx, 1, &vk.DeviceCreateInfo{}, &device)
	var mem vk.Handle
	st.AllocateMemory(ctx, device, &vk.MemoryAllocateInfo{AllocationSize: 100}, &mem)

	var ptr uint64 = 0xCAFE
	if res := st.MapMemory(ctx, device, mem, 10, 20, 0, &ptr); !res.Succeeded() {
		t.Fatalf("MapMemory: %v", res)
	}
	w := sb.Get(mem, vk.KindDeviceMemory)
	aux := w.Aux().(*api.DeviceMemoryAux)
	if aux.Mapping == nil || aux.Mapping.Offset != 10 || aux.Mapping.Size != 20 {
		t.Fatalf("unexpected mapping: %+v", aux.Mapping)
	}

	st.UnmapMemory(ctx, device, mem)
	aux = w.Aux().(*api.DeviceMemoryAux)
	if aux.Mapping != nil {
		t.Fatalf("expected mapping to be cleared after UnmapMemory, got %+v", aux.Mapping)
	}
}

func TestMinimalStateTrackerMapMemoryClampsWholeSize(t *testing.T) {
	sb := stateblock.New()
	st := newMinimalStateTrackerOverDriver(sb)
	ctx := context.Background()

	var device vk.Handle
	st.CreateDevice(ctx, 1, &vk.DeviceCreateInfo{}, &device)
	var mem vk.Handle
	st.AllocateMemory(ctx, device, &vk.MemoryAllocateInfo{AllocationSize: 100}, &mem)

	var ptr uint64 = 1
	st.MapMemory(ctx, device, mem, 30, vk.WholeSize, 0, &ptr)
	w := sb.Get(mem, vk.KindDeviceMemory)
	aux := w.Aux().(*api.DeviceMemoryAux)
	if aux.Mapping.Size != 70 {
		t.Fatalf("expected WHOLE_SIZE clamped to 100-30=70, got %d", aux.Mapping.Size)
	}
}

func TestMinimalStateTrackerQueueSubmitRunsClosuresInPhaseOrder(t *testing.T) {
	sb := stateblock.New()
	st := newMinimalStateTrackerOverDriver(sb)
	ctx := context.Background()

	var device vk.Handle
	st.CreateDevice(ctx, 1, &vk.DeviceCreateInfo{}, &device)
	var pool vk.Handle
	st.CreateCommandPool(ctx, device, &vk.CommandPoolCreateInfo{}, &pool)
	buffers := make([]vk.Handle, 1)
	st.AllocateCommandBuffers(ctx, device, &vk.CommandBufferAllocateInfo{CommandPool: pool, Count: 1}, buffers)
	cb := buffers[0]
	st.BeginCommandBuffer(ctx, cb)

	var order []string
	w := sb.Get(cb, vk.KindCommandBuffer)
	w.MutateAux(func(cur interface{}) interface{} {
		return &api.CommandBufferAux{
			Pre:  []api.Closure{func() error { order = append(order, "pre"); return nil }},
			Post: []api.Closure{func() error { order = append(order, "post"); return nil }},
		}
	})

	if res := st.QueueSubmit(ctx, 0, 1, []vk.Handle{cb}, 0); !res.Succeeded() {
		t.Fatalf("QueueSubmit: %v", res)
	}
	if len(order) != 2 || order[0] != "pre" || order[1] != "post" {
		t.Fatalf("expected [pre post], got %v", order)
	}
}

func TestMinimalStateTrackerQueueSubmitForwardsDespiteClosureError(t *testing.T) {
	sb := stateblock.New()
	st := newMinimalStateTrackerOverDriver(sb)
	ctx := context.Background()

	var device vk.Handle
	st.CreateDevice(ctx, 1, &vk.DeviceCreateInfo{}, &device)
	var pool vk.Handle
	st.CreateCommandPool(ctx, device, &vk.CommandPoolCreateInfo{}, &pool)
	buffers := make([]vk.Handle, 1)
	st.AllocateCommandBuffers(ctx, device, &vk.CommandBufferAllocateInfo{CommandPool: pool, Count: 1}, buffers)
	cb := buffers[0]
	st.BeginCommandBuffer(ctx, cb)

	w := sb.Get(cb, vk.KindCommandBuffer)
	boom := errors.New("boom")
	w.MutateAux(func(cur interface{}) interface{} {
		return &api.CommandBufferAux{Pre: []api.Closure{func() error { return boom }}}
	})

	// QueueSubmit swallows closure errors internally (it always forwards the
	// submit itself); this test documents that the submit still proceeds and
	// succeeds even when a pre-closure fails, rather than asserting a panic.
	res := st.QueueSubmit(ctx, 0, 1, []vk.Handle{cb}, 0)
	if !res.Succeeded() {
		t.Fatalf("expected QueueSubmit to still forward and succeed, got %v", res)
	}
}
