package stateblock

import (
	"context"
	"testing"

	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

func newObserverOverDriver(sb *StateBlock) *Observer {
	o := NewObserver(sb)
	o.Next = transform.NewDriver(0)
	return o
}

func TestObserverInsertsOnCreate(t *testing.T) {
	sb := New()
	o := newObserverOverDriver(sb)
	ctx := context.Background()

	var instance vk.Handle
	if res := o.CreateInstance(ctx, &vk.InstanceCreateInfo{}, &instance); !res.Succeeded() {
		t.Fatalf("CreateInstance failed: %v", res)
	}
	if sb.Get(instance, vk.KindInstance) == nil {
		t.Fatalf("expected instance %v to be registered", instance)
	}

	var device vk.Handle
	if res := o.CreateDevice(ctx, 0, &vk.DeviceCreateInfo{}, &device); !res.Succeeded() {
		t.Fatalf("CreateDevice failed: %v", res)
	}
	if sb.Get(device, vk.KindDevice) == nil {
		t.Fatalf("expected device %v to be registered", device)
	}
}

func TestObserverErasesOnDestroy(t *testing.T) {
	sb := New()
	o := newObserverOverDriver(sb)
	ctx := context.Background()

	var buffer vk.Handle
	o.Next.(*transform.Driver).CreateBuffer(ctx, 0, &vk.BufferCreateInfo{}, &buffer)
	sb.Insert(buffer, vk.KindBuffer, nil)
	if sb.Get(buffer, vk.KindBuffer) == nil {
		t.Fatalf("setup: expected buffer to be registered")
	}

	o.DestroyBuffer(ctx, 0, buffer)
	if sb.Get(buffer, vk.KindBuffer) != nil {
		t.Fatalf("expected buffer to be erased after DestroyBuffer")
	}
}

func TestObserverPropagatesDispatchToPhysicalDevices(t *testing.T) {
	sb := New()
	o := newObserverOverDriver(sb)
	ctx := context.Background()

	var instance vk.Handle
	o.CreateInstance(ctx, &vk.InstanceCreateInfo{}, &instance)
	parent := sb.Get(instance, vk.KindInstance)

	count := uint32(2)
	devices := make([]vk.Handle, 2)
	// The Driver's EnumeratePhysicalDevices mints handles only when the
	// output slice is non-nil (the two-call Vulkan enumeration idiom).
	if res := o.EnumeratePhysicalDevices(ctx, instance, &count, devices); !res.Succeeded() {
		t.Fatalf("EnumeratePhysicalDevices failed: %v", res)
	}
	for _, h := range devices {
		w := sb.Get(h, vk.KindPhysicalDevice)
		if w == nil {
			t.Fatalf("expected physical device %v to be registered", h)
		}
		if w.Dispatch == nil || w.Dispatch.ID() != parent.Dispatch.ID() {
			t.Fatalf("expected physical device %v to inherit the instance's dispatch slot", h)
		}
	}
}

func TestObserverCreateGraphicsPipelinesInsertsEachHandle(t *testing.T) {
	sb := New()
	o := newObserverOverDriver(sb)
	ctx := context.Background()

	infos := make([]vk.GraphicsPipelineCreateInfo, 3)
	pipelines := make([]vk.Handle, 3)
	if res := o.CreateGraphicsPipelines(ctx, 0, 0, 3, infos, pipelines); !res.Succeeded() {
		t.Fatalf("CreateGraphicsPipelines failed: %v", res)
	}
	for _, h := range pipelines {
		if sb.Get(h, vk.KindPipeline) == nil {
			t.Fatalf("expected pipeline %v to be registered", h)
		}
	}
}

func TestObserverFreeCommandBuffersErasesEntries(t *testing.T) {
	sb := New()
	o := newObserverOverDriver(sb)
	ctx := context.Background()

	buffers := make([]vk.Handle, 2)
	if res := o.AllocateCommandBuffers(ctx, 0, &vk.CommandBufferAllocateInfo{}, buffers); !res.Succeeded() {
		t.Fatalf("AllocateCommandBuffers failed: %v", res)
	}
	for _, h := range buffers {
		if sb.Get(h, vk.KindCommandBuffer) == nil {
			t.Fatalf("expected command buffer %v to be registered", h)
		}
	}

	o.FreeCommandBuffers(ctx, 0, 0, buffers)
	for _, h := range buffers {
		if sb.Get(h, vk.KindCommandBuffer) != nil {
			t.Fatalf("expected command buffer %v to be erased after FreeCommandBuffers", h)
		}
	}
}

func TestObserverFreeDescriptorSetsErasesEntries(t *testing.T) {
	sb := New()
	o := newObserverOverDriver(sb)
	ctx := context.Background()

	sets := make([]vk.Handle, 2)
	info := &vk.DescriptorSetAllocateInfo{DescriptorPool: 7}
	if res := o.AllocateDescriptorSets(ctx, 0, info, sets); !res.Succeeded() {
		t.Fatalf("AllocateDescriptorSets failed: %v", res)
	}
	for _, h := range sets {
		if sb.Get(h, vk.KindDescriptorSet) == nil {
			t.Fatalf("expected descriptor set %v to be registered", h)
		}
	}

	o.FreeDescriptorSets(ctx, 0, 7, sets)
	for _, h := range sets {
		if sb.Get(h, vk.KindDescriptorSet) != nil {
			t.Fatalf("expected descriptor set %v to be erased after FreeDescriptorSets", h)
		}
	}
}

func TestObserverResetDescriptorPoolErasesOnlyOwnedSets(t *testing.T) {
	sb := New()
	o := newObserverOverDriver(sb)
	ctx := context.Background()

	poolASets := make([]vk.Handle, 2)
	if res := o.AllocateDescriptorSets(ctx, 0, &vk.DescriptorSetAllocateInfo{DescriptorPool: 1}, poolASets); !res.Succeeded() {
		t.Fatalf("AllocateDescriptorSets (pool 1) failed: %v", res)
	}
	poolBSets := make([]vk.Handle, 1)
	if res := o.AllocateDescriptorSets(ctx, 0, &vk.DescriptorSetAllocateInfo{DescriptorPool: 2}, poolBSets); !res.Succeeded() {
		t.Fatalf("AllocateDescriptorSets (pool 2) failed: %v", res)
	}

	if res := o.ResetDescriptorPool(ctx, 0, 1, 0); !res.Succeeded() {
		t.Fatalf("ResetDescriptorPool failed: %v", res)
	}

	for _, h := range poolASets {
		if sb.Get(h, vk.KindDescriptorSet) != nil {
			t.Fatalf("expected descriptor set %v (pool 1) to be erased by ResetDescriptorPool", h)
		}
	}
	for _, h := range poolBSets {
		if sb.Get(h, vk.KindDescriptorSet) == nil {
			t.Fatalf("expected descriptor set %v (pool 2) to survive resetting pool 1", h)
		}
	}
}
