package transform

import (
	"context"
	"testing"

	"github.com/gfxtrace/vktrace/vk"
)

func TestBaseNilNextIsTerminator(t *testing.T) {
	b := &Base{}
	var instance vk.Handle
	res := b.CreateInstance(context.Background(), &vk.InstanceCreateInfo{}, &instance)
	if res != vk.Success {
		t.Fatalf("expected VK_SUCCESS from a terminal Base, got %v", res)
	}
	if instance != vk.NullHandle {
		t.Fatalf("a terminal Base must not fabricate an out-param value, got %v", instance)
	}
}

// countingTerminal records every call it receives, letting tests assert that
// Base forwards exactly once per call with the arguments unmodified.
type countingTerminal struct {
	Base
	createInstanceCalls int
}

func (c *countingTerminal) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	c.createInstanceCalls++
	*pInstance = 0xBEEF
	return vk.Success
}

func TestBaseForwardsToNext(t *testing.T) {
	term := &countingTerminal{}
	b := &Base{Next: term}
	var instance vk.Handle
	res := b.CreateInstance(context.Background(), &vk.InstanceCreateInfo{}, &instance)
	if res != vk.Success {
		t.Fatalf("got %v", res)
	}
	if instance != 0xBEEF {
		t.Fatalf("expected Base to forward through to Next untouched, got %v", instance)
	}
	if term.createInstanceCalls != 1 {
		t.Fatalf("expected exactly one forwarded call, got %d", term.createInstanceCalls)
	}
}

func TestDriverMintsMonotonicHandles(t *testing.T) {
	d := NewDriver(0)
	var a, b vk.Handle
	if res := d.CreateInstance(context.Background(), &vk.InstanceCreateInfo{}, &a); res != vk.Success {
		t.Fatalf("CreateInstance: %v", res)
	}
	if res := d.CreateInstance(context.Background(), &vk.InstanceCreateInfo{}, &b); res != vk.Success {
		t.Fatalf("CreateInstance: %v", res)
	}
	if a == vk.NullHandle || b == vk.NullHandle {
		t.Fatalf("expected non-null handles, got %v %v", a, b)
	}
	if a == b {
		t.Fatalf("expected distinct handles from successive creates, got %v twice", a)
	}
}

func TestDriverEnumerateInstanceLayerPropertiesReportsExactlyOne(t *testing.T) {
	d := NewDriver(0)
	var count uint32
	if res := d.EnumerateInstanceLayerProperties(context.Background(), &count, nil); res != vk.Success {
		t.Fatalf("got %v", res)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 layer, got %d", count)
	}
	props := make([]vk.LayerProperties, 1)
	if res := d.EnumerateInstanceLayerProperties(context.Background(), &count, props); res != vk.Success {
		t.Fatalf("got %v", res)
	}
	if props[0] != LayerDescriptor {
		t.Fatalf("expected LayerDescriptor, got %+v", props[0])
	}
}
