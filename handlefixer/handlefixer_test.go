package handlefixer

import (
	"encoding/binary"
	"testing"

	"github.com/gfxtrace/vktrace/vk"
)

func TestWalkTemplateHandlesRemapsSamplerSlots(t *testing.T) {
	entries := []vk.DescriptorUpdateTemplateEntry{
		{DescriptorType: descriptorTypeSampler, DescriptorCount: 2, Offset: 0, Stride: 8},
	}
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint64(payload[0:8], 100)
	binary.LittleEndian.PutUint64(payload[8:16], 200)

	WalkTemplateHandles(entries, payload, func(h vk.Handle) vk.Handle { return h + 1 })

	if got := binary.LittleEndian.Uint64(payload[0:8]); got != 101 {
		t.Errorf("slot 0: got %d", got)
	}
	if got := binary.LittleEndian.Uint64(payload[8:16]); got != 201 {
		t.Errorf("slot 1: got %d", got)
	}
}

func TestWalkTemplateHandlesIgnoresNonSamplerEntries(t *testing.T) {
	entries := []vk.DescriptorUpdateTemplateEntry{
		{DescriptorType: descriptorTypeSampler + 1, DescriptorCount: 1, Offset: 0, Stride: 8},
	}
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint64(payload, 42)
	WalkTemplateHandles(entries, payload, func(h vk.Handle) vk.Handle { return 0 })
	if got := binary.LittleEndian.Uint64(payload); got != 42 {
		t.Errorf("non-sampler slot should be untouched, got %d", got)
	}
}

func TestWalkTemplateHandlesSkipsOutOfBoundsSlots(t *testing.T) {
	entries := []vk.DescriptorUpdateTemplateEntry{
		{DescriptorType: descriptorTypeSampler, DescriptorCount: 1, Offset: 100, Stride: 8},
	}
	payload := make([]byte, 8)
	// Must not panic on an out-of-range offset.
	WalkTemplateHandles(entries, payload, Identity)
}

func TestTemplatePayloadSize(t *testing.T) {
	entries := []vk.DescriptorUpdateTemplateEntry{
		{Offset: 0, DescriptorCount: 2, Stride: 16},
		{Offset: 8, DescriptorCount: 1, Stride: 8},
	}
	// Entry 0: last slot starts at 0+1*16=16, ends at 24.
	// Entry 1: last slot starts at 8+0*8=8, ends at 16.
	if got := TemplatePayloadSize(entries); got != 24 {
		t.Fatalf("got %d, want 24", got)
	}
}

func TestTemplatePayloadSizeIgnoresZeroCountEntries(t *testing.T) {
	entries := []vk.DescriptorUpdateTemplateEntry{{Offset: 1000, DescriptorCount: 0, Stride: 8}}
	if got := TemplatePayloadSize(entries); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestTruncateGroupHandles(t *testing.T) {
	all := []vk.Handle{1, 2, 3, 4}
	got := TruncateGroupHandles(all, 2)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got %v", got)
	}
	if got := TruncateGroupHandles(all, 10); len(got) != 4 {
		t.Fatalf("declaredCount beyond length should return everything, got %v", got)
	}
	if got := TruncateGroupHandles(all, -1); len(got) != 0 {
		t.Fatalf("negative declaredCount should truncate to empty, got %v", got)
	}
}

func TestIdentityIsNoOp(t *testing.T) {
	if Identity(42) != 42 {
		t.Fatalf("Identity should return its input unchanged")
	}
}
