package arena

import "testing"

func TestAllocateZeroedAndIndependent(t *testing.T) {
	a := New()
	x := a.Allocate(8, 8)
	for i := range x {
		if x[i] != 0 {
			t.Fatalf("allocation not zeroed at %d: %x", i, x[i])
		}
	}
	x[0] = 0xFF
	y := a.Allocate(8, 8)
	if y[0] == 0xFF {
		t.Fatalf("second allocation aliases the first")
	}
}

func TestAllocateAlignment(t *testing.T) {
	a := NewSized(64)
	a.Allocate(3, 1)
	x := a.Allocate(8, 8)
	// We can't observe the absolute pointer value, but within one block the
	// offsets returned should respect alignment relative to block start.
	if len(x) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(x))
	}
}

func TestAllocateSpansNewBlockWhenPageFull(t *testing.T) {
	a := NewSized(16)
	a.Allocate(12, 1)
	before := a.Stats()
	a.Allocate(12, 1) // doesn't fit in remaining 4 bytes of the first page
	after := a.Stats()
	if after.NumAllocations != before.NumAllocations+1 {
		t.Fatalf("expected allocation count to increase by 1, got %d -> %d", before.NumAllocations, after.NumAllocations)
	}
	if len(a.blocks) < 2 {
		t.Fatalf("expected a second block to have been allocated, got %d blocks", len(a.blocks))
	}
}

func TestZeroSizeAllocationReturnsNil(t *testing.T) {
	a := New()
	if got := a.Allocate(0, 8); got != nil {
		t.Fatalf("expected nil for zero-size allocation, got %v", got)
	}
}

func TestResetReusesBlocksWithoutLosingStatsAccuracy(t *testing.T) {
	a := NewSized(64)
	a.Allocate(16, 8)
	a.Allocate(16, 8)
	if a.Stats().NumAllocations != 2 {
		t.Fatalf("expected 2 allocations before reset, got %d", a.Stats().NumAllocations)
	}
	numBlocksBefore := len(a.blocks)
	a.Reset()
	if a.Stats().NumAllocations != 0 {
		t.Fatalf("expected stats cleared after reset, got %+v", a.Stats())
	}
	a.Allocate(8, 8)
	if len(a.blocks) != numBlocksBefore {
		t.Fatalf("reset should reuse existing blocks, block count changed: %d -> %d", numBlocksBefore, len(a.blocks))
	}
}

func TestGetTypedMemorySizing(t *testing.T) {
	a := New()
	mem := a.GetTypedMemory(4, 4, 4)
	if len(mem) != 16 {
		t.Fatalf("expected 16 bytes for 4 uint32s, got %d", len(mem))
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{NumAllocations: 2, NumBytesAllocated: 32}
	got := s.String()
	if got != "{allocs: 2, bytes: 32}" {
		t.Fatalf("unexpected Stats.String(): %q", got)
	}
}
