package api

import (
	"sync"
	"testing"

	"github.com/gfxtrace/vktrace/vk"
)

func TestWrapperCreateInfoRoundTrip(t *testing.T) {
	w := NewWrapper(42, vk.KindBuffer, nil)
	ci := &vk.BufferCreateInfo{Size: 1024}
	w.SetCreateInfo(ci)
	got, ok := w.CreateInfo().(*vk.BufferCreateInfo)
	if !ok {
		t.Fatalf("CreateInfo() did not return *vk.BufferCreateInfo: %T", w.CreateInfo())
	}
	if got.Size != 1024 {
		t.Errorf("Size: got %d", got.Size)
	}
}

func TestWrapperAuxMutation(t *testing.T) {
	w := NewWrapper(1, vk.KindDeviceMemory, nil)
	w.SetAux(&DeviceMemoryAux{Size: 100})
	w.MutateAux(func(cur interface{}) interface{} {
		aux := cur.(*DeviceMemoryAux)
		aux.Mapping = &vk.MappedRegion{Offset: 10, Size: 20}
		return aux
	})
	aux := w.Aux().(*DeviceMemoryAux)
	if aux.Mapping == nil || aux.Mapping.Offset != 10 {
		t.Fatalf("MutateAux did not apply: %+v", aux)
	}
}

func TestDispatchTableNilID(t *testing.T) {
	var dt *DispatchTable
	if dt.ID() != 0 {
		t.Fatalf("nil DispatchTable.ID() should be 0, got %d", dt.ID())
	}
	real := NewDispatchTable(0xABCD)
	if real.ID() != 0xABCD {
		t.Fatalf("got %x", real.ID())
	}
}

func TestWrapperConcurrentAccessIsRaceFree(t *testing.T) {
	w := NewWrapper(7, vk.KindBuffer, nil)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w.SetAux(&BufferAux{RequiredSize: 1})
		}()
		go func() {
			defer wg.Done()
			_ = w.Aux()
		}()
	}
	wg.Wait()
}
