package vk

import "testing"

func TestKindDispatchable(t *testing.T) {
	dispatchable := []Kind{KindInstance, KindPhysicalDevice, KindDevice, KindQueue, KindCommandBuffer}
	for _, k := range dispatchable {
		if !k.Dispatchable() {
			t.Errorf("%v should be dispatchable", k)
		}
	}
	nonDispatchable := []Kind{KindBuffer, KindImage, KindFence, KindDescriptorSet}
	for _, k := range nonDispatchable {
		if k.Dispatchable() {
			t.Errorf("%v should not be dispatchable", k)
		}
	}
}

func TestKindStringCoversAllKinds(t *testing.T) {
	for _, k := range AllKinds() {
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", int(k))
		}
	}
	if Kind(-1).String() != "Unknown" {
		t.Errorf("out-of-range kind should report Unknown")
	}
}

func TestAllKindsCoversNumKinds(t *testing.T) {
	if len(AllKinds()) != int(numKinds) {
		t.Fatalf("AllKinds length %d != numKinds %d", len(AllKinds()), numKinds)
	}
}

func TestResultSucceeded(t *testing.T) {
	if !Success.Succeeded() {
		t.Error("Success should succeed")
	}
	if !Incomplete.Succeeded() {
		t.Error("Incomplete (positive) should succeed")
	}
	if ErrorDeviceLost.Succeeded() {
		t.Error("ErrorDeviceLost should not succeed")
	}
}

func TestResultString(t *testing.T) {
	if Success.String() != "VK_SUCCESS" {
		t.Errorf("got %q", Success.String())
	}
	if Result(1000).String() != "VK_ERROR_UNKNOWN" {
		t.Errorf("got %q", Result(1000).String())
	}
}

func TestChainCloneIndependence(t *testing.T) {
	orig := Chain{
		{SType: StructureType(1), Data: []byte{1, 2, 3}},
	}
	clone := orig.Clone()
	clone[0].Data[0] = 0xFF
	if orig[0].Data[0] == 0xFF {
		t.Fatal("Chain.Clone should deep-copy backing data")
	}
	if clone[0].SType != orig[0].SType {
		t.Fatal("Chain.Clone should preserve SType")
	}
}

func TestChainCloneNil(t *testing.T) {
	var c Chain
	if c.Clone() != nil {
		t.Fatal("cloning a nil Chain should return nil")
	}
}
