package clone

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/vk"
)

func TestInstanceCreateInfoIndependence(t *testing.T) {
	orig := &vk.InstanceCreateInfo{
		ApplicationInfo:       &vk.ApplicationInfo{ApplicationName: "app"},
		EnabledLayerNames:     []string{"layer1"},
		EnabledExtensionNames: []string{"ext1"},
		Next:                  vk.Chain{{SType: 1, Data: []byte{1, 2}}},
	}
	out := InstanceCreateInfo(arena.New(), orig)

	orig.EnabledLayerNames[0] = "mutated"
	orig.EnabledExtensionNames[0] = "mutated"
	orig.ApplicationInfo.ApplicationName = "mutated"
	orig.Next[0].Data[0] = 0xFF

	if out.EnabledLayerNames[0] != "layer1" {
		t.Errorf("EnabledLayerNames aliases original: %v", out.EnabledLayerNames)
	}
	if out.EnabledExtensionNames[0] != "ext1" {
		t.Errorf("EnabledExtensionNames aliases original: %v", out.EnabledExtensionNames)
	}
	if out.ApplicationInfo.ApplicationName != "app" {
		t.Errorf("ApplicationInfo aliases original: %v", out.ApplicationInfo)
	}
	if out.Next[0].Data[0] == 0xFF {
		t.Errorf("Next chain aliases original")
	}
}

func TestBufferCreateInfoIndependence(t *testing.T) {
	orig := &vk.BufferCreateInfo{
		Size:               100,
		QueueFamilyIndices: []uint32{1, 2, 3},
	}
	out := BufferCreateInfo(orig)
	orig.QueueFamilyIndices[0] = 999
	if out.QueueFamilyIndices[0] != 1 {
		t.Fatalf("QueueFamilyIndices aliases original: %v", out.QueueFamilyIndices)
	}
}

func TestShaderModuleCreateInfoUsesSuppliedArena(t *testing.T) {
	a := arena.New()
	orig := &vk.ShaderModuleCreateInfo{Code: []byte{1, 2, 3, 4}}
	out := ShaderModuleCreateInfo(a, orig)
	orig.Code[0] = 0xFF
	if out.Code[0] == 0xFF {
		t.Fatalf("shader code aliases original input")
	}
	if a.Stats().NumBytesAllocated < 4 {
		t.Fatalf("expected the supplied arena to record the allocation, got %+v", a.Stats())
	}
}

func TestDescriptorUpdateTemplateCreateInfoIndependence(t *testing.T) {
	orig := &vk.DescriptorUpdateTemplateCreateInfo{
		Entries: []vk.DescriptorUpdateTemplateEntry{
			{DstBinding: 0, DescriptorCount: 2, Stride: 16},
		},
	}
	out := DescriptorUpdateTemplateCreateInfo(orig)
	orig.Entries[0].DstBinding = 99
	if out.Entries[0].DstBinding != 0 {
		t.Fatalf("Entries aliases original: %+v", out.Entries)
	}
}

func TestNilCreateInfoCloneIsNil(t *testing.T) {
	if BufferCreateInfo(nil) != nil {
		t.Fatal("expected nil for a nil BufferCreateInfo")
	}
	if InstanceCreateInfo(arena.New(), nil) != nil {
		t.Fatal("expected nil for a nil InstanceCreateInfo")
	}
	if ApplicationInfo(nil) != nil {
		t.Fatal("expected nil for a nil ApplicationInfo")
	}
}

// TestDeviceCreateInfoStructurallyEqualButIndependent uses go-cmp for a
// full structural diff across nested queue-create-info slices — a field-
// by-field check here would need to walk every level by hand.
func TestDeviceCreateInfoStructurallyEqualButIndependent(t *testing.T) {
	orig := &vk.DeviceCreateInfo{
		Flags: 3,
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{
			{QueueFamilyIndex: 0, QueuePriorities: []float32{1, 0.5}},
			{QueueFamilyIndex: 1, QueuePriorities: []float32{1}},
		},
		EnabledLayerNames:     []string{"layerA"},
		EnabledExtensionNames: []string{"extA", "extB"},
	}
	out := DeviceCreateInfo(orig)

	if diff := cmp.Diff(orig, out); diff != "" {
		t.Fatalf("clone differs structurally from the original (-orig +out):\n%s", diff)
	}

	orig.QueueCreateInfos[0].QueuePriorities[0] = 0
	orig.EnabledExtensionNames[1] = "mutated"
	if out.QueueCreateInfos[0].QueuePriorities[0] != 1 {
		t.Fatalf("QueuePriorities aliases original: %v", out.QueueCreateInfos[0].QueuePriorities)
	}
	if out.EnabledExtensionNames[1] != "extB" {
		t.Fatalf("EnabledExtensionNames aliases original: %v", out.EnabledExtensionNames)
	}
}

func TestRenderPassCreateInfoIndependence(t *testing.T) {
	orig := &vk.RenderPassCreateInfo{
		Attachments: []vk.AttachmentDescription{{Format: 1}},
		Subpasses: []vk.SubpassDescription{
			{ColorAttachments: []uint32{0, 1}},
		},
	}
	out := RenderPassCreateInfo(orig)
	orig.Subpasses[0].ColorAttachments[0] = 999
	if out.Subpasses[0].ColorAttachments[0] != 0 {
		t.Fatalf("SubpassDescription.ColorAttachments aliases original: %v", out.Subpasses[0].ColorAttachments)
	}
}
