package opcode

import "testing"

func TestOpcodesAreDistinctAndNonZero(t *testing.T) {
	seen := map[Op]bool{}
	for op := range names {
		if op == 0 {
			t.Errorf("opcode 0 is reserved (iota starts at 1)")
		}
		if seen[op] {
			t.Errorf("duplicate opcode %d", op)
		}
		seen[op] = true
	}
}

func TestStringCoversEveryDeclaredOpcode(t *testing.T) {
	ops := []Op{
		CreateInstance, DestroyInstance, EnumeratePhysicalDevices, CreateDevice,
		DestroyDevice, GetDeviceQueue, AllocateMemory, FreeMemory, MapMemory,
		UnmapMemory, CreateBuffer, DestroyBuffer, CreateImage, DestroyImage,
		CreateGraphicsPipelines, CreateFence, DestroyFence, WaitForFences,
		CreateCommandPool, AllocateCommandBuffers, BeginCommandBuffer,
		EndCommandBuffer, CmdDraw, CmdUpdateBuffer, CmdPushConstants,
		CmdClearColorImage, UpdateDescriptorSetWithTemplate, QueueSubmit,
	}
	for _, op := range ops {
		if op.String() == "" {
			t.Errorf("opcode %d has no name", op)
		}
	}
}

func TestUnknownOpcodeStringIsEmpty(t *testing.T) {
	if got := Op(99999).String(); got != "" {
		t.Errorf("expected empty string for an unknown opcode, got %q", got)
	}
}
