// Package handlefixer translates handles embedded inside opaque payloads
// between trace space and driver space (§4.9, §3's "trace space / driver
// space" invariant).
package handlefixer

import (
	"encoding/binary"

	"github.com/gfxtrace/vktrace/vk"
)

// descriptorTypeSampler is the one descriptor type whose
// DescriptorUpdateTemplateEntry slot is treated as a single 8-byte handle rather
// than a larger image/buffer-info struct — the minimal set needed to
// demonstrate the walk; the full Vulkan descriptor-type enum is part of the
// external schema (§1).
const descriptorTypeSampler uint32 = 0

// WalkTemplateHandles walks payload according to entries, remapping every
// handle-sized slot through remap (§4.8's "handle slots inside the payload
// are additionally translated between trace and driver space via
// cast_in/fix_handle"). Only entries whose DescriptorType is
// descriptorTypeSampler are treated as raw handle slots; every other type's
// bytes are left untouched, matching the hook's narrow, named scope.
func WalkTemplateHandles(entries []vk.DescriptorUpdateTemplateEntry, payload []byte, remap func(vk.Handle) vk.Handle) {
	for _, e := range entries {
		if e.DescriptorType != descriptorTypeSampler {
			continue
		}
		for i := uint32(0); i < e.DescriptorCount; i++ {
			loc := int(e.Offset) + int(i)*int(e.Stride)
			if loc < 0 || loc+8 > len(payload) {
				continue
			}
			h := vk.Handle(binary.LittleEndian.Uint64(payload[loc : loc+8]))
			binary.LittleEndian.PutUint64(payload[loc:loc+8], uint64(remap(h)))
		}
	}
}

// TemplatePayloadSize returns the end offset of the furthest descriptor slot
// of the given template entries, counting each entry's last slot as 8 bytes
// (one handle) whatever its descriptor type. It equals the length
// vkUpdateDescriptorSetWithTemplate's pData must have only when that last
// slot is handle-sized; for a slot holding a larger image/buffer-info struct
// the result is short by the struct's size minus 8. Entries with a zero
// DescriptorCount are skipped.
func TemplatePayloadSize(entries []vk.DescriptorUpdateTemplateEntry) int {
	max := 0
	for _, e := range entries {
		if e.DescriptorCount == 0 {
			continue
		}
		end := int(e.Offset) + int(e.DescriptorCount-1)*int(e.Stride) + 8
		if end > max {
			max = end
		}
	}
	return max
}

// TruncateGroupHandles forgets handle slots past declaredCount, matching
// §4.9's rule for VkPhysicalDeviceGroupProperties-shaped structures whose
// fixed-size sub-arrays may contain more slots than are actually used.
func TruncateGroupHandles(all []vk.Handle, declaredCount int) []vk.Handle {
	if declaredCount < 0 {
		declaredCount = 0
	}
	if declaredCount < len(all) {
		return all[:declaredCount]
	}
	return all
}

// Identity is the no-op remap used on capture, where a handle's trace-space
// identity IS its driver-space identity until a replay targets a different
// driver instance (§3: "the mapping is a simple reinterpretation ... and is
// reversible").
func Identity(h vk.Handle) vk.Handle { return h }
