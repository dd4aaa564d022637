// Package vk models the slice of the Vulkan API surface this layer needs to
// mirror: handle identities, the creation-info structures the state block
// clones, and the VkResult/VkStructureType enumerations threaded through
// the codec. The full ~500 entry-point catalogue and its structs are
// generated from the Vulkan XML registry in a real build (§1: "the
// catalogue of Vulkan entry points... is treated as an external schema");
// this package hand-declares the subset exercised by transform, codec,
// stateblock, tracker and recorder.
package vk

// Handle is a Vulkan object identifier. Dispatchable handles (instance,
// physical device, device, queue, command buffer) carry a driver-owned
// dispatch slot in their first machine word; non-dispatchable handles are
// plain 64-bit identifiers. Both disciplines share this representation —
// callers must not assume non-zero low bits mean anything for
// non-dispatchable kinds.
type Handle uint64

// NullHandle is the invalid/absent handle value for every kind.
const NullHandle Handle = 0

// Kind identifies which of the Vulkan object kinds a Handle belongs to.
// The state block keeps one registry per Kind (§4.5).
type Kind int

const (
	KindInstance Kind = iota
	KindPhysicalDevice
	KindDevice
	KindQueue
	KindCommandBuffer
	KindCommandPool
	KindBuffer
	KindBufferView
	KindImage
	KindImageView
	KindDeviceMemory
	KindSampler
	KindSamplerYcbcrConversion
	KindFence
	KindSemaphore
	KindEvent
	KindPipeline
	KindPipelineLayout
	KindPipelineCache
	KindDescriptorPool
	KindDescriptorSet
	KindDescriptorSetLayout
	KindDescriptorUpdateTemplate
	KindRenderPass
	KindFramebuffer
	KindQueryPool
	KindShaderModule
	KindSwapchain
	KindSurface

	numKinds
)

// Dispatchable reports whether handles of this kind carry a driver dispatch
// slot in their first machine word (§3).
func (k Kind) Dispatchable() bool {
	switch k {
	case KindInstance, KindPhysicalDevice, KindDevice, KindQueue, KindCommandBuffer:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	names := [...]string{
		"Instance", "PhysicalDevice", "Device", "Queue", "CommandBuffer",
		"CommandPool", "Buffer", "BufferView", "Image", "ImageView",
		"DeviceMemory", "Sampler", "SamplerYcbcrConversion", "Fence",
		"Semaphore", "Event", "Pipeline", "PipelineLayout", "PipelineCache",
		"DescriptorPool", "DescriptorSet", "DescriptorSetLayout",
		"DescriptorUpdateTemplate", "RenderPass", "Framebuffer", "QueryPool",
		"ShaderModule", "Swapchain", "Surface",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// AllKinds returns every handle kind the state block tracks.
func AllKinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}
