package vk

// This file declares the creation-info and auxiliary structures cloned into
// wrappers by the creation data tracker (§4.6) and walked by the generated
// serializer/deserializer/clone routines (§4.3, §4.4). Every create-info
// and allocate-info struct here carries a Next Chain field even where no
// extension is modeled yet, since
// the clone/serialize rules are uniform across all of them (§4.3 rule 3).

type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

type InstanceCreateInfo struct {
	Next                  Chain
	Flags                  uint32
	ApplicationInfo        *ApplicationInfo
	EnabledLayerNames      []string
	EnabledExtensionNames  []string
}

type MemoryType struct {
	PropertyFlags uint32
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  uint64
	Flags uint32
}

// MemoryPropertyHostCoherent mirrors VK_MEMORY_PROPERTY_HOST_COHERENT_BIT.
const MemoryPropertyHostCoherent = 1 << 2

type PhysicalDeviceMemoryProperties struct {
	MemoryTypes []MemoryType
	MemoryHeaps []MemoryHeap
}

type PhysicalDeviceProperties struct {
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	DeviceName    string
}

type DeviceQueueCreateInfo struct {
	Next             Chain
	Flags            uint32
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	Next                  Chain
	Flags                 uint32
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
}

type MemoryAllocateInfo struct {
	Next           Chain
	AllocationSize uint64
	MemoryTypeIndex uint32
}

// MappedRegion records the current vkMapMemory mapping of a VkDeviceMemory
// wrapper (§4.6). Location is a capture-time token, not a live pointer —
// see the vkMapMemory custom hook in §4.8.
type MappedRegion struct {
	Location uint64
	Offset   uint64
	Size     uint64 // WholeSize (-1) clamped to the allocation size.
	Flags    uint32
}

const WholeSize int64 = -1

type BufferCreateInfo struct {
	Next                 Chain
	Flags                uint32
	Size                 uint64
	Usage                uint32
	SharingMode          uint32
	QueueFamilyIndices   []uint32
}

type BufferViewCreateInfo struct {
	Next   Chain
	Flags  uint32
	Buffer Handle
	Format uint32
	Offset uint64
	Range  uint64
}

type ImageCreateInfo struct {
	Next           Chain
	Flags          uint32
	ImageType      uint32
	Format         uint32
	Extent         [3]uint32
	MipLevels      uint32
	ArrayLayers    uint32
	Samples        uint32
	Tiling         uint32
	Usage          uint32
	SharingMode    uint32
	QueueFamilyIndices []uint32
	InitialLayout  uint32
}

type ImageViewCreateInfo struct {
	Next            Chain
	Flags           uint32
	Image           Handle
	ViewType        uint32
	Format          uint32
	SubresourceRange [4]uint32 // aspectMask, baseMipLevel, levelCount, baseArrayLayer (layerCount omitted for brevity of this subset)
}

type SamplerCreateInfo struct {
	Next        Chain
	Flags       uint32
	MagFilter   uint32
	MinFilter   uint32
	AddressModeU, AddressModeV, AddressModeW uint32
}

type SamplerYcbcrConversionCreateInfo struct {
	Next   Chain
	Format uint32
	Model  uint32
}

type ShaderModuleCreateInfo struct {
	Next  Chain
	Flags uint32
	Code  []byte
}

type PipelineCacheCreateInfo struct {
	Next        Chain
	Flags       uint32
	InitialData []byte
}

type PipelineLayoutCreateInfo struct {
	Next                Chain
	Flags               uint32
	SetLayouts          []Handle
	PushConstantRanges  [][2]uint32 // offset, size
}

type DescriptorSetLayoutBinding struct {
	Binding         uint32
	DescriptorType  uint32
	DescriptorCount uint32
	StageFlags      uint32
	ImmutableSamplers []Handle
}

type DescriptorSetLayoutCreateInfo struct {
	Next     Chain
	Flags    uint32
	Bindings []DescriptorSetLayoutBinding
}

type DescriptorPoolSize struct {
	Type            uint32
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	Next      Chain
	Flags     uint32
	MaxSets   uint32
	PoolSizes []DescriptorPoolSize
}

type DescriptorSetAllocateInfo struct {
	Next                Chain
	DescriptorPool      Handle
	SetLayouts          []Handle
}

// DescriptorUpdateTemplateEntry mirrors VkDescriptorUpdateTemplateEntry: it
// is what the vkUpdateDescriptorSetWithTemplate custom hook (§4.8) walks,
// through handlefixer, to find the handle slots in the opaque pData payload.
type DescriptorUpdateTemplateEntry struct {
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
	DescriptorType  uint32
	Offset          uintptr
	Stride          uintptr
}

type DescriptorUpdateTemplateCreateInfo struct {
	Next                Chain
	Flags               uint32
	Entries             []DescriptorUpdateTemplateEntry
	TemplateType        uint32
	DescriptorSetLayout Handle
	PipelineLayout      Handle
	Set                 uint32
}

type AttachmentDescription struct {
	Format        uint32
	Samples       uint32
	LoadOp        uint32
	StoreOp       uint32
	InitialLayout uint32
	FinalLayout   uint32
}

type SubpassDescription struct {
	PipelineBindPoint uint32
	InputAttachments  []uint32
	ColorAttachments  []uint32
}

type RenderPassCreateInfo struct {
	Next        Chain
	Flags       uint32
	Attachments []AttachmentDescription
	Subpasses   []SubpassDescription
}

type FramebufferCreateInfo struct {
	Next        Chain
	Flags       uint32
	RenderPass  Handle
	Attachments []Handle
	Width, Height, Layers uint32
}

type GraphicsPipelineCreateInfo struct {
	Next              Chain
	Flags             uint32
	Stages            []uint32 // shader stage bits present
	Layout            Handle
	RenderPass        Handle
	Subpass           uint32
	BasePipelineHandle Handle
	// HasVertexInputState gates whether pVertexInputState is meaningful —
	// the "valid predicate" example named explicitly in §4.3.
	HasVertexInputState bool
}

type CommandPoolCreateInfo struct {
	Next             Chain
	Flags            uint32
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	Next        Chain
	CommandPool Handle
	Level       uint32
	Count       uint32
}

type FenceCreateInfo struct {
	Next  Chain
	Flags uint32
}

type SemaphoreCreateInfo struct {
	Next  Chain
	Flags uint32
}

type EventCreateInfo struct {
	Next  Chain
	Flags uint32
}

type QueryPoolCreateInfo struct {
	Next       Chain
	Flags      uint32
	QueryType  uint32
	QueryCount uint32
}

type SwapchainCreateInfo struct {
	Next            Chain
	Flags           uint32
	Surface         Handle
	MinImageCount   uint32
	ImageFormat     uint32
	ImageExtent     [2]uint32
	OldSwapchain    Handle
}

type SurfaceCreateInfo struct {
	Next Chain
	// Platform-specific connection/window handles are carried opaquely;
	// this layer never dereferences them.
	Opaque []byte
}

// LayerProperties describes one entry returned by
// vkEnumerate{Instance,Device}LayerProperties (§6): this layer always
// reports exactly one.
type LayerProperties struct {
	LayerName             string
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           string
}

// ClearValue is serialised as four u32 words regardless of union tag
// (§4.8): consumers must pair it with the attachment format to interpret.
type ClearValue [4]uint32

// QueueLookupInfo is the "queue-lookup info" a VkQueue wrapper stores in
// place of a creation info (§3: "a deep clone of the creation info (or
// allocate/queue-lookup info)") — vkGetDeviceQueue has no VkXCreateInfo of
// its own, only the family/index pair that identified the queue.
type QueueLookupInfo struct {
	QueueFamilyIndex uint32
	QueueIndex       uint32
}
