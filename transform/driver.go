package transform

import (
	"context"
	"sync/atomic"

	"github.com/gfxtrace/vktrace/vk"
)

// Driver is a terminal transform standing in for "the real driver" (§1,
// §2). It has no Next and never forwards; it is the tail of every pipeline
// built in this repository's tests and tools. Vulkan's own driver would
// allocate and return real handles — Driver mints monotonically increasing
// ones, which is all the core's invariants (§3) require: a driver handle
// exists and is stable for the wrapper's lifetime. This is explicitly
// within scope: §1's non-goal is replay against a *live* driver, not
// against any driver at all; a deterministic stub is what exercises the
// transform chain end-to-end (§8's testable properties all assume some
// terminus that returns VK_SUCCESS and mints handles).
type Driver struct {
	Base
	next uint64
}

// NewDriver constructs a Driver whose minted handles start after seed.
func NewDriver(seed uint64) *Driver {
	return &Driver{next: seed}
}

func (d *Driver) mint() vk.Handle {
	return vk.Handle(atomic.AddUint64(&d.next, 1))
}

func (d *Driver) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	*pInstance = d.mint()
	return vk.Success
}

func (d *Driver) CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	*pDevice = d.mint()
	return vk.Success
}

func (d *Driver) GetDeviceQueue(ctx context.Context, device vk.Handle, queueFamilyIndex, queueIndex uint32, pQueue *vk.Handle) vk.Result {
	*pQueue = d.mint()
	return vk.Success
}

func (d *Driver) AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result {
	*pMemory = d.mint()
	return vk.Success
}

func (d *Driver) CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result {
	*pBuffer = d.mint()
	return vk.Success
}

func (d *Driver) CreateBufferView(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferViewCreateInfo, pView *vk.Handle) vk.Result {
	*pView = d.mint()
	return vk.Success
}

func (d *Driver) CreateImage(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageCreateInfo, pImage *vk.Handle) vk.Result {
	*pImage = d.mint()
	return vk.Success
}

func (d *Driver) CreateImageView(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageViewCreateInfo, pView *vk.Handle) vk.Result {
	*pView = d.mint()
	return vk.Success
}

func (d *Driver) CreateSampler(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerCreateInfo, pSampler *vk.Handle) vk.Result {
	*pSampler = d.mint()
	return vk.Success
}

func (d *Driver) CreateSamplerYcbcrConversion(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerYcbcrConversionCreateInfo, pConversion *vk.Handle) vk.Result {
	*pConversion = d.mint()
	return vk.Success
}

func (d *Driver) CreateShaderModule(ctx context.Context, device vk.Handle, pCreateInfo *vk.ShaderModuleCreateInfo, pShaderModule *vk.Handle) vk.Result {
	*pShaderModule = d.mint()
	return vk.Success
}

func (d *Driver) CreatePipelineCache(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineCacheCreateInfo, pPipelineCache *vk.Handle) vk.Result {
	*pPipelineCache = d.mint()
	return vk.Success
}

func (d *Driver) CreatePipelineLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineLayoutCreateInfo, pPipelineLayout *vk.Handle) vk.Result {
	*pPipelineLayout = d.mint()
	return vk.Success
}

func (d *Driver) CreateGraphicsPipelines(ctx context.Context, device, pipelineCache vk.Handle, createInfoCount uint32, pCreateInfos []vk.GraphicsPipelineCreateInfo, pPipelines []vk.Handle) vk.Result {
	for i := range pPipelines {
		pPipelines[i] = d.mint()
	}
	return vk.Success
}

func (d *Driver) CreateDescriptorSetLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorSetLayoutCreateInfo, pSetLayout *vk.Handle) vk.Result {
	*pSetLayout = d.mint()
	return vk.Success
}

func (d *Driver) CreateDescriptorPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorPoolCreateInfo, pDescriptorPool *vk.Handle) vk.Result {
	*pDescriptorPool = d.mint()
	return vk.Success
}

func (d *Driver) AllocateDescriptorSets(ctx context.Context, device vk.Handle, pAllocateInfo *vk.DescriptorSetAllocateInfo, pDescriptorSets []vk.Handle) vk.Result {
	for i := range pDescriptorSets {
		pDescriptorSets[i] = d.mint()
	}
	return vk.Success
}

func (d *Driver) CreateDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorUpdateTemplateCreateInfo, pDescriptorUpdateTemplate *vk.Handle) vk.Result {
	*pDescriptorUpdateTemplate = d.mint()
	return vk.Success
}

func (d *Driver) CreateRenderPass(ctx context.Context, device vk.Handle, pCreateInfo *vk.RenderPassCreateInfo, pRenderPass *vk.Handle) vk.Result {
	*pRenderPass = d.mint()
	return vk.Success
}

func (d *Driver) CreateFramebuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.FramebufferCreateInfo, pFramebuffer *vk.Handle) vk.Result {
	*pFramebuffer = d.mint()
	return vk.Success
}

func (d *Driver) CreateCommandPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.CommandPoolCreateInfo, pCommandPool *vk.Handle) vk.Result {
	*pCommandPool = d.mint()
	return vk.Success
}

func (d *Driver) AllocateCommandBuffers(ctx context.Context, device vk.Handle, pAllocateInfo *vk.CommandBufferAllocateInfo, pCommandBuffers []vk.Handle) vk.Result {
	for i := range pCommandBuffers {
		pCommandBuffers[i] = d.mint()
	}
	return vk.Success
}

func (d *Driver) CreateFence(ctx context.Context, device vk.Handle, pCreateInfo *vk.FenceCreateInfo, pFence *vk.Handle) vk.Result {
	*pFence = d.mint()
	return vk.Success
}

func (d *Driver) CreateSemaphore(ctx context.Context, device vk.Handle, pCreateInfo *vk.SemaphoreCreateInfo, pSemaphore *vk.Handle) vk.Result {
	*pSemaphore = d.mint()
	return vk.Success
}

func (d *Driver) CreateEvent(ctx context.Context, device vk.Handle, pCreateInfo *vk.EventCreateInfo, pEvent *vk.Handle) vk.Result {
	*pEvent = d.mint()
	return vk.Success
}

func (d *Driver) CreateQueryPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.QueryPoolCreateInfo, pQueryPool *vk.Handle) vk.Result {
	*pQueryPool = d.mint()
	return vk.Success
}

func (d *Driver) CreateSwapchain(ctx context.Context, device vk.Handle, pCreateInfo *vk.SwapchainCreateInfo, pSwapchain *vk.Handle) vk.Result {
	*pSwapchain = d.mint()
	return vk.Success
}

func (d *Driver) EnumeratePhysicalDevices(ctx context.Context, instance vk.Handle, pPhysicalDeviceCount *uint32, pPhysicalDevices []vk.Handle) vk.Result {
	if pPhysicalDevices == nil {
		*pPhysicalDeviceCount = 1
		return vk.Success
	}
	for i := range pPhysicalDevices {
		pPhysicalDevices[i] = d.mint()
	}
	return vk.Success
}

func (d *Driver) EnumerateInstanceLayerProperties(ctx context.Context, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result {
	if pProperties == nil {
		*pPropertyCount = 1
		return vk.Success
	}
	if len(pProperties) > 0 {
		pProperties[0] = LayerDescriptor
	}
	return vk.Success
}

func (d *Driver) EnumerateDeviceLayerProperties(ctx context.Context, physicalDevice vk.Handle, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result {
	return d.EnumerateInstanceLayerProperties(ctx, pPropertyCount, pProperties)
}

// LayerDescriptor is the single entry this layer reports from
// vkEnumerate{Instance,Device}LayerProperties (§6).
var LayerDescriptor = vk.LayerProperties{
	LayerName:             "VK_LAYER_vktrace_capture",
	SpecVersion:           1,
	ImplementationVersion: 1,
	Description:           "records and replays the Vulkan command stream",
}
