// Code in this file is hand-written in the shape a Vulkan-XML-registry
// generator would produce: one method per entry point, default body forwards
// to Next (§4.1, §9: "prefer per-method generated stubs to avoid hand-writing
// defaults"). ctx carries the layer options and logging handler.
package transform

import (
	"context"

	"github.com/gfxtrace/vktrace/vk"
)

// Transform is the interface every pipeline node satisfies: one method per
// supported Vulkan entry point (§4.1). The full ~500-entry catalogue is out
// of core scope per spec §1; this is the representative subset exercised by
// the codec, state block, trackers and recorder.
type Transform interface {
	GetInstanceProcAddr(ctx context.Context, instance vk.Handle, name string) uintptr
	GetDeviceProcAddr(ctx context.Context, device vk.Handle, name string) uintptr
	EnumerateInstanceLayerProperties(ctx context.Context, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result
	EnumerateDeviceLayerProperties(ctx context.Context, physicalDevice vk.Handle, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result
	CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result
	DestroyInstance(ctx context.Context, instance vk.Handle) vk.Result
	EnumeratePhysicalDevices(ctx context.Context, instance vk.Handle, pPhysicalDeviceCount *uint32, pPhysicalDevices []vk.Handle) vk.Result
	GetPhysicalDeviceProperties(ctx context.Context, physicalDevice vk.Handle, pProperties *vk.PhysicalDeviceProperties) vk.Result
	GetPhysicalDeviceMemoryProperties(ctx context.Context, physicalDevice vk.Handle, pMemoryProperties *vk.PhysicalDeviceMemoryProperties) vk.Result
	CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result
	DestroyDevice(ctx context.Context, device vk.Handle) vk.Result
	GetDeviceQueue(ctx context.Context, device vk.Handle, queueFamilyIndex uint32, queueIndex uint32, pQueue *vk.Handle) vk.Result
	DeviceWaitIdle(ctx context.Context, device vk.Handle) vk.Result
	QueueWaitIdle(ctx context.Context, queue vk.Handle) vk.Result
	QueueSubmit(ctx context.Context, queue vk.Handle, submitCount uint32, pCommandBuffers []vk.Handle, fence vk.Handle) vk.Result
	AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result
	FreeMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result
	MapMemory(ctx context.Context, device vk.Handle, memory vk.Handle, offset uint64, size int64, flags uint32, ppData *uint64) vk.Result
	UnmapMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result
	CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result
	DestroyBuffer(ctx context.Context, device vk.Handle, buffer vk.Handle) vk.Result
	BindBufferMemory(ctx context.Context, device vk.Handle, buffer vk.Handle, memory vk.Handle, memoryOffset uint64) vk.Result
	CreateBufferView(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferViewCreateInfo, pView *vk.Handle) vk.Result
	DestroyBufferView(ctx context.Context, device vk.Handle, bufferView vk.Handle) vk.Result
	CreateImage(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageCreateInfo, pImage *vk.Handle) vk.Result
	DestroyImage(ctx context.Context, device vk.Handle, image vk.Handle) vk.Result
	BindImageMemory(ctx context.Context, device vk.Handle, image vk.Handle, memory vk.Handle, memoryOffset uint64) vk.Result
	CreateImageView(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageViewCreateInfo, pView *vk.Handle) vk.Result
	DestroyImageView(ctx context.Context, device vk.Handle, imageView vk.Handle) vk.Result
	CreateSampler(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerCreateInfo, pSampler *vk.Handle) vk.Result
	DestroySampler(ctx context.Context, device vk.Handle, sampler vk.Handle) vk.Result
	CreateSamplerYcbcrConversion(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerYcbcrConversionCreateInfo, pConversion *vk.Handle) vk.Result
	DestroySamplerYcbcrConversion(ctx context.Context, device vk.Handle, conversion vk.Handle) vk.Result
	CreateShaderModule(ctx context.Context, device vk.Handle, pCreateInfo *vk.ShaderModuleCreateInfo, pShaderModule *vk.Handle) vk.Result
	DestroyShaderModule(ctx context.Context, device vk.Handle, shaderModule vk.Handle) vk.Result
	CreatePipelineCache(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineCacheCreateInfo, pPipelineCache *vk.Handle) vk.Result
	DestroyPipelineCache(ctx context.Context, device vk.Handle, pipelineCache vk.Handle) vk.Result
	GetPipelineCacheData(ctx context.Context, device vk.Handle, pipelineCache vk.Handle, pDataSize *uint64) vk.Result
	CreatePipelineLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineLayoutCreateInfo, pPipelineLayout *vk.Handle) vk.Result
	DestroyPipelineLayout(ctx context.Context, device vk.Handle, pipelineLayout vk.Handle) vk.Result
	CreateGraphicsPipelines(ctx context.Context, device vk.Handle, pipelineCache vk.Handle, createInfoCount uint32, pCreateInfos []vk.GraphicsPipelineCreateInfo, pPipelines []vk.Handle) vk.Result
	DestroyPipeline(ctx context.Context, device vk.Handle, pipeline vk.Handle) vk.Result
	CreateDescriptorSetLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorSetLayoutCreateInfo, pSetLayout *vk.Handle) vk.Result
	DestroyDescriptorSetLayout(ctx context.Context, device vk.Handle, descriptorSetLayout vk.Handle) vk.Result
	CreateDescriptorPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorPoolCreateInfo, pDescriptorPool *vk.Handle) vk.Result
	DestroyDescriptorPool(ctx context.Context, device vk.Handle, descriptorPool vk.Handle) vk.Result
	ResetDescriptorPool(ctx context.Context, device vk.Handle, descriptorPool vk.Handle, flags uint32) vk.Result
	AllocateDescriptorSets(ctx context.Context, device vk.Handle, pAllocateInfo *vk.DescriptorSetAllocateInfo, pDescriptorSets []vk.Handle) vk.Result
	FreeDescriptorSets(ctx context.Context, device vk.Handle, descriptorPool vk.Handle, pDescriptorSets []vk.Handle) vk.Result
	CreateDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorUpdateTemplateCreateInfo, pDescriptorUpdateTemplate *vk.Handle) vk.Result
	DestroyDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, descriptorUpdateTemplate vk.Handle) vk.Result
	UpdateDescriptorSetWithTemplate(ctx context.Context, device vk.Handle, descriptorSet vk.Handle, descriptorUpdateTemplate vk.Handle, pData []byte)
	CreateRenderPass(ctx context.Context, device vk.Handle, pCreateInfo *vk.RenderPassCreateInfo, pRenderPass *vk.Handle) vk.Result
	DestroyRenderPass(ctx context.Context, device vk.Handle, renderPass vk.Handle) vk.Result
	CreateFramebuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.FramebufferCreateInfo, pFramebuffer *vk.Handle) vk.Result
	DestroyFramebuffer(ctx context.Context, device vk.Handle, framebuffer vk.Handle) vk.Result
	CreateCommandPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.CommandPoolCreateInfo, pCommandPool *vk.Handle) vk.Result
	DestroyCommandPool(ctx context.Context, device vk.Handle, commandPool vk.Handle) vk.Result
	ResetCommandPool(ctx context.Context, device vk.Handle, commandPool vk.Handle, flags uint32) vk.Result
	AllocateCommandBuffers(ctx context.Context, device vk.Handle, pAllocateInfo *vk.CommandBufferAllocateInfo, pCommandBuffers []vk.Handle) vk.Result
	FreeCommandBuffers(ctx context.Context, device vk.Handle, commandPool vk.Handle, pCommandBuffers []vk.Handle)
	BeginCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result
	EndCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result
	ResetCommandBuffer(ctx context.Context, commandBuffer vk.Handle, flags uint32) vk.Result
	CmdBindPipeline(ctx context.Context, commandBuffer vk.Handle, pipelineBindPoint uint32, pipeline vk.Handle)
	CmdBindDescriptorSets(ctx context.Context, commandBuffer vk.Handle, pipelineBindPoint uint32, layout vk.Handle, firstSet uint32, pDescriptorSets []vk.Handle)
	CmdBindVertexBuffers(ctx context.Context, commandBuffer vk.Handle, firstBinding uint32, pBuffers []vk.Handle, pOffsets []uint64)
	CmdBindIndexBuffer(ctx context.Context, commandBuffer vk.Handle, buffer vk.Handle, offset uint64, indexType uint32)
	CmdDraw(ctx context.Context, commandBuffer vk.Handle, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32)
	CmdDrawIndexed(ctx context.Context, commandBuffer vk.Handle, indexCount uint32, instanceCount uint32, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	CmdDispatch(ctx context.Context, commandBuffer vk.Handle, groupCountX uint32, groupCountY uint32, groupCountZ uint32)
	CmdCopyBuffer(ctx context.Context, commandBuffer vk.Handle, srcBuffer vk.Handle, dstBuffer vk.Handle)
	CmdUpdateBuffer(ctx context.Context, commandBuffer vk.Handle, dstBuffer vk.Handle, dstOffset uint64, pData []byte)
	CmdPushConstants(ctx context.Context, commandBuffer vk.Handle, layout vk.Handle, stageFlags uint32, offset uint32, pValues []byte)
	CmdBeginRenderPass(ctx context.Context, commandBuffer vk.Handle, renderPass vk.Handle, framebuffer vk.Handle, pClearValues []vk.ClearValue)
	CmdEndRenderPass(ctx context.Context, commandBuffer vk.Handle)
	CmdPipelineBarrier(ctx context.Context, commandBuffer vk.Handle, srcStageMask uint32, dstStageMask uint32)
	CmdClearColorImage(ctx context.Context, commandBuffer vk.Handle, image vk.Handle, imageLayout uint32, pColor *vk.ClearValue)
	CmdExecuteCommands(ctx context.Context, commandBuffer vk.Handle, pCommandBuffers []vk.Handle)
	CreateFence(ctx context.Context, device vk.Handle, pCreateInfo *vk.FenceCreateInfo, pFence *vk.Handle) vk.Result
	DestroyFence(ctx context.Context, device vk.Handle, fence vk.Handle) vk.Result
	ResetFences(ctx context.Context, device vk.Handle, pFences []vk.Handle) vk.Result
	GetFenceStatus(ctx context.Context, device vk.Handle, fence vk.Handle) vk.Result
	WaitForFences(ctx context.Context, device vk.Handle, pFences []vk.Handle, waitAll bool, timeout uint64) vk.Result
	CreateSemaphore(ctx context.Context, device vk.Handle, pCreateInfo *vk.SemaphoreCreateInfo, pSemaphore *vk.Handle) vk.Result
	DestroySemaphore(ctx context.Context, device vk.Handle, semaphore vk.Handle) vk.Result
	CreateEvent(ctx context.Context, device vk.Handle, pCreateInfo *vk.EventCreateInfo, pEvent *vk.Handle) vk.Result
	DestroyEvent(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result
	SetEvent(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result
	ResetEvent(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result
	GetEventStatus(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result
	CreateQueryPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.QueryPoolCreateInfo, pQueryPool *vk.Handle) vk.Result
	DestroyQueryPool(ctx context.Context, device vk.Handle, queryPool vk.Handle) vk.Result
	GetQueryPoolResults(ctx context.Context, device vk.Handle, queryPool vk.Handle, firstQuery uint32, queryCount uint32, dataSize uint64) vk.Result
	CreateSwapchain(ctx context.Context, device vk.Handle, pCreateInfo *vk.SwapchainCreateInfo, pSwapchain *vk.Handle) vk.Result
	DestroySwapchain(ctx context.Context, device vk.Handle, swapchain vk.Handle) vk.Result
	GetSwapchainImages(ctx context.Context, device vk.Handle, swapchain vk.Handle, pSwapchainImageCount *uint32, pSwapchainImages []vk.Handle) vk.Result
	AcquireNextImage(ctx context.Context, device vk.Handle, swapchain vk.Handle, timeout uint64, semaphore vk.Handle, fence vk.Handle, pImageIndex *uint32) vk.Result
	DestroySurface(ctx context.Context, instance vk.Handle, surface vk.Handle) vk.Result
}

// Base is the default Transform: every method forwards to Next untouched.
// A concrete transform embeds Base and overrides only the methods it cares
// about (§4.1). When Next is nil the call is a terminator: the default body
// returns a "success-default" result without touching out-parameters.
type Base struct {
	Next Transform
}

var _ Transform = (*Base)(nil)

// GetInstanceProcAddr is the default, forwarding implementation of the vkGetInstanceProcAddr entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetInstanceProcAddr(ctx context.Context, instance vk.Handle, name string) uintptr {
	if t.Next == nil {
		return 0
	}
	return t.Next.GetInstanceProcAddr(ctx, instance, name)
}

// GetDeviceProcAddr is the default, forwarding implementation of the vkGetDeviceProcAddr entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetDeviceProcAddr(ctx context.Context, device vk.Handle, name string) uintptr {
	if t.Next == nil {
		return 0
	}
	return t.Next.GetDeviceProcAddr(ctx, device, name)
}

// EnumerateInstanceLayerProperties is the default, forwarding implementation of the vkEnumerateInstanceLayerProperties entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) EnumerateInstanceLayerProperties(ctx context.Context, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.EnumerateInstanceLayerProperties(ctx, pPropertyCount, pProperties)
}

// EnumerateDeviceLayerProperties is the default, forwarding implementation of the vkEnumerateDeviceLayerProperties entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) EnumerateDeviceLayerProperties(ctx context.Context, physicalDevice vk.Handle, pPropertyCount *uint32, pProperties []vk.LayerProperties) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.EnumerateDeviceLayerProperties(ctx, physicalDevice, pPropertyCount, pProperties)
}

// CreateInstance is the default, forwarding implementation of the vkCreateInstance entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateInstance(ctx, pCreateInfo, pInstance)
}

// DestroyInstance is the default, forwarding implementation of the vkDestroyInstance entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyInstance(ctx context.Context, instance vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyInstance(ctx, instance)
}

// EnumeratePhysicalDevices is the default, forwarding implementation of the vkEnumeratePhysicalDevices entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) EnumeratePhysicalDevices(ctx context.Context, instance vk.Handle, pPhysicalDeviceCount *uint32, pPhysicalDevices []vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.EnumeratePhysicalDevices(ctx, instance, pPhysicalDeviceCount, pPhysicalDevices)
}

// GetPhysicalDeviceProperties is the default, forwarding implementation of the vkGetPhysicalDeviceProperties entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetPhysicalDeviceProperties(ctx context.Context, physicalDevice vk.Handle, pProperties *vk.PhysicalDeviceProperties) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetPhysicalDeviceProperties(ctx, physicalDevice, pProperties)
}

// GetPhysicalDeviceMemoryProperties is the default, forwarding implementation of the vkGetPhysicalDeviceMemoryProperties entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetPhysicalDeviceMemoryProperties(ctx context.Context, physicalDevice vk.Handle, pMemoryProperties *vk.PhysicalDeviceMemoryProperties) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetPhysicalDeviceMemoryProperties(ctx, physicalDevice, pMemoryProperties)
}

// CreateDevice is the default, forwarding implementation of the vkCreateDevice entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateDevice(ctx, physicalDevice, pCreateInfo, pDevice)
}

// DestroyDevice is the default, forwarding implementation of the vkDestroyDevice entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyDevice(ctx context.Context, device vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyDevice(ctx, device)
}

// GetDeviceQueue is the default, forwarding implementation of the vkGetDeviceQueue entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetDeviceQueue(ctx context.Context, device vk.Handle, queueFamilyIndex uint32, queueIndex uint32, pQueue *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetDeviceQueue(ctx, device, queueFamilyIndex, queueIndex, pQueue)
}

// DeviceWaitIdle is the default, forwarding implementation of the vkDeviceWaitIdle entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DeviceWaitIdle(ctx context.Context, device vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DeviceWaitIdle(ctx, device)
}

// QueueWaitIdle is the default, forwarding implementation of the vkQueueWaitIdle entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) QueueWaitIdle(ctx context.Context, queue vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.QueueWaitIdle(ctx, queue)
}

// QueueSubmit is the default, forwarding implementation of the vkQueueSubmit entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) QueueSubmit(ctx context.Context, queue vk.Handle, submitCount uint32, pCommandBuffers []vk.Handle, fence vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.QueueSubmit(ctx, queue, submitCount, pCommandBuffers, fence)
}

// AllocateMemory is the default, forwarding implementation of the vkAllocateMemory entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.AllocateMemory(ctx, device, pAllocateInfo, pMemory)
}

// FreeMemory is the default, forwarding implementation of the vkFreeMemory entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) FreeMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.FreeMemory(ctx, device, memory)
}

// MapMemory is the default, forwarding implementation of the vkMapMemory entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) MapMemory(ctx context.Context, device vk.Handle, memory vk.Handle, offset uint64, size int64, flags uint32, ppData *uint64) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.MapMemory(ctx, device, memory, offset, size, flags, ppData)
}

// UnmapMemory is the default, forwarding implementation of the vkUnmapMemory entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) UnmapMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.UnmapMemory(ctx, device, memory)
}

// CreateBuffer is the default, forwarding implementation of the vkCreateBuffer entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateBuffer(ctx, device, pCreateInfo, pBuffer)
}

// DestroyBuffer is the default, forwarding implementation of the vkDestroyBuffer entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyBuffer(ctx context.Context, device vk.Handle, buffer vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyBuffer(ctx, device, buffer)
}

// BindBufferMemory is the default, forwarding implementation of the vkBindBufferMemory entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) BindBufferMemory(ctx context.Context, device vk.Handle, buffer vk.Handle, memory vk.Handle, memoryOffset uint64) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.BindBufferMemory(ctx, device, buffer, memory, memoryOffset)
}

// CreateBufferView is the default, forwarding implementation of the vkCreateBufferView entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateBufferView(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferViewCreateInfo, pView *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateBufferView(ctx, device, pCreateInfo, pView)
}

// DestroyBufferView is the default, forwarding implementation of the vkDestroyBufferView entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyBufferView(ctx context.Context, device vk.Handle, bufferView vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyBufferView(ctx, device, bufferView)
}

// CreateImage is the default, forwarding implementation of the vkCreateImage entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateImage(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageCreateInfo, pImage *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateImage(ctx, device, pCreateInfo, pImage)
}

// DestroyImage is the default, forwarding implementation of the vkDestroyImage entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyImage(ctx context.Context, device vk.Handle, image vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyImage(ctx, device, image)
}

// BindImageMemory is the default, forwarding implementation of the vkBindImageMemory entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) BindImageMemory(ctx context.Context, device vk.Handle, image vk.Handle, memory vk.Handle, memoryOffset uint64) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.BindImageMemory(ctx, device, image, memory, memoryOffset)
}

// CreateImageView is the default, forwarding implementation of the vkCreateImageView entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateImageView(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageViewCreateInfo, pView *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateImageView(ctx, device, pCreateInfo, pView)
}

// DestroyImageView is the default, forwarding implementation of the vkDestroyImageView entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyImageView(ctx context.Context, device vk.Handle, imageView vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyImageView(ctx, device, imageView)
}

// CreateSampler is the default, forwarding implementation of the vkCreateSampler entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateSampler(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerCreateInfo, pSampler *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateSampler(ctx, device, pCreateInfo, pSampler)
}

// DestroySampler is the default, forwarding implementation of the vkDestroySampler entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroySampler(ctx context.Context, device vk.Handle, sampler vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroySampler(ctx, device, sampler)
}

// CreateSamplerYcbcrConversion is the default, forwarding implementation of the vkCreateSamplerYcbcrConversion entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateSamplerYcbcrConversion(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerYcbcrConversionCreateInfo, pConversion *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateSamplerYcbcrConversion(ctx, device, pCreateInfo, pConversion)
}

// DestroySamplerYcbcrConversion is the default, forwarding implementation of the vkDestroySamplerYcbcrConversion entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroySamplerYcbcrConversion(ctx context.Context, device vk.Handle, conversion vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroySamplerYcbcrConversion(ctx, device, conversion)
}

// CreateShaderModule is the default, forwarding implementation of the vkCreateShaderModule entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateShaderModule(ctx context.Context, device vk.Handle, pCreateInfo *vk.ShaderModuleCreateInfo, pShaderModule *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateShaderModule(ctx, device, pCreateInfo, pShaderModule)
}

// DestroyShaderModule is the default, forwarding implementation of the vkDestroyShaderModule entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyShaderModule(ctx context.Context, device vk.Handle, shaderModule vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyShaderModule(ctx, device, shaderModule)
}

// CreatePipelineCache is the default, forwarding implementation of the vkCreatePipelineCache entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreatePipelineCache(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineCacheCreateInfo, pPipelineCache *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreatePipelineCache(ctx, device, pCreateInfo, pPipelineCache)
}

// DestroyPipelineCache is the default, forwarding implementation of the vkDestroyPipelineCache entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyPipelineCache(ctx context.Context, device vk.Handle, pipelineCache vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyPipelineCache(ctx, device, pipelineCache)
}

// GetPipelineCacheData is the default, forwarding implementation of the vkGetPipelineCacheData entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetPipelineCacheData(ctx context.Context, device vk.Handle, pipelineCache vk.Handle, pDataSize *uint64) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetPipelineCacheData(ctx, device, pipelineCache, pDataSize)
}

// CreatePipelineLayout is the default, forwarding implementation of the vkCreatePipelineLayout entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreatePipelineLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineLayoutCreateInfo, pPipelineLayout *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreatePipelineLayout(ctx, device, pCreateInfo, pPipelineLayout)
}

// DestroyPipelineLayout is the default, forwarding implementation of the vkDestroyPipelineLayout entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyPipelineLayout(ctx context.Context, device vk.Handle, pipelineLayout vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyPipelineLayout(ctx, device, pipelineLayout)
}

// CreateGraphicsPipelines is the default, forwarding implementation of the vkCreateGraphicsPipelines entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateGraphicsPipelines(ctx context.Context, device vk.Handle, pipelineCache vk.Handle, createInfoCount uint32, pCreateInfos []vk.GraphicsPipelineCreateInfo, pPipelines []vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateGraphicsPipelines(ctx, device, pipelineCache, createInfoCount, pCreateInfos, pPipelines)
}

// DestroyPipeline is the default, forwarding implementation of the vkDestroyPipeline entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyPipeline(ctx context.Context, device vk.Handle, pipeline vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyPipeline(ctx, device, pipeline)
}

// CreateDescriptorSetLayout is the default, forwarding implementation of the vkCreateDescriptorSetLayout entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateDescriptorSetLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorSetLayoutCreateInfo, pSetLayout *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateDescriptorSetLayout(ctx, device, pCreateInfo, pSetLayout)
}

// DestroyDescriptorSetLayout is the default, forwarding implementation of the vkDestroyDescriptorSetLayout entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyDescriptorSetLayout(ctx context.Context, device vk.Handle, descriptorSetLayout vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyDescriptorSetLayout(ctx, device, descriptorSetLayout)
}

// CreateDescriptorPool is the default, forwarding implementation of the vkCreateDescriptorPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateDescriptorPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorPoolCreateInfo, pDescriptorPool *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateDescriptorPool(ctx, device, pCreateInfo, pDescriptorPool)
}

// DestroyDescriptorPool is the default, forwarding implementation of the vkDestroyDescriptorPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyDescriptorPool(ctx context.Context, device vk.Handle, descriptorPool vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyDescriptorPool(ctx, device, descriptorPool)
}

// ResetDescriptorPool is the default, forwarding implementation of the vkResetDescriptorPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) ResetDescriptorPool(ctx context.Context, device vk.Handle, descriptorPool vk.Handle, flags uint32) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.ResetDescriptorPool(ctx, device, descriptorPool, flags)
}

// AllocateDescriptorSets is the default, forwarding implementation of the vkAllocateDescriptorSets entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) AllocateDescriptorSets(ctx context.Context, device vk.Handle, pAllocateInfo *vk.DescriptorSetAllocateInfo, pDescriptorSets []vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.AllocateDescriptorSets(ctx, device, pAllocateInfo, pDescriptorSets)
}

// FreeDescriptorSets is the default, forwarding implementation of the vkFreeDescriptorSets entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) FreeDescriptorSets(ctx context.Context, device vk.Handle, descriptorPool vk.Handle, pDescriptorSets []vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.FreeDescriptorSets(ctx, device, descriptorPool, pDescriptorSets)
}

// CreateDescriptorUpdateTemplate is the default, forwarding implementation of the vkCreateDescriptorUpdateTemplate entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorUpdateTemplateCreateInfo, pDescriptorUpdateTemplate *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateDescriptorUpdateTemplate(ctx, device, pCreateInfo, pDescriptorUpdateTemplate)
}

// DestroyDescriptorUpdateTemplate is the default, forwarding implementation of the vkDestroyDescriptorUpdateTemplate entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, descriptorUpdateTemplate vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyDescriptorUpdateTemplate(ctx, device, descriptorUpdateTemplate)
}

// UpdateDescriptorSetWithTemplate is the default, forwarding implementation of the vkUpdateDescriptorSetWithTemplate entry
// point.
func (t *Base) UpdateDescriptorSetWithTemplate(ctx context.Context, device vk.Handle, descriptorSet vk.Handle, descriptorUpdateTemplate vk.Handle, pData []byte) {
	if t.Next == nil {
		return
	}
	t.Next.UpdateDescriptorSetWithTemplate(ctx, device, descriptorSet, descriptorUpdateTemplate, pData)
}

// CreateRenderPass is the default, forwarding implementation of the vkCreateRenderPass entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateRenderPass(ctx context.Context, device vk.Handle, pCreateInfo *vk.RenderPassCreateInfo, pRenderPass *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateRenderPass(ctx, device, pCreateInfo, pRenderPass)
}

// DestroyRenderPass is the default, forwarding implementation of the vkDestroyRenderPass entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyRenderPass(ctx context.Context, device vk.Handle, renderPass vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyRenderPass(ctx, device, renderPass)
}

// CreateFramebuffer is the default, forwarding implementation of the vkCreateFramebuffer entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateFramebuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.FramebufferCreateInfo, pFramebuffer *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateFramebuffer(ctx, device, pCreateInfo, pFramebuffer)
}

// DestroyFramebuffer is the default, forwarding implementation of the vkDestroyFramebuffer entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyFramebuffer(ctx context.Context, device vk.Handle, framebuffer vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyFramebuffer(ctx, device, framebuffer)
}

// CreateCommandPool is the default, forwarding implementation of the vkCreateCommandPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateCommandPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.CommandPoolCreateInfo, pCommandPool *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateCommandPool(ctx, device, pCreateInfo, pCommandPool)
}

// DestroyCommandPool is the default, forwarding implementation of the vkDestroyCommandPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyCommandPool(ctx context.Context, device vk.Handle, commandPool vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyCommandPool(ctx, device, commandPool)
}

// ResetCommandPool is the default, forwarding implementation of the vkResetCommandPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) ResetCommandPool(ctx context.Context, device vk.Handle, commandPool vk.Handle, flags uint32) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.ResetCommandPool(ctx, device, commandPool, flags)
}

// AllocateCommandBuffers is the default, forwarding implementation of the vkAllocateCommandBuffers entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) AllocateCommandBuffers(ctx context.Context, device vk.Handle, pAllocateInfo *vk.CommandBufferAllocateInfo, pCommandBuffers []vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.AllocateCommandBuffers(ctx, device, pAllocateInfo, pCommandBuffers)
}

// FreeCommandBuffers is the default, forwarding implementation of the vkFreeCommandBuffers entry
// point.
func (t *Base) FreeCommandBuffers(ctx context.Context, device vk.Handle, commandPool vk.Handle, pCommandBuffers []vk.Handle) {
	if t.Next == nil {
		return
	}
	t.Next.FreeCommandBuffers(ctx, device, commandPool, pCommandBuffers)
}

// BeginCommandBuffer is the default, forwarding implementation of the vkBeginCommandBuffer entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) BeginCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.BeginCommandBuffer(ctx, commandBuffer)
}

// EndCommandBuffer is the default, forwarding implementation of the vkEndCommandBuffer entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) EndCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.EndCommandBuffer(ctx, commandBuffer)
}

// ResetCommandBuffer is the default, forwarding implementation of the vkResetCommandBuffer entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) ResetCommandBuffer(ctx context.Context, commandBuffer vk.Handle, flags uint32) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.ResetCommandBuffer(ctx, commandBuffer, flags)
}

// CmdBindPipeline is the default, forwarding implementation of the vkCmdBindPipeline entry
// point.
func (t *Base) CmdBindPipeline(ctx context.Context, commandBuffer vk.Handle, pipelineBindPoint uint32, pipeline vk.Handle) {
	if t.Next == nil {
		return
	}
	t.Next.CmdBindPipeline(ctx, commandBuffer, pipelineBindPoint, pipeline)
}

// CmdBindDescriptorSets is the default, forwarding implementation of the vkCmdBindDescriptorSets entry
// point.
func (t *Base) CmdBindDescriptorSets(ctx context.Context, commandBuffer vk.Handle, pipelineBindPoint uint32, layout vk.Handle, firstSet uint32, pDescriptorSets []vk.Handle) {
	if t.Next == nil {
		return
	}
	t.Next.CmdBindDescriptorSets(ctx, commandBuffer, pipelineBindPoint, layout, firstSet, pDescriptorSets)
}

// CmdBindVertexBuffers is the default, forwarding implementation of the vkCmdBindVertexBuffers entry
// point.
func (t *Base) CmdBindVertexBuffers(ctx context.Context, commandBuffer vk.Handle, firstBinding uint32, pBuffers []vk.Handle, pOffsets []uint64) {
	if t.Next == nil {
		return
	}
	t.Next.CmdBindVertexBuffers(ctx, commandBuffer, firstBinding, pBuffers, pOffsets)
}

// CmdBindIndexBuffer is the default, forwarding implementation of the vkCmdBindIndexBuffer entry
// point.
func (t *Base) CmdBindIndexBuffer(ctx context.Context, commandBuffer vk.Handle, buffer vk.Handle, offset uint64, indexType uint32) {
	if t.Next == nil {
		return
	}
	t.Next.CmdBindIndexBuffer(ctx, commandBuffer, buffer, offset, indexType)
}

// CmdDraw is the default, forwarding implementation of the vkCmdDraw entry
// point.
func (t *Base) CmdDraw(ctx context.Context, commandBuffer vk.Handle, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32) {
	if t.Next == nil {
		return
	}
	t.Next.CmdDraw(ctx, commandBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

// CmdDrawIndexed is the default, forwarding implementation of the vkCmdDrawIndexed entry
// point.
func (t *Base) CmdDrawIndexed(ctx context.Context, commandBuffer vk.Handle, indexCount uint32, instanceCount uint32, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	if t.Next == nil {
		return
	}
	t.Next.CmdDrawIndexed(ctx, commandBuffer, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

// CmdDispatch is the default, forwarding implementation of the vkCmdDispatch entry
// point.
func (t *Base) CmdDispatch(ctx context.Context, commandBuffer vk.Handle, groupCountX uint32, groupCountY uint32, groupCountZ uint32) {
	if t.Next == nil {
		return
	}
	t.Next.CmdDispatch(ctx, commandBuffer, groupCountX, groupCountY, groupCountZ)
}

// CmdCopyBuffer is the default, forwarding implementation of the vkCmdCopyBuffer entry
// point.
func (t *Base) CmdCopyBuffer(ctx context.Context, commandBuffer vk.Handle, srcBuffer vk.Handle, dstBuffer vk.Handle) {
	if t.Next == nil {
		return
	}
	t.Next.CmdCopyBuffer(ctx, commandBuffer, srcBuffer, dstBuffer)
}

// CmdUpdateBuffer is the default, forwarding implementation of the vkCmdUpdateBuffer entry
// point.
func (t *Base) CmdUpdateBuffer(ctx context.Context, commandBuffer vk.Handle, dstBuffer vk.Handle, dstOffset uint64, pData []byte) {
	if t.Next == nil {
		return
	}
	t.Next.CmdUpdateBuffer(ctx, commandBuffer, dstBuffer, dstOffset, pData)
}

// CmdPushConstants is the default, forwarding implementation of the vkCmdPushConstants entry
// point.
func (t *Base) CmdPushConstants(ctx context.Context, commandBuffer vk.Handle, layout vk.Handle, stageFlags uint32, offset uint32, pValues []byte) {
	if t.Next == nil {
		return
	}
	t.Next.CmdPushConstants(ctx, commandBuffer, layout, stageFlags, offset, pValues)
}

// CmdBeginRenderPass is the default, forwarding implementation of the vkCmdBeginRenderPass entry
// point.
func (t *Base) CmdBeginRenderPass(ctx context.Context, commandBuffer vk.Handle, renderPass vk.Handle, framebuffer vk.Handle, pClearValues []vk.ClearValue) {
	if t.Next == nil {
		return
	}
	t.Next.CmdBeginRenderPass(ctx, commandBuffer, renderPass, framebuffer, pClearValues)
}

// CmdEndRenderPass is the default, forwarding implementation of the vkCmdEndRenderPass entry
// point.
func (t *Base) CmdEndRenderPass(ctx context.Context, commandBuffer vk.Handle) {
	if t.Next == nil {
		return
	}
	t.Next.CmdEndRenderPass(ctx, commandBuffer)
}

// CmdPipelineBarrier is the default, forwarding implementation of the vkCmdPipelineBarrier entry
// point.
func (t *Base) CmdPipelineBarrier(ctx context.Context, commandBuffer vk.Handle, srcStageMask uint32, dstStageMask uint32) {
	if t.Next == nil {
		return
	}
	t.Next.CmdPipelineBarrier(ctx, commandBuffer, srcStageMask, dstStageMask)
}

// CmdClearColorImage is the default, forwarding implementation of the vkCmdClearColorImage entry
// point.
func (t *Base) CmdClearColorImage(ctx context.Context, commandBuffer vk.Handle, image vk.Handle, imageLayout uint32, pColor *vk.ClearValue) {
	if t.Next == nil {
		return
	}
	t.Next.CmdClearColorImage(ctx, commandBuffer, image, imageLayout, pColor)
}

// CmdExecuteCommands is the default, forwarding implementation of the vkCmdExecuteCommands entry
// point.
func (t *Base) CmdExecuteCommands(ctx context.Context, commandBuffer vk.Handle, pCommandBuffers []vk.Handle) {
	if t.Next == nil {
		return
	}
	t.Next.CmdExecuteCommands(ctx, commandBuffer, pCommandBuffers)
}

// CreateFence is the default, forwarding implementation of the vkCreateFence entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateFence(ctx context.Context, device vk.Handle, pCreateInfo *vk.FenceCreateInfo, pFence *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateFence(ctx, device, pCreateInfo, pFence)
}

// DestroyFence is the default, forwarding implementation of the vkDestroyFence entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyFence(ctx context.Context, device vk.Handle, fence vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyFence(ctx, device, fence)
}

// ResetFences is the default, forwarding implementation of the vkResetFences entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) ResetFences(ctx context.Context, device vk.Handle, pFences []vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.ResetFences(ctx, device, pFences)
}

// GetFenceStatus is the default, forwarding implementation of the vkGetFenceStatus entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetFenceStatus(ctx context.Context, device vk.Handle, fence vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetFenceStatus(ctx, device, fence)
}

// WaitForFences is the default, forwarding implementation of the vkWaitForFences entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) WaitForFences(ctx context.Context, device vk.Handle, pFences []vk.Handle, waitAll bool, timeout uint64) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.WaitForFences(ctx, device, pFences, waitAll, timeout)
}

// CreateSemaphore is the default, forwarding implementation of the vkCreateSemaphore entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateSemaphore(ctx context.Context, device vk.Handle, pCreateInfo *vk.SemaphoreCreateInfo, pSemaphore *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateSemaphore(ctx, device, pCreateInfo, pSemaphore)
}

// DestroySemaphore is the default, forwarding implementation of the vkDestroySemaphore entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroySemaphore(ctx context.Context, device vk.Handle, semaphore vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroySemaphore(ctx, device, semaphore)
}

// CreateEvent is the default, forwarding implementation of the vkCreateEvent entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateEvent(ctx context.Context, device vk.Handle, pCreateInfo *vk.EventCreateInfo, pEvent *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateEvent(ctx, device, pCreateInfo, pEvent)
}

// DestroyEvent is the default, forwarding implementation of the vkDestroyEvent entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyEvent(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyEvent(ctx, device, event)
}

// SetEvent is the default, forwarding implementation of the vkSetEvent entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) SetEvent(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.SetEvent(ctx, device, event)
}

// ResetEvent is the default, forwarding implementation of the vkResetEvent entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) ResetEvent(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.ResetEvent(ctx, device, event)
}

// GetEventStatus is the default, forwarding implementation of the vkGetEventStatus entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetEventStatus(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetEventStatus(ctx, device, event)
}

// CreateQueryPool is the default, forwarding implementation of the vkCreateQueryPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateQueryPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.QueryPoolCreateInfo, pQueryPool *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateQueryPool(ctx, device, pCreateInfo, pQueryPool)
}

// DestroyQueryPool is the default, forwarding implementation of the vkDestroyQueryPool entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroyQueryPool(ctx context.Context, device vk.Handle, queryPool vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroyQueryPool(ctx, device, queryPool)
}

// GetQueryPoolResults is the default, forwarding implementation of the vkGetQueryPoolResults entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetQueryPoolResults(ctx context.Context, device vk.Handle, queryPool vk.Handle, firstQuery uint32, queryCount uint32, dataSize uint64) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetQueryPoolResults(ctx, device, queryPool, firstQuery, queryCount, dataSize)
}

// CreateSwapchain is the default, forwarding implementation of the vkCreateSwapchain entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) CreateSwapchain(ctx context.Context, device vk.Handle, pCreateInfo *vk.SwapchainCreateInfo, pSwapchain *vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.CreateSwapchain(ctx, device, pCreateInfo, pSwapchain)
}

// DestroySwapchain is the default, forwarding implementation of the vkDestroySwapchain entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroySwapchain(ctx context.Context, device vk.Handle, swapchain vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroySwapchain(ctx, device, swapchain)
}

// GetSwapchainImages is the default, forwarding implementation of the vkGetSwapchainImages entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) GetSwapchainImages(ctx context.Context, device vk.Handle, swapchain vk.Handle, pSwapchainImageCount *uint32, pSwapchainImages []vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.GetSwapchainImages(ctx, device, swapchain, pSwapchainImageCount, pSwapchainImages)
}

// AcquireNextImage is the default, forwarding implementation of the vkAcquireNextImage entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) AcquireNextImage(ctx context.Context, device vk.Handle, swapchain vk.Handle, timeout uint64, semaphore vk.Handle, fence vk.Handle, pImageIndex *uint32) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.AcquireNextImage(ctx, device, swapchain, timeout, semaphore, fence, pImageIndex)
}

// DestroySurface is the default, forwarding implementation of the vkDestroySurface entry
// point. Concrete transforms override it to observe, mutate or suppress
// the call; they remain responsible for calling Next themselves.
func (t *Base) DestroySurface(ctx context.Context, instance vk.Handle, surface vk.Handle) vk.Result {
	if t.Next == nil {
		return vk.Success
	}
	return t.Next.DestroySurface(ctx, instance, surface)
}
