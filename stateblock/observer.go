// Observer is the state-block transform (§4.5): it sits on the pipeline and
// inserts/erases wrappers on every create/destroy path, independent of any
// other transform's cooperation. It holds no creation-info cloning logic —
// that is CreationDataTracker's job (§4.6) — only registry membership.
package stateblock

import (
	"context"

	"github.com/gfxtrace/vktrace/api"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// Observer wraps a *StateBlock as a pipeline transform.
type Observer struct {
	transform.Base
	SB *StateBlock
}

// NewObserver constructs an Observer over sb.
func NewObserver(sb *StateBlock) *Observer { return &Observer{SB: sb} }

func (o *Observer) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	res := o.Base.CreateInstance(ctx, pCreateInfo, pInstance)
	if res.Succeeded() && pInstance != nil && *pInstance != vk.NullHandle {
		o.SB.Insert(*pInstance, vk.KindInstance, nil)
	}
	return res
}

func (o *Observer) CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	res := o.Base.CreateDevice(ctx, physicalDevice, pCreateInfo, pDevice)
	if res.Succeeded() && pDevice != nil && *pDevice != vk.NullHandle {
		o.SB.Insert(*pDevice, vk.KindDevice, o.SB.Get(physicalDevice, vk.KindPhysicalDevice))
	}
	return res
}

func (o *Observer) GetDeviceQueue(ctx context.Context, device vk.Handle, queueFamilyIndex uint32, queueIndex uint32, pQueue *vk.Handle) vk.Result {
	res := o.Base.GetDeviceQueue(ctx, device, queueFamilyIndex, queueIndex, pQueue)
	if res.Succeeded() && pQueue != nil && *pQueue != vk.NullHandle {
		o.SB.Insert(*pQueue, vk.KindQueue, o.SB.Get(device, vk.KindDevice))
	}
	return res
}

func (o *Observer) AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result {
	res := o.Base.AllocateMemory(ctx, device, pAllocateInfo, pMemory)
	if res.Succeeded() && pMemory != nil && *pMemory != vk.NullHandle {
		o.SB.Insert(*pMemory, vk.KindDeviceMemory, nil)
	}
	return res
}

func (o *Observer) CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result {
	res := o.Base.CreateBuffer(ctx, device, pCreateInfo, pBuffer)
	if res.Succeeded() && pBuffer != nil && *pBuffer != vk.NullHandle {
		o.SB.Insert(*pBuffer, vk.KindBuffer, nil)
	}
	return res
}

func (o *Observer) CreateBufferView(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferViewCreateInfo, pView *vk.Handle) vk.Result {
	res := o.Base.CreateBufferView(ctx, device, pCreateInfo, pView)
	if res.Succeeded() && pView != nil && *pView != vk.NullHandle {
		o.SB.Insert(*pView, vk.KindBufferView, nil)
	}
	return res
}

func (o *Observer) CreateImage(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageCreateInfo, pImage *vk.Handle) vk.Result {
	res := o.Base.CreateImage(ctx, device, pCreateInfo, pImage)
	if res.Succeeded() && pImage != nil && *pImage != vk.NullHandle {
		o.SB.Insert(*pImage, vk.KindImage, nil)
	}
	return res
}

func (o *Observer) CreateImageView(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageViewCreateInfo, pView *vk.Handle) vk.Result {
	res := o.Base.CreateImageView(ctx, device, pCreateInfo, pView)
	if res.Succeeded() && pView != nil && *pView != vk.NullHandle {
		o.SB.Insert(*pView, vk.KindImageView, nil)
	}
	return res
}

func (o *Observer) CreateSampler(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerCreateInfo, pSampler *vk.Handle) vk.Result {
	res := o.Base.CreateSampler(ctx, device, pCreateInfo, pSampler)
	if res.Succeeded() && pSampler != nil && *pSampler != vk.NullHandle {
		o.SB.Insert(*pSampler, vk.KindSampler, nil)
	}
	return res
}

func (o *Observer) CreateSamplerYcbcrConversion(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerYcbcrConversionCreateInfo, pConversion *vk.Handle) vk.Result {
	res := o.Base.CreateSamplerYcbcrConversion(ctx, device, pCreateInfo, pConversion)
	if res.Succeeded() && pConversion != nil && *pConversion != vk.NullHandle {
		o.SB.Insert(*pConversion, vk.KindSamplerYcbcrConversion, nil)
	}
	return res
}

func (o *Observer) CreateShaderModule(ctx context.Context, device vk.Handle, pCreateInfo *vk.ShaderModuleCreateInfo, pShaderModule *vk.Handle) vk.Result {
	res := o.Base.CreateShaderModule(ctx, device, pCreateInfo, pShaderModule)
	if res.Succeeded() && pShaderModule != nil && *pShaderModule != vk.NullHandle {
		o.SB.Insert(*pShaderModule, vk.KindShaderModule, nil)
	}
	return res
}

func (o *Observer) CreatePipelineCache(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineCacheCreateInfo, pPipelineCache *vk.Handle) vk.Result {
	res := o.Base.CreatePipelineCache(ctx, device, pCreateInfo, pPipelineCache)
	if res.Succeeded() && pPipelineCache != nil && *pPipelineCache != vk.NullHandle {
		o.SB.Insert(*pPipelineCache, vk.KindPipelineCache, nil)
	}
	return res
}

func (o *Observer) CreatePipelineLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineLayoutCreateInfo, pPipelineLayout *vk.Handle) vk.Result {
	res := o.Base.CreatePipelineLayout(ctx, device, pCreateInfo, pPipelineLayout)
	if res.Succeeded() && pPipelineLayout != nil && *pPipelineLayout != vk.NullHandle {
		o.SB.Insert(*pPipelineLayout, vk.KindPipelineLayout, nil)
	}
	return res
}

func (o *Observer) CreateDescriptorSetLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorSetLayoutCreateInfo, pSetLayout *vk.Handle) vk.Result {
	res := o.Base.CreateDescriptorSetLayout(ctx, device, pCreateInfo, pSetLayout)
	if res.Succeeded() && pSetLayout != nil && *pSetLayout != vk.NullHandle {
		o.SB.Insert(*pSetLayout, vk.KindDescriptorSetLayout, nil)
	}
	return res
}

func (o *Observer) CreateDescriptorPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorPoolCreateInfo, pDescriptorPool *vk.Handle) vk.Result {
	res := o.Base.CreateDescriptorPool(ctx, device, pCreateInfo, pDescriptorPool)
	if res.Succeeded() && pDescriptorPool != nil && *pDescriptorPool != vk.NullHandle {
		o.SB.Insert(*pDescriptorPool, vk.KindDescriptorPool, nil)
	}
	return res
}

func (o *Observer) CreateDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorUpdateTemplateCreateInfo, pDescriptorUpdateTemplate *vk.Handle) vk.Result {
	res := o.Base.CreateDescriptorUpdateTemplate(ctx, device, pCreateInfo, pDescriptorUpdateTemplate)
	if res.Succeeded() && pDescriptorUpdateTemplate != nil && *pDescriptorUpdateTemplate != vk.NullHandle {
		o.SB.Insert(*pDescriptorUpdateTemplate, vk.KindDescriptorUpdateTemplate, nil)
	}
	return res
}

func (o *Observer) CreateRenderPass(ctx context.Context, device vk.Handle, pCreateInfo *vk.RenderPassCreateInfo, pRenderPass *vk.Handle) vk.Result {
	res := o.Base.CreateRenderPass(ctx, device, pCreateInfo, pRenderPass)
	if res.Succeeded() && pRenderPass != nil && *pRenderPass != vk.NullHandle {
		o.SB.Insert(*pRenderPass, vk.KindRenderPass, nil)
	}
	return res
}

func (o *Observer) CreateFramebuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.FramebufferCreateInfo, pFramebuffer *vk.Handle) vk.Result {
	res := o.Base.CreateFramebuffer(ctx, device, pCreateInfo, pFramebuffer)
	if res.Succeeded() && pFramebuffer != nil && *pFramebuffer != vk.NullHandle {
		o.SB.Insert(*pFramebuffer, vk.KindFramebuffer, nil)
	}
	return res
}

func (o *Observer) CreateCommandPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.CommandPoolCreateInfo, pCommandPool *vk.Handle) vk.Result {
	res := o.Base.CreateCommandPool(ctx, device, pCreateInfo, pCommandPool)
	if res.Succeeded() && pCommandPool != nil && *pCommandPool != vk.NullHandle {
		o.SB.Insert(*pCommandPool, vk.KindCommandPool, nil)
	}
	return res
}

func (o *Observer) CreateFence(ctx context.Context, device vk.Handle, pCreateInfo *vk.FenceCreateInfo, pFence *vk.Handle) vk.Result {
	res := o.Base.CreateFence(ctx, device, pCreateInfo, pFence)
	if res.Succeeded() && pFence != nil && *pFence != vk.NullHandle {
		o.SB.Insert(*pFence, vk.KindFence, nil)
	}
	return res
}

func (o *Observer) CreateSemaphore(ctx context.Context, device vk.Handle, pCreateInfo *vk.SemaphoreCreateInfo, pSemaphore *vk.Handle) vk.Result {
	res := o.Base.CreateSemaphore(ctx, device, pCreateInfo, pSemaphore)
	if res.Succeeded() && pSemaphore != nil && *pSemaphore != vk.NullHandle {
		o.SB.Insert(*pSemaphore, vk.KindSemaphore, nil)
	}
	return res
}

func (o *Observer) CreateEvent(ctx context.Context, device vk.Handle, pCreateInfo *vk.EventCreateInfo, pEvent *vk.Handle) vk.Result {
	res := o.Base.CreateEvent(ctx, device, pCreateInfo, pEvent)
	if res.Succeeded() && pEvent != nil && *pEvent != vk.NullHandle {
		o.SB.Insert(*pEvent, vk.KindEvent, nil)
	}
	return res
}

func (o *Observer) CreateQueryPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.QueryPoolCreateInfo, pQueryPool *vk.Handle) vk.Result {
	res := o.Base.CreateQueryPool(ctx, device, pCreateInfo, pQueryPool)
	if res.Succeeded() && pQueryPool != nil && *pQueryPool != vk.NullHandle {
		o.SB.Insert(*pQueryPool, vk.KindQueryPool, nil)
	}
	return res
}

func (o *Observer) CreateSwapchain(ctx context.Context, device vk.Handle, pCreateInfo *vk.SwapchainCreateInfo, pSwapchain *vk.Handle) vk.Result {
	res := o.Base.CreateSwapchain(ctx, device, pCreateInfo, pSwapchain)
	if res.Succeeded() && pSwapchain != nil && *pSwapchain != vk.NullHandle {
		o.SB.Insert(*pSwapchain, vk.KindSwapchain, nil)
	}
	return res
}

func (o *Observer) CreateGraphicsPipelines(ctx context.Context, device vk.Handle, pipelineCache vk.Handle, createInfoCount uint32, pCreateInfos []vk.GraphicsPipelineCreateInfo, pPipelines []vk.Handle) vk.Result {
	res := o.Base.CreateGraphicsPipelines(ctx, device, pipelineCache, createInfoCount, pCreateInfos, pPipelines)
	if res.Succeeded() {
		for _, h := range pPipelines {
			if h != vk.NullHandle {
				o.SB.Insert(h, vk.KindPipeline, o.SB.Get(device, vk.KindDevice))
			}
		}
	}
	return res
}

func (o *Observer) AllocateDescriptorSets(ctx context.Context, device vk.Handle, pAllocateInfo *vk.DescriptorSetAllocateInfo, pDescriptorSets []vk.Handle) vk.Result {
	res := o.Base.AllocateDescriptorSets(ctx, device, pAllocateInfo, pDescriptorSets)
	if res.Succeeded() {
		var pool vk.Handle
		if pAllocateInfo != nil {
			pool = pAllocateInfo.DescriptorPool
		}
		for _, h := range pDescriptorSets {
			if h != vk.NullHandle {
				w := o.SB.Insert(h, vk.KindDescriptorSet, o.SB.Get(device, vk.KindDevice))
				w.SetAux(pool)
			}
		}
	}
	return res
}

// FreeDescriptorSets erases KindDescriptorSet entries for every freed set
// (§3 Lifecycle: "Destroyed by the tracker on ... vkFree*").
func (o *Observer) FreeDescriptorSets(ctx context.Context, device vk.Handle, descriptorPool vk.Handle, pDescriptorSets []vk.Handle) vk.Result {
	res := o.Base.FreeDescriptorSets(ctx, device, descriptorPool, pDescriptorSets)
	if res.Succeeded() {
		for _, h := range pDescriptorSets {
			o.SB.Erase(h, vk.KindDescriptorSet)
		}
	}
	return res
}

// ResetDescriptorPool erases every KindDescriptorSet entry owned by
// descriptorPool, matching §3's "Destroyed by the tracker on ... pool
// reset" and the state-block-completeness property (§8).
func (o *Observer) ResetDescriptorPool(ctx context.Context, device vk.Handle, descriptorPool vk.Handle, flags uint32) vk.Result {
	res := o.Base.ResetDescriptorPool(ctx, device, descriptorPool, flags)
	if res.Succeeded() {
		o.SB.Registry(vk.KindDescriptorSet).EraseIf(func(w *api.Wrapper) bool {
			owner, ok := w.Aux().(vk.Handle)
			return ok && owner == descriptorPool
		})
	}
	return res
}

func (o *Observer) AllocateCommandBuffers(ctx context.Context, device vk.Handle, pAllocateInfo *vk.CommandBufferAllocateInfo, pCommandBuffers []vk.Handle) vk.Result {
	res := o.Base.AllocateCommandBuffers(ctx, device, pAllocateInfo, pCommandBuffers)
	if res.Succeeded() {
		for _, h := range pCommandBuffers {
			if h != vk.NullHandle {
				o.SB.Insert(h, vk.KindCommandBuffer, o.SB.Get(device, vk.KindDevice))
			}
		}
	}
	return res
}

// FreeCommandBuffers erases KindCommandBuffer entries for every freed
// buffer (§3 Lifecycle: "Destroyed by the tracker on ... vkFree*").
func (o *Observer) FreeCommandBuffers(ctx context.Context, device vk.Handle, commandPool vk.Handle, pCommandBuffers []vk.Handle) {
	o.Base.FreeCommandBuffers(ctx, device, commandPool, pCommandBuffers)
	for _, h := range pCommandBuffers {
		o.SB.Erase(h, vk.KindCommandBuffer)
	}
}

func (o *Observer) DestroyInstance(ctx context.Context, instance vk.Handle) vk.Result {
	res := o.Base.DestroyInstance(ctx, instance)
	o.SB.Erase(instance, vk.KindInstance)
	return res
}

func (o *Observer) DestroyDevice(ctx context.Context, device vk.Handle) vk.Result {
	res := o.Base.DestroyDevice(ctx, device)
	o.SB.Erase(device, vk.KindDevice)
	return res
}

func (o *Observer) FreeMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	res := o.Base.FreeMemory(ctx, device, memory)
	o.SB.Erase(memory, vk.KindDeviceMemory)
	return res
}

func (o *Observer) DestroyBuffer(ctx context.Context, device vk.Handle, buffer vk.Handle) vk.Result {
	res := o.Base.DestroyBuffer(ctx, device, buffer)
	o.SB.Erase(buffer, vk.KindBuffer)
	return res
}

func (o *Observer) DestroyBufferView(ctx context.Context, device vk.Handle, bufferView vk.Handle) vk.Result {
	res := o.Base.DestroyBufferView(ctx, device, bufferView)
	o.SB.Erase(bufferView, vk.KindBufferView)
	return res
}

func (o *Observer) DestroyImage(ctx context.Context, device vk.Handle, image vk.Handle) vk.Result {
	res := o.Base.DestroyImage(ctx, device, image)
	o.SB.Erase(image, vk.KindImage)
	return res
}

func (o *Observer) DestroyImageView(ctx context.Context, device vk.Handle, imageView vk.Handle) vk.Result {
	res := o.Base.DestroyImageView(ctx, device, imageView)
	o.SB.Erase(imageView, vk.KindImageView)
	return res
}

func (o *Observer) DestroySampler(ctx context.Context, device vk.Handle, sampler vk.Handle) vk.Result {
	res := o.Base.DestroySampler(ctx, device, sampler)
	o.SB.Erase(sampler, vk.KindSampler)
	return res
}

func (o *Observer) DestroySamplerYcbcrConversion(ctx context.Context, device vk.Handle, conversion vk.Handle) vk.Result {
	res := o.Base.DestroySamplerYcbcrConversion(ctx, device, conversion)
	o.SB.Erase(conversion, vk.KindSamplerYcbcrConversion)
	return res
}

func (o *Observer) DestroyShaderModule(ctx context.Context, device vk.Handle, shaderModule vk.Handle) vk.Result {
	res := o.Base.DestroyShaderModule(ctx, device, shaderModule)
	o.SB.Erase(shaderModule, vk.KindShaderModule)
	return res
}

func (o *Observer) DestroyPipelineCache(ctx context.Context, device vk.Handle, pipelineCache vk.Handle) vk.Result {
	res := o.Base.DestroyPipelineCache(ctx, device, pipelineCache)
	o.SB.Erase(pipelineCache, vk.KindPipelineCache)
	return res
}

func (o *Observer) DestroyPipelineLayout(ctx context.Context, device vk.Handle, pipelineLayout vk.Handle) vk.Result {
	res := o.Base.DestroyPipelineLayout(ctx, device, pipelineLayout)
	o.SB.Erase(pipelineLayout, vk.KindPipelineLayout)
	return res
}

func (o *Observer) DestroyPipeline(ctx context.Context, device vk.Handle, pipeline vk.Handle) vk.Result {
	res := o.Base.DestroyPipeline(ctx, device, pipeline)
	o.SB.Erase(pipeline, vk.KindPipeline)
	return res
}

func (o *Observer) DestroyDescriptorSetLayout(ctx context.Context, device vk.Handle, descriptorSetLayout vk.Handle) vk.Result {
	res := o.Base.DestroyDescriptorSetLayout(ctx, device, descriptorSetLayout)
	o.SB.Erase(descriptorSetLayout, vk.KindDescriptorSetLayout)
	return res
}

func (o *Observer) DestroyDescriptorPool(ctx context.Context, device vk.Handle, descriptorPool vk.Handle) vk.Result {
	res := o.Base.DestroyDescriptorPool(ctx, device, descriptorPool)
	o.SB.Erase(descriptorPool, vk.KindDescriptorPool)
	return res
}

func (o *Observer) DestroyDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, descriptorUpdateTemplate vk.Handle) vk.Result {
	res := o.Base.DestroyDescriptorUpdateTemplate(ctx, device, descriptorUpdateTemplate)
	o.SB.Erase(descriptorUpdateTemplate, vk.KindDescriptorUpdateTemplate)
	return res
}

func (o *Observer) DestroyRenderPass(ctx context.Context, device vk.Handle, renderPass vk.Handle) vk.Result {
	res := o.Base.DestroyRenderPass(ctx, device, renderPass)
	o.SB.Erase(renderPass, vk.KindRenderPass)
	return res
}

func (o *Observer) DestroyFramebuffer(ctx context.Context, device vk.Handle, framebuffer vk.Handle) vk.Result {
	res := o.Base.DestroyFramebuffer(ctx, device, framebuffer)
	o.SB.Erase(framebuffer, vk.KindFramebuffer)
	return res
}

func (o *Observer) DestroyCommandPool(ctx context.Context, device vk.Handle, commandPool vk.Handle) vk.Result {
	res := o.Base.DestroyCommandPool(ctx, device, commandPool)
	o.SB.Erase(commandPool, vk.KindCommandPool)
	return res
}

func (o *Observer) DestroyFence(ctx context.Context, device vk.Handle, fence vk.Handle) vk.Result {
	res := o.Base.DestroyFence(ctx, device, fence)
	o.SB.Erase(fence, vk.KindFence)
	return res
}

func (o *Observer) DestroySemaphore(ctx context.Context, device vk.Handle, semaphore vk.Handle) vk.Result {
	res := o.Base.DestroySemaphore(ctx, device, semaphore)
	o.SB.Erase(semaphore, vk.KindSemaphore)
	return res
}

func (o *Observer) DestroyEvent(ctx context.Context, device vk.Handle, event vk.Handle) vk.Result {
	res := o.Base.DestroyEvent(ctx, device, event)
	o.SB.Erase(event, vk.KindEvent)
	return res
}

func (o *Observer) DestroyQueryPool(ctx context.Context, device vk.Handle, queryPool vk.Handle) vk.Result {
	res := o.Base.DestroyQueryPool(ctx, device, queryPool)
	o.SB.Erase(queryPool, vk.KindQueryPool)
	return res
}

func (o *Observer) DestroySwapchain(ctx context.Context, device vk.Handle, swapchain vk.Handle) vk.Result {
	res := o.Base.DestroySwapchain(ctx, device, swapchain)
	o.SB.Erase(swapchain, vk.KindSwapchain)
	return res
}

func (o *Observer) DestroySurface(ctx context.Context, instance vk.Handle, surface vk.Handle) vk.Result {
	res := o.Base.DestroySurface(ctx, instance, surface)
	o.SB.Erase(surface, vk.KindSurface)
	return res
}

func (o *Observer) EnumeratePhysicalDevices(ctx context.Context, instance vk.Handle, pPhysicalDeviceCount *uint32, pPhysicalDevices []vk.Handle) vk.Result {
	res := o.Base.EnumeratePhysicalDevices(ctx, instance, pPhysicalDeviceCount, pPhysicalDevices)
	if res.Succeeded() && pPhysicalDevices != nil {
		parent := o.SB.Get(instance, vk.KindInstance)
		for _, h := range pPhysicalDevices {
			if h != vk.NullHandle && o.SB.Get(h, vk.KindPhysicalDevice) == nil {
				o.SB.Insert(h, vk.KindPhysicalDevice, parent)
			}
		}
	}
	return res
}
