// Package tracker implements the creation data tracker and minimal state
// tracker (§4.6): transforms that populate the state block's wrappers with
// stable creation info and the handful of runtime-mutable fields (memory
// size/coherence, current mapping, command-buffer closures) the rest of the
// pipeline depends on.
package tracker

import (
	"context"

	"github.com/gfxtrace/vktrace/clone"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// CreationDataTracker forwards every create/allocate/queue-lookup call and,
// on success, clones the input configuration into the freshly registered
// wrapper. It must sit upstream of (i.e. call into) whatever already holds
// the state block's Observer closer to the driver, so that by the time
// control returns here the wrapper already exists to be populated (§4.6).
type CreationDataTracker struct {
	transform.Base
	SB *stateblock.StateBlock
}

// NewCreationDataTracker constructs a CreationDataTracker over sb.
func NewCreationDataTracker(sb *stateblock.StateBlock) *CreationDataTracker {
	return &CreationDataTracker{SB: sb}
}

func (t *CreationDataTracker) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	res := t.Base.CreateInstance(ctx, pCreateInfo, pInstance)
	if res.Succeeded() {
		if w := t.SB.Get(*pInstance, vk.KindInstance); w != nil {
			w.SetCreateInfo(clone.InstanceCreateInfo(w.Arena(), pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	res := t.Base.CreateDevice(ctx, physicalDevice, pCreateInfo, pDevice)
	if res.Succeeded() {
		if w := t.SB.Get(*pDevice, vk.KindDevice); w != nil {
			w.SetCreateInfo(clone.DeviceCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result {
	res := t.Base.AllocateMemory(ctx, device, pAllocateInfo, pMemory)
	if res.Succeeded() {
		if w := t.SB.Get(*pMemory, vk.KindDeviceMemory); w != nil {
			w.SetCreateInfo(clone.MemoryAllocateInfo(pAllocateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result {
	res := t.Base.CreateBuffer(ctx, device, pCreateInfo, pBuffer)
	if res.Succeeded() {
		if w := t.SB.Get(*pBuffer, vk.KindBuffer); w != nil {
			w.SetCreateInfo(clone.BufferCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateBufferView(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferViewCreateInfo, pView *vk.Handle) vk.Result {
	res := t.Base.CreateBufferView(ctx, device, pCreateInfo, pView)
	if res.Succeeded() {
		if w := t.SB.Get(*pView, vk.KindBufferView); w != nil {
			w.SetCreateInfo(clone.BufferViewCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateImage(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageCreateInfo, pImage *vk.Handle) vk.Result {
	res := t.Base.CreateImage(ctx, device, pCreateInfo, pImage)
	if res.Succeeded() {
		if w := t.SB.Get(*pImage, vk.KindImage); w != nil {
			w.SetCreateInfo(clone.ImageCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateImageView(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageViewCreateInfo, pView *vk.Handle) vk.Result {
	res := t.Base.CreateImageView(ctx, device, pCreateInfo, pView)
	if res.Succeeded() {
		if w := t.SB.Get(*pView, vk.KindImageView); w != nil {
			w.SetCreateInfo(clone.ImageViewCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateSampler(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerCreateInfo, pSampler *vk.Handle) vk.Result {
	res := t.Base.CreateSampler(ctx, device, pCreateInfo, pSampler)
	if res.Succeeded() {
		if w := t.SB.Get(*pSampler, vk.KindSampler); w != nil {
			w.SetCreateInfo(clone.SamplerCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateSamplerYcbcrConversion(ctx context.Context, device vk.Handle, pCreateInfo *vk.SamplerYcbcrConversionCreateInfo, pConversion *vk.Handle) vk.Result {
	res := t.Base.CreateSamplerYcbcrConversion(ctx, device, pCreateInfo, pConversion)
	if res.Succeeded() {
		if w := t.SB.Get(*pConversion, vk.KindSamplerYcbcrConversion); w != nil {
			w.SetCreateInfo(clone.SamplerYcbcrConversionCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateShaderModule(ctx context.Context, device vk.Handle, pCreateInfo *vk.ShaderModuleCreateInfo, pShaderModule *vk.Handle) vk.Result {
	res := t.Base.CreateShaderModule(ctx, device, pCreateInfo, pShaderModule)
	if res.Succeeded() {
		if w := t.SB.Get(*pShaderModule, vk.KindShaderModule); w != nil {
			w.SetCreateInfo(clone.ShaderModuleCreateInfo(w.Arena(), pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreatePipelineCache(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineCacheCreateInfo, pPipelineCache *vk.Handle) vk.Result {
	res := t.Base.CreatePipelineCache(ctx, device, pCreateInfo, pPipelineCache)
	if res.Succeeded() {
		if w := t.SB.Get(*pPipelineCache, vk.KindPipelineCache); w != nil {
			w.SetCreateInfo(clone.PipelineCacheCreateInfo(w.Arena(), pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreatePipelineLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.PipelineLayoutCreateInfo, pPipelineLayout *vk.Handle) vk.Result {
	res := t.Base.CreatePipelineLayout(ctx, device, pCreateInfo, pPipelineLayout)
	if res.Succeeded() {
		if w := t.SB.Get(*pPipelineLayout, vk.KindPipelineLayout); w != nil {
			w.SetCreateInfo(clone.PipelineLayoutCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateDescriptorSetLayout(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorSetLayoutCreateInfo, pSetLayout *vk.Handle) vk.Result {
	res := t.Base.CreateDescriptorSetLayout(ctx, device, pCreateInfo, pSetLayout)
	if res.Succeeded() {
		if w := t.SB.Get(*pSetLayout, vk.KindDescriptorSetLayout); w != nil {
			w.SetCreateInfo(clone.DescriptorSetLayoutCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateDescriptorPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorPoolCreateInfo, pDescriptorPool *vk.Handle) vk.Result {
	res := t.Base.CreateDescriptorPool(ctx, device, pCreateInfo, pDescriptorPool)
	if res.Succeeded() {
		if w := t.SB.Get(*pDescriptorPool, vk.KindDescriptorPool); w != nil {
			w.SetCreateInfo(clone.DescriptorPoolCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateDescriptorUpdateTemplate(ctx context.Context, device vk.Handle, pCreateInfo *vk.DescriptorUpdateTemplateCreateInfo, pDescriptorUpdateTemplate *vk.Handle) vk.Result {
	res := t.Base.CreateDescriptorUpdateTemplate(ctx, device, pCreateInfo, pDescriptorUpdateTemplate)
	if res.Succeeded() {
		if w := t.SB.Get(*pDescriptorUpdateTemplate, vk.KindDescriptorUpdateTemplate); w != nil {
			w.SetCreateInfo(clone.DescriptorUpdateTemplateCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateRenderPass(ctx context.Context, device vk.Handle, pCreateInfo *vk.RenderPassCreateInfo, pRenderPass *vk.Handle) vk.Result {
	res := t.Base.CreateRenderPass(ctx, device, pCreateInfo, pRenderPass)
	if res.Succeeded() {
		if w := t.SB.Get(*pRenderPass, vk.KindRenderPass); w != nil {
			w.SetCreateInfo(clone.RenderPassCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateFramebuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.FramebufferCreateInfo, pFramebuffer *vk.Handle) vk.Result {
	res := t.Base.CreateFramebuffer(ctx, device, pCreateInfo, pFramebuffer)
	if res.Succeeded() {
		if w := t.SB.Get(*pFramebuffer, vk.KindFramebuffer); w != nil {
			w.SetCreateInfo(clone.FramebufferCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateCommandPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.CommandPoolCreateInfo, pCommandPool *vk.Handle) vk.Result {
	res := t.Base.CreateCommandPool(ctx, device, pCreateInfo, pCommandPool)
	if res.Succeeded() {
		if w := t.SB.Get(*pCommandPool, vk.KindCommandPool); w != nil {
			w.SetCreateInfo(clone.CommandPoolCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateFence(ctx context.Context, device vk.Handle, pCreateInfo *vk.FenceCreateInfo, pFence *vk.Handle) vk.Result {
	res := t.Base.CreateFence(ctx, device, pCreateInfo, pFence)
	if res.Succeeded() {
		if w := t.SB.Get(*pFence, vk.KindFence); w != nil {
			w.SetCreateInfo(clone.FenceCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateSemaphore(ctx context.Context, device vk.Handle, pCreateInfo *vk.SemaphoreCreateInfo, pSemaphore *vk.Handle) vk.Result {
	res := t.Base.CreateSemaphore(ctx, device, pCreateInfo, pSemaphore)
	if res.Succeeded() {
		if w := t.SB.Get(*pSemaphore, vk.KindSemaphore); w != nil {
			w.SetCreateInfo(clone.SemaphoreCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateEvent(ctx context.Context, device vk.Handle, pCreateInfo *vk.EventCreateInfo, pEvent *vk.Handle) vk.Result {
	res := t.Base.CreateEvent(ctx, device, pCreateInfo, pEvent)
	if res.Succeeded() {
		if w := t.SB.Get(*pEvent, vk.KindEvent); w != nil {
			w.SetCreateInfo(clone.EventCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateQueryPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.QueryPoolCreateInfo, pQueryPool *vk.Handle) vk.Result {
	res := t.Base.CreateQueryPool(ctx, device, pCreateInfo, pQueryPool)
	if res.Succeeded() {
		if w := t.SB.Get(*pQueryPool, vk.KindQueryPool); w != nil {
			w.SetCreateInfo(clone.QueryPoolCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) CreateSwapchain(ctx context.Context, device vk.Handle, pCreateInfo *vk.SwapchainCreateInfo, pSwapchain *vk.Handle) vk.Result {
	res := t.Base.CreateSwapchain(ctx, device, pCreateInfo, pSwapchain)
	if res.Succeeded() {
		if w := t.SB.Get(*pSwapchain, vk.KindSwapchain); w != nil {
			w.SetCreateInfo(clone.SwapchainCreateInfo(pCreateInfo))
		}
	}
	return res
}

func (t *CreationDataTracker) GetDeviceQueue(ctx context.Context, device vk.Handle, queueFamilyIndex uint32, queueIndex uint32, pQueue *vk.Handle) vk.Result {
	res := t.Base.GetDeviceQueue(ctx, device, queueFamilyIndex, queueIndex, pQueue)
	if res.Succeeded() {
		if w := t.SB.Get(*pQueue, vk.KindQueue); w != nil {
			w.SetCreateInfo(vk.QueueLookupInfo{QueueFamilyIndex: queueFamilyIndex, QueueIndex: queueIndex})
		}
	}
	return res
}

func (t *CreationDataTracker) CreateGraphicsPipelines(ctx context.Context, device vk.Handle, pipelineCache vk.Handle, createInfoCount uint32, pCreateInfos []vk.GraphicsPipelineCreateInfo, pPipelines []vk.Handle) vk.Result {
	res := t.Base.CreateGraphicsPipelines(ctx, device, pipelineCache, createInfoCount, pCreateInfos, pPipelines)
	if res.Succeeded() {
		for i, h := range pPipelines {
			if h == vk.NullHandle || i >= len(pCreateInfos) {
				continue
			}
			if w := t.SB.Get(h, vk.KindPipeline); w != nil {
				w.SetCreateInfo(clone.GraphicsPipelineCreateInfo(&pCreateInfos[i]))
			}
		}
	}
	return res
}

func (t *CreationDataTracker) AllocateDescriptorSets(ctx context.Context, device vk.Handle, pAllocateInfo *vk.DescriptorSetAllocateInfo, pDescriptorSets []vk.Handle) vk.Result {
	res := t.Base.AllocateDescriptorSets(ctx, device, pAllocateInfo, pDescriptorSets)
	if res.Succeeded() {
		ci := clone.DescriptorSetAllocateInfo(pAllocateInfo)
		for _, h := range pDescriptorSets {
			if h == vk.NullHandle {
				continue
			}
			if w := t.SB.Get(h, vk.KindDescriptorSet); w != nil {
				w.SetCreateInfo(ci)
			}
		}
	}
	return res
}

func (t *CreationDataTracker) AllocateCommandBuffers(ctx context.Context, device vk.Handle, pAllocateInfo *vk.CommandBufferAllocateInfo, pCommandBuffers []vk.Handle) vk.Result {
	res := t.Base.AllocateCommandBuffers(ctx, device, pAllocateInfo, pCommandBuffers)
	if res.Succeeded() {
		ci := clone.CommandBufferAllocateInfo(pAllocateInfo)
		for _, h := range pCommandBuffers {
			if h == vk.NullHandle {
				continue
			}
			if w := t.SB.Get(h, vk.KindCommandBuffer); w != nil {
				w.SetCreateInfo(ci)
			}
		}
	}
	return res
}
