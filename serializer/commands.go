package serializer

import (
	"context"

	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/core/binary"
	"github.com/gfxtrace/vktrace/core/fault"
	"github.com/gfxtrace/vktrace/handlefixer"
	"github.com/gfxtrace/vktrace/opcode"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// ErrNotImplemented is the fatal-assert error for the custom hooks §4.8
// names as deliberately unimplemented.
const ErrNotImplemented = fault.Const("serializer: hook not implemented")

// CommandSerializer is the generated-style transform (§4.3): for every
// supported entry point it writes a framed record to a codec.Stream
// encoder — the global encoder (key 0) for instance-, device- and
// memory-scoped calls, the command buffer's own per-buffer encoder for
// BeginCommandBuffer, EndCommandBuffer and the Cmd* calls — interleaving the forwarded call between the in-parameter and
// out-parameter writes so recorded results reflect whatever downstream
// actually returned.
type CommandSerializer struct {
	transform.Base
	Stream *codec.Stream
	SB     *stateblock.StateBlock

	// PhysicalDeviceIdentity supplies the {device_id, vendor_id,
	// driver_version} triple (§4.4, §6) recorded for each enumerated
	// physical device, letting a replay pair recorded devices with
	// currently-enumerated ones across vendor reorderings. Nil records an
	// all-zero triple per device, same as querying no real driver.
	PhysicalDeviceIdentity func(h vk.Handle) (deviceID, vendorID, driverVersion uint32, ok bool)
}

// NewCommandSerializer constructs a CommandSerializer writing to stream.
func NewCommandSerializer(stream *codec.Stream, sb *stateblock.StateBlock) *CommandSerializer {
	return &CommandSerializer{Stream: stream, SB: sb}
}

func (s *CommandSerializer) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CreateInstance), 0)
	w := binary.NewWriter(enc)
	writeInstanceCreateInfo(w, pCreateInfo)
	res := s.Base.CreateInstance(ctx, pCreateInfo, pInstance)
	writeHandle(w, *pInstance)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) DestroyInstance(ctx context.Context, instance vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.DestroyInstance), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, instance)
	res := s.Base.DestroyInstance(ctx, instance)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

// EnumeratePhysicalDevices writes the standard payload, then — if the call
// actually enumerated devices rather than just querying the count — the
// {device_id, vendor_id, driver_version} tail section named in §4.4/§6, one
// triple per device via PhysicalDeviceIdentity (all-zero when nil, which
// still demonstrates the framing). A replayer that finds a short or absent
// tail, or no matching identity, falls back to index order.
func (s *CommandSerializer) EnumeratePhysicalDevices(ctx context.Context, instance vk.Handle, pPhysicalDeviceCount *uint32, pPhysicalDevices []vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.EnumeratePhysicalDevices), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, instance)
	w.Bool(pPhysicalDevices != nil)
	res := s.Base.EnumeratePhysicalDevices(ctx, instance, pPhysicalDeviceCount, pPhysicalDevices)
	w.Uint32(*pPhysicalDeviceCount)
	writeHandles(w, pPhysicalDevices)
	w.Int32(int32(res))
	if pPhysicalDevices != nil {
		w.Uint32(uint32(len(pPhysicalDevices))) // tail length in triples
		for _, h := range pPhysicalDevices {
			var deviceID, vendorID, driverVersion uint32
			if s.PhysicalDeviceIdentity != nil {
				deviceID, vendorID, driverVersion, _ = s.PhysicalDeviceIdentity(h)
			}
			w.Uint32(deviceID)
			w.Uint32(vendorID)
			w.Uint32(driverVersion)
		}
	}
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CreateDevice), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, physicalDevice)
	writeDeviceCreateInfo(w, pCreateInfo)
	res := s.Base.CreateDevice(ctx, physicalDevice, pCreateInfo, pDevice)
	writeHandle(w, *pDevice)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) DestroyDevice(ctx context.Context, device vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.DestroyDevice), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	res := s.Base.DestroyDevice(ctx, device)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) GetDeviceQueue(ctx context.Context, device vk.Handle, queueFamilyIndex uint32, queueIndex uint32, pQueue *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.GetDeviceQueue), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	w.Uint32(queueFamilyIndex)
	w.Uint32(queueIndex)
	res := s.Base.GetDeviceQueue(ctx, device, queueFamilyIndex, queueIndex, pQueue)
	writeHandle(w, *pQueue)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.AllocateMemory), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeMemoryAllocateInfo(w, pAllocateInfo)
	res := s.Base.AllocateMemory(ctx, device, pAllocateInfo, pMemory)
	writeHandle(w, *pMemory)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) FreeMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.FreeMemory), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, memory)
	res := s.Base.FreeMemory(ctx, device, memory)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

// MapMemory is a custom hook (§4.8): ppData is encoded as an opaque 64-bit
// token, never re-used across replays.
func (s *CommandSerializer) MapMemory(ctx context.Context, device vk.Handle, memory vk.Handle, offset uint64, size int64, flags uint32, ppData *uint64) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.MapMemory), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, memory)
	w.Uint64(offset)
	w.Int64(size)
	w.Uint32(flags)
	res := s.Base.MapMemory(ctx, device, memory, offset, size, flags, ppData)
	w.Uint64(*ppData) // opaque token
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) UnmapMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.UnmapMemory), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, memory)
	res := s.Base.UnmapMemory(ctx, device, memory)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CreateBuffer), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeBufferCreateInfo(w, pCreateInfo)
	res := s.Base.CreateBuffer(ctx, device, pCreateInfo, pBuffer)
	writeHandle(w, *pBuffer)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) DestroyBuffer(ctx context.Context, device vk.Handle, buffer vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.DestroyBuffer), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, buffer)
	res := s.Base.DestroyBuffer(ctx, device, buffer)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) CreateImage(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageCreateInfo, pImage *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CreateImage), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeImageCreateInfo(w, pCreateInfo)
	res := s.Base.CreateImage(ctx, device, pCreateInfo, pImage)
	writeHandle(w, *pImage)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) DestroyImage(ctx context.Context, device vk.Handle, image vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.DestroyImage), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, image)
	res := s.Base.DestroyImage(ctx, device, image)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) CreateGraphicsPipelines(ctx context.Context, device vk.Handle, pipelineCache vk.Handle, createInfoCount uint32, pCreateInfos []vk.GraphicsPipelineCreateInfo, pPipelines []vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CreateGraphicsPipelines), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, pipelineCache)
	w.Uint32(uint32(len(pCreateInfos)))
	for i := range pCreateInfos {
		writeGraphicsPipelineCreateInfo(w, &pCreateInfos[i])
	}
	res := s.Base.CreateGraphicsPipelines(ctx, device, pipelineCache, createInfoCount, pCreateInfos, pPipelines)
	writeHandles(w, pPipelines)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) CreateFence(ctx context.Context, device vk.Handle, pCreateInfo *vk.FenceCreateInfo, pFence *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CreateFence), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeFenceCreateInfo(w, pCreateInfo)
	res := s.Base.CreateFence(ctx, device, pCreateInfo, pFence)
	writeHandle(w, *pFence)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) DestroyFence(ctx context.Context, device vk.Handle, fence vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.DestroyFence), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, fence)
	res := s.Base.DestroyFence(ctx, device, fence)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

// WaitForFences: pFences' length is not length-prefixed from a sibling
// parameter alone — fenceCount is implicit in len(pFences) in this Go
// signature, so the wire length prefix doubles as that count (§4.3 rule on
// sibling-determined array lengths collapses to "the slice carries its own
// length" in idiomatic Go).
func (s *CommandSerializer) WaitForFences(ctx context.Context, device vk.Handle, pFences []vk.Handle, waitAll bool, timeout uint64) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.WaitForFences), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandles(w, pFences)
	w.Bool(waitAll)
	w.Uint64(timeout)
	res := s.Base.WaitForFences(ctx, device, pFences, waitAll, timeout)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) CreateCommandPool(ctx context.Context, device vk.Handle, pCreateInfo *vk.CommandPoolCreateInfo, pCommandPool *vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CreateCommandPool), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeChain(w, pCreateInfo.Next)
	w.Uint32(pCreateInfo.Flags)
	w.Uint32(pCreateInfo.QueueFamilyIndex)
	res := s.Base.CreateCommandPool(ctx, device, pCreateInfo, pCommandPool)
	writeHandle(w, *pCommandPool)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) AllocateCommandBuffers(ctx context.Context, device vk.Handle, pAllocateInfo *vk.CommandBufferAllocateInfo, pCommandBuffers []vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.AllocateCommandBuffers), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeChain(w, pAllocateInfo.Next)
	writeHandle(w, pAllocateInfo.CommandPool)
	w.Uint32(pAllocateInfo.Level)
	w.Uint32(pAllocateInfo.Count)
	res := s.Base.AllocateCommandBuffers(ctx, device, pAllocateInfo, pCommandBuffers)
	writeHandles(w, pCommandBuffers)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) BeginCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	enc := s.Stream.Encoder(uint64(commandBuffer))
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.BeginCommandBuffer), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, commandBuffer)
	res := s.Base.BeginCommandBuffer(ctx, commandBuffer)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) EndCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	enc := s.Stream.Encoder(uint64(commandBuffer))
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.EndCommandBuffer), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, commandBuffer)
	res := s.Base.EndCommandBuffer(ctx, commandBuffer)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}

func (s *CommandSerializer) CmdDraw(ctx context.Context, commandBuffer vk.Handle, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32) {
	enc := s.Stream.Encoder(uint64(commandBuffer))
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CmdDraw), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, commandBuffer)
	w.Uint32(vertexCount)
	w.Uint32(instanceCount)
	w.Uint32(firstVertex)
	w.Uint32(firstInstance)
	s.Base.CmdDraw(ctx, commandBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
	enc.FinishFrame(tok)
}

// CmdUpdateBuffer is a custom hook (§4.8): pData's length is taken from the
// sibling dataSize-equivalent, i.e. len(pData) itself in this signature.
func (s *CommandSerializer) CmdUpdateBuffer(ctx context.Context, commandBuffer vk.Handle, dstBuffer vk.Handle, dstOffset uint64, pData []byte) {
	enc := s.Stream.Encoder(uint64(commandBuffer))
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CmdUpdateBuffer), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, commandBuffer)
	writeHandle(w, dstBuffer)
	w.Uint64(dstOffset)
	w.Uint32(uint32(len(pData)))
	w.Data(pData)
	s.Base.CmdUpdateBuffer(ctx, commandBuffer, dstBuffer, dstOffset, pData)
	enc.FinishFrame(tok)
}

// CmdPushConstants is the pValues counterpart of the same hook.
func (s *CommandSerializer) CmdPushConstants(ctx context.Context, commandBuffer vk.Handle, layout vk.Handle, stageFlags uint32, offset uint32, pValues []byte) {
	enc := s.Stream.Encoder(uint64(commandBuffer))
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CmdPushConstants), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, commandBuffer)
	writeHandle(w, layout)
	w.Uint32(stageFlags)
	w.Uint32(offset)
	w.Uint32(uint32(len(pValues)))
	w.Data(pValues)
	s.Base.CmdPushConstants(ctx, commandBuffer, layout, stageFlags, offset, pValues)
	enc.FinishFrame(tok)
}

func (s *CommandSerializer) CmdClearColorImage(ctx context.Context, commandBuffer vk.Handle, image vk.Handle, imageLayout uint32, pColor *vk.ClearValue) {
	enc := s.Stream.Encoder(uint64(commandBuffer))
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.CmdClearColorImage), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, commandBuffer)
	writeHandle(w, image)
	w.Uint32(imageLayout)
	writeClearValue(w, pColor)
	s.Base.CmdClearColorImage(ctx, commandBuffer, image, imageLayout, pColor)
	enc.FinishFrame(tok)
}

// UpdateDescriptorSetWithTemplate is a custom hook (§4.8): the recorded
// payload is a copy of pData at its full slice length; the template is not
// used to size it. Handle-sized slots inside the copy are translated via
// handlefixer, using the template recorded in the state block.
func (s *CommandSerializer) UpdateDescriptorSetWithTemplate(ctx context.Context, device vk.Handle, descriptorSet vk.Handle, descriptorUpdateTemplate vk.Handle, pData []byte) {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.UpdateDescriptorSetWithTemplate), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, device)
	writeHandle(w, descriptorSet)
	writeHandle(w, descriptorUpdateTemplate)

	payload := append([]byte(nil), pData...)
	if tw := s.SB.Get(descriptorUpdateTemplate, vk.KindDescriptorUpdateTemplate); tw != nil {
		if ci, ok := tw.CreateInfo().(*vk.DescriptorUpdateTemplateCreateInfo); ok {
			handlefixer.WalkTemplateHandles(ci.Entries, payload, handlefixer.Identity)
		}
	}
	w.Uint32(uint32(len(payload)))
	w.Data(payload)

	s.Base.UpdateDescriptorSetWithTemplate(ctx, device, descriptorSet, descriptorUpdateTemplate, pData)
	enc.FinishFrame(tok)
}

func (s *CommandSerializer) QueueSubmit(ctx context.Context, queue vk.Handle, submitCount uint32, pCommandBuffers []vk.Handle, fence vk.Handle) vk.Result {
	enc := s.Stream.Encoder(0)
	enc.Lock()
	defer enc.Unlock()
	tok := enc.BeginFrame(uint64(opcode.QueueSubmit), 0)
	w := binary.NewWriter(enc)
	writeHandle(w, queue)
	writeHandles(w, pCommandBuffers)
	writeHandle(w, fence)
	res := s.Base.QueueSubmit(ctx, queue, submitCount, pCommandBuffers, fence)
	w.Int32(int32(res))
	enc.FinishFrame(tok)
	return res
}
