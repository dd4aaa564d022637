// Package printer implements CommandPrinter (§2): a pass-through transform
// that writes a structured, human-readable line for each call of the 18
// entry points CommandPrinter overrides, the "gapit dump"-style path through
// the pipeline rather than the capture/replay one. Calls of every other
// entry point are forwarded without a line.
package printer

import (
	"context"
	"fmt"
	"io"

	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// Sink receives one formatted line per printed call.
type Sink interface {
	Print(line string)
}

// WriterSink adapts an io.Writer to Sink, matching the teacher's habit of
// keeping the common case (a plain writer) one line to wire up.
type WriterSink struct{ W io.Writer }

// Print writes line followed by a newline, ignoring any write error — a
// dump sink is diagnostic output, not part of the traced program's
// correctness (§2).
func (s WriterSink) Print(line string) { fmt.Fprintln(s.W, line) }

// CommandPrinter logs one line per call of each entry point it overrides
// below, then calls through to Next unchanged; other calls reach Next
// through the embedded Base without a line. Unlike CommandSerializer it never gates on or mutates
// what's forwarded: printing must never change replay behaviour (§2: "pure
// observer", an invariant the struct's thin method bodies enforce by
// construction — nothing here can touch the arguments before forwarding).
type CommandPrinter struct {
	transform.Base
	Sink Sink
}

// NewCommandPrinter constructs a CommandPrinter writing to sink.
func NewCommandPrinter(sink Sink) *CommandPrinter {
	return &CommandPrinter{Sink: sink}
}

func (p *CommandPrinter) print(format string, args ...interface{}) {
	p.Sink.Print(fmt.Sprintf(format, args...))
}

func (p *CommandPrinter) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	res := p.Base.CreateInstance(ctx, pCreateInfo, pInstance)
	p.print("vkCreateInstance() -> instance=%v, result=%v", *pInstance, res)
	return res
}

func (p *CommandPrinter) DestroyInstance(ctx context.Context, instance vk.Handle) vk.Result {
	res := p.Base.DestroyInstance(ctx, instance)
	p.print("vkDestroyInstance(instance=%v)", instance)
	return res
}

func (p *CommandPrinter) CreateDevice(ctx context.Context, physicalDevice vk.Handle, pCreateInfo *vk.DeviceCreateInfo, pDevice *vk.Handle) vk.Result {
	res := p.Base.CreateDevice(ctx, physicalDevice, pCreateInfo, pDevice)
	p.print("vkCreateDevice(physicalDevice=%v, queueCreateInfoCount=%d) -> device=%v, result=%v",
		physicalDevice, len(pCreateInfo.QueueCreateInfos), *pDevice, res)
	return res
}

func (p *CommandPrinter) DestroyDevice(ctx context.Context, device vk.Handle) vk.Result {
	res := p.Base.DestroyDevice(ctx, device)
	p.print("vkDestroyDevice(device=%v)", device)
	return res
}

func (p *CommandPrinter) CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result {
	res := p.Base.CreateBuffer(ctx, device, pCreateInfo, pBuffer)
	p.print("vkCreateBuffer(device=%v, size=%d, usage=0x%x) -> buffer=%v, result=%v",
		device, pCreateInfo.Size, pCreateInfo.Usage, *pBuffer, res)
	return res
}

func (p *CommandPrinter) DestroyBuffer(ctx context.Context, device vk.Handle, buffer vk.Handle) vk.Result {
	res := p.Base.DestroyBuffer(ctx, device, buffer)
	p.print("vkDestroyBuffer(device=%v, buffer=%v)", device, buffer)
	return res
}

func (p *CommandPrinter) CreateImage(ctx context.Context, device vk.Handle, pCreateInfo *vk.ImageCreateInfo, pImage *vk.Handle) vk.Result {
	res := p.Base.CreateImage(ctx, device, pCreateInfo, pImage)
	p.print("vkCreateImage(device=%v, extent=%v, format=%d) -> image=%v, result=%v",
		device, pCreateInfo.Extent, pCreateInfo.Format, *pImage, res)
	return res
}

func (p *CommandPrinter) DestroyImage(ctx context.Context, device vk.Handle, image vk.Handle) vk.Result {
	res := p.Base.DestroyImage(ctx, device, image)
	p.print("vkDestroyImage(device=%v, image=%v)", device, image)
	return res
}

func (p *CommandPrinter) AllocateMemory(ctx context.Context, device vk.Handle, pAllocateInfo *vk.MemoryAllocateInfo, pMemory *vk.Handle) vk.Result {
	res := p.Base.AllocateMemory(ctx, device, pAllocateInfo, pMemory)
	p.print("vkAllocateMemory(device=%v, size=%d, typeIndex=%d) -> memory=%v, result=%v",
		device, pAllocateInfo.AllocationSize, pAllocateInfo.MemoryTypeIndex, *pMemory, res)
	return res
}

func (p *CommandPrinter) FreeMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	res := p.Base.FreeMemory(ctx, device, memory)
	p.print("vkFreeMemory(device=%v, memory=%v)", device, memory)
	return res
}

func (p *CommandPrinter) MapMemory(ctx context.Context, device vk.Handle, memory vk.Handle, offset uint64, size int64, flags uint32, ppData *uint64) vk.Result {
	res := p.Base.MapMemory(ctx, device, memory, offset, size, flags, ppData)
	p.print("vkMapMemory(device=%v, memory=%v, offset=%d, size=%d) -> data=0x%x, result=%v",
		device, memory, offset, size, *ppData, res)
	return res
}

func (p *CommandPrinter) UnmapMemory(ctx context.Context, device vk.Handle, memory vk.Handle) vk.Result {
	res := p.Base.UnmapMemory(ctx, device, memory)
	p.print("vkUnmapMemory(device=%v, memory=%v)", device, memory)
	return res
}

func (p *CommandPrinter) QueueSubmit(ctx context.Context, queue vk.Handle, submitCount uint32, pCommandBuffers []vk.Handle, fence vk.Handle) vk.Result {
	res := p.Base.QueueSubmit(ctx, queue, submitCount, pCommandBuffers, fence)
	p.print("vkQueueSubmit(queue=%v, commandBuffers=%v, fence=%v) -> result=%v", queue, pCommandBuffers, fence, res)
	return res
}

func (p *CommandPrinter) BeginCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	res := p.Base.BeginCommandBuffer(ctx, commandBuffer)
	p.print("vkBeginCommandBuffer(commandBuffer=%v) -> result=%v", commandBuffer, res)
	return res
}

func (p *CommandPrinter) EndCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	res := p.Base.EndCommandBuffer(ctx, commandBuffer)
	p.print("vkEndCommandBuffer(commandBuffer=%v) -> result=%v", commandBuffer, res)
	return res
}

func (p *CommandPrinter) CmdDraw(ctx context.Context, commandBuffer vk.Handle, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32) {
	p.Base.CmdDraw(ctx, commandBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
	p.print("vkCmdDraw(commandBuffer=%v, vertexCount=%d, instanceCount=%d, firstVertex=%d, firstInstance=%d)",
		commandBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (p *CommandPrinter) CmdUpdateBuffer(ctx context.Context, commandBuffer vk.Handle, dstBuffer vk.Handle, dstOffset uint64, pData []byte) {
	p.Base.CmdUpdateBuffer(ctx, commandBuffer, dstBuffer, dstOffset, pData)
	p.print("vkCmdUpdateBuffer(commandBuffer=%v, dstBuffer=%v, dstOffset=%d, dataSize=%d)",
		commandBuffer, dstBuffer, dstOffset, len(pData))
}

func (p *CommandPrinter) CmdClearColorImage(ctx context.Context, commandBuffer vk.Handle, image vk.Handle, imageLayout uint32, pColor *vk.ClearValue) {
	p.Base.CmdClearColorImage(ctx, commandBuffer, image, imageLayout, pColor)
	p.print("vkCmdClearColorImage(commandBuffer=%v, image=%v, imageLayout=%d, color=%v)",
		commandBuffer, image, imageLayout, *pColor)
}
