package deserializer

import (
	"context"

	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/handlefixer"
	"github.com/gfxtrace/vktrace/opcode"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// CommandDeserializer reads one frame at a time from a codec.Decoder and
// replays the decoded call against Next (§4.4). It is the mirror image of
// serializer.CommandSerializer: where the serializer sits between the
// application and the driver writing frames out, the deserializer sits
// between a trace file and the driver (or another Transform) reading them
// back in.
type CommandDeserializer struct {
	Next transform.Transform
	SB   *stateblock.StateBlock

	// PhysicalDeviceIdentity looks up the (device_id, vendor_id,
	// driver_version) triple of a just-enumerated physical device handle
	// (§4.4). It is nil in the common case — this core has no real driver
	// to query — in which case enumeratePhysicalDevices falls back to
	// pairing by enumeration index.
	PhysicalDeviceIdentity func(h vk.Handle) (deviceID, vendorID, driverVersion uint32, ok bool)

	physicalDeviceRemap map[vk.Handle]vk.Handle
}

// NewCommandDeserializer constructs a CommandDeserializer dispatching
// decoded calls to next.
func NewCommandDeserializer(next transform.Transform, sb *stateblock.StateBlock) *CommandDeserializer {
	return &CommandDeserializer{Next: next, SB: sb}
}

// remapPhysicalDevice translates a recorded physical-device handle to the
// one currently live for this run, per the mapping enumeratePhysicalDevices
// built. Handles never paired (or no enumeration having run yet) pass
// through unchanged, matching trace-space/driver-space identity (§3).
func (c *CommandDeserializer) remapPhysicalDevice(h vk.Handle) vk.Handle {
	if mapped, ok := c.physicalDeviceRemap[h]; ok {
		return mapped
	}
	return h
}

// Run decodes and replays frames from d until EndOfStream or the first
// decode error, returning nil on a clean end of stream.
func (c *CommandDeserializer) Run(ctx context.Context, d *codec.Decoder) error {
	for {
		hdr, err := codec.ReadFrameHeader(d)
		if err != nil {
			if err == codec.EndOfStream {
				return nil
			}
			return err
		}
		if err := c.dispatch(ctx, d, hdr); err != nil {
			return err
		}
	}
}

func (c *CommandDeserializer) dispatch(ctx context.Context, d *codec.Decoder, hdr codec.FrameHeader) error {
	switch opcode.Op(hdr.Opcode) {
	case opcode.CreateInstance:
		return c.createInstance(ctx, d)
	case opcode.DestroyInstance:
		return c.destroyInstance(ctx, d)
	case opcode.EnumeratePhysicalDevices:
		return c.enumeratePhysicalDevices(ctx, d, hdr.PayloadLength)
	case opcode.CreateDevice:
		return c.createDevice(ctx, d)
	case opcode.DestroyDevice:
		return c.destroyDevice(ctx, d)
	case opcode.GetDeviceQueue:
		return c.getDeviceQueue(ctx, d)
	case opcode.AllocateMemory:
		return c.allocateMemory(ctx, d)
	case opcode.FreeMemory:
		return c.freeMemory(ctx, d)
	case opcode.MapMemory:
		return c.mapMemory(ctx, d)
	case opcode.UnmapMemory:
		return c.unmapMemory(ctx, d)
	case opcode.CreateBuffer:
		return c.createBuffer(ctx, d)
	case opcode.DestroyBuffer:
		return c.destroyBuffer(ctx, d)
	case opcode.CreateImage:
		return c.createImage(ctx, d)
	case opcode.DestroyImage:
		return c.destroyImage(ctx, d)
	case opcode.CreateGraphicsPipelines:
		return c.createGraphicsPipelines(ctx, d)
	case opcode.CreateFence:
		return c.createFence(ctx, d)
	case opcode.DestroyFence:
		return c.destroyFence(ctx, d)
	case opcode.WaitForFences:
		return c.waitForFences(ctx, d)
	case opcode.CreateCommandPool:
		return c.createCommandPool(ctx, d)
	case opcode.AllocateCommandBuffers:
		return c.allocateCommandBuffers(ctx, d)
	case opcode.BeginCommandBuffer:
		return c.beginCommandBuffer(ctx, d)
	case opcode.EndCommandBuffer:
		return c.endCommandBuffer(ctx, d)
	case opcode.CmdDraw:
		return c.cmdDraw(ctx, d)
	case opcode.CmdUpdateBuffer:
		return c.cmdUpdateBuffer(ctx, d)
	case opcode.CmdPushConstants:
		return c.cmdPushConstants(ctx, d)
	case opcode.CmdClearColorImage:
		return c.cmdClearColorImage(ctx, d)
	case opcode.UpdateDescriptorSetWithTemplate:
		return c.updateDescriptorSetWithTemplate(ctx, d)
	case opcode.QueueSubmit:
		return c.queueSubmit(ctx, d)
	default:
		// An unknown opcode in a well-formed stream means a trace from a
		// newer build; skip its payload rather than fail the whole replay.
		d.R().Data(make([]byte, hdr.PayloadLength))
		return nil
	}
}

func (c *CommandDeserializer) createInstance(ctx context.Context, d *codec.Decoder) error {
	ci := readInstanceCreateInfo(d)
	var instance vk.Handle
	c.Next.CreateInstance(ctx, ci, &instance)
	readHandle(d) // recorded instance handle, superseded by the one just created
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) destroyInstance(ctx context.Context, d *codec.Decoder) error {
	instance := readHandle(d)
	c.Next.DestroyInstance(ctx, instance)
	d.R().Int32()
	return d.Err()
}

// physicalDeviceIdentity is one recorded {device_id, vendor_id,
// driver_version} triple (§4.4, §6).
type physicalDeviceIdentity struct {
	deviceID, vendorID, driverVersion uint32
}

// enumeratePhysicalDevices replays the count-then-enumerate pair and, when
// present, reads the {device_id, vendor_id, driver_version} tail (§4.4) to
// pair each recorded device handle with the one just (re-)enumerated here,
// across vendor reorderings. c.PhysicalDeviceIdentity supplies the current
// enumeration's identities; when it is nil, or the tail is short/absent, or
// a recorded identity has no match, pairing falls back to enumeration
// index, per §4.4's explicit fallback rule.
func (c *CommandDeserializer) enumeratePhysicalDevices(ctx context.Context, d *codec.Decoder, payloadLength uint64) error {
	frameEnd := d.DataLeft() - int(payloadLength)
	r := d.R()
	instance := readHandle(d)
	wantDevices := r.Bool()
	count := r.Uint32()
	recorded := readHandles(d)
	r.Int32()

	n := count
	var out []vk.Handle
	if wantDevices {
		out = make([]vk.Handle, len(recorded))
	}
	c.Next.EnumeratePhysicalDevices(ctx, instance, &n, out)

	var triples []physicalDeviceIdentity
	if wantDevices && d.DataLeft()-frameEnd >= 4 {
		count := r.Uint32()
		if d.DataLeft()-frameEnd >= int(count)*12 {
			triples = make([]physicalDeviceIdentity, count)
			for i := range triples {
				triples[i] = physicalDeviceIdentity{r.Uint32(), r.Uint32(), r.Uint32()}
			}
		} else {
			r.Data(make([]byte, d.DataLeft()-frameEnd))
		}
	}

	if wantDevices {
		c.pairPhysicalDevices(recorded, out, triples)
	}
	return d.Err()
}

// pairPhysicalDevices builds the recorded->current physical-device handle
// mapping consulted by remapPhysicalDevice. It pairs by identity when
// possible, falling back to index order for any recorded device whose
// identity is missing, unmatched, or untrackable (§4.4).
func (c *CommandDeserializer) pairPhysicalDevices(recorded, out []vk.Handle, triples []physicalDeviceIdentity) {
	if c.physicalDeviceRemap == nil {
		c.physicalDeviceRemap = map[vk.Handle]vk.Handle{}
	}

	paired := make([]bool, len(out))
	matched := make([]bool, len(recorded))
	if c.PhysicalDeviceIdentity != nil && len(triples) == len(recorded) {
		currentIdentity := make(map[physicalDeviceIdentity]int, len(out))
		for j, h := range out {
			if id, vendor, driver, ok := c.PhysicalDeviceIdentity(h); ok {
				currentIdentity[physicalDeviceIdentity{id, vendor, driver}] = j
			}
		}
		for i, want := range triples {
			if j, ok := currentIdentity[want]; ok && !paired[j] {
				c.physicalDeviceRemap[recorded[i]] = out[j]
				paired[j] = true
				matched[i] = true
			}
		}
	}

	// Index-order fallback for anything identity pairing didn't resolve.
	for i, rh := range recorded {
		if matched[i] || i >= len(out) {
			continue
		}
		c.physicalDeviceRemap[rh] = out[i]
	}
}

func (c *CommandDeserializer) createDevice(ctx context.Context, d *codec.Decoder) error {
	physicalDevice := c.remapPhysicalDevice(readHandle(d))
	ci := readDeviceCreateInfo(d)
	var device vk.Handle
	c.Next.CreateDevice(ctx, physicalDevice, ci, &device)
	readHandle(d)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) destroyDevice(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	c.Next.DestroyDevice(ctx, device)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) getDeviceQueue(ctx context.Context, d *codec.Decoder) error {
	r := d.R()
	device := readHandle(d)
	familyIndex := r.Uint32()
	queueIndex := r.Uint32()
	var queue vk.Handle
	c.Next.GetDeviceQueue(ctx, device, familyIndex, queueIndex, &queue)
	readHandle(d)
	r.Int32()
	return d.Err()
}

func (c *CommandDeserializer) allocateMemory(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	ci := readMemoryAllocateInfo(d)
	var memory vk.Handle
	c.Next.AllocateMemory(ctx, device, ci, &memory)
	readHandle(d)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) freeMemory(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	memory := readHandle(d)
	c.Next.FreeMemory(ctx, device, memory)
	d.R().Int32()
	return d.Err()
}

// mapMemory replays the call and discards the recorded opaque token: a
// replayer has its own address space and must re-derive ppData from
// whatever vkMapMemory actually returns downstream (§4.8).
func (c *CommandDeserializer) mapMemory(ctx context.Context, d *codec.Decoder) error {
	r := d.R()
	device := readHandle(d)
	memory := readHandle(d)
	offset := r.Uint64()
	size := r.Int64()
	flags := r.Uint32()
	var data uint64
	c.Next.MapMemory(ctx, device, memory, offset, size, flags, &data)
	r.Uint64()
	r.Int32()
	return d.Err()
}

func (c *CommandDeserializer) unmapMemory(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	memory := readHandle(d)
	c.Next.UnmapMemory(ctx, device, memory)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) createBuffer(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	ci := readBufferCreateInfo(d)
	var buffer vk.Handle
	c.Next.CreateBuffer(ctx, device, ci, &buffer)
	readHandle(d)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) destroyBuffer(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	buffer := readHandle(d)
	c.Next.DestroyBuffer(ctx, device, buffer)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) createImage(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	ci := readImageCreateInfo(d)
	var image vk.Handle
	c.Next.CreateImage(ctx, device, ci, &image)
	readHandle(d)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) destroyImage(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	image := readHandle(d)
	c.Next.DestroyImage(ctx, device, image)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) createGraphicsPipelines(ctx context.Context, d *codec.Decoder) error {
	r := d.R()
	device := readHandle(d)
	pipelineCache := readHandle(d)
	n := r.Uint32()
	infos := make([]vk.GraphicsPipelineCreateInfo, n)
	for i := range infos {
		infos[i] = readGraphicsPipelineCreateInfo(d)
	}
	pipelines := make([]vk.Handle, n)
	c.Next.CreateGraphicsPipelines(ctx, device, pipelineCache, n, infos, pipelines)
	readHandles(d)
	r.Int32()
	return d.Err()
}

func (c *CommandDeserializer) createFence(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	ci := readFenceCreateInfo(d)
	var fence vk.Handle
	c.Next.CreateFence(ctx, device, ci, &fence)
	readHandle(d)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) destroyFence(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	fence := readHandle(d)
	c.Next.DestroyFence(ctx, device, fence)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) waitForFences(ctx context.Context, d *codec.Decoder) error {
	r := d.R()
	device := readHandle(d)
	fences := readHandles(d)
	waitAll := r.Bool()
	timeout := r.Uint64()
	c.Next.WaitForFences(ctx, device, fences, waitAll, timeout)
	r.Int32()
	return d.Err()
}

func (c *CommandDeserializer) createCommandPool(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	next := readChain(d)
	r := d.R()
	ci := &vk.CommandPoolCreateInfo{Next: next, Flags: r.Uint32(), QueueFamilyIndex: r.Uint32()}
	var pool vk.Handle
	c.Next.CreateCommandPool(ctx, device, ci, &pool)
	readHandle(d)
	r.Int32()
	return d.Err()
}

func (c *CommandDeserializer) allocateCommandBuffers(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	next := readChain(d)
	r := d.R()
	ci := &vk.CommandBufferAllocateInfo{Next: next, CommandPool: readHandle(d), Level: r.Uint32(), Count: r.Uint32()}
	buffers := make([]vk.Handle, ci.Count)
	c.Next.AllocateCommandBuffers(ctx, device, ci, buffers)
	readHandles(d)
	r.Int32()
	return d.Err()
}

func (c *CommandDeserializer) beginCommandBuffer(ctx context.Context, d *codec.Decoder) error {
	cb := readHandle(d)
	c.Next.BeginCommandBuffer(ctx, cb)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) endCommandBuffer(ctx context.Context, d *codec.Decoder) error {
	cb := readHandle(d)
	c.Next.EndCommandBuffer(ctx, cb)
	d.R().Int32()
	return d.Err()
}

func (c *CommandDeserializer) cmdDraw(ctx context.Context, d *codec.Decoder) error {
	r := d.R()
	cb := readHandle(d)
	c.Next.CmdDraw(ctx, cb, r.Uint32(), r.Uint32(), r.Uint32(), r.Uint32())
	return d.Err()
}

func (c *CommandDeserializer) cmdUpdateBuffer(ctx context.Context, d *codec.Decoder) error {
	r := d.R()
	cb := readHandle(d)
	dstBuffer := readHandle(d)
	offset := r.Uint64()
	n := r.Uint32()
	data := d.GetTypedMemory(int(n), 1, 1)
	r.Data(data)
	c.Next.CmdUpdateBuffer(ctx, cb, dstBuffer, offset, data)
	return d.Err()
}

func (c *CommandDeserializer) cmdPushConstants(ctx context.Context, d *codec.Decoder) error {
	r := d.R()
	cb := readHandle(d)
	layout := readHandle(d)
	stageFlags := r.Uint32()
	offset := r.Uint32()
	n := r.Uint32()
	values := d.GetTypedMemory(int(n), 1, 1)
	r.Data(values)
	c.Next.CmdPushConstants(ctx, cb, layout, stageFlags, offset, values)
	return d.Err()
}

func (c *CommandDeserializer) cmdClearColorImage(ctx context.Context, d *codec.Decoder) error {
	cb := readHandle(d)
	image := readHandle(d)
	layout := d.R().Uint32()
	color := readClearValue(d)
	c.Next.CmdClearColorImage(ctx, cb, image, layout, color)
	return d.Err()
}

// updateDescriptorSetWithTemplate mirrors the serializer's custom hook: the
// decoded payload's handle slots are translated from trace space to driver
// space via handlefixer before the call is forwarded (§4.8, §4.9).
func (c *CommandDeserializer) updateDescriptorSetWithTemplate(ctx context.Context, d *codec.Decoder) error {
	device := readHandle(d)
	descriptorSet := readHandle(d)
	template := readHandle(d)
	n := d.R().Uint32()
	payload := d.GetTypedMemory(int(n), 1, 1)
	d.R().Data(payload)

	if w := c.SB.Get(template, vk.KindDescriptorUpdateTemplate); w != nil {
		if ci, ok := w.CreateInfo().(*vk.DescriptorUpdateTemplateCreateInfo); ok {
			handlefixer.WalkTemplateHandles(ci.Entries, payload, handlefixer.Identity)
		}
	}
	c.Next.UpdateDescriptorSetWithTemplate(ctx, device, descriptorSet, template, payload)
	return d.Err()
}

func (c *CommandDeserializer) queueSubmit(ctx context.Context, d *codec.Decoder) error {
	queue := readHandle(d)
	buffers := readHandles(d)
	fence := readHandle(d)
	c.Next.QueueSubmit(ctx, queue, uint32(len(buffers)), buffers, fence)
	d.R().Int32()
	return d.Err()
}
