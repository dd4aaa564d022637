// Package deserializer implements CommandDeserializer (§4.4): it reads one
// frame at a time from a codec.Decoder and replays it as a call into a
// transform.Transform, the mirror image of package serializer.
package deserializer

import (
	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/vk"
)

func readChain(d *codec.Decoder) vk.Chain {
	r := d.R()
	var chain vk.Chain
	for {
		st := r.Uint32()
		if st == 0 {
			return chain
		}
		n := r.Uint32()
		data := d.GetTypedMemory(int(n), 1, 1)
		r.Data(data)
		chain = append(chain, vk.ExtStruct{SType: vk.StructureType(st), Data: data})
	}
}

func readStrings(d *codec.Decoder) []string {
	r := d.R()
	n := r.Uint32()
	out := make([]string, n)
	for i := range out {
		out[i] = r.String()
	}
	return out
}

func readU32s(d *codec.Decoder) []uint32 {
	r := d.R()
	n := r.Uint32()
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Uint32()
	}
	return out
}

func readF32s(d *codec.Decoder) []float32 {
	r := d.R()
	n := r.Uint32()
	out := make([]float32, n)
	for i := range out {
		out[i] = r.Float32()
	}
	return out
}

func readHandle(d *codec.Decoder) vk.Handle { return vk.Handle(d.R().Uint64()) }

func readHandles(d *codec.Decoder) []vk.Handle {
	r := d.R()
	n := r.Uint32()
	out := make([]vk.Handle, n)
	for i := range out {
		out[i] = readHandle(d)
	}
	return out
}

func readApplicationInfo(d *codec.Decoder) *vk.ApplicationInfo {
	r := d.R()
	if !r.Bool() {
		return nil
	}
	return &vk.ApplicationInfo{
		ApplicationName:    r.String(),
		ApplicationVersion: r.Uint32(),
		EngineName:         r.String(),
		EngineVersion:      r.Uint32(),
		APIVersion:         r.Uint32(),
	}
}

func readInstanceCreateInfo(d *codec.Decoder) *vk.InstanceCreateInfo {
	next := readChain(d)
	r := d.R()
	flags := r.Uint32()
	app := readApplicationInfo(d)
	layers := readStrings(d)
	exts := readStrings(d)
	return &vk.InstanceCreateInfo{
		Next:                  next,
		Flags:                 flags,
		ApplicationInfo:       app,
		EnabledLayerNames:     layers,
		EnabledExtensionNames: exts,
	}
}

func readDeviceQueueCreateInfo(d *codec.Decoder) vk.DeviceQueueCreateInfo {
	next := readChain(d)
	r := d.R()
	flags := r.Uint32()
	fam := r.Uint32()
	prios := readF32s(d)
	return vk.DeviceQueueCreateInfo{Next: next, Flags: flags, QueueFamilyIndex: fam, QueuePriorities: prios}
}

func readDeviceCreateInfo(d *codec.Decoder) *vk.DeviceCreateInfo {
	next := readChain(d)
	r := d.R()
	flags := r.Uint32()
	n := r.Uint32()
	queues := make([]vk.DeviceQueueCreateInfo, n)
	for i := range queues {
		queues[i] = readDeviceQueueCreateInfo(d)
	}
	layers := readStrings(d)
	exts := readStrings(d)
	return &vk.DeviceCreateInfo{Next: next, Flags: flags, QueueCreateInfos: queues, EnabledLayerNames: layers, EnabledExtensionNames: exts}
}

func readBufferCreateInfo(d *codec.Decoder) *vk.BufferCreateInfo {
	next := readChain(d)
	r := d.R()
	flags := r.Uint32()
	size := r.Uint64()
	usage := r.Uint32()
	sharing := r.Uint32()
	qfi := readU32s(d)
	return &vk.BufferCreateInfo{Next: next, Flags: flags, Size: size, Usage: usage, SharingMode: sharing, QueueFamilyIndices: qfi}
}

func readImageCreateInfo(d *codec.Decoder) *vk.ImageCreateInfo {
	next := readChain(d)
	r := d.R()
	flags := r.Uint32()
	imageType := r.Uint32()
	format := r.Uint32()
	var extent [3]uint32
	for i := range extent {
		extent[i] = r.Uint32()
	}
	mip := r.Uint32()
	layers := r.Uint32()
	samples := r.Uint32()
	tiling := r.Uint32()
	usage := r.Uint32()
	sharing := r.Uint32()
	qfi := readU32s(d)
	initLayout := r.Uint32()
	return &vk.ImageCreateInfo{
		Next: next, Flags: flags, ImageType: imageType, Format: format, Extent: extent,
		MipLevels: mip, ArrayLayers: layers, Samples: samples, Tiling: tiling,
		Usage: usage, SharingMode: sharing, QueueFamilyIndices: qfi, InitialLayout: initLayout,
	}
}

func readMemoryAllocateInfo(d *codec.Decoder) *vk.MemoryAllocateInfo {
	next := readChain(d)
	r := d.R()
	size := r.Uint64()
	idx := r.Uint32()
	return &vk.MemoryAllocateInfo{Next: next, AllocationSize: size, MemoryTypeIndex: idx}
}

func readFenceCreateInfo(d *codec.Decoder) *vk.FenceCreateInfo {
	next := readChain(d)
	flags := d.R().Uint32()
	return &vk.FenceCreateInfo{Next: next, Flags: flags}
}

func readGraphicsPipelineCreateInfo(d *codec.Decoder) vk.GraphicsPipelineCreateInfo {
	next := readChain(d)
	r := d.R()
	flags := r.Uint32()
	stages := readU32s(d)
	layout := readHandle(d)
	rp := readHandle(d)
	subpass := r.Uint32()
	base := readHandle(d)
	hasVIS := r.Bool()
	return vk.GraphicsPipelineCreateInfo{
		Next: next, Flags: flags, Stages: stages, Layout: layout, RenderPass: rp,
		Subpass: subpass, BasePipelineHandle: base, HasVertexInputState: hasVIS,
	}
}

func readClearValue(d *codec.Decoder) *vk.ClearValue {
	r := d.R()
	var v vk.ClearValue
	for i := range v {
		v[i] = r.Uint32()
	}
	return &v
}
