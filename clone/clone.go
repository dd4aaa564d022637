// Package clone implements the deep-copy half of the clone/unwrap discipline
// (§4.3, §9): one function per creation-info struct, hand-written in the
// generator's idiom rather than produced by one. Every function severs
// aliasing with the caller's memory — slices are copied into fresh backing
// arrays, byte payloads into the supplied arena — so the creation-info
// stability invariant (§3, §8 property 4) holds for the lifetime of the
// wrapper that owns them.
package clone

import (
	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/vk"
)

func strings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func u32s(s []uint32) []uint32 {
	if s == nil {
		return nil
	}
	out := make([]uint32, len(s))
	copy(out, s)
	return out
}

func f32s(s []float32) []float32 {
	if s == nil {
		return nil
	}
	out := make([]float32, len(s))
	copy(out, s)
	return out
}

func handles(s []vk.Handle) []vk.Handle {
	if s == nil {
		return nil
	}
	out := make([]vk.Handle, len(s))
	copy(out, s)
	return out
}

// bytesArena clones b into storage owned by a, matching §3's "cloned into an
// owned arena" requirement for the handful of raw-byte fields (shader code,
// pipeline cache blobs, opaque surface connection data).
func bytesArena(a *arena.Arena, b []byte) []byte {
	if b == nil {
		return nil
	}
	dst := a.Allocate(len(b), 1)
	copy(dst, b)
	return dst
}

func ApplicationInfo(in *vk.ApplicationInfo) *vk.ApplicationInfo {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

func InstanceCreateInfo(a *arena.Arena, in *vk.InstanceCreateInfo) *vk.InstanceCreateInfo {
	if in == nil {
		return nil
	}
	return &vk.InstanceCreateInfo{
		Next:                  in.Next.Clone(),
		Flags:                 in.Flags,
		ApplicationInfo:       ApplicationInfo(in.ApplicationInfo),
		EnabledLayerNames:     strings(in.EnabledLayerNames),
		EnabledExtensionNames: strings(in.EnabledExtensionNames),
	}
}

func DeviceQueueCreateInfo(in vk.DeviceQueueCreateInfo) vk.DeviceQueueCreateInfo {
	return vk.DeviceQueueCreateInfo{
		Next:             in.Next.Clone(),
		Flags:            in.Flags,
		QueueFamilyIndex: in.QueueFamilyIndex,
		QueuePriorities:  f32s(in.QueuePriorities),
	}
}

func DeviceCreateInfo(in *vk.DeviceCreateInfo) *vk.DeviceCreateInfo {
	if in == nil {
		return nil
	}
	qs := make([]vk.DeviceQueueCreateInfo, len(in.QueueCreateInfos))
	for i, q := range in.QueueCreateInfos {
		qs[i] = DeviceQueueCreateInfo(q)
	}
	return &vk.DeviceCreateInfo{
		Next:                  in.Next.Clone(),
		Flags:                 in.Flags,
		QueueCreateInfos:      qs,
		EnabledLayerNames:     strings(in.EnabledLayerNames),
		EnabledExtensionNames: strings(in.EnabledExtensionNames),
	}
}

func MemoryAllocateInfo(in *vk.MemoryAllocateInfo) *vk.MemoryAllocateInfo {
	if in == nil {
		return nil
	}
	out := &vk.MemoryAllocateInfo{AllocationSize: in.AllocationSize, MemoryTypeIndex: in.MemoryTypeIndex}
	out.Next = in.Next.Clone()
	return out
}

func BufferCreateInfo(in *vk.BufferCreateInfo) *vk.BufferCreateInfo {
	if in == nil {
		return nil
	}
	return &vk.BufferCreateInfo{
		Next:               in.Next.Clone(),
		Flags:              in.Flags,
		Size:               in.Size,
		Usage:              in.Usage,
		SharingMode:        in.SharingMode,
		QueueFamilyIndices: u32s(in.QueueFamilyIndices),
	}
}

func BufferViewCreateInfo(in *vk.BufferViewCreateInfo) *vk.BufferViewCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func ImageCreateInfo(in *vk.ImageCreateInfo) *vk.ImageCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	out.QueueFamilyIndices = u32s(in.QueueFamilyIndices)
	return &out
}

func ImageViewCreateInfo(in *vk.ImageViewCreateInfo) *vk.ImageViewCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func SamplerCreateInfo(in *vk.SamplerCreateInfo) *vk.SamplerCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func SamplerYcbcrConversionCreateInfo(in *vk.SamplerYcbcrConversionCreateInfo) *vk.SamplerYcbcrConversionCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func ShaderModuleCreateInfo(a *arena.Arena, in *vk.ShaderModuleCreateInfo) *vk.ShaderModuleCreateInfo {
	if in == nil {
		return nil
	}
	return &vk.ShaderModuleCreateInfo{
		Next:  in.Next.Clone(),
		Flags: in.Flags,
		Code:  bytesArena(a, in.Code),
	}
}

func PipelineCacheCreateInfo(a *arena.Arena, in *vk.PipelineCacheCreateInfo) *vk.PipelineCacheCreateInfo {
	if in == nil {
		return nil
	}
	return &vk.PipelineCacheCreateInfo{
		Next:        in.Next.Clone(),
		Flags:       in.Flags,
		InitialData: bytesArena(a, in.InitialData),
	}
}

func PipelineLayoutCreateInfo(in *vk.PipelineLayoutCreateInfo) *vk.PipelineLayoutCreateInfo {
	if in == nil {
		return nil
	}
	pr := make([][2]uint32, len(in.PushConstantRanges))
	copy(pr, in.PushConstantRanges)
	return &vk.PipelineLayoutCreateInfo{
		Next:               in.Next.Clone(),
		Flags:              in.Flags,
		SetLayouts:         handles(in.SetLayouts),
		PushConstantRanges: pr,
	}
}

func DescriptorSetLayoutBinding(in vk.DescriptorSetLayoutBinding) vk.DescriptorSetLayoutBinding {
	return vk.DescriptorSetLayoutBinding{
		Binding:           in.Binding,
		DescriptorType:    in.DescriptorType,
		DescriptorCount:   in.DescriptorCount,
		StageFlags:        in.StageFlags,
		ImmutableSamplers: handles(in.ImmutableSamplers),
	}
}

func DescriptorSetLayoutCreateInfo(in *vk.DescriptorSetLayoutCreateInfo) *vk.DescriptorSetLayoutCreateInfo {
	if in == nil {
		return nil
	}
	bs := make([]vk.DescriptorSetLayoutBinding, len(in.Bindings))
	for i, b := range in.Bindings {
		bs[i] = DescriptorSetLayoutBinding(b)
	}
	return &vk.DescriptorSetLayoutCreateInfo{Next: in.Next.Clone(), Flags: in.Flags, Bindings: bs}
}

func DescriptorPoolCreateInfo(in *vk.DescriptorPoolCreateInfo) *vk.DescriptorPoolCreateInfo {
	if in == nil {
		return nil
	}
	ps := make([]vk.DescriptorPoolSize, len(in.PoolSizes))
	copy(ps, in.PoolSizes)
	return &vk.DescriptorPoolCreateInfo{Next: in.Next.Clone(), Flags: in.Flags, MaxSets: in.MaxSets, PoolSizes: ps}
}

func DescriptorSetAllocateInfo(in *vk.DescriptorSetAllocateInfo) *vk.DescriptorSetAllocateInfo {
	if in == nil {
		return nil
	}
	return &vk.DescriptorSetAllocateInfo{
		Next:           in.Next.Clone(),
		DescriptorPool: in.DescriptorPool,
		SetLayouts:     handles(in.SetLayouts),
	}
}

func DescriptorUpdateTemplateCreateInfo(in *vk.DescriptorUpdateTemplateCreateInfo) *vk.DescriptorUpdateTemplateCreateInfo {
	if in == nil {
		return nil
	}
	es := make([]vk.DescriptorUpdateTemplateEntry, len(in.Entries))
	copy(es, in.Entries)
	out := *in
	out.Next = in.Next.Clone()
	out.Entries = es
	return &out
}

func AttachmentDescription(in vk.AttachmentDescription) vk.AttachmentDescription { return in }

func SubpassDescription(in vk.SubpassDescription) vk.SubpassDescription {
	return vk.SubpassDescription{
		PipelineBindPoint: in.PipelineBindPoint,
		InputAttachments:  u32s(in.InputAttachments),
		ColorAttachments:  u32s(in.ColorAttachments),
	}
}

func RenderPassCreateInfo(in *vk.RenderPassCreateInfo) *vk.RenderPassCreateInfo {
	if in == nil {
		return nil
	}
	as := make([]vk.AttachmentDescription, len(in.Attachments))
	for i, a := range in.Attachments {
		as[i] = AttachmentDescription(a)
	}
	ss := make([]vk.SubpassDescription, len(in.Subpasses))
	for i, s := range in.Subpasses {
		ss[i] = SubpassDescription(s)
	}
	return &vk.RenderPassCreateInfo{Next: in.Next.Clone(), Flags: in.Flags, Attachments: as, Subpasses: ss}
}

func FramebufferCreateInfo(in *vk.FramebufferCreateInfo) *vk.FramebufferCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	out.Attachments = handles(in.Attachments)
	return &out
}

// GraphicsPipelineCreateInfo clones the subset this core models. Stages is
// serialised unconditionally; HasVertexInputState is the valid predicate
// named explicitly in §4.3 and §9's open question — this repository resolves
// it to "the bit is carried as recorded, never recomputed" (see DESIGN.md).
func GraphicsPipelineCreateInfo(in *vk.GraphicsPipelineCreateInfo) *vk.GraphicsPipelineCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	out.Stages = u32s(in.Stages)
	return &out
}

func CommandPoolCreateInfo(in *vk.CommandPoolCreateInfo) *vk.CommandPoolCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func CommandBufferAllocateInfo(in *vk.CommandBufferAllocateInfo) *vk.CommandBufferAllocateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func FenceCreateInfo(in *vk.FenceCreateInfo) *vk.FenceCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func SemaphoreCreateInfo(in *vk.SemaphoreCreateInfo) *vk.SemaphoreCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func EventCreateInfo(in *vk.EventCreateInfo) *vk.EventCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func QueryPoolCreateInfo(in *vk.QueryPoolCreateInfo) *vk.QueryPoolCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func SwapchainCreateInfo(in *vk.SwapchainCreateInfo) *vk.SwapchainCreateInfo {
	if in == nil {
		return nil
	}
	out := *in
	out.Next = in.Next.Clone()
	return &out
}

func SurfaceCreateInfo(a *arena.Arena, in *vk.SurfaceCreateInfo) *vk.SurfaceCreateInfo {
	if in == nil {
		return nil
	}
	return &vk.SurfaceCreateInfo{Next: in.Next.Clone(), Opaque: bytesArena(a, in.Opaque)}
}
