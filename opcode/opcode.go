// Package opcode assigns the stable per-entry-point opcode (§3, §6:
// "assigned per entry point, stable within a build") shared by the
// serializer, deserializer, printer, and recorder. The full ~500-entry
// catalogue is an external schema (§1); this table covers the subset this
// repository implements a generated-style codec for.
package opcode

type Op uint64

const (
	CreateInstance Op = iota + 1
	DestroyInstance
	EnumeratePhysicalDevices
	CreateDevice
	DestroyDevice
	GetDeviceQueue
	AllocateMemory
	FreeMemory
	MapMemory
	UnmapMemory
	CreateBuffer
	DestroyBuffer
	CreateImage
	DestroyImage
	CreateGraphicsPipelines
	CreateFence
	DestroyFence
	WaitForFences
	CreateCommandPool
	AllocateCommandBuffers
	BeginCommandBuffer
	EndCommandBuffer
	CmdDraw
	CmdUpdateBuffer
	CmdPushConstants
	CmdClearColorImage
	UpdateDescriptorSetWithTemplate
	QueueSubmit
)

var names = map[Op]string{
	CreateInstance:                  "vkCreateInstance",
	DestroyInstance:                 "vkDestroyInstance",
	EnumeratePhysicalDevices:        "vkEnumeratePhysicalDevices",
	CreateDevice:                    "vkCreateDevice",
	DestroyDevice:                   "vkDestroyDevice",
	GetDeviceQueue:                  "vkGetDeviceQueue",
	AllocateMemory:                  "vkAllocateMemory",
	FreeMemory:                      "vkFreeMemory",
	MapMemory:                       "vkMapMemory",
	UnmapMemory:                     "vkUnmapMemory",
	CreateBuffer:                    "vkCreateBuffer",
	DestroyBuffer:                   "vkDestroyBuffer",
	CreateImage:                     "vkCreateImage",
	DestroyImage:                    "vkDestroyImage",
	CreateGraphicsPipelines:         "vkCreateGraphicsPipelines",
	CreateFence:                     "vkCreateFence",
	DestroyFence:                    "vkDestroyFence",
	WaitForFences:                   "vkWaitForFences",
	CreateCommandPool:               "vkCreateCommandPool",
	AllocateCommandBuffers:          "vkAllocateCommandBuffers",
	BeginCommandBuffer:              "vkBeginCommandBuffer",
	EndCommandBuffer:                "vkEndCommandBuffer",
	CmdDraw:                         "vkCmdDraw",
	CmdUpdateBuffer:                 "vkCmdUpdateBuffer",
	CmdPushConstants:                "vkCmdPushConstants",
	CmdClearColorImage:              "vkCmdClearColorImage",
	UpdateDescriptorSetWithTemplate: "vkUpdateDescriptorSetWithTemplate",
	QueueSubmit:                     "vkQueueSubmit",
}

// String returns the Vulkan entry-point name for op, or "" if unknown.
func (op Op) String() string { return names[op] }
