// Package layer implements the loader-facing Vulkan layer negotiation
// (§6) and the user-transform module ABI (§6's "external user module"):
// a thin host that loads a *.so built with `go build -buildmode=plugin`
// and drives it through SetupLayer/PostSetupInternalPointers/
// OnCommandBufferSplit/ShutdownLayer, handing it back SendJson, LogMessage,
// GetCommandIndex and the LayerOptions_* forwarders to call into the core.
package layer

import "sync"

// LayerOptions is what a user module's SetupLayer receives: which command
// buffers to record, mirroring the native struct's bitset-or-explicit-list
// shape (§6: "the module tells the core which command buffers (or all) to
// record").
type LayerOptions struct {
	mu          sync.Mutex
	allCommands bool
	commands    map[uint64]bool
	userConfig  string
}

// NewLayerOptions returns an empty LayerOptions recording nothing until the
// module calls one of the Capture* forwarders.
func NewLayerOptions(userConfig string) *LayerOptions {
	return &LayerOptions{commands: map[uint64]bool{}, userConfig: userConfig}
}

// LayerOptions_CaptureCommands marks the named command buffers for
// recording (by the key CommandBufferRecorder registers its per-buffer
// encoder under — the buffer's own vk.Handle).
func LayerOptions_CaptureCommands(o *LayerOptions, commandBuffers []uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, cb := range commandBuffers {
		o.commands[cb] = true
	}
}

// LayerOptions_CaptureAllCommands marks every command buffer for recording,
// overriding any explicit list (§6).
func LayerOptions_CaptureAllCommands(o *LayerOptions) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.allCommands = true
}

// LayerOptions_GetUserConfig returns the free-form configuration string the
// host was launched with, letting a user module parameterise itself
// without its own flag parsing.
func LayerOptions_GetUserConfig(o *LayerOptions) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.userConfig
}

// ShouldCapture reports whether commandBuffer is currently marked for
// recording.
func (o *LayerOptions) ShouldCapture(commandBuffer uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.allCommands || o.commands[commandBuffer]
}
