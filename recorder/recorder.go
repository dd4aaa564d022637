// Package recorder implements CommandBufferRecorder (§4.7): a per-command-
// buffer encoder registry keyed off the buffer's own handle, and
// RerecordCommandBuffer, which replays a recorded buffer's commands into an
// arbitrary downstream Transform.
package recorder

import (
	"context"

	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/deserializer"
	"github.com/gfxtrace/vktrace/serializer"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// CommandBufferRecorder wraps a CommandSerializer so its BeginCommandBuffer,
// ResetCommandBuffer and FreeCommandBuffers overrides also manage the
// per-buffer encoder registry's reset/remove lifecycle: Begin/Reset resets
// the buffer's encoder in place, Free drops it entirely (§4.7).
// ResetCommandPool is forwarded without touching any encoder.
type CommandBufferRecorder struct {
	*serializer.CommandSerializer
	Stream *codec.Stream
}

// NewCommandBufferRecorder constructs a recorder layered over stream and sb.
func NewCommandBufferRecorder(stream *codec.Stream, sb *stateblock.StateBlock) *CommandBufferRecorder {
	return &CommandBufferRecorder{
		CommandSerializer: serializer.NewCommandSerializer(stream, sb),
		Stream:            stream,
	}
}

// BeginCommandBuffer resets the buffer's per-buffer encoder before
// recording starts, so a reused vk.Handle (after Reset or a fresh Begin)
// never replays stale commands from a previous recording, then forwards
// through the embedded CommandSerializer as usual.
func (r *CommandBufferRecorder) BeginCommandBuffer(ctx context.Context, commandBuffer vk.Handle) vk.Result {
	r.Stream.ResetEncoder(uint64(commandBuffer))
	return r.CommandSerializer.BeginCommandBuffer(ctx, commandBuffer)
}

// ResetCommandBuffer resets the buffer's per-buffer encoder, as
// BeginCommandBuffer does, then forwards.
func (r *CommandBufferRecorder) ResetCommandBuffer(ctx context.Context, commandBuffer vk.Handle, flags uint32) vk.Result {
	r.Stream.ResetEncoder(uint64(commandBuffer))
	return r.CommandSerializer.ResetCommandBuffer(ctx, commandBuffer, flags)
}

// FreeCommandBuffers drops the per-buffer encoders of every freed handle.
func (r *CommandBufferRecorder) FreeCommandBuffers(ctx context.Context, device vk.Handle, commandPool vk.Handle, pCommandBuffers []vk.Handle) {
	for _, cb := range pCommandBuffers {
		r.Stream.RemoveEncoder(uint64(cb))
	}
	r.CommandSerializer.Base.FreeCommandBuffers(ctx, device, commandPool, pCommandBuffers)
}

// RerecordCommandBuffer replays cb's recorded commands into next, via a
// fresh Decoder over a snapshot of cb's per-buffer encoder. Calling this
// twice in a row, with no intervening command recorded against cb, replays
// byte-identical commands both times: Encoder.Snapshot shares every
// completed block by reference and only deep-copies the (possibly still
// growing) last block, so nothing the live encoder does afterwards can
// retroactively change what was already snapshotted (§4.7, §8 property 5).
func RerecordCommandBuffer(ctx context.Context, stream *codec.Stream, sb *stateblock.StateBlock, cb vk.Handle, next transform.Transform) error {
	enc := stream.Encoder(uint64(cb))
	blocks := enc.Snapshot()
	d := deserializer.NewCommandDeserializer(next, sb)
	return d.Run(ctx, codec.NewDecoder(blocks, arena.New()))
}
