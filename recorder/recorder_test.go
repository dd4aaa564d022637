package recorder

import (
	"context"
	"testing"

	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

type drawRecordingTerminal struct {
	transform.Base
	draws []uint32
}

func (t *drawRecordingTerminal) CmdDraw(ctx context.Context, commandBuffer vk.Handle, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	t.draws = append(t.draws, vertexCount)
}

// TestRerecordCommandBufferIsIdempotent replays the same recorded buffer
// twice through two independent downstream sinks and checks they observe
// identical command sequences, the idempotence property named in §4.7/§8.
func TestRerecordCommandBufferIsIdempotent(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	sb := stateblock.New()
	r := NewCommandBufferRecorder(stream, sb)
	r.Next = transform.NewDriver(0)
	ctx := context.Background()

	var pool vk.Handle
	r.CreateCommandPool(ctx, 1, &vk.CommandPoolCreateInfo{}, &pool)
	cb := vk.Handle(77)
	r.BeginCommandBuffer(ctx, cb)
	r.CmdDraw(ctx, cb, 10, 1, 0, 0)
	r.CmdDraw(ctx, cb, 20, 1, 0, 0)
	r.EndCommandBuffer(ctx, cb)

	first := &drawRecordingTerminal{}
	if err := RerecordCommandBuffer(ctx, stream, sb, cb, first); err != nil {
		t.Fatalf("first RerecordCommandBuffer: %v", err)
	}
	second := &drawRecordingTerminal{}
	if err := RerecordCommandBuffer(ctx, stream, sb, cb, second); err != nil {
		t.Fatalf("second RerecordCommandBuffer: %v", err)
	}

	if len(first.draws) != 2 || first.draws[0] != 10 || first.draws[1] != 20 {
		t.Fatalf("first replay: got %v", first.draws)
	}
	if len(second.draws) != len(first.draws) {
		t.Fatalf("second replay diverged: got %v, want %v", second.draws, first.draws)
	}
	for i := range first.draws {
		if first.draws[i] != second.draws[i] {
			t.Fatalf("replay %d mismatch: %v vs %v", i, first.draws, second.draws)
		}
	}
}

// TestBeginCommandBufferResetsStaleRecording ensures a handle reused after a
// fresh Begin never replays commands left over from a prior recording.
func TestBeginCommandBufferResetsStaleRecording(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	sb := stateblock.New()
	r := NewCommandBufferRecorder(stream, sb)
	r.Next = transform.NewDriver(0)
	ctx := context.Background()

	cb := vk.Handle(5)
	r.BeginCommandBuffer(ctx, cb)
	r.CmdDraw(ctx, cb, 999, 1, 0, 0)
	r.EndCommandBuffer(ctx, cb)

	// Re-begin the same handle without an intervening free: the stale draw
	// must not survive into the next recording.
	r.BeginCommandBuffer(ctx, cb)
	r.CmdDraw(ctx, cb, 1, 1, 0, 0)
	r.EndCommandBuffer(ctx, cb)

	term := &drawRecordingTerminal{}
	if err := RerecordCommandBuffer(ctx, stream, sb, cb, term); err != nil {
		t.Fatalf("RerecordCommandBuffer: %v", err)
	}
	if len(term.draws) != 1 || term.draws[0] != 1 {
		t.Fatalf("expected only the fresh recording's draw, got %v", term.draws)
	}
}

// TestFreeCommandBuffersDropsEncoder confirms a freed buffer's recorded
// commands are gone: rerecording it afterwards sees an empty stream.
func TestFreeCommandBuffersDropsEncoder(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	sb := stateblock.New()
	r := NewCommandBufferRecorder(stream, sb)
	r.Next = transform.NewDriver(0)
	ctx := context.Background()

	cb := vk.Handle(9)
	r.BeginCommandBuffer(ctx, cb)
	r.CmdDraw(ctx, cb, 5, 1, 0, 0)
	r.EndCommandBuffer(ctx, cb)

	r.FreeCommandBuffers(ctx, 1, 2, []vk.Handle{cb})

	term := &drawRecordingTerminal{}
	if err := RerecordCommandBuffer(ctx, stream, sb, cb, term); err != nil {
		t.Fatalf("RerecordCommandBuffer: %v", err)
	}
	if len(term.draws) != 0 {
		t.Fatalf("expected no draws after freeing the buffer, got %v", term.draws)
	}
}
