package serializer

import (
	"context"
	"testing"

	"github.com/gfxtrace/vktrace/codec"
	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/deserializer"
	"github.com/gfxtrace/vktrace/stateblock"
	"github.com/gfxtrace/vktrace/transform"
	"github.com/gfxtrace/vktrace/vk"
)

// recordingTerminal captures every call it receives, for asserting that a
// decoded replay reaches the end of the chain with the same arguments the
// original call carried.
type recordingTerminal struct {
	transform.Base
	createInstanceInfo *vk.InstanceCreateInfo
	createBufferInfo   *vk.BufferCreateInfo
	drawCalls          []uint32
	updateBufferData   []byte
	clearColor         *vk.ClearValue
}

func (r *recordingTerminal) CreateInstance(ctx context.Context, pCreateInfo *vk.InstanceCreateInfo, pInstance *vk.Handle) vk.Result {
	r.createInstanceInfo = pCreateInfo
	*pInstance = 42
	return vk.Success
}

func (r *recordingTerminal) CreateBuffer(ctx context.Context, device vk.Handle, pCreateInfo *vk.BufferCreateInfo, pBuffer *vk.Handle) vk.Result {
	r.createBufferInfo = pCreateInfo
	*pBuffer = 7
	return vk.Success
}

func (r *recordingTerminal) CmdDraw(ctx context.Context, commandBuffer vk.Handle, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	r.drawCalls = append(r.drawCalls, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (r *recordingTerminal) CmdUpdateBuffer(ctx context.Context, commandBuffer, dstBuffer vk.Handle, dstOffset uint64, pData []byte) {
	r.updateBufferData = append([]byte(nil), pData...)
}

func (r *recordingTerminal) CmdClearColorImage(ctx context.Context, commandBuffer, image vk.Handle, imageLayout uint32, pColor *vk.ClearValue) {
	v := *pColor
	r.clearColor = &v
}

// TestRoundTripCreateInstanceAndBuffer records a couple of calls through
// CommandSerializer, replays the resulting stream through
// deserializer.CommandDeserializer, and asserts the replayed call reaching
// the terminal transform carries the same values as the original input.
func TestRoundTripCreateInstanceAndBuffer(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	sb := stateblock.New()
	s := NewCommandSerializer(stream, sb)
	s.Next = transform.NewDriver(0)
	ctx := context.Background()

	origInstanceInfo := &vk.InstanceCreateInfo{
		ApplicationInfo:       &vk.ApplicationInfo{ApplicationName: "myapp", APIVersion: 1},
		EnabledLayerNames:     []string{"VK_LAYER_foo"},
		EnabledExtensionNames: []string{"VK_KHR_surface"},
	}
	var instance vk.Handle
	if res := s.CreateInstance(ctx, origInstanceInfo, &instance); !res.Succeeded() {
		t.Fatalf("CreateInstance: %v", res)
	}

	origBufferInfo := &vk.BufferCreateInfo{Size: 256, Usage: 1, QueueFamilyIndices: []uint32{0, 1}}
	var buffer vk.Handle
	if res := s.CreateBuffer(ctx, instance, origBufferInfo, &buffer); !res.Succeeded() {
		t.Fatalf("CreateBuffer: %v", res)
	}

	blocks := stream.Encoder(0).Snapshot()
	dec := codec.NewDecoder(blocks, arena.New())

	term := &recordingTerminal{}
	d := deserializer.NewCommandDeserializer(term, stateblock.New())
	if err := d.Run(ctx, dec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if term.createInstanceInfo == nil {
		t.Fatalf("expected CreateInstance to reach the terminal")
	}
	if term.createInstanceInfo.ApplicationInfo.ApplicationName != "myapp" {
		t.Errorf("ApplicationName: got %q", term.createInstanceInfo.ApplicationInfo.ApplicationName)
	}
	if len(term.createInstanceInfo.EnabledLayerNames) != 1 || term.createInstanceInfo.EnabledLayerNames[0] != "VK_LAYER_foo" {
		t.Errorf("EnabledLayerNames: got %v", term.createInstanceInfo.EnabledLayerNames)
	}

	if term.createBufferInfo == nil {
		t.Fatalf("expected CreateBuffer to reach the terminal")
	}
	if term.createBufferInfo.Size != 256 {
		t.Errorf("Size: got %d", term.createBufferInfo.Size)
	}
	if len(term.createBufferInfo.QueueFamilyIndices) != 2 || term.createBufferInfo.QueueFamilyIndices[1] != 1 {
		t.Errorf("QueueFamilyIndices: got %v", term.createBufferInfo.QueueFamilyIndices)
	}
}

// TestRoundTripCmdDrawAndUpdateBuffer covers the two custom §4.8 hooks that
// carry variable-length payload instead of a fixed-size struct.
func TestRoundTripCmdDrawAndUpdateBuffer(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	sb := stateblock.New()
	s := NewCommandSerializer(stream, sb)
	s.Next = transform.NewDriver(0)
	ctx := context.Background()

	s.CmdDraw(ctx, 1, 3, 1, 0, 0)
	payload := []byte{1, 2, 3, 4, 5}
	s.CmdUpdateBuffer(ctx, 1, 2, 16, payload)

	// Both calls carry commandBuffer handle 1, so they land in that
	// buffer's own per-buffer encoder rather than the global stream.
	blocks := stream.Encoder(1).Snapshot()
	dec := codec.NewDecoder(blocks, arena.New())
	term := &recordingTerminal{}
	d := deserializer.NewCommandDeserializer(term, stateblock.New())
	if err := d.Run(ctx, dec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(term.drawCalls) != 4 || term.drawCalls[0] != 3 {
		t.Fatalf("drawCalls: got %v", term.drawCalls)
	}
	if string(term.updateBufferData) != string(payload) {
		t.Fatalf("updateBufferData: got %v, want %v", term.updateBufferData, payload)
	}
}

// TestRoundTripCmdClearColorImage exercises the fixed four-word union
// encoding regardless of which tag the caller meant.
func TestRoundTripCmdClearColorImage(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	sb := stateblock.New()
	s := NewCommandSerializer(stream, sb)
	s.Next = transform.NewDriver(0)
	ctx := context.Background()

	color := &vk.ClearValue{1, 2, 3, 4}
	s.CmdClearColorImage(ctx, 1, 2, 0, color)

	blocks := stream.Encoder(1).Snapshot()
	dec := codec.NewDecoder(blocks, arena.New())
	term := &recordingTerminal{}
	d := deserializer.NewCommandDeserializer(term, stateblock.New())
	if err := d.Run(ctx, dec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if term.clearColor == nil || *term.clearColor != *color {
		t.Fatalf("clearColor: got %v, want %v", term.clearColor, color)
	}
}

// TestEmptyStreamDecodesCleanly exercises the §8 "empty trace" scenario: no
// frames at all should decode as an immediate, error-free end of stream.
func TestEmptyStreamDecodesCleanly(t *testing.T) {
	stream := codec.NewStream(codec.DefaultBlockSize)
	blocks := stream.Encoder(0).Snapshot()
	dec := codec.NewDecoder(blocks, arena.New())
	term := &recordingTerminal{}
	d := deserializer.NewCommandDeserializer(term, stateblock.New())
	if err := d.Run(context.Background(), dec); err != nil {
		t.Fatalf("expected a clean end of stream, got %v", err)
	}
}
