package codec

import (
	"testing"

	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/core/binary"
)

func TestEncodeDecodeFrameRoundTrip(t *testing.T) {
	e := newEncoder(DefaultBlockSize, false)
	tok := e.BeginFrame(7, FlagMidExecution)
	w := binary.NewWriter(e)
	w.Uint32(0xCAFEBABE)
	w.String("payload")
	e.FinishFrame(tok)

	d := NewDecoder([]*Block{e.currentBlock()}, arena.New())
	hdr, err := ReadFrameHeader(d)
	if err != nil {
		t.Fatalf("ReadFrameHeader: %v", err)
	}
	if hdr.Opcode != 7 {
		t.Errorf("Opcode: got %d", hdr.Opcode)
	}
	if hdr.Flags != FlagMidExecution {
		t.Errorf("Flags: got %d", hdr.Flags)
	}
	r := d.R()
	if got := r.Uint32(); got != 0xCAFEBABE {
		t.Errorf("payload field 1: got %x", got)
	}
	if got := r.String(); got != "payload" {
		t.Errorf("payload field 2: got %q", got)
	}
	if int(hdr.PayloadLength) != 4+4+len("payload") {
		t.Errorf("PayloadLength: got %d", hdr.PayloadLength)
	}
}

func TestEncoderAppendSpansMultipleBlocks(t *testing.T) {
	e := newEncoder(8, false)
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}
	e.Append(data)
	if e.Len() != 20 {
		t.Fatalf("Len: got %d", e.Len())
	}
	if len(e.blocks) < 3 {
		t.Fatalf("expected at least 3 blocks for 20 bytes at blockSize 8, got %d", len(e.blocks))
	}
	got := e.Bytes()
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d: got %x want %x", i, got[i], data[i])
		}
	}
}

func TestFrameHeaderNeverSplitAcrossBlocks(t *testing.T) {
	// blockSize smaller than a 24-byte header: BeginFrame's reserve() must
	// start a fresh block rather than split the header, even when the
	// current block already holds a few bytes.
	e := newEncoder(8, false)
	e.Append([]byte{1, 2, 3}) // leaves a half-full first block
	tok := e.BeginFrame(1, 0)
	w := binary.NewWriter(e)
	w.Uint32(42)
	e.FinishFrame(tok)

	d := NewDecoder(e.blocks, arena.New())
	// Skip the 3 filler bytes written before the frame.
	d.R().Data(make([]byte, 3))
	hdr, err := ReadFrameHeader(d)
	if err != nil {
		t.Fatalf("ReadFrameHeader: %v", err)
	}
	if hdr.PayloadLength != 4 {
		t.Fatalf("PayloadLength: got %d", hdr.PayloadLength)
	}
	if got := d.R().Uint32(); got != 42 {
		t.Fatalf("payload: got %d", got)
	}
}

func TestStreamGlobalVsPerBuffer(t *testing.T) {
	s := NewStream(DefaultBlockSize)
	if s.Encoder(0) != s.GlobalEncoder() {
		t.Fatalf("Encoder(0) should be the global encoder")
	}
	a := s.Encoder(100)
	b := s.Encoder(100)
	if a != b {
		t.Fatalf("Encoder(100) should return the same per-buffer encoder on repeated calls")
	}
	c := s.Encoder(200)
	if a == c {
		t.Fatalf("different keys should get different encoders")
	}
}

func TestResetEncoderAndRemoveEncoder(t *testing.T) {
	s := NewStream(DefaultBlockSize)
	enc := s.Encoder(5)
	enc.Append([]byte{1, 2, 3})
	if enc.Len() != 3 {
		t.Fatalf("Len: got %d", enc.Len())
	}
	s.ResetEncoder(5)
	if enc.Len() != 0 {
		t.Fatalf("expected Reset to clear Len, got %d", enc.Len())
	}

	s.RemoveEncoder(5)
	fresh := s.Encoder(5)
	if fresh == enc {
		t.Fatalf("expected RemoveEncoder to drop the old encoder so a new one is created")
	}

	// Unused keys are safe no-ops.
	s.ResetEncoder(999)
	s.RemoveEncoder(999)
}

func TestSnapshotSharesCompletedBlocksAndClonesLast(t *testing.T) {
	e := newEncoder(8, false)
	e.Append(make([]byte, 8)) // fills the first block exactly
	e.Append([]byte{1, 2})    // starts a second, still-growing block

	snap := e.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 blocks in snapshot, got %d", len(snap))
	}
	if snap[0] != e.blocks[0] {
		t.Fatalf("completed block should be shared by reference")
	}
	if snap[1] == e.blocks[1] {
		t.Fatalf("growing block should be cloned, not shared")
	}

	// Mutating the live encoder after the snapshot must not affect it.
	e.Append([]byte{9, 9, 9, 9, 9, 9})
	if len(snap[1].Bytes()) != 2 {
		t.Fatalf("snapshot's cloned block should be frozen at 2 bytes, got %d", len(snap[1].Bytes()))
	}
}

func TestReadFrameHeaderBadFrame(t *testing.T) {
	e := newEncoder(DefaultBlockSize, false)
	tok := e.BeginFrame(1, 0)
	w := binary.NewWriter(e)
	w.Uint32(1)
	e.FinishFrame(tok)
	// Corrupt the payload-length field to claim far more than is present.
	blk := e.blocks[0]
	blk.data[16] = 0xFF
	blk.data[17] = 0xFF
	blk.data[18] = 0xFF
	blk.data[19] = 0xFF

	d := NewDecoder([]*Block{blk}, arena.New())
	_, err := ReadFrameHeader(d)
	if err != BadFrame {
		t.Fatalf("expected BadFrame, got %v", err)
	}
}

func TestReadFrameHeaderEndOfStream(t *testing.T) {
	d := NewDecoder(nil, arena.New())
	_, err := ReadFrameHeader(d)
	if err != EndOfStream {
		t.Fatalf("expected EndOfStream, got %v", err)
	}
}

func TestNewBlockFromBytesDecodesDirectly(t *testing.T) {
	e := newEncoder(DefaultBlockSize, false)
	tok := e.BeginFrame(3, 0)
	w := binary.NewWriter(e)
	w.Uint32(99)
	e.FinishFrame(tok)

	blk := NewBlockFromBytes(e.Bytes())
	d := NewDecoder([]*Block{blk}, arena.New())
	hdr, err := ReadFrameHeader(d)
	if err != nil {
		t.Fatalf("ReadFrameHeader: %v", err)
	}
	if hdr.Opcode != 3 {
		t.Fatalf("Opcode: got %d", hdr.Opcode)
	}
	if got := d.R().Uint32(); got != 99 {
		t.Fatalf("payload: got %d", got)
	}
}

func TestEmptyTraceIsImmediateEndOfStream(t *testing.T) {
	d := NewDecoder([]*Block{NewBlockFromBytes(nil)}, arena.New())
	if d.DataLeft() != 0 {
		t.Fatalf("expected 0 bytes left on an empty trace, got %d", d.DataLeft())
	}
	_, err := ReadFrameHeader(d)
	if err != EndOfStream {
		t.Fatalf("expected EndOfStream on an empty trace, got %v", err)
	}
}
