package codec

import (
	"encoding/binary"
	"sync"
)

// Encoder is a growable, block-chunked byte sink (§3, §4.2). It satisfies
// core/binary.ByteSink so a binary.Writer can be layered directly on top.
// An Encoder with a non-nil lock is what the spec calls a "locked" encoder
// (the global stream, shared across threads); one with a nil lock is
// "normal" (a per-command-buffer stream, single writer by Vulkan's own
// rules). Lock/Unlock are no-ops on a normal encoder.
type Encoder struct {
	blockSize int
	blocks    []*Block
	total     int
	lock      *sync.Mutex
}

func newEncoder(blockSize int, locked bool) *Encoder {
	e := &Encoder{blockSize: blockSize}
	if locked {
		e.lock = &sync.Mutex{}
	}
	return e
}

// Lock acquires the encoder's mutex, if it has one. The serializer holds it
// for the duration of one command's writes (§4.2, §5).
func (e *Encoder) Lock() {
	if e.lock != nil {
		e.lock.Lock()
	}
}

// Unlock releases the encoder's mutex, if it has one.
func (e *Encoder) Unlock() {
	if e.lock != nil {
		e.lock.Unlock()
	}
}

func (e *Encoder) currentBlock() *Block {
	if len(e.blocks) == 0 || e.blocks[len(e.blocks)-1].Remaining() == 0 {
		bs := e.blockSize
		if bs <= 0 {
			bs = DefaultBlockSize
		}
		e.blocks = append(e.blocks, newBlock(bs))
	}
	return e.blocks[len(e.blocks)-1]
}

// reserve ensures the current block has at least n bytes of contiguous
// free space, starting a fresh block if not. It is used before writing a
// frame header so the header's reserved length field is never split across
// two blocks and can be patched in place later.
func (e *Encoder) reserve(n int) {
	if len(e.blocks) > 0 && e.blocks[len(e.blocks)-1].Remaining() >= n {
		return
	}
	bs := e.blockSize
	if bs <= 0 {
		bs = DefaultBlockSize
	}
	if n > bs {
		bs = n
	}
	e.blocks = append(e.blocks, newBlock(bs))
}

// Append implements core/binary.ByteSink, splitting b across blocks as
// needed (§4.2: "appends n*sizeof(T) bytes").
func (e *Encoder) Append(b []byte) {
	for len(b) > 0 {
		blk := e.currentBlock()
		n := blk.Remaining()
		if n > len(b) {
			n = len(b)
		}
		blk.data = append(blk.data, b[:n]...)
		b = b[n:]
		e.total += n
	}
}

// Reset discards all appended bytes and restarts at the head (§4.2: used by
// the recorder when a command buffer is re-begun or its pool is reset).
func (e *Encoder) Reset() {
	e.blocks = e.blocks[:0]
	e.total = 0
}

// Len reports the total number of bytes appended since the last Reset.
func (e *Encoder) Len() int { return e.total }

// Bytes flattens the encoder's blocks into one contiguous slice. Intended
// for tests and for writing a completed stream to a file; the live encoder
// itself never needs to flatten.
func (e *Encoder) Bytes() []byte {
	out := make([]byte, 0, e.total)
	for _, b := range e.blocks {
		out = append(out, b.data...)
	}
	return out
}

// Snapshot returns the block list frozen at this instant: every completed
// block is shared by reference (only FinishFrame's patch of an open frame's
// length field can still write into one) and the
// current, possibly still-growing, block is deep-copied (§4.7's "snapshot
// is taken by block cloning so the original encoder can continue to grow").
func (e *Encoder) Snapshot() []*Block {
	if len(e.blocks) == 0 {
		return nil
	}
	out := make([]*Block, len(e.blocks))
	copy(out, e.blocks)
	last := len(out) - 1
	out[last] = out[last].clone()
	return out
}

// frameToken identifies the reserved length field of an in-progress frame,
// so FinishFrame can patch the true payload length back in (§4.3 steps 2
// and 6: "reserved-for-size" then "commits the frame size into the reserved
// header slot").
type frameToken struct {
	block       *Block
	lenOffset   int
	totalAtBody int
}

// BeginFrame writes a frame header with opcode and flags and a zeroed
// length field, returning a token to pass to FinishFrame once the payload
// has been written.
func (e *Encoder) BeginFrame(opcode, flags uint64) frameToken {
	e.reserve(24)
	blk := e.currentBlock()
	lenOffset := len(blk.data)
	var hdr [24]byte
	binary.LittleEndian.PutUint64(hdr[0:8], opcode)
	binary.LittleEndian.PutUint64(hdr[8:16], flags)
	e.Append(hdr[:])
	return frameToken{block: blk, lenOffset: lenOffset + 16, totalAtBody: e.total}
}

// FinishFrame patches the payload length recorded since BeginFrame into the
// reserved header slot.
func (e *Encoder) FinishFrame(tok frameToken) {
	length := uint64(e.total - tok.totalAtBody)
	binary.LittleEndian.PutUint64(tok.block.data[tok.lenOffset:tok.lenOffset+8], length)
}

// Stream is the set of encoders backing one trace: a single locked global
// encoder (key 0) and a map of unlocked per-command-buffer encoders (any
// other key), matching §4.2's get_encoder/get_locked_encoder split and
// §4.7's per-buffer recorder registry.
type Stream struct {
	blockSize int
	global    *Encoder

	mu        sync.Mutex
	perBuffer map[uint64]*Encoder
}

// NewStream constructs a Stream whose encoders chunk in blockSize
// increments (DefaultBlockSize if zero or negative).
func NewStream(blockSize int) *Stream {
	return &Stream{
		blockSize: blockSize,
		global:    newEncoder(blockSize, true),
		perBuffer: map[uint64]*Encoder{},
	}
}

// GlobalEncoder returns the shared, locked global-stream encoder.
func (s *Stream) GlobalEncoder() *Encoder { return s.global }

// Encoder returns the encoder for key: the global encoder when key is 0,
// otherwise the (lazily created) unlocked per-buffer encoder for that key.
func (s *Stream) Encoder(key uint64) *Encoder {
	if key == 0 {
		return s.global
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.perBuffer[key]
	if !ok {
		e = newEncoder(s.blockSize, false)
		s.perBuffer[key] = e
	}
	return e
}

// ResetEncoder resets the per-key encoder in place (vkBeginCommandBuffer,
// vkResetCommandBuffer, pool reset — §4.7). A no-op if key is unused.
func (s *Stream) ResetEncoder(key uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.perBuffer[key]; ok {
		e.Reset()
	}
}

// RemoveEncoder drops the per-key encoder entirely (vkFreeCommandBuffers —
// §4.7). A no-op if key is unused.
func (s *Stream) RemoveEncoder(key uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.perBuffer, key)
}
