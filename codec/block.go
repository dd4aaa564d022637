// Package codec implements the block-list-backed Encoder/Decoder (§4.2) and
// the frame header conventions (§3, §6) the generated serializer and
// deserializer are built on.
package codec

// DefaultBlockSize is the page-sized chunk new Encoders allocate into,
// matching the arena's own default (§3: "chunked into blocks ... lets the
// encoder grow without reallocating prior bytes").
const DefaultBlockSize = 4096

// Block is one fixed-capacity chunk of an Encoder's output. New bytes are
// only ever appended to the current (last) block; the one later write into
// an earlier block is FinishFrame patching the length field of a frame
// header that BeginFrame placed there. Encoder.Snapshot shares every
// earlier block by reference (§4.7), so a snapshot taken while a frame is
// still open sees that length field change when the frame is finished.
type Block struct {
	data []byte
}

func newBlock(capacity int) *Block {
	return &Block{data: make([]byte, 0, capacity)}
}

// NewBlockFromBytes wraps an already-read byte slice (e.g. a whole trace
// file) as a single immutable Block, for feeding a Decoder directly without
// going through an Encoder.
func NewBlockFromBytes(b []byte) *Block {
	return &Block{data: b}
}

// Remaining reports free capacity in this block.
func (b *Block) Remaining() int { return cap(b.data) - len(b.data) }

// Bytes returns the block's written bytes.
func (b *Block) Bytes() []byte { return b.data }

// clone returns a Block holding an independent copy of b's written bytes,
// sized exactly to what was written (no spare capacity) so it can never be
// mistaken for the still-growing original.
func (b *Block) clone() *Block {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return &Block{data: out}
}
