package codec

import (
	"github.com/gfxtrace/vktrace/core/arena"
	"github.com/gfxtrace/vktrace/core/binary"
)

// EndOfStream is returned when a decode request exceeds the block list
// (§4.2, §7: "Stream corruption ... fatal to the replay").
const EndOfStream = codecErr("codec: end of stream")

// BadFrame is returned when a frame header declares more payload bytes
// than remain in the stream (§4.2).
const BadFrame = codecErr("codec: bad frame")

// ErrNotImplemented is the fatal-assert error for the custom hooks §4.8
// declares deliberately unimplemented.
const ErrNotImplemented = codecErr("codec: hook not implemented")

type codecErr string

func (e codecErr) Error() string { return string(e) }

// blockSource adapts a snapshot []*Block to core/binary.ByteSource,
// advancing a (block index, offset) read cursor across block boundaries.
type blockSource struct {
	blocks []*Block
	bi     int
	off    int
}

func (s *blockSource) Next(n int) []byte {
	if n <= 0 {
		return nil
	}
	if s.bi < len(s.blocks) {
		cur := s.blocks[s.bi].data
		if s.off+n <= len(cur) {
			out := cur[s.off : s.off+n]
			s.off += n
			if s.off == len(cur) {
				s.bi++
				s.off = 0
			}
			return out
		}
	}
	out := make([]byte, 0, n)
	need := n
	for need > 0 && s.bi < len(s.blocks) {
		cur := s.blocks[s.bi].data
		avail := len(cur) - s.off
		if avail <= 0 {
			s.bi++
			s.off = 0
			continue
		}
		take := avail
		if take > need {
			take = need
		}
		out = append(out, cur[s.off:s.off+take]...)
		s.off += take
		need -= take
		if s.off == len(cur) {
			s.bi++
			s.off = 0
		}
	}
	return out
}

func (s *blockSource) remaining() int {
	total := 0
	if s.bi < len(s.blocks) {
		total += len(s.blocks[s.bi].data) - s.off
		for i := s.bi + 1; i < len(s.blocks); i++ {
			total += len(s.blocks[i].data)
		}
	}
	return total
}

// Decoder is the dual of Encoder (§4.2): it wraps a frozen block snapshot,
// exposes a typed binary.Reader over it, and hands out arena storage for
// decoded variable-length data whose lifetime matches the command being
// decoded.
type Decoder struct {
	r     binary.Reader
	src   *blockSource
	arena *arena.Arena
}

// NewDecoder wraps blocks (typically an Encoder.Snapshot or a stream read
// from a file) for decoding, using a to satisfy get_typed_memory requests.
func NewDecoder(blocks []*Block, a *arena.Arena) *Decoder {
	src := &blockSource{blocks: blocks}
	return &Decoder{r: binary.NewReader(src), src: src, arena: a}
}

// R returns the typed primitive reader generated deserializer code decodes
// scalars and arrays through.
func (d *Decoder) R() binary.Reader { return d.r }

// DataLeft exposes remaining bytes, letting a caller check for an optional
// trailing section (§4.2, and the vkEnumeratePhysicalDevices tail in §4.4).
func (d *Decoder) DataLeft() int { return d.src.remaining() }

// GetTypedMemory returns n*elemSize bytes of arena storage aligned to
// elemAlign, for decoding an array parameter into owned memory (§3, §4.4).
func (d *Decoder) GetTypedMemory(n, elemSize, elemAlign int) []byte {
	return d.arena.GetTypedMemory(n, elemSize, elemAlign)
}

// Err reports EndOfStream if any underlying read ran past the block list.
func (d *Decoder) Err() error {
	if d.r.Error() != nil {
		return EndOfStream
	}
	return nil
}
