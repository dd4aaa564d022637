package codec

// FrameHeader is one record's fixed preamble (§3, §6): a stable opcode, a
// flags bitset (currently only MidExecution), and the payload length that
// follows.
type FrameHeader struct {
	Opcode        uint64
	Flags         uint64
	PayloadLength uint64
}

// FlagMidExecution marks a frame captured after tracing began mid-run,
// when state had to be synthesised rather than observed from creation
// (§6: "flags ... bitset, currently { MID_EXECUTION = 1 }").
const FlagMidExecution uint64 = 1

// ReadFrameHeader decodes one frame header from d and validates that the
// declared payload length does not exceed the bytes actually available,
// per §4.2's BadFrame rule.
func ReadFrameHeader(d *Decoder) (FrameHeader, error) {
	h := FrameHeader{
		Opcode:        d.R().Uint64(),
		Flags:         d.R().Uint64(),
		PayloadLength: d.R().Uint64(),
	}
	if d.Err() != nil {
		return h, EndOfStream
	}
	if uint64(d.DataLeft()) < h.PayloadLength {
		return h, BadFrame
	}
	return h, nil
}
