// Package binary provides the typed little-endian primitive codec that the
// block-list Encoder/Decoder of package codec is built on (§3: "scalars
// little-endian").
package binary

import (
	"encoding/binary"
	"math"
)

// Writer provides methods for encoding fixed-width values to a byte sink.
// Once Error() is non-nil, all further writes are no-ops — mirroring the
// teacher's Writer contract so a long chain of field writes doesn't need a
// check after every call.
type Writer interface {
	Bool(bool)
	Uint8(uint8)
	Int8(int8)
	Uint16(uint16)
	Int16(int16)
	Uint32(uint32)
	Int32(int32)
	Uint64(uint64)
	Int64(int64)
	Float32(float32)
	Float64(float64)
	String(string)
	Data([]byte)
	Error() error
	SetError(error)
}

// Reader is the dual of Writer.
type Reader interface {
	Bool() bool
	Uint8() uint8
	Int8() int8
	Uint16() uint16
	Int16() int16
	Uint32() uint32
	Int32() int32
	Uint64() uint64
	Int64() int64
	Float32() float32
	Float64() float64
	String() string
	Data([]byte)
	Error() error
	SetError(error)
}

// ByteSink is the minimal append target a Writer needs.
type ByteSink interface {
	Append([]byte)
}

// ByteSource is the minimal read source a Reader needs.
type ByteSource interface {
	// Next returns the next n bytes, advancing the read cursor. It returns
	// fewer than n bytes (possibly zero) once the source is exhausted.
	Next(n int) []byte
}

// NewWriter wraps a ByteSink as a Writer.
func NewWriter(sink ByteSink) Writer { return &writer{sink: sink} }

// NewReader wraps a ByteSource as a Reader.
func NewReader(src ByteSource) Reader { return &reader{src: src} }

type writer struct {
	sink ByteSink
	err  error
}

func (w *writer) Error() error    { return w.err }
func (w *writer) SetError(e error) { w.err = e }

func (w *writer) put(b []byte) {
	if w.err != nil {
		return
	}
	w.sink.Append(b)
}

func (w *writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}
func (w *writer) Uint8(v uint8) { w.put([]byte{v}) }
func (w *writer) Int8(v int8)   { w.Uint8(uint8(v)) }
func (w *writer) Uint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.put(b[:])
}
func (w *writer) Int16(v int16) { w.Uint16(uint16(v)) }
func (w *writer) Uint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.put(b[:])
}
func (w *writer) Int32(v int32) { w.Uint32(uint32(v)) }
func (w *writer) Uint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.put(b[:])
}
func (w *writer) Int64(v int64)     { w.Uint64(uint64(v)) }
func (w *writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }
func (w *writer) Float64(v float64) { w.Uint64(math.Float64bits(v)) }
func (w *writer) String(v string) {
	w.Uint32(uint32(len(v)))
	w.put([]byte(v))
}
func (w *writer) Data(v []byte) { w.put(v) }

type reader struct {
	src ByteSource
	err error
}

func (r *reader) Error() error     { return r.err }
func (r *reader) SetError(e error) { r.err = e }

func (r *reader) get(n int) []byte {
	if r.err != nil {
		return make([]byte, n)
	}
	b := r.src.Next(n)
	if len(b) < n {
		r.err = ErrShortRead
		return make([]byte, n)
	}
	return b
}

func (r *reader) Bool() bool    { return r.Uint8() != 0 }
func (r *reader) Uint8() uint8  { return r.get(1)[0] }
func (r *reader) Int8() int8    { return int8(r.Uint8()) }
func (r *reader) Uint16() uint16 { return binary.LittleEndian.Uint16(r.get(2)) }
func (r *reader) Int16() int16  { return int16(r.Uint16()) }
func (r *reader) Uint32() uint32 { return binary.LittleEndian.Uint32(r.get(4)) }
func (r *reader) Int32() int32  { return int32(r.Uint32()) }
func (r *reader) Uint64() uint64 { return binary.LittleEndian.Uint64(r.get(8)) }
func (r *reader) Int64() int64  { return int64(r.Uint64()) }
func (r *reader) Float32() float32 { return math.Float32frombits(r.Uint32()) }
func (r *reader) Float64() float64 { return math.Float64frombits(r.Uint64()) }
func (r *reader) String() string {
	n := r.Uint32()
	return string(r.get(int(n)))
}
func (r *reader) Data(dst []byte) { copy(dst, r.get(len(dst))) }

// ErrShortRead is returned (via Reader.Error) when a read runs past the end
// of the underlying source.
const ErrShortRead = shortRead("binary: short read")

type shortRead string

func (e shortRead) Error() string { return string(e) }
