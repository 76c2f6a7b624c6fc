// Package hdlc implements a fixed 14-byte example frame format built on the
// seq and byteconv packages: a 3-byte header, an opaque 8-byte payload and a
// 3-byte checksum footer.
//
//	offset  bytes  field
//	0       1      leading flag (0xFE)
//	1       1      address
//	2       1      control
//	3       8      opaque payload
//	11      2      checksum, least-significant byte first
//	13      1      trailing flag (0xFE)
//
// There is no length prefix, no versioning and no escaping of flag bytes
// inside the payload. A payload byte equal to Flag is emitted as-is, so a
// real link layer must add byte stuffing before this format can delimit
// frames on a shared medium.
package hdlc

import (
	"errors"
	"fmt"

	"github.com/MiddleMan5/Serialization/byteconv"
	"github.com/MiddleMan5/Serialization/seq"
)

// Flag is the byte delimiting both ends of a frame.
const Flag uint8 = 0xFE

// Component sizes, in bytes.
const (
	HeaderSize  = 3
	PayloadSize = 8
	FooterSize  = 3

	// FrameSize is the fixed length of a serialized frame.
	FrameSize = HeaderSize + PayloadSize + FooterSize
)

var (
	// ErrLength is returned when a buffer is not exactly FrameSize bytes.
	// It is wrapped; check for it with errors.Is.
	ErrLength = errors.New("wrong frame length")

	// ErrMalformed is returned when a buffer of the right length cannot be
	// a valid frame; a missing flag byte or a checksum mismatch. It is
	// wrapped.
	ErrMalformed = errors.New("malformed frame")
)

// Header is the fixed leading portion of a frame.
// It is a plain value; construct it once and copy it freely.
type Header struct {
	Address uint8
	Control uint8
}

// Serialize returns the header's 3-byte form: flag, address, control.
func (h Header) Serialize() seq.Sequence[byte] {
	return seq.Merge(
		byteconv.Split(Flag, byteconv.Native),
		byteconv.Split(h.Address, byteconv.Native),
		byteconv.Split(h.Control, byteconv.Native),
	)
}

// Payload is the opaque 8-byte information block of a frame.
type Payload [PayloadSize]byte

// Serialize returns the payload's bytes, unchanged.
func (p Payload) Serialize() seq.Sequence[byte] {
	return seq.Of(p[:]...)
}

// Uint64 reconstructs the payload as a little-endian 64-bit integer,
// reproducing exactly the value a Split of that integer wrote into it.
func (p Payload) Uint64() uint64 {
	return byteconv.Uint64(p[:])
}

// Scalar reinterprets the leading bytes of the payload as a value of type T.
// Any integer type can be filled; a width-W type reads the first W bytes.
func Scalar[T byteconv.Integer](p Payload) T {
	v, err := byteconv.AssembleN[T](p[:], byteconv.Width[T]())
	if err != nil {
		panic("impossible")
	}
	return v
}

// Footer is the trailing portion of a frame; a 16-bit frame check sequence
// followed by the closing flag. Construct it with NewFooter or FooterWith so
// the check sequence is computed exactly once, from the payload it covers.
type Footer struct {
	FCS uint16
}

// NewFooter returns a Footer whose check sequence covers p, computed with
// the format's reference checksum.
func NewFooter(p Payload) Footer {
	return FooterWith(p, ReferenceChecksum)
}

// FooterWith returns a Footer whose check sequence covers p, computed with
// the given checksum.
func FooterWith(p Payload, sum Checksum16) Footer {
	return Footer{FCS: sum(p[:])}
}

// Serialize returns the footer's 3-byte form: check sequence
// least-significant byte first, then the closing flag.
func (f Footer) Serialize() seq.Sequence[byte] {
	return seq.Merge(
		byteconv.Split(f.FCS, byteconv.Native),
		byteconv.Split(Flag, byteconv.Native),
	)
}

// Frame is one complete protocol unit. It is a plain immutable value;
// construct it with New or NewWith and it never changes afterwards.
type Frame struct {
	Header  Header
	Payload Payload
	Footer  Footer
}

// New returns a Frame over the given header and payload, with the footer
// computed from the payload using the format's reference checksum.
func New(h Header, p Payload) Frame {
	return NewWith(h, p, ReferenceChecksum)
}

// NewWith is New with the footer computed by the given checksum.
func NewWith(h Header, p Payload, sum Checksum16) Frame {
	return Frame{
		Header:  h,
		Payload: p,
		Footer:  FooterWith(p, sum),
	}
}

// Serialize returns the frame's full FrameSize-byte form; the merge of the
// header, payload and footer serializations.
func (f Frame) Serialize() seq.Sequence[byte] {
	return seq.Merge(
		f.Header.Serialize(),
		f.Payload.Serialize(),
		f.Footer.Serialize(),
	)
}

// Bytes is shorthand for Serialize().Slice().
func (f Frame) Bytes() []byte {
	return f.Serialize().Slice()
}

// Parse decomposes a serialized frame, verifying both flag bytes and the
// check sequence with the format's reference checksum.
func Parse(buff []byte) (Frame, error) {
	return ParseWith(buff, ReferenceChecksum)
}

// ParseWith is Parse with the check sequence verified by the given checksum.
// It must match the checksum the frame was built with.
//
// The buffer must be exactly FrameSize bytes; there is no resynchronisation
// or partial decode. On any failure the returned error wraps ErrLength or
// ErrMalformed and the returned Frame is the zero value.
func ParseWith(buff []byte, sum Checksum16) (Frame, error) {
	if len(buff) != FrameSize {
		return Frame{}, fmt.Errorf("%w: want %v bytes, have %v", ErrLength, FrameSize, len(buff))
	}
	raw, err := seq.Build(buff, FrameSize)
	if err != nil {
		panic("impossible")
	}

	if raw.At(0) != Flag || raw.At(FrameSize-1) != Flag {
		return Frame{}, fmt.Errorf(
			"%w: frame flags %#02x %#02x, want %#02x",
			ErrMalformed, raw.At(0), raw.At(FrameSize-1), Flag,
		)
	}

	var f Frame
	f.Header = Header{Address: raw.At(1), Control: raw.At(2)}

	payload, err := raw.Sub(HeaderSize, HeaderSize+PayloadSize)
	if err != nil {
		panic("impossible")
	}
	copy(f.Payload[:], payload.Slice())

	fcsBytes, err := raw.Sub(HeaderSize+PayloadSize, FrameSize-1)
	if err != nil {
		panic("impossible")
	}
	fcs, err := byteconv.Assemble[uint16](fcsBytes)
	if err != nil {
		panic("impossible")
	}

	if want := sum(f.Payload[:]); fcs != want {
		return Frame{}, fmt.Errorf(
			"%w: check sequence %#04x, want %#04x",
			ErrMalformed, fcs, want,
		)
	}
	f.Footer = Footer{FCS: fcs}

	return f, nil
}
