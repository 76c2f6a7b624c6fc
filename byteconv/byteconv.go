// Package byteconv splits fixed-width integers into their constituent bytes
// and assembles them back again.
//
// The committed baseline layout is least-significant byte first; Reversed
// emits the same bytes most-significant byte first. Byte extraction is done
// with explicit width-specific shifting, never by reinterpreting a value's
// memory, so padding and representation never leak into the output.
package byteconv

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/MiddleMan5/Serialization/seq"
)

// Order selects the order in which a value's bytes are emitted.
type Order int

const (
	// Native emits bytes least-significant first, the baseline layout.
	Native Order = iota

	// Reversed emits bytes most-significant first.
	Reversed
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case Native:
		return "native"
	case Reversed:
		return "reversed"
	default:
		return fmt.Sprintf("Order(%v)", int(o))
	}
}

var (
	// ErrNarrow is returned when a destination type is too narrow to hold
	// the bytes being assembled into it. It is wrapped; check for it with
	// errors.Is.
	ErrNarrow = errors.New("destination too narrow")

	// ErrRange is returned when a byte count or offset exceeds the
	// available data. It is wrapped.
	ErrRange = errors.New("out of range")
)

// Integer is the set of fixed-width integer types that can be split into
// bytes and assembled from them.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the byte width of T.
func Width[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Split returns the bytes of v as a Sequence of Width[T]() single-byte
// elements, in the given Order.
func Split[T Integer](v T, order Order) seq.Sequence[byte] {
	w := Width[T]()
	buff := make([]byte, w)
	put(buff, uint64(v))

	if order == Reversed {
		for i, j := 0, w-1; i < j; i, j = i+1, j-1 {
			buff[i], buff[j] = buff[j], buff[i]
		}
	}

	return seq.Of(buff...)
}

// Reverse is shorthand for Split(v, Reversed).
func Reverse[T Integer](v T) seq.Sequence[byte] {
	return Split(v, Reversed)
}

// SplitSeq splits every element of s in the given Order and concatenates the
// results with seq.Merge, preserving element order. The result's length is
// s.Len() * Width[T]().
func SplitSeq[T Integer](s seq.Sequence[T], order Order) seq.Sequence[byte] {
	if s.Len() == 0 {
		return seq.Of[byte]()
	}

	merged := Split(s.At(0), order)
	for i := 1; i < s.Len(); i++ {
		merged = seq.Merge(merged, Split(s.At(i), order))
	}
	return merged
}

// Assemble reconstructs a T from every byte of s, accumulating
// least-significant first; s.At(0) becomes the low byte.
//
// T must be wide enough to hold s.Len() bytes; if it isn't, Assemble returns
// a wrapped ErrNarrow before accumulating anything.
func Assemble[T Integer](s seq.Sequence[byte]) (T, error) {
	return AssembleN[T](s.Slice(), s.Len())
}

// AssembleN reconstructs a T from the first count bytes of buff,
// accumulating least-significant first.
//
// count bytes must fit in T and be present in buff; violating either is an
// error, never a silent truncation.
func AssembleN[T Integer](buff []byte, count int) (T, error) {
	var v T
	if count < 0 || count > len(buff) {
		return v, fmt.Errorf("%w: %v bytes requested, %v available", ErrRange, count, len(buff))
	}
	if count > Width[T]() {
		return v, fmt.Errorf("%w: %v bytes into a %v byte type", ErrNarrow, count, Width[T]())
	}

	var n uint64
	for i := 0; i < count; i++ {
		n |= uint64(buff[i]) << (8 * i)
	}
	return T(n), nil
}

// Extract pulls a T out of the wider integral value v by logically shifting
// right byteOffset bytes and narrowing. It never goes through an explicit
// byte sequence.
//
// byteOffset must not exceed the byte width of S.
func Extract[T, S Integer](v S, byteOffset int) (T, error) {
	if byteOffset < 0 || byteOffset > Width[S]() {
		return 0, fmt.Errorf("%w: byte offset %v into a %v byte value", ErrRange, byteOffset, Width[S]())
	}

	n := uint64(v) & mask(Width[S]())
	return T(n >> (8 * byteOffset)), nil
}

// put writes the low len(buff) bytes of n to buff through the
// width-specific primitives.
func put(buff []byte, n uint64) {
	switch len(buff) {
	case 1:
		buff[0] = uint8(n)
	case 2:
		PutUint16(buff, uint16(n))
	case 4:
		PutUint32(buff, uint32(n))
	case 8:
		PutUint64(buff, n)
	default:
		panic(fmt.Errorf("unsupported integer width %v", len(buff)))
	}
}

// mask returns a mask of the low width bytes.
func mask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*width) - 1
}
