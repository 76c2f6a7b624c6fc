// Package seq provides fixed-length sequences of arbitrarily typed elements.
//
// A Sequence's length is set at construction and never changes; elements
// cannot be added, removed or replaced afterwards. Constructors copy their
// input, so a Sequence never aliases caller-owned memory.
//
// Sequences of different element types cannot be merged or compared;
// the type parameter makes that a compile-time error rather than a
// runtime check.
package seq

import (
	"errors"
	"fmt"
)

// ErrRange is returned when a build or slice asks for more elements than the
// given range holds. It is wrapped; check for it with errors.Is.
var ErrRange = errors.New("out of range")

// Sequence is an ordered, fixed-length container of elements of type T.
type Sequence[T any] struct {
	elems []T
}

// Of returns a Sequence holding exactly the given elements, in order.
func Of[T any](elems ...T) Sequence[T] {
	s := Sequence[T]{elems: make([]T, len(elems))}
	copy(s.elems, elems)
	return s
}

// Build returns a Sequence of the first length elements of src.
// It is shorthand for BuildRange(src, 0, length).
func Build[T any](src []T, length int) (Sequence[T], error) {
	return BuildRange(src, 0, length)
}

// BuildRange returns a Sequence of the elements src[first:last].
//
// The range is half-open; the element at last is not included. If the range
// does not lie within src, BuildRange returns a wrapped ErrRange.
// It never pads the output with sentinel values.
func BuildRange[T any](src []T, first, last int) (Sequence[T], error) {
	if first < 0 || last < first || last > len(src) {
		return Sequence[T]{}, fmt.Errorf(
			"%w: building [%v:%v) from %v elements",
			ErrRange, first, last, len(src),
		)
	}

	s := Sequence[T]{elems: make([]T, last-first)}
	copy(s.elems, src[first:last])
	return s, nil
}

// Merge returns the concatenation of the given Sequences, in argument order.
// The result's length is the sum of the input lengths.
//
// Merge folds pairwise, left to right, and is associative;
// Merge(Merge(a, b), c) and Merge(a, b, c) are elementwise equal.
func Merge[T any](a, b Sequence[T], more ...Sequence[T]) Sequence[T] {
	length := a.Len() + b.Len()
	for _, s := range more {
		length += s.Len()
	}

	merged := Sequence[T]{elems: make([]T, 0, length)}
	merged.elems = append(merged.elems, a.elems...)
	merged.elems = append(merged.elems, b.elems...)
	for _, s := range more {
		merged.elems = append(merged.elems, s.elems...)
	}
	return merged
}

// Len returns the number of elements in the Sequence.
func (s Sequence[T]) Len() int {
	return len(s.elems)
}

// At returns the element at index i.
// It panics if i is out of range; indexing past a fixed length is
// programmer error, not an input condition.
func (s Sequence[T]) At(i int) T {
	return s.elems[i]
}

// Slice returns the elements as a new slice. The Sequence is unaffected by
// mutation of the returned slice.
func (s Sequence[T]) Slice() []T {
	elems := make([]T, len(s.elems))
	copy(elems, s.elems)
	return elems
}

// Sub returns the Sequence of elements [first:last), for pulling a
// positional field out of a larger buffer. If the range does not lie within
// s, Sub returns a wrapped ErrRange.
func (s Sequence[T]) Sub(first, last int) (Sequence[T], error) {
	return BuildRange(s.elems, first, last)
}

// Equal reports whether a and b have the same length and elementwise equal
// contents.
func Equal[T comparable](a, b Sequence[T]) bool {
	if len(a.elems) != len(b.elems) {
		return false
	}
	for i := range a.elems {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}
