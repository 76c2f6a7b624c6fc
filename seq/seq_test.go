package seq_test

import (
	"errors"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/MiddleMan5/Serialization/seq"
)

func TestBuildRange(t *testing.T) {
	src := []int{10, 11, 12, 13, 14}

	testCases := []struct {
		desc        string
		first, last int
		want        []int
		err         error
	}{
		{desc: "whole range", first: 0, last: 5, want: []int{10, 11, 12, 13, 14}},
		{desc: "prefix", first: 0, last: 3, want: []int{10, 11, 12}},
		{desc: "interior", first: 1, last: 4, want: []int{11, 12, 13}},
		{desc: "empty", first: 2, last: 2, want: []int{}},
		{desc: "past end", first: 0, last: 6, err: seq.ErrRange},
		{desc: "negative first", first: -1, last: 2, err: seq.ErrRange},
		{desc: "inverted", first: 3, last: 1, err: seq.ErrRange},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			s, err := seq.BuildRange(src, tC.first, tC.last)
			if tC.err != nil {
				if !errors.Is(err, tC.err) {
					t.Fatalf("wrong error, wanted: %v, got %v", tC.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			td.Cmp(t, s.Len(), len(tC.want))
			td.Cmp(t, s.Slice(), tC.want)
		})
	}
}

func TestBuildShorthand(t *testing.T) {
	src := []byte{1, 2, 3, 4}

	short, err := seq.Build(src, 3)
	if err != nil {
		t.Fatal(err)
	}
	long, err := seq.BuildRange(src, 0, 3)
	if err != nil {
		t.Fatal(err)
	}

	td.Cmp(t, short.Slice(), long.Slice())
}

func TestBuildNeverPads(t *testing.T) {
	// The reference behaviour on a short range was to fill the output with
	// the element type's maximum value. A short range must fail instead.
	src := []byte{1, 2}

	_, err := seq.Build(src, 4)
	if !errors.Is(err, seq.ErrRange) {
		t.Fatalf("wrong error, wanted: %v, got %v", seq.ErrRange, err)
	}
}

func TestBuildCopies(t *testing.T) {
	src := []int{1, 2, 3}

	s, err := seq.Build(src, 3)
	if err != nil {
		t.Fatal(err)
	}

	src[0] = 99
	td.Cmp(t, s.Slice(), []int{1, 2, 3})

	got := s.Slice()
	got[1] = 99
	td.Cmp(t, s.At(1), 2)
}

func TestMerge(t *testing.T) {
	a := seq.Of(1, 2, 3)
	b := seq.Of(4, 5)

	m := seq.Merge(a, b)

	td.Cmp(t, m.Len(), a.Len()+b.Len())

	prefix, err := m.Sub(0, a.Len())
	if err != nil {
		t.Fatal(err)
	}
	suffix, err := m.Sub(a.Len(), m.Len())
	if err != nil {
		t.Fatal(err)
	}

	if !seq.Equal(prefix, a) {
		t.Fatalf("prefix mismatch, wanted: %v, got %v", a.Slice(), prefix.Slice())
	}
	if !seq.Equal(suffix, b) {
		t.Fatalf("suffix mismatch, wanted: %v, got %v", b.Slice(), suffix.Slice())
	}
}

func TestMergeEmpty(t *testing.T) {
	a := seq.Of[byte]()
	b := seq.Of[byte](7)

	td.Cmp(t, seq.Merge(a, b).Slice(), []byte{7})
	td.Cmp(t, seq.Merge(b, a).Slice(), []byte{7})
	td.Cmp(t, seq.Merge(a, a).Len(), 0)
}

func TestMergeAssociative(t *testing.T) {
	a := seq.Of[uint8](1, 2)
	b := seq.Of[uint8](3)
	c := seq.Of[uint8](4, 5, 6)

	left := seq.Merge(seq.Merge(a, b), c)
	right := seq.Merge(a, seq.Merge(b, c))
	flat := seq.Merge(a, b, c)

	td.Cmp(t, left.Slice(), flat.Slice())
	td.Cmp(t, right.Slice(), flat.Slice())
	td.Cmp(t, flat.Slice(), []uint8{1, 2, 3, 4, 5, 6})
}

func TestSub(t *testing.T) {
	s := seq.Of("a", "b", "c", "d")

	mid, err := s.Sub(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	td.Cmp(t, mid.Slice(), []string{"b", "c"})

	_, err = s.Sub(2, 5)
	if !errors.Is(err, seq.ErrRange) {
		t.Fatalf("wrong error, wanted: %v, got %v", seq.ErrRange, err)
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		desc string
		a, b seq.Sequence[int]
		want bool
	}{
		{desc: "equal", a: seq.Of(1, 2), b: seq.Of(1, 2), want: true},
		{desc: "different lengths", a: seq.Of(1, 2), b: seq.Of(1, 2, 3), want: false},
		{desc: "different elements", a: seq.Of(1, 2), b: seq.Of(2, 1), want: false},
		{desc: "both empty", a: seq.Of[int](), b: seq.Of[int](), want: true},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			td.Cmp(t, seq.Equal(tC.a, tC.b), tC.want)
		})
	}
}
