package checked

import (
	"iter"
	"slices"

	"github.com/LerianStudio/lib-nopanic/nopanic"
)

// Slice wraps a []T with index checks whose violation branches must be
// proven dead for a strict build to link. The wrapper owns nothing: it is
// a view over the same backing array, and conversions in both directions
// are free.
//
// Go slices are mutable views, so there is no separate read-only variant;
// operations that return elements return pointers into the backing array.
type Slice[T any] struct {
	s []T
}

// From wraps s. The wrapper shares s's backing array; no copy is made.
func From[T any](s []T) Slice[T] {
	return Slice[T]{s: s}
}

// Raw returns the wrapped slice, sharing the same backing array.
func (s Slice[T]) Raw() []T {
	return s.s
}

// Len returns the number of elements.
func (s Slice[T]) Len() int {
	return len(s.s)
}

// IsEmpty reports whether the slice has no elements.
func (s Slice[T]) IsEmpty() bool {
	return len(s.s) == 0
}

// At returns a pointer to the element at index i. The caller must ensure
// i is in range; the out-of-range branch is a violation.
//
// The unsigned comparison folds the negative-index check into the length
// check, matching what the compiler's prove pass reasons about.
//
// Example:
//
//	s := checked.From(items)
//	if i < s.Len() {
//	    *s.At(i) = replacement
//	}
func (s Slice[T]) At(i int) *T {
	if uint(i) >= uint(len(s.s)) {
		nopanic.Unreachable("index out of bounds: the len is %d but the index is %d", len(s.s), i)
	}

	return &s.s[i]
}

// First returns a pointer to the first element, or ok=false when the slice
// is empty. There is no violation branch.
func (s Slice[T]) First() (*T, bool) {
	if len(s.s) == 0 {
		return nil, false
	}

	return &s.s[0], true
}

// SplitFirst returns a pointer to the first element and the rest of the
// slice, or ok=false when the slice is empty.
func (s Slice[T]) SplitFirst() (*T, []T, bool) {
	if len(s.s) == 0 {
		return nil, nil, false
	}

	return &s.s[0], s.s[1:], true
}

// SplitLast returns a pointer to the last element and the slice before it,
// or ok=false when the slice is empty.
func (s Slice[T]) SplitLast() (*T, []T, bool) {
	if len(s.s) == 0 {
		return nil, nil, false
	}

	return &s.s[len(s.s)-1], s.s[:len(s.s)-1], true
}

// Swap exchanges the elements at indexes a and b. Each index is checked
// strictly against the length, so an index equal to Len slips past the
// violation branch and hits the standard runtime check instead; the
// boundary is kept as is rather than silently tightened.
func (s Slice[T]) Swap(a, b int) {
	if uint(a) > uint(len(s.s)) {
		nopanic.Unreachable("index out of bounds: the len is %d but the index is %d", len(s.s), a)
	}

	if uint(b) > uint(len(s.s)) {
		nopanic.Unreachable("index out of bounds: the len is %d but the index is %d", len(s.s), b)
	}

	s.s[a], s.s[b] = s.s[b], s.s[a]
}

// Windows returns an iterator over all contiguous windows of length size.
// The windows overlap; a size larger than Len yields no windows. A zero
// size is a violation.
//
// Example:
//
//	for w := range checked.From(samples).Windows(2) {
//	    deltas = append(deltas, w[1]-w[0])
//	}
func (s Slice[T]) Windows(size int) iter.Seq[[]T] {
	nopanic.Assert(size != 0, "size != 0")

	return func(yield func([]T) bool) {
		for i := 0; i+size <= len(s.s); i++ {
			if !yield(s.s[i : i+size : i+size]) {
				return
			}
		}
	}
}

// Chunks returns an iterator over successive non-overlapping chunks of
// length size; the final chunk may be shorter. A zero size is a violation.
func (s Slice[T]) Chunks(size int) iter.Seq[[]T] {
	nopanic.Assert(size != 0, "size != 0")

	return slices.Chunk(s.s, size)
}

// SplitAt returns two slices covering [0, mid) and [mid, Len). The caller
// must ensure mid <= Len; the out-of-range branch is a violation.
// SplitAt(Len) is legal and returns an empty second half.
func (s Slice[T]) SplitAt(mid int) ([]T, []T) {
	if uint(mid) > uint(len(s.s)) {
		nopanic.Unreachable("index %d out of range for slice of length %d", mid, len(s.s))
	}

	return s.s[:mid:mid], s.s[mid:]
}
