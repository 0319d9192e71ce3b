// Package seq collects in-place and copying algorithms over slices. All
// functions operate on caller-owned data and allocate nothing beyond the
// documented result.
package seq

import (
	"cmp"
	"slices"

	"github.com/Anstapen/LearnSTL/search"
)

// Filter returns a new slice holding the elements of s that satisfy keep,
// in their original order.
func Filter[S ~[]E, E any](s S, keep func(E) bool) []E {
	out := make([]E, 0, len(s))
	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Map returns a new slice with f applied to every element of s.
func Map[E, R any](s []E, f func(E) R) []R {
	out := make([]R, len(s))
	for i, e := range s {
		out[i] = f(e)
	}
	return out
}

// Apply replaces every element of s with f(element), in place.
func Apply[S ~[]E, E any](s S, f func(E) E) {
	for i, e := range s {
		s[i] = f(e)
	}
}

// CountFunc returns the number of elements of s satisfying pred.
func CountFunc[S ~[]E, E any](s S, pred func(E) bool) int {
	n := 0
	for _, e := range s {
		if pred(e) {
			n++
		}
	}
	return n
}

// Difference returns the elements of a that do not occur in b, keeping
// a's order. Quadratic; meant for the small fixture inputs.
func Difference[S ~[]E, E comparable](a, b S) []E {
	return Filter(a, func(e E) bool { return !slices.Contains(b, e) })
}

// Span returns the ascending integers from from through to, inclusive.
func Span(from, to int) []int {
	if to < from {
		return nil
	}
	out := make([]int, to-from+1)
	for i := range out {
		out[i] = from + i
	}
	return out
}

// Reverse reverses s in place.
func Reverse[S ~[]E, E any](s S) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Reversed returns a reversed copy of s.
func Reversed[S ~[]E, E any](s S) []E {
	out := make([]E, len(s))
	for i, e := range s {
		out[len(s)-1-i] = e
	}
	return out
}

// CopyWithin copies n elements starting at src onto the positions
// starting at dst within the same slice. Overlap is safe; the copy is
// clipped at the end of the slice.
func CopyWithin[S ~[]E, E any](s S, dst, src, n int) {
	copy(s[dst:], s[src:src+n])
}

// Rotate left-rotates s by k positions, so s[k] becomes the first
// element. Negative k rotates right. O(n), in place.
func Rotate[S ~[]E, E any](s S, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	if k < 0 {
		k += len(s)
	}
	Reverse(s[:k])
	Reverse(s[k:])
	Reverse(s)
}

// Slide moves the block s[first:last] so that it either begins at to
// (when to < first) or ends at to (when to > last), shifting the
// displaced elements without changing their relative order. It returns
// the block's new bounds. A to inside [first, last] leaves s unchanged.
func Slide[S ~[]E, E any](s S, first, last, to int) (int, int) {
	n := last - first
	switch {
	case to < first:
		Rotate(s[to:last], first-to)
		return to, to + n
	case to > last:
		Rotate(s[first:to], n)
		return to - n, to
	}
	return first, last
}

// StablePartition reorders s so that every element satisfying pred
// precedes every element that does not, preserving the relative order
// within both groups. It returns the index of the first element of the
// second group. O(n log n) moves, no allocation.
func StablePartition[S ~[]E, E any](s S, pred func(E) bool) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	if n == 1 {
		if pred(s[0]) {
			return 1
		}
		return 0
	}

	mid := n / 2
	left := StablePartition(s[:mid], pred)
	right := mid + StablePartition(s[mid:], pred)

	// s[left:mid] fails pred, s[mid:right] satisfies it; swap the two
	// blocks while keeping each one's internal order.
	Rotate(s[left:right], mid-left)
	return left + (right - mid)
}

// RemoveFunc removes the elements of s satisfying pred, compacting the
// survivors in place, and returns the shortened slice. The tail of the
// original slice is cleared.
func RemoveFunc[S ~[]E, E any](s S, pred func(E) bool) S {
	kept := s[:0]
	for _, e := range s {
		if !pred(e) {
			kept = append(kept, e)
		}
	}
	clear(s[len(kept):])
	return kept
}

// InsertSorted inserts v into the sorted slice s at its lower bound,
// keeping s sorted, and returns the grown slice.
func InsertSorted[S ~[]E, E cmp.Ordered](s S, v E) S {
	return slices.Insert(s, search.LowerBound(s, v), v)
}

// InsertSortedFunc is InsertSorted under a caller-supplied comparator.
func InsertSortedFunc[S ~[]E, E any](s S, v E, cmp func(E, E) int) S {
	return slices.Insert(s, search.LowerBoundFunc(s, v, cmp), v)
}

// Fold reduces s from the left: acc = f(acc, element), starting at init.
func Fold[E, A any](s []E, init A, f func(A, E) A) A {
	acc := init
	for _, e := range s {
		acc = f(acc, e)
	}
	return acc
}

// MoveAll appends all elements of src to dst and empties src, returning
// both. The closest slice analog of moving elements between containers:
// afterwards src has length zero and its backing array is zeroed.
func MoveAll[S ~[]E, E any](dst, src S) (S, S) {
	dst = append(dst, src...)
	clear(src)
	return dst, src[:0]
}
