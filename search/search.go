// Package search implements binary searches over sorted slices.
package search

import "cmp"

// LowerBound returns the first index i in s with s[i] >= v, or len(s) if
// the value is greater than every element. s must be sorted ascending; an
// unsorted s yields an unspecified index, but never a panic or an
// out-of-range read, and the search still terminates after O(log n) steps.
//
// Duplicates resolve to the leftmost qualifying index.
func LowerBound[S ~[]E, E cmp.Ordered](s S, v E) int {
	return lowerBound(0, len(s), func(i int) bool { return s[i] >= v })
}

// LowerBoundFunc is LowerBound under a caller-supplied comparator, for
// element types without a built-in order. cmp must return a negative
// value when e sorts before t, zero when equivalent, positive after, and
// s must be sorted ascending under the same comparator.
func LowerBoundFunc[S ~[]E, E, T any](s S, t T, cmp func(E, T) int) int {
	return lowerBound(0, len(s), func(i int) bool { return cmp(s[i], t) >= 0 })
}

// lowerBound narrows [first, last) by recursive halving. ge reports
// whether the element at an index is >= the search value.
//
// Invariant: last is either the global end or an index already known to
// satisfy ge, so the base case may return last when the span is empty or
// its single element fails the test. A qualifying midpoint therefore
// stays in play as the upper bound of the narrowed span rather than
// being excluded outright; the one-element base case settles it.
func lowerBound(first, last int, ge func(int) bool) int {
	if last-first <= 1 {
		if first < last && ge(first) {
			return first
		}
		return last
	}
	mid := first + (last-first)/2
	if ge(mid) {
		return lowerBound(first, mid, ge)
	}
	return lowerBound(mid, last, ge)
}

// Find locates v in the sorted slice s. On a hit it returns the matching
// index and true; otherwise it returns the index where v would be
// inserted to keep s sorted, and false.
func Find[S ~[]E, E cmp.Ordered](s S, v E) (int, bool) {
	left, right := 0, len(s)
	for left < right {
		mid := left + (right-left)/2
		switch {
		case s[mid] < v:
			left = mid + 1
		case s[mid] > v:
			right = mid
		default:
			return mid, true
		}
	}
	return left, false
}
