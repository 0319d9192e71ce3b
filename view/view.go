// Package view provides lazy, composable adapters over slices, built on
// iter.Seq. No adapter materializes an intermediate slice; elements flow
// through the composed pipeline one at a time.
package view

import "iter"

// All yields the elements of s in order.
func All[S ~[]E, E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward yields the elements of s from last to first.
func Backward[S ~[]E, E any](s S) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Filter yields the elements of src that satisfy keep.
func Filter[E any](src iter.Seq[E], keep func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range src {
			if keep(e) && !yield(e) {
				return
			}
		}
	}
}

// Transform yields f applied to every element of src.
func Transform[E, R any](src iter.Seq[E], f func(E) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for e := range src {
			if !yield(f(e)) {
				return
			}
		}
	}
}

// Take yields at most the first n elements of src.
func Take[E any](src iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if n <= 0 {
			return
		}
		left := n
		for e := range src {
			if !yield(e) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}

// Collect drains src into a new slice.
func Collect[E any](src iter.Seq[E]) []E {
	var out []E
	for e := range src {
		out = append(out, e)
	}
	return out
}
