// Package order provides the three-way comparison vocabulary shared by the
// fixture types and the search routines.
package order

import "cmp"

// Ordering is the result of a three-way comparison. The type is sealed:
// the only values are Less, Equal and Greater.
type Ordering interface {
	ordMarker()

	// Int is the conventional numeric encoding: -1, 0 or 1.
	Int() int
	String() string
}

type ord int

func (o ord) ordMarker() {}

func (o ord) Int() int { return int(o) }

func (o ord) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	}
	return "equal"
}

const (
	Less    ord = -1
	Equal   ord = 0
	Greater ord = 1
)

// Of compares two values of an ordered type.
func Of[T cmp.Ordered](a, b T) Ordering {
	return FromInt(cmp.Compare(a, b))
}

// FromInt maps any comparator result onto the three Ordering values,
// using only the sign of c.
func FromInt(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equal
}
