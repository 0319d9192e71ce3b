// Package fraction defines a rational number fixture whose order compares
// values, not field tuples: 1/3 equals 2/6.
package fraction

import (
	"fmt"

	"github.com/Anstapen/LearnSTL/order"
)

type Fraction struct {
	num int64
	den int64
}

// New builds num/den. The sign is normalized onto the numerator so the
// denominator is always positive. A zero denominator panics.
func New(num, den int64) Fraction {
	if den == 0 {
		panic("fraction: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Fraction{num: num, den: den}
}

func (f Fraction) Num() int64 { return f.num }
func (f Fraction) Den() int64 { return f.den }

// Compare is the cross-multiplied three-way comparison: a/b vs c/d is
// a*d vs c*b. Both denominators are positive, so the sign carries over.
func (f Fraction) Compare(o Fraction) order.Ordering {
	return order.Of(f.num*o.den, o.num*f.den)
}

func (f Fraction) Equal(o Fraction) bool { return f.Compare(o) == order.Equal }
func (f Fraction) Less(o Fraction) bool  { return f.Compare(o) == order.Less }

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}
