package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Anstapen/LearnSTL/exercise"
	"github.com/Anstapen/LearnSTL/fraction"
	"github.com/Anstapen/LearnSTL/product"
	"github.com/Anstapen/LearnSTL/render"
	"github.com/Anstapen/LearnSTL/search"
	"github.com/Anstapen/LearnSTL/seq"
	"github.com/Anstapen/LearnSTL/view"
)

func groups() []exercise.Group {
	return []exercise.Group{
		containerGroup(),
		miscGroup(),
		viewsGroup(),
	}
}

// ======================================================================
// Slice algorithms, one exercise per primitive.

func containerGroup() exercise.Group {
	return exercise.Group{
		Name: "ContainerAlgorithm",
		Exercises: []exercise.Exercise{
			{
				Name: "Exercise 1",
				Want: "10 11 12 13 14 15 16 17 18 19 1 2 3 4 5 6 7 8 \n",
				Run: func(w io.Writer) error {
					// Append all of v1 to the end of v2.
					v1 := []int{1, 2, 3, 4, 5, 6, 7, 8}
					v2 := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

					v2 = append(v2, v1...)

					render.Seq(w, v2)
					return nil
				},
			},
			{
				Name: "Exercise 2",
				Want: "10 11 12 13 14 15 16 17 18 19 6 7 8 7 9 \n",
				Run: func(w io.Writer) error {
					// Append the elements of v1 greater than 5 to v2.
					v1 := []int{3, 1, 2, 6, 7, 8, 5, 7, 9}
					v2 := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

					v2 = append(v2, seq.Filter(v1, func(x int) bool { return x > 5 })...)

					render.Seq(w, v2)
					return nil
				},
			},
			{
				Name: "Exercise 3",
				Want: "\n10 11 12 13 14 15 16 17 18 19 1 2 3 4 5 6 7 8 9 \n",
				Run: func(w io.Writer) error {
					// Move everything from v1 to the end of v2, emptying v1.
					v1 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
					v2 := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

					v2, v1 = seq.MoveAll(v2, v1)

					render.Seq(w, v1)
					render.Seq(w, v2)
					return nil
				},
			},
			{
				Name: "Exercise 4",
				Want: "1 2 3 4 5 6 7 8 9 \n10 11 12 13 14 15 16 17 18 19 9 8 7 6 5 4 3 2 1 \n",
				Run: func(w io.Writer) error {
					// Append v1 in reverse order to v2; v1 stays intact.
					v1 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
					v2 := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

					v2 = append(v2, seq.Reversed(v1)...)

					render.Seq(w, v1)
					render.Seq(w, v2)
					return nil
				},
			},
			{
				Name: "Exercise 5",
				Want: "1 2 3 1 2 3 4 5 9 \n",
				Run: func(w io.Writer) error {
					// Copy the first five elements onto position 3 of the
					// same slice; the ranges overlap.
					v1 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

					seq.CopyWithin(v1, 3, 0, 5)

					render.Seq(w, v1)
					return nil
				},
			},
			{
				Name: "Exercise 6",
				Want: "2 3 4 5 6 7 8 9 10 \n",
				Run: func(w io.Writer) error {
					// Increment every element in place.
					v1 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

					seq.Apply(v1, func(x int) int { return x + 1 })

					render.Seq(w, v1)
					return nil
				},
			},
			{
				Name: "Exercise 7",
				Want: "4 \n",
				Run: func(w io.Writer) error {
					// Count the even numbers.
					v1 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

					n := seq.CountFunc(v1, func(x int) bool { return x%2 == 0 })

					render.Item(w, n)
					fmt.Fprintln(w)
					return nil
				},
			},
			{
				Name: "Exercise 8",
				Want: "1 2 3 \n",
				Run: func(w io.Writer) error {
					// Elements of v1 that are not in v2.
					v1 := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
					v2 := []int{4, 5, 6, 7, 8, 9, 10, 11, 12}

					v3 := seq.Difference(v1, v2)

					render.Seq(w, v3)
					return nil
				},
			},
			{
				Name: "Exercise 9",
				Run: func(w io.Writer) error {
					// The numbers from 10 through 100.
					v := seq.Span(10, 100)
					if len(v) != 91 || !slices.IsSorted(v) {
						return fmt.Errorf("span is broken: %d elements", len(v))
					}
					render.Seq(w, v)
					return nil
				},
			},
			{
				Name: "Exercise 10",
				Want: "9 8 7 6 5 4 3 2 1 \n",
				Run: func(w io.Writer) error {
					v := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
					seq.Reverse(v)
					render.Seq(w, v)
					return nil
				},
			},
			{
				Name: "Exercise 11",
				Want: "Original:\t--------####----\n" +
					"Sliding to 15:\t-----------####-\n" +
					"Sliding to 3:\t---####---------\n" +
					"Sliding to 0:\t####------------\n",
				Run: func(w io.Writer) error {
					// Slide the block of # markers through the list. The
					// block occupies [8, 12); a destination past the block
					// means "end there", one before it means "start there".
					const original = "--------####----"
					fmt.Fprintf(w, "Original:\t%s\n", original)

					for _, to := range []int{15, 3, 0} {
						v := strings.Split(original, "")
						seq.Slide(v, 8, 12, to)
						fmt.Fprintf(w, "Sliding to %d:\t%s\n", to, strings.Join(v, ""))
					}
					return nil
				},
			},
			{
				Name: "Exercise 12",
				Run: func(w io.Writer) error {
					// Gather the selected (#) elements around the middle
					// boundary: selects of the first half sink to its end,
					// selects of the second half rise to its top. Relative
					// order stays put on both sides.
					shouldBe := []string{"-2", "-4", "-6", "-8", "#3", "#1", "#5", "#7", "#9", "#11", "#13", "#15", "-18", "-16", "-20", "-12", "-22"}
					v := []string{"-2", "#3", "#1", "-4", "#5", "-6", "#7", "-8", "-18", "-16", "-20", "#9", "#11", "-12", "#13", "#15", "-22"}

					selected := func(s string) bool { return strings.HasPrefix(s, "#") }
					seq.StablePartition(v[:8], func(s string) bool { return !selected(s) })
					seq.StablePartition(v[8:], selected)

					if !slices.Equal(shouldBe, v) {
						return fmt.Errorf("gather went wrong: %v", v)
					}
					return render.Table(w, shouldBe, v)
				},
			},
			{
				Name: "Exercise 13",
				Run: func(w io.Writer) error {
					products := []product.Product{
						product.New("P1", 10, true),
						product.New("P5", 5, false),
						product.New("P6", 2, true),
						product.New("P3", 23, false),
						product.New("P4", 69, true),
						product.New("P7", 11, true),
						product.New("P2", 44, false),
					}

					// a) Sort the catalog by price.
					slices.SortStableFunc(products, product.ByPrice)
					render.Seq(w, products)

					// b) Free-shipping products first, price order intact.
					seq.StablePartition(products, func(p product.Product) bool { return p.FreeDelivery })
					render.Seq(w, products)

					// c) Free shipping and under 20.
					const maxPrice = 20
					freeUnder20 := seq.Filter(products, func(p product.Product) bool {
						return p.FreeDelivery && p.Price < maxPrice
					})
					render.Seq(w, freeUnder20)
					return nil
				},
			},
			{
				Name: "Exercise 14",
				Want: "2 4 6 8 10 12 14 \n",
				Run: func(w io.Writer) error {
					// Drop the odd numbers, shrinking the slice.
					v := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}

					v = seq.RemoveFunc(v, func(x int) bool { return x%2 != 0 })

					render.Seq(w, v)
					return nil
				},
			},
			{
				Name: "Exercise 15",
				Want: "A B C D E F G H\n",
				Run: func(w io.Writer) error {
					// Insert at the computed position, not a static one.
					v := []string{"A", "B", "C", "D", "F", "G", "H"}

					v = seq.InsertSorted(v, "E")

					if !slices.IsSorted(v) {
						return fmt.Errorf("insert broke the ordering: %v", v)
					}
					fmt.Fprintln(w, strings.Join(v, " "))
					return nil
				},
			},
			{
				Name: "Exercise 16",
				Want: "67 \n",
				Run: func(w io.Writer) error {
					// The hanging-posters puzzle as a fold: the largest
					// poster top determines how far the rail must drop.
					h := 6
					wallPoints := []int{22, 33, 19, 74}
					lengths := []int{2, 3, 5, 6}

					top := seq.Fold(seq.Span(0, len(wallPoints)-1), 0, func(acc, i int) int {
						return max(acc, wallPoints[i]-lengths[i]/4)
					})
					result := max(0, top-h)

					render.Item(w, result)
					fmt.Fprintln(w)
					return nil
				},
			},
		},
	}
}

// ======================================================================
// Comparison design.

func miscGroup() exercise.Group {
	return exercise.Group{
		Name: "Misc",
		Exercises: []exercise.Exercise{
			{
				Name: "Exercise 1",
				Want: "false true true true false false \n",
				Run: func(w io.Writer) error {
					// Comparing a signed with an unsigned value: a plain
					// cast of a negative x would wrap, so the sign is
					// checked first.
					x := -1
					y := uint(1)

					eq := x >= 0 && uint(x) == y
					lt := x < 0 || uint(x) < y
					ne := !eq
					le := lt || eq
					gt := !le
					ge := !lt

					for _, b := range []bool{eq, ne, lt, le, gt, ge} {
						render.Item(w, b)
					}
					fmt.Fprintln(w)
					return nil
				},
			},
			{
				Name: "Exercise 2",
				Run: func(w io.Writer) error {
					a := fraction.New(10, 15)
					b := fraction.New(2, 3)
					c := fraction.New(5, 3)
					d := fraction.New(1, 3)
					e := fraction.New(2, 6)
					f := fraction.New(1, 5)
					g := fraction.New(2, 10)

					checks := []struct {
						label string
						got   bool
						want  bool
					}{
						{"a < c ", a.Less(c), true},
						{"a > c ", c.Less(a), false},
						{"c < a ", c.Less(a), false},
						{"a == b", a.Equal(b), true},
						{"a != b", !a.Equal(b), false},
						{"a <= b", !b.Less(a), true},
						{"a <= c", !c.Less(a), true},
						{"a >= c", !a.Less(c), false},
						{"c >= a", !c.Less(a), true},
						{"c <= a", !a.Less(c), false},
						{"a != c", !a.Equal(c), true},
						{"d == e", d.Equal(e), true},
						{"f == g", f.Equal(g), true},
					}

					for _, check := range checks {
						fmt.Fprintf(w, "%s should be %t and is: %t\n", check.label, check.want, check.got)
						if check.got != check.want {
							return fmt.Errorf("fraction comparison %q is wrong", check.label)
						}
					}
					return nil
				},
			},
			{
				Name: "Exercise 3",
				Want: "1\n1\n3\n3\n4\n6\n6\n7\n9\n9\n10\n" + strings.Repeat("end of sequence\n", 9),
				Run: func(w io.Writer) error {
					// Probe the lower bound for every value in [0, 20).
					v := []int{1, 3, 4, 6, 7, 9, 10}

					for i := 0; i < 20; i++ {
						pos := search.LowerBound(v, i)
						if pos == len(v) {
							fmt.Fprintln(w, "end of sequence")
						} else {
							fmt.Fprintln(w, v[pos])
						}
					}
					return nil
				},
			},
		},
	}
}

// ======================================================================
// Lazy pipelines.

func viewsGroup() exercise.Group {
	return exercise.Group{
		Name: "Views",
		Exercises: []exercise.Exercise{
			{
				Name: "Exercise 1",
				Want: "1 2 3 4 5 6 7 8 9 \n" +
					"5 4 3 2 1 \n" +
					"2 4 6 8 \n" +
					"4 16 36 64 \n",
				Run: func(w io.Writer) error {
					v := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
					even := func(x int) bool { return x%2 == 0 }
					square := func(x int) int { return x * x }

					// All elements.
					render.Seq(w, view.Collect(view.All(v)))
					// The first five, reversed.
					render.Seq(w, view.Collect(view.Backward(view.Collect(view.Take(view.All(v), 5)))))
					// Evens only.
					render.Seq(w, view.Collect(view.Filter(view.All(v), even)))
					// Squares of the evens.
					render.Seq(w, view.Collect(view.Transform(view.Filter(view.All(v), even), square)))
					return nil
				},
			},
		},
	}
}
