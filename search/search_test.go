package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerBound(t *testing.T) {
	probe := []int{1, 3, 4, 6, 7, 9, 10}

	tests := []struct {
		name   string
		s      []int
		value  int
		expect int
	}{
		{"Between", probe, 5, 3},
		{"FirstElement", probe, 1, 0},
		{"GreaterThanAll", probe, 11, 7},
		{"LessThanAll", probe, 0, 0},
		{"LastElement", probe, 10, 6},
		{"Hit", probe, 6, 3},
		{"Empty", []int{}, 42, 0},
		{"Nil", nil, 42, 0},
		{"SingleHit", []int{5}, 5, 0},
		{"SingleBelow", []int{5}, 4, 0},
		{"SingleAbove", []int{5}, 6, 1},
		{"DuplicateRun", []int{2, 2, 2, 5}, 2, 0},
		{"DuplicateTail", []int{1, 2, 2, 2}, 2, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := LowerBound(test.s, test.value)
			assert.Equal(t, test.expect, got)
			// Same arguments, same answer.
			assert.Equal(t, got, LowerBound(test.s, test.value))
		})
	}
}

// The lower-bound contract: everything before the result is < v, and the
// result itself (when not the end) is >= v. Checked against a linear scan
// over a spread of sorted inputs and probe values.
func TestLowerBoundContract(t *testing.T) {
	inputs := [][]int{
		nil,
		{0},
		{1, 3, 4, 6, 7, 9, 10},
		{2, 2, 2, 5},
		{1, 1, 1, 1, 1},
		{-4, -2, 0, 0, 3, 3, 3, 8, 8, 12, 19, 19, 19, 19, 25},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	}

	for _, s := range inputs {
		for v := -6; v <= 27; v++ {
			got := LowerBound(s, v)

			want := len(s)
			for i, e := range s {
				if e >= v {
					want = i
					break
				}
			}
			require.Equal(t, want, got, "input %v value %d", s, v)

			for i := 0; i < got; i++ {
				require.Less(t, s[i], v)
			}
			if got < len(s) {
				require.GreaterOrEqual(t, s[got], v)
			}
		}
	}
}

func TestLowerBoundStrings(t *testing.T) {
	s := []string{"A", "B", "C", "D", "F", "G", "H"}

	assert.Equal(t, 4, LowerBound(s, "E"))
	assert.Equal(t, 0, LowerBound(s, "A"))
	assert.Equal(t, 7, LowerBound(s, "Z"))
}

// Unsorted input is a precondition violation: the answer is unspecified,
// but the search must stay in bounds and terminate.
func TestLowerBoundUnsorted(t *testing.T) {
	s := []int{9, 1, 7, 3, 5}

	for v := 0; v <= 10; v++ {
		got := LowerBound(s, v)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, len(s))
	}
}

func TestLowerBoundFunc(t *testing.T) {
	type entry struct {
		key  string
		rank int
	}
	s := []entry{{"a", 1}, {"b", 3}, {"c", 4}, {"d", 6}, {"e", 7}}

	byRank := func(e entry, rank int) int { return e.rank - rank }

	tests := []struct {
		name   string
		rank   int
		expect int
	}{
		{"Between", 5, 3},
		{"First", 1, 0},
		{"PastEnd", 8, 5},
		{"BeforeAll", 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, LowerBoundFunc(s, test.rank, byRank))
		})
	}
}

func TestFind(t *testing.T) {
	a := []uint16{1, 2, 3, 5, 8, 13, 21, 34, 55, 89}

	tests := []struct {
		target uint16
		expect int
		ok     bool
	}{
		{1, 0, true},
		{0, 0, false},
		{2, 1, true},
		{8, 4, true},
		{6, 4, false},
		{21, 6, true},
		{22, 7, false},
		{34, 7, true},
		{55, 8, true},
		{89, 9, true},
		{90, 10, false},
	}

	for _, test := range tests {
		index, ok := Find(a, test.target)
		assert.Equal(t, test.ok, ok, "target %d", test.target)
		assert.Equal(t, test.expect, index, "target %d", test.target)
	}
}
