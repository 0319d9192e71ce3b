// Package render writes values, sequences and tables to a text sink, and
// styles the console chrome around each exercise.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Faint(true)
)

// Item writes a single value to w. Numbers and bools carry a trailing
// space so a sequence of them stays on one line; everything else is
// written on its own line.
func Item[T any](w io.Writer, v T) {
	switch any(v).(type) {
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		fmt.Fprintf(w, "%v ", v)
	default:
		fmt.Fprintln(w, v)
	}
}

// Seq writes every element of s through Item and ends the line.
func Seq[S ~[]E, E any](w io.Writer, s S) {
	for _, e := range s {
		Item(w, e)
	}
	fmt.Fprintln(w)
}

// Table writes two columns row by row, tab separated. The columns must
// have equal length.
func Table(w io.Writer, left, right []string) error {
	if len(left) != len(right) {
		return fmt.Errorf("render: column length mismatch: %d vs %d", len(left), len(right))
	}
	for i := range left {
		fmt.Fprintf(w, "%s\t%s\n", left[i], right[i])
	}
	return nil
}

// Banner is the header printed before an exercise runs.
func Banner(name string) string {
	return bannerStyle.Render(name) + "\n\n"
}

// Rule is the divider printed after an exercise finishes.
func Rule() string {
	return "\n" + ruleStyle.Render(strings.Repeat("-", 18)) + "\n\n"
}
