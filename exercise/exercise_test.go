package exercise

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGroup(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, nil)

	g := Group{
		Name: "Demo",
		Exercises: []Exercise{
			{
				Name: "Exercise 1",
				Run: func(w io.Writer) error {
					fmt.Fprintln(w, "1 2 3")
					return nil
				},
			},
			{
				Name: "Exercise 2",
				Want: "ok\n",
				Run: func(w io.Writer) error {
					fmt.Fprintln(w, "ok")
					return nil
				},
			},
		},
	}

	require.NoError(t, r.RunGroup(g))

	s := out.String()
	assert.Contains(t, s, "Demo:Exercise 1")
	assert.Contains(t, s, "1 2 3\n")
	assert.Contains(t, s, "Demo:Exercise 2")
	assert.Contains(t, s, "ok\n")
	assert.Contains(t, s, "------------------")
}

func TestWantMismatch(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, nil)

	g := Group{
		Name: "Demo",
		Exercises: []Exercise{{
			Name: "Broken",
			Want: "expected\n",
			Run: func(w io.Writer) error {
				fmt.Fprintln(w, "actual")
				return nil
			},
		}},
	}

	err := r.RunGroup(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Demo:Broken")
	assert.Contains(t, err.Error(), "output mismatch")
	// Nothing from the failed exercise reaches the console.
	assert.NotContains(t, out.String(), "actual")
}

func TestRunError(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, nil)

	boom := errors.New("boom")
	g := Group{
		Name: "Demo",
		Exercises: []Exercise{{
			Name: "Failing",
			Run:  func(io.Writer) error { return boom },
		}},
	}

	err := r.RunGroup(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, nil)

	ran := false
	groups := []Group{
		{Name: "A", Exercises: []Exercise{{
			Name: "Fails",
			Run:  func(io.Writer) error { return errors.New("no") },
		}}},
		{Name: "B", Exercises: []Exercise{{
			Name: "Never",
			Run: func(io.Writer) error {
				ran = true
				return nil
			},
		}}},
	}

	assert.Error(t, r.Run(groups))
	assert.False(t, ran)
}
