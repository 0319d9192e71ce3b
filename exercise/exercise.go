// Package exercise defines the exercise registry and the runner that
// executes groups of exercises against a console sink.
package exercise

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/Anstapen/LearnSTL/render"
)

// Exercise is one self-contained demonstration. Run receives the sink to
// print to. When Want is non-empty, the produced output is verified
// against it and a mismatch fails the run with a diff.
type Exercise struct {
	Name string
	Want string
	Run  func(w io.Writer) error
}

// Group is an ordered set of exercises sharing a topic prefix.
type Group struct {
	Name      string
	Exercises []Exercise
}

// Runner executes groups in order, framing each exercise with a banner
// and a divider.
type Runner struct {
	out io.Writer
	log *zap.Logger
}

func NewRunner(out io.Writer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{out: out, log: log}
}

// Run executes every group, stopping at the first failure.
func (r *Runner) Run(groups []Group) error {
	for _, g := range groups {
		if err := r.RunGroup(g); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) RunGroup(g Group) error {
	for _, ex := range g.Exercises {
		if err := r.runOne(g.Name, ex); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runOne(group string, ex Exercise) error {
	name := group + ":" + ex.Name

	// The exercise prints into a buffer so its output can be verified
	// before anything reaches the console.
	var buf bytes.Buffer
	start := time.Now()
	err := ex.Run(&buf)
	took := time.Since(start)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if ex.Want != "" {
		if diff := cmp.Diff(ex.Want, buf.String()); diff != "" {
			return fmt.Errorf("%s: output mismatch (-want +got):\n%s", name, diff)
		}
	}

	fmt.Fprint(r.out, render.Banner(name))
	if _, err := r.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%s: write: %w", name, err)
	}
	fmt.Fprint(r.out, render.Rule())

	r.log.Debug("exercise finished",
		zap.String("exercise", name),
		zap.Duration("took", took),
		zap.Bool("verified", ex.Want != ""))
	return nil
}
