package engine

import (
	"context"
	"time"

	"github.com/san-kum/sortviz/internal/steps"
)

// Algorithm sorts the values held by a Run, reporting every decision
// through the Run's step methods.
type Algorithm interface {
	Name() string
	Sort(r *Run) error
}

// Sink consumes frames. Apply is called synchronously and the run does not
// continue until it returns.
type Sink interface {
	Apply(ctx context.Context, f steps.Frame) error
}

type SinkFunc func(ctx context.Context, f steps.Frame) error

func (fn SinkFunc) Apply(ctx context.Context, f steps.Frame) error { return fn(ctx, f) }

type multiSink []Sink

func (m multiSink) Apply(ctx context.Context, f steps.Frame) error {
	for _, s := range m {
		if err := s.Apply(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

// Stats counts the steps of a run.
type Stats struct {
	Compares   int
	Candidates int
	Swaps      int
	Sorted     int
	Steps      int
	Elapsed    time.Duration
}

func (s *Stats) observe(step steps.Step) {
	s.Steps++
	switch step.Kind {
	case steps.KindCompare:
		s.Compares++
	case steps.KindCandidate:
		s.Candidates++
	case steps.KindSwap:
		s.Swaps++
	case steps.KindSorted:
		s.Sorted++
	}
}

type Result struct {
	ID        string
	Algorithm string
	Input     []int
	Values    []int
	Sorted    *steps.SortedSet
	Stats     Stats
	Cancelled bool
}
