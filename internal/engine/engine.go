package engine

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sort sorts values in place with algo, delivering every step to sink and
// pausing through pacer. A nil sink discards frames; a nil pacer never
// waits. On cancellation the partially sorted values are still returned.
func Sort(ctx context.Context, algo Algorithm, values []int, sink Sink, pacer Pacer) ([]int, error) {
	if len(values) == 0 {
		return nil, ErrInvalidInput
	}
	r := newRun(ctx, values, sink, pacer)
	if err := r.checkpoint(); err != nil {
		return values, err
	}
	err := algo.Sort(r)
	return values, err
}

// Engine runs one algorithm against copies of its inputs and reports
// statistics for each run.
type Engine struct {
	algo  Algorithm
	pacer Pacer
	sinks []Sink
}

func New(algo Algorithm, pacer Pacer) *Engine {
	if pacer == nil {
		pacer = Instant{}
	}
	return &Engine{
		algo:  algo,
		pacer: pacer,
		sinks: make([]Sink, 0),
	}
}

func (e *Engine) AddSink(s Sink) { e.sinks = append(e.sinks, s) }

func (e *Engine) Algorithm() Algorithm { return e.algo }

// Run sorts a copy of input. The result is returned even when the run was
// cancelled, with Cancelled set and Values holding the partial state.
func (e *Engine) Run(ctx context.Context, input []int) (*Result, error) {
	if len(input) == 0 {
		return nil, ErrInvalidInput
	}

	result := &Result{
		ID:        uuid.NewString(),
		Algorithm: e.algo.Name(),
		Input:     slices.Clone(input),
	}
	log := logrus.WithFields(logrus.Fields{
		"run":       result.ID,
		"algorithm": result.Algorithm,
		"n":         len(input),
	})
	log.Debug("sort started")

	r := newRun(ctx, slices.Clone(input), multiSink(e.sinks), e.pacer)
	start := time.Now()

	err := r.checkpoint()
	if err == nil {
		err = e.algo.Sort(r)
	}

	r.stats.Elapsed = time.Since(start)
	result.Values = r.values
	result.Sorted = r.sorted
	result.Stats = r.stats

	if err != nil {
		if IsCancelled(err) {
			result.Cancelled = true
			log.WithField("steps", r.stats.Steps).Debug("sort cancelled")
		}
		return result, err
	}

	log.WithFields(logrus.Fields{
		"compares": r.stats.Compares,
		"swaps":    r.stats.Swaps,
		"elapsed":  r.stats.Elapsed,
	}).Debug("sort finished")
	return result, nil
}
