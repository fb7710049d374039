package engine

import (
	"context"
	"slices"

	"github.com/san-kum/sortviz/internal/steps"
)

// Run is the state of one sort in progress: the array, the sorted set and
// the channels steps leave through. Algorithms drive it; nothing else
// mutates it while the sort is active.
type Run struct {
	ctx    context.Context
	values []int
	sorted *steps.SortedSet
	sink   Sink
	pacer  Pacer
	seq    int
	stats  Stats
}

func newRun(ctx context.Context, values []int, sink Sink, pacer Pacer) *Run {
	if sink == nil {
		sink = SinkFunc(func(context.Context, steps.Frame) error { return nil })
	}
	if pacer == nil {
		pacer = Instant{}
	}
	return &Run{
		ctx:    ctx,
		values: values,
		sorted: steps.NewSortedSet(len(values)),
		sink:   sink,
		pacer:  pacer,
	}
}

func (r *Run) Len() int { return len(r.values) }

// At returns the current value at index i.
func (r *Run) At(i int) int { return r.values[i] }

// Compare reports the comparison of i and j and pauses briefly.
func (r *Run) Compare(i, j int) error {
	if err := r.emit(steps.Compare(i, j)); err != nil {
		return err
	}
	return r.wait(PauseCompare)
}

// Candidate reports the current minimum of a selection pass.
func (r *Run) Candidate(i int) error {
	return r.emit(steps.MarkCandidate(i))
}

// Swap announces the exchange of i and j, performs it, then reports the
// resulting array. Each of the two frames is followed by a swap pause.
func (r *Run) Swap(i, j int) error {
	if err := r.emit(steps.Swap(i, j)); err != nil {
		return err
	}
	if err := r.wait(PauseSwap); err != nil {
		return err
	}

	r.values[i], r.values[j] = r.values[j], r.values[i]

	if err := r.emit(steps.Swapped(i, j)); err != nil {
		return err
	}
	return r.wait(PauseSwap)
}

// MarkSorted adds i to the sorted set and reports it.
func (r *Run) MarkSorted(i int) error {
	r.sorted.Add(i)
	return r.emit(steps.MarkSorted(i))
}

func (r *Run) emit(s steps.Step) error {
	r.seq++
	r.stats.observe(s)

	f := steps.Frame{
		Seq:    r.seq,
		Step:   s,
		Values: slices.Clone(r.values),
		Sorted: r.sorted.Clone(),
	}
	if err := r.sink.Apply(r.ctx, f); err != nil {
		if r.ctx.Err() != nil {
			return cancelled(r.ctx)
		}
		return &StepError{Seq: r.seq, Step: s, Wrapped: err}
	}
	return r.checkpoint()
}

func (r *Run) wait(p Pause) error {
	if err := r.pacer.Wait(r.ctx, p); err != nil {
		if r.ctx.Err() != nil {
			return cancelled(r.ctx)
		}
		return err
	}
	return r.checkpoint()
}

func (r *Run) checkpoint() error {
	if r.ctx.Err() != nil {
		return cancelled(r.ctx)
	}
	return nil
}
