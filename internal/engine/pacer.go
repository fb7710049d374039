package engine

import (
	"context"
	"time"
)

const (
	DefaultCompareDelay = 50 * time.Millisecond
	DefaultSwapDelay    = 100 * time.Millisecond
)

// Pause is the kind of delay requested after a step.
type Pause uint8

const (
	PauseCompare Pause = iota + 1
	PauseSwap
)

func (p Pause) String() string {
	switch p {
	case PauseCompare:
		return "compare"
	case PauseSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Pacer spaces steps out so a human can follow them.
type Pacer interface {
	Wait(ctx context.Context, p Pause) error
}

type PacerFunc func(ctx context.Context, p Pause) error

func (f PacerFunc) Wait(ctx context.Context, p Pause) error { return f(ctx, p) }

// Fixed sleeps a constant duration per pause kind.
type Fixed struct {
	Compare time.Duration
	Swap    time.Duration
}

func NewFixed(compare, swap time.Duration) Fixed {
	return Fixed{Compare: compare, Swap: swap}
}

func DefaultPacer() Fixed {
	return NewFixed(DefaultCompareDelay, DefaultSwapDelay)
}

func (f Fixed) Wait(ctx context.Context, p Pause) error {
	d := f.Compare
	if p == PauseSwap {
		d = f.Swap
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Instant never waits.
type Instant struct{}

func (Instant) Wait(context.Context, Pause) error { return nil }
