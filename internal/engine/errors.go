package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/sortviz/internal/steps"
)

var (
	// ErrInvalidInput is returned before any step when the input is empty.
	ErrInvalidInput = errors.New("engine: invalid input (empty array)")

	// ErrCancelled marks a run that stopped early on request. It is not a
	// failure of the algorithm.
	ErrCancelled = errors.New("engine: run cancelled")
)

// StepError wraps a sink failure with the step that was being delivered.
type StepError struct {
	Seq     int
	Step    steps.Step
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d %s: %v", e.Seq, e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

// IsCancelled reports whether err ended a run through cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

func cancelled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
}
