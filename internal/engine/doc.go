// Package engine runs sorting algorithms as a stream of visualization steps.
//
// An [Algorithm] sorts through a [Run], which emits a [steps.Frame] to a
// [Sink] for every decision and pauses through a [Pacer]:
//
//   - [Selection]: leftmost-minimum selection sort
//   - [Bubble]: fixed-pass bubble sort
//   - [Engine]: orchestrates a run and collects [Stats]
//
// # Example
//
//	eng := engine.New(engine.Selection{}, engine.NewFixed(50*time.Millisecond, 100*time.Millisecond))
//	eng.AddSink(board)
//	result, err := eng.Run(ctx, []int{5, 3, 4, 1, 2})
//
// # Cancellation
//
// Runs stop cooperatively: the context is checked after every emitted frame
// and every pause. A cancelled run returns [ErrCancelled] and leaves the
// array a permutation of its input, since every mutation is a whole swap.
//
// # Thread Safety
//
// A Run is owned by a single goroutine. Sinks are called synchronously from
// that goroutine and must return in bounded time.
package engine
