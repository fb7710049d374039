package engine_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/steps"
)

var _ = Describe("Engine", func() {
	It("sorts a copy and reports stats", func() {
		in := []int{5, 3, 4, 1, 2}
		rec := &recorder{}
		eng := engine.New(engine.Selection{}, nil)
		eng.AddSink(rec)

		result, err := eng.Run(context.Background(), in)
		Expect(err).NotTo(HaveOccurred())

		Expect(in).To(Equal([]int{5, 3, 4, 1, 2}))
		Expect(result.Input).To(Equal(in))
		Expect(result.Values).To(Equal([]int{1, 2, 3, 4, 5}))
		Expect(result.ID).NotTo(BeEmpty())
		Expect(result.Algorithm).To(Equal("selection"))
		Expect(result.Cancelled).To(BeFalse())
		Expect(result.Sorted.Complete()).To(BeTrue())

		Expect(result.Stats.Compares).To(Equal(10))
		Expect(result.Stats.Swaps).To(Equal(4))
		Expect(result.Stats.Sorted).To(Equal(5))
		Expect(result.Stats.Steps).To(Equal(len(rec.frames)))
	})

	It("fans frames out to every sink in order", func() {
		var order []string
		eng := engine.New(engine.Bubble{}, engine.Instant{})
		eng.AddSink(engine.SinkFunc(func(context.Context, steps.Frame) error {
			order = append(order, "a")
			return nil
		}))
		eng.AddSink(engine.SinkFunc(func(context.Context, steps.Frame) error {
			order = append(order, "b")
			return nil
		}))

		_, err := eng.Run(context.Background(), []int{2, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(order[:4]).To(Equal([]string{"a", "b", "a", "b"}))
	})

	It("returns the partial result when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		eng := engine.New(engine.Bubble{}, nil)
		eng.AddSink(engine.SinkFunc(func(_ context.Context, f steps.Frame) error {
			if f.Seq == 3 {
				cancel()
			}
			return nil
		}))

		result, err := eng.Run(ctx, []int{4, 3, 2, 1})
		Expect(engine.IsCancelled(err)).To(BeTrue())
		Expect(result).NotTo(BeNil())
		Expect(result.Cancelled).To(BeTrue())
		Expect(result.Stats.Steps).To(Equal(3))
		Expect(result.Values).To(ConsistOf(1, 2, 3, 4))
	})

	It("does not start when the context is already done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rec := &recorder{}
		eng := engine.New(engine.Selection{}, nil)
		eng.AddSink(rec)

		result, err := eng.Run(ctx, []int{2, 1})
		Expect(engine.IsCancelled(err)).To(BeTrue())
		Expect(result.Values).To(Equal([]int{2, 1}))
		Expect(rec.frames).To(BeEmpty())
	})

	It("rejects empty input", func() {
		result, err := engine.New(engine.Bubble{}, nil).Run(context.Background(), nil)
		Expect(err).To(MatchError(engine.ErrInvalidInput))
		Expect(result).To(BeNil())
	})

	It("wraps sink failures with the failing step", func() {
		boom := errors.New("boom")
		eng := engine.New(engine.Selection{}, nil)
		eng.AddSink(engine.SinkFunc(func(_ context.Context, f steps.Frame) error {
			if f.Step.Kind == steps.KindCompare {
				return boom
			}
			return nil
		}))

		_, err := eng.Run(context.Background(), []int{2, 1})
		Expect(err).To(MatchError(boom))

		var stepErr *engine.StepError
		Expect(errors.As(err, &stepErr)).To(BeTrue())
		Expect(stepErr.Step).To(Equal(steps.Compare(0, 1)))
		Expect(stepErr.Seq).To(Equal(2))
		Expect(engine.IsCancelled(err)).To(BeFalse())
	})
})

var _ = Describe("Pacer", func() {
	It("pauses once per compare and twice per swap", func() {
		counts := map[engine.Pause]int{}
		pacer := engine.PacerFunc(func(_ context.Context, p engine.Pause) error {
			counts[p]++
			return nil
		})

		_, err := engine.Sort(context.Background(), engine.Bubble{}, []int{3, 2, 1}, nil, pacer)
		Expect(err).NotTo(HaveOccurred())
		Expect(counts[engine.PauseCompare]).To(Equal(3))
		Expect(counts[engine.PauseSwap]).To(Equal(6))
	})

	It("uses the documented defaults", func() {
		p := engine.DefaultPacer()
		Expect(p.Compare).To(Equal(50 * time.Millisecond))
		Expect(p.Swap).To(Equal(100 * time.Millisecond))
	})

	It("waits the configured duration", func() {
		p := engine.NewFixed(5*time.Millisecond, 0)
		start := time.Now()
		Expect(p.Wait(context.Background(), engine.PauseCompare)).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically(">=", 5*time.Millisecond))
		Expect(p.Wait(context.Background(), engine.PauseSwap)).To(Succeed())
	})

	It("stops waiting when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := engine.NewFixed(time.Hour, time.Hour)
		Expect(p.Wait(ctx, engine.PauseSwap)).To(MatchError(context.Canceled))
	})

	It("stops before exchanging when cancelled on a swap", func() {
		ctx, cancel := context.WithCancel(context.Background())
		sink := engine.SinkFunc(func(_ context.Context, f steps.Frame) error {
			if f.Step.Kind == steps.KindSwap {
				cancel()
			}
			return nil
		})

		out, err := engine.Sort(ctx, engine.Selection{}, []int{2, 1}, sink, engine.NewFixed(0, time.Hour))
		Expect(engine.IsCancelled(err)).To(BeTrue())
		Expect(out).To(Equal([]int{2, 1}))
	})

	It("reports a wait interrupted by cancellation as a cancelled run", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pacer := engine.PacerFunc(func(ctx context.Context, p engine.Pause) error {
			if p == engine.PauseSwap {
				cancel()
				return ctx.Err()
			}
			return nil
		})

		out, err := engine.Sort(ctx, engine.Bubble{}, []int{2, 1}, nil, pacer)
		Expect(engine.IsCancelled(err)).To(BeTrue())
		Expect(out).To(Equal([]int{2, 1}))
	})

	It("names pauses", func() {
		Expect(engine.PauseCompare.String()).To(Equal("compare"))
		Expect(engine.PauseSwap.String()).To(Equal("swap"))
	})
})

var _ = Describe("Registry", func() {
	It("lists algorithms by name", func() {
		Expect(engine.NewRegistry().Names()).To(Equal([]string{"bubble", "selection"}))
	})

	It("builds algorithms", func() {
		algo, err := engine.NewRegistry().Get("bubble")
		Expect(err).NotTo(HaveOccurred())
		Expect(algo.Name()).To(Equal("bubble"))
	})

	It("rejects unknown names", func() {
		_, err := engine.NewRegistry().Get("quick")
		Expect(err).To(MatchError(ContainSubstring("unknown algorithm: quick")))
	})
})
