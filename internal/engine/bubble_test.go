package engine_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/steps"
)

var _ = Describe("Bubble", func() {
	var rec *recorder

	BeforeEach(func() {
		rec = &recorder{}
	})

	It("is registered as bubble", func() {
		Expect(engine.Bubble{}.Name()).To(Equal("bubble"))
	})

	It("runs every pass over sorted input without swapping", func() {
		out, err := engine.Sort(context.Background(), engine.Bubble{}, []int{1, 2, 3}, rec, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]int{1, 2, 3}))
		Expect(rec.steps()).To(Equal([]steps.Step{
			steps.Compare(0, 1),
			steps.Compare(1, 2),
			steps.MarkSorted(2),
			steps.Compare(0, 1),
			steps.MarkSorted(1),
			steps.MarkSorted(0),
		}))
		Expect(rec.count(steps.KindSwap)).To(BeZero())
	})

	It("swaps adjacent pairs that are out of order", func() {
		out, err := engine.Sort(context.Background(), engine.Bubble{}, []int{3, 2, 1}, rec, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]int{1, 2, 3}))
		Expect(rec.only(steps.KindSwap)).To(Equal([]steps.Step{
			steps.Swap(0, 1), steps.Swap(1, 2), steps.Swap(0, 1),
		}))
		Expect(rec.frames[1].Step).To(Equal(steps.Swap(0, 1)))
		Expect(rec.frames[1].Values).To(Equal([]int{3, 2, 1}))
		Expect(rec.frames[2].Step).To(Equal(steps.Swapped(0, 1)))
		Expect(rec.frames[2].Values).To(Equal([]int{2, 3, 1}))
	})

	It("never emits candidate steps", func() {
		_, err := engine.Sort(context.Background(), engine.Bubble{}, []int{4, 1, 3, 2}, rec, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.count(steps.KindCandidate)).To(BeZero())
	})

	It("does not swap equal neighbours", func() {
		_, err := engine.Sort(context.Background(), engine.Bubble{}, []int{2, 2, 2}, rec, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.count(steps.KindSwap)).To(BeZero())
	})
})
