package engine_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/steps"
)

var _ = Describe("Selection", func() {
	var rec *recorder

	BeforeEach(func() {
		rec = &recorder{}
	})

	It("is registered as selection", func() {
		Expect(engine.Selection{}.Name()).To(Equal("selection"))
	})

	Context("with [5 3 4 1 2]", func() {
		var out []int

		BeforeEach(func() {
			var err error
			out, err = engine.Sort(context.Background(), engine.Selection{}, []int{5, 3, 4, 1, 2}, rec, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("sorts ascending", func() {
			Expect(out).To(Equal([]int{1, 2, 3, 4, 5}))
		})

		It("compares against the running leftmost minimum", func() {
			Expect(rec.only(steps.KindCompare)).To(Equal([]steps.Step{
				steps.Compare(0, 1), steps.Compare(1, 2), steps.Compare(1, 3), steps.Compare(3, 4),
				steps.Compare(1, 2), steps.Compare(1, 3), steps.Compare(1, 4),
				steps.Compare(2, 3), steps.Compare(2, 4),
				steps.Compare(3, 4),
			}))
		})

		It("swaps each position with its minimum", func() {
			Expect(rec.only(steps.KindSwap)).To(Equal([]steps.Step{
				steps.Swap(0, 3), steps.Swap(1, 4), steps.Swap(2, 4), steps.Swap(3, 4),
			}))
		})

		It("emits the full first pass in order", func() {
			Expect(rec.steps()[:10]).To(Equal([]steps.Step{
				steps.MarkCandidate(0),
				steps.Compare(0, 1),
				steps.MarkCandidate(1),
				steps.Compare(1, 2),
				steps.Compare(1, 3),
				steps.MarkCandidate(3),
				steps.Compare(3, 4),
				steps.Swap(0, 3),
				steps.Swapped(0, 3),
				steps.MarkSorted(0),
			}))
		})

		It("shows the pre-swap array on swap and the result on swapped", func() {
			Expect(rec.frames[7].Values).To(Equal([]int{5, 3, 4, 1, 2}))
			Expect(rec.frames[8].Values).To(Equal([]int{1, 3, 4, 5, 2}))
		})

		It("marks every index sorted, the last one at the end", func() {
			Expect(rec.only(steps.KindSorted)).To(Equal([]steps.Step{
				steps.MarkSorted(0), steps.MarkSorted(1), steps.MarkSorted(2), steps.MarkSorted(3), steps.MarkSorted(4),
			}))
			last := rec.frames[len(rec.frames)-1]
			Expect(last.Sorted.Indices()).To(Equal([]int{0, 1, 2, 3, 4}))
		})
	})

	It("keeps the leftmost of equal minimums", func() {
		_, err := engine.Sort(context.Background(), engine.Selection{}, []int{3, 1, 1}, rec, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(rec.only(steps.KindSwap)).To(Equal([]steps.Step{steps.Swap(0, 1), steps.Swap(1, 2)}))
		Expect(rec.only(steps.KindCandidate)).To(ContainElement(steps.MarkCandidate(1)))
		Expect(rec.frames[2].Step).To(Equal(steps.MarkCandidate(1)))
		Expect(rec.frames[3].Step).To(Equal(steps.Compare(1, 2)))
	})

	It("handles a single element", func() {
		out, err := engine.Sort(context.Background(), engine.Selection{}, []int{7}, rec, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]int{7}))
		Expect(rec.steps()).To(Equal([]steps.Step{steps.MarkSorted(0)}))
	})
})
