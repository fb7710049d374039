package engine_test

import (
	"context"
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/steps"
)

func randomInput(rng *rand.Rand) []int {
	n := 1 + rng.Intn(24)
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Intn(20)
	}
	return a
}

var _ = Describe("sorting properties", func() {
	algorithms := []engine.Algorithm{engine.Selection{}, engine.Bubble{}}

	for _, algo := range algorithms {
		algo := algo

		Describe(algo.Name(), func() {
			It("returns a non-decreasing permutation of the input", func() {
				rng := rand.New(rand.NewSource(7))
				for trial := 0; trial < 200; trial++ {
					in := randomInput(rng)
					want := slices.Clone(in)
					slices.Sort(want)

					out, err := engine.Sort(context.Background(), algo, slices.Clone(in), nil, nil)
					Expect(err).NotTo(HaveOccurred())
					Expect(out).To(Equal(want), "input %v", in)
				}
			})

			It("emits exactly n(n-1)/2 compares", func() {
				rng := rand.New(rand.NewSource(11))
				for trial := 0; trial < 50; trial++ {
					in := randomInput(rng)
					n := len(in)
					rec := &recorder{}
					_, err := engine.Sort(context.Background(), algo, in, rec, nil)
					Expect(err).NotTo(HaveOccurred())
					Expect(rec.count(steps.KindCompare)).To(Equal(n * (n - 1) / 2))
				}
			})

			It("follows every swap with its result", func() {
				rec := &recorder{}
				_, err := engine.Sort(context.Background(), algo, []int{9, 4, 7, 1, 8, 2}, rec, nil)
				Expect(err).NotTo(HaveOccurred())
				for i, f := range rec.frames {
					if f.Step.Kind == steps.KindSwap {
						Expect(rec.frames[i+1].Step).To(Equal(steps.Swapped(f.Step.I, f.Step.J)))
					}
				}
				Expect(rec.count(steps.KindSwap)).To(Equal(rec.count(steps.KindSwapped)))
			})

			It("never swaps already sorted input", func() {
				rec := &recorder{}
				_, err := engine.Sort(context.Background(), algo, []int{1, 2, 2, 5, 9, 12}, rec, nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(rec.count(steps.KindSwap)).To(BeZero())
			})

			It("grows the sorted set monotonically to the full range", func() {
				rec := &recorder{}
				in := []int{6, 3, 8, 1, 9, 2, 7}
				_, err := engine.Sort(context.Background(), algo, in, rec, nil)
				Expect(err).NotTo(HaveOccurred())

				var prev *steps.SortedSet
				for _, f := range rec.frames {
					if prev != nil {
						for _, i := range prev.Indices() {
							Expect(f.Sorted.Contains(i)).To(BeTrue())
						}
					}
					if f.Step.Kind == steps.KindSorted {
						Expect(f.Sorted.Contains(f.Step.I)).To(BeTrue())
					}
					prev = f.Sorted
				}
				Expect(prev.Indices()).To(Equal([]int{0, 1, 2, 3, 4, 5, 6}))
				Expect(prev.Complete()).To(BeTrue())
			})

			It("leaves a permutation when cancelled after k steps", func() {
				in := []int{5, 1, 4, 2, 8, 0, 3}
				want := slices.Clone(in)
				slices.Sort(want)

				for k := 1; k < 40; k++ {
					ctx, cancel := context.WithCancel(context.Background())
					seen := 0
					sink := engine.SinkFunc(func(context.Context, steps.Frame) error {
						seen++
						if seen == k {
							cancel()
						}
						return nil
					})

					out, err := engine.Sort(ctx, algo, slices.Clone(in), sink, nil)
					cancel()

					Expect(engine.IsCancelled(err)).To(BeTrue(), "k=%d", k)
					Expect(err).To(MatchError(context.Canceled))
					Expect(seen).To(Equal(k))

					got := slices.Clone(out)
					slices.Sort(got)
					Expect(got).To(Equal(want))
				}
			})

			It("rejects empty input before emitting", func() {
				rec := &recorder{}
				out, err := engine.Sort(context.Background(), algo, []int{}, rec, nil)
				Expect(err).To(MatchError(engine.ErrInvalidInput))
				Expect(out).To(BeNil())
				Expect(rec.frames).To(BeEmpty())
			})
		})
	}

	It("bubble sort swaps once per inversion", func() {
		rng := rand.New(rand.NewSource(3))
		for trial := 0; trial < 50; trial++ {
			in := randomInput(rng)
			inv := inversions(in)
			rec := &recorder{}
			_, err := engine.Sort(context.Background(), engine.Bubble{}, in, rec, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.count(steps.KindSwap)).To(Equal(inv))
		}
	})

	It("selection sort swaps at most n-1 times", func() {
		rng := rand.New(rand.NewSource(5))
		for trial := 0; trial < 50; trial++ {
			in := randomInput(rng)
			rec := &recorder{}
			_, err := engine.Sort(context.Background(), engine.Selection{}, in, rec, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.count(steps.KindSwap)).To(BeNumerically("<=", len(in)-1))
		}
	})
})
