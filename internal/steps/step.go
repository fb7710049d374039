package steps

import "fmt"

// Kind identifies the variant of a Step.
type Kind uint8

const (
	KindCompare Kind = iota + 1
	KindCandidate
	KindSwap
	KindSwapped
	KindSorted
)

func (k Kind) String() string {
	switch k {
	case KindCompare:
		return "compare"
	case KindCandidate:
		return "candidate"
	case KindSwap:
		return "swap"
	case KindSwapped:
		return "swapped"
	case KindSorted:
		return "sorted"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Step is one visualization-worthy moment of a sort. Steps are values and
// must not be modified after construction. J is -1 for single-index kinds.
type Step struct {
	Kind Kind
	I, J int
}

func Compare(i, j int) Step { return Step{Kind: KindCompare, I: i, J: j} }

func MarkCandidate(i int) Step { return Step{Kind: KindCandidate, I: i, J: -1} }

func Swap(i, j int) Step { return Step{Kind: KindSwap, I: i, J: j} }

func Swapped(i, j int) Step { return Step{Kind: KindSwapped, I: i, J: j} }

func MarkSorted(i int) Step { return Step{Kind: KindSorted, I: i, J: -1} }

// Pair reports whether the step refers to two indices.
func (s Step) Pair() bool {
	return s.Kind == KindCompare || s.Kind == KindSwap || s.Kind == KindSwapped
}

// Indices returns the indices the step touches.
func (s Step) Indices() []int {
	if s.Pair() {
		return []int{s.I, s.J}
	}
	return []int{s.I}
}

func (s Step) String() string {
	if s.Pair() {
		return fmt.Sprintf("%s(%d,%d)", s.Kind, s.I, s.J)
	}
	return fmt.Sprintf("%s(%d)", s.Kind, s.I)
}

// Frame is what a renderer receives for a step: the event plus snapshots of
// the array and sorted set as they were when the step was emitted.
type Frame struct {
	Seq    int
	Step   Step
	Values []int
	Sorted *SortedSet
}

// Max returns the largest value in the frame, or 0 for an empty frame.
func (f Frame) Max() int {
	m := 0
	for _, v := range f.Values {
		if v > m {
			m = v
		}
	}
	return m
}
