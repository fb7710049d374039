package steps

import "sort"

// SortedSet tracks indices that hold their final value. It only grows;
// a new run starts with a new set.
type SortedSet struct {
	marked []bool
	order  []int
}

func NewSortedSet(n int) *SortedSet {
	return &SortedSet{
		marked: make([]bool, n),
		order:  make([]int, 0, n),
	}
}

// Add marks i as sorted. It returns false when i is out of range or was
// already present.
func (s *SortedSet) Add(i int) bool {
	if i < 0 || i >= len(s.marked) || s.marked[i] {
		return false
	}
	s.marked[i] = true
	s.order = append(s.order, i)
	return true
}

func (s *SortedSet) Contains(i int) bool {
	if s == nil || i < 0 || i >= len(s.marked) {
		return false
	}
	return s.marked[i]
}

// Len is the number of sorted indices.
func (s *SortedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Cap is the size of the index range the set covers.
func (s *SortedSet) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.marked)
}

// Complete reports whether every index in [0, Cap) is sorted.
func (s *SortedSet) Complete() bool {
	return s.Len() == s.Cap()
}

// Indices returns the members in ascending order.
func (s *SortedSet) Indices() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.order))
	copy(out, s.order)
	sort.Ints(out)
	return out
}

// Order returns the members in the order they were added.
func (s *SortedSet) Order() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

func (s *SortedSet) Clone() *SortedSet {
	if s == nil {
		return nil
	}
	c := &SortedSet{
		marked: make([]bool, len(s.marked)),
		order:  make([]int, len(s.order), cap(s.order)),
	}
	copy(c.marked, s.marked)
	copy(c.order, s.order)
	return c
}
