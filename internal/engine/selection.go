package engine

// Selection is selection sort. Ties keep the leftmost minimum, so equal
// values are never swapped past each other.
type Selection struct{}

func (Selection) Name() string { return "selection" }

func (Selection) Sort(r *Run) error {
	n := r.Len()

	for i := 0; i < n-1; i++ {
		minIndex := i
		if err := r.Candidate(minIndex); err != nil {
			return err
		}

		for j := i + 1; j < n; j++ {
			if err := r.Compare(minIndex, j); err != nil {
				return err
			}
			if r.At(j) < r.At(minIndex) {
				minIndex = j
				if err := r.Candidate(minIndex); err != nil {
					return err
				}
			}
		}

		if minIndex != i {
			if err := r.Swap(i, minIndex); err != nil {
				return err
			}
		}

		if err := r.MarkSorted(i); err != nil {
			return err
		}
	}

	// the last element is in place once everything before it is
	return r.MarkSorted(n - 1)
}
