package engine

// Bubble is bubble sort without early exit: every pass runs, and pass i
// fixes index n-i-1.
type Bubble struct{}

func (Bubble) Name() string { return "bubble" }

func (Bubble) Sort(r *Run) error {
	n := r.Len()

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := r.Compare(j, j+1); err != nil {
				return err
			}
			if r.At(j) > r.At(j+1) {
				if err := r.Swap(j, j+1); err != nil {
					return err
				}
			}
		}

		if err := r.MarkSorted(n - i - 1); err != nil {
			return err
		}
	}

	return nil
}
