package steps

// Role is the semantic treatment of a bar at one instant.
type Role uint8

const (
	RoleNone Role = iota
	RoleCandidate
	RoleCompared
	RoleSwapped
	RoleSorted
)

func (r Role) String() string {
	switch r {
	case RoleCandidate:
		return "candidate"
	case RoleCompared:
		return "compared"
	case RoleSwapped:
		return "swapped"
	case RoleSorted:
		return "sorted"
	default:
		return "none"
	}
}

// HighlightMap maps array indices to their role. Indices without an entry
// are drawn with the default bar treatment.
type HighlightMap map[int]Role

// Role returns the role of i, RoleNone if i is not highlighted.
func (h HighlightMap) Role(i int) Role {
	return h[i]
}

// Highlights derives the roles for a step. candidate is the index of the
// current selection minimum, or -1 when none is being tracked. Members of
// sorted are always RoleSorted.
func Highlights(s Step, candidate int, sorted *SortedSet) HighlightMap {
	h := make(HighlightMap, 2+sorted.Len())

	switch s.Kind {
	case KindCompare:
		h[s.I] = RoleCompared
		h[s.J] = RoleCompared
		if candidate == s.I || candidate == s.J {
			h[candidate] = RoleCandidate
		}
	case KindCandidate:
		h[s.I] = RoleCandidate
	case KindSwap, KindSwapped:
		h[s.I] = RoleSwapped
		h[s.J] = RoleSwapped
	case KindSorted:
		h[s.I] = RoleSorted
	}

	if sorted != nil {
		for _, i := range sorted.order {
			h[i] = RoleSorted
		}
	}
	return h
}
