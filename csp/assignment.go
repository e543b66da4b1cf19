package csp

// Complete reports whether every slot the solver knows about is bound to a
// non-empty word.
func (s *Solver) Complete(a Assignment) bool {
	for v := range s.domains {
		if a[v] == "" {
			return false
		}
	}
	return true
}

// Consistent reports whether a partial assignment violates no constraint:
// all bound words distinct, every word the right length, and agreement at
// every crossing whose two slots are both bound. It is evaluated fresh
// against the whole assignment on every call — a new binding can conflict
// with any earlier one.
func (s *Solver) Consistent(a Assignment) bool {
	seen := make(map[string]struct{}, len(a))
	for v, w := range a {
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}
		if len(w) != v.Length {
			return false
		}
	}
	for v, w := range a {
		for _, n := range s.g.Neighbors(v) {
			nw, bound := a[n]
			if !bound {
				continue
			}
			crossing, _ := s.g.Overlap(v, n)
			if w[crossing.X] != nw[crossing.Y] {
				return false
			}
		}
	}
	return true
}
