package csp

import (
	"github.com/rs/zerolog/log"

	"github.com/dstol/crossfill/grid"
)

// Arc is an ordered pair of slots: the domain of X is to be revised
// against the domain of Y. Arcs only live on the AC-3 worklist.
type Arc struct {
	X grid.Variable
	Y grid.Variable
}

// EnforceNodeConsistency removes from every slot's domain the words whose
// length does not fit the slot. One pass, no ordering concerns.
func (s *Solver) EnforceNodeConsistency() {
	removed := 0
	for v, d := range s.domains {
		for w := range d {
			if len(w) != v.Length {
				delete(d, w)
				removed++
			}
		}
	}
	log.Debug().Int("removed", removed).Msg("node consistency enforced")
}

// Revise makes x arc-consistent with y: every word removed from x's domain
// had no possible partner in y's domain at the crossing. A word never
// witnesses its own consistency, since two slots can't hold the same word.
// Returns whether x's domain changed. No crossing means no-op.
func (s *Solver) Revise(x, y grid.Variable) bool {
	crossing, ok := s.g.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for xw := range s.domains[x] {
		supported := false
		for yw := range s.domains[y] {
			if yw == xw {
				continue
			}
			if xw[crossing.X] == yw[crossing.Y] {
				supported = true
				break
			}
		}
		if !supported {
			delete(s.domains[x], xw)
			revised = true
		}
	}
	return revised
}

// AC3 runs the standard worklist propagation over binary constraints. A nil
// arcs argument means "all crossing pairs"; an explicit empty list is a
// trivially successful no-op. Returns false as soon as propagation empties
// a domain, meaning the puzzle has no solution.
//
// The worklist is popped LIFO; AC-3 is correct under any pop order.
func (s *Solver) AC3(arcs []Arc) bool {
	if arcs == nil {
		for _, x := range s.g.Variables() {
			for _, y := range s.g.Neighbors(x) {
				arcs = append(arcs, Arc{x, y})
			}
		}
	} else {
		// Work on a copy so the caller's slice is left alone.
		arcs = append([]Arc(nil), arcs...)
	}

	for len(arcs) > 0 {
		arc := arcs[len(arcs)-1]
		arcs = arcs[:len(arcs)-1]
		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if len(s.domains[arc.X]) == 0 {
			log.Debug().Str("variable", arc.X.String()).Msg("domain emptied during propagation")
			return false
		}
		// Anything that depends on x must be rechecked against its
		// shrunken domain.
		for _, n := range s.g.Neighbors(arc.X) {
			if n != arc.Y {
				arcs = append(arcs, Arc{n, arc.X})
			}
		}
	}
	return true
}
