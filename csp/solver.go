package csp

import (
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/dstol/crossfill/grid"
)

// ErrNoSolution is returned when propagation or exhaustive search proves
// the puzzle cannot be filled from the given vocabulary. It is an expected
// outcome, not a fault.
var ErrNoSolution = errors.New("no solution found")

// Solve shrinks the domains with node consistency and AC-3, then runs
// backtracking search from the empty assignment. An AC-3 failure is
// already proof that no solution exists, so search is skipped.
func (s *Solver) Solve() (Assignment, error) {
	start := time.Now()
	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		log.Debug().Msg("arc consistency failed; unsolvable")
		return nil, ErrNoSolution
	}
	a := s.backtrack(Assignment{})
	if a == nil {
		log.Debug().Msg("search exhausted; unsolvable")
		return nil, ErrNoSolution
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("solved")
	return a, nil
}

// selectUnassigned picks the next slot to fill: fewest remaining
// candidates first (MRV), most crossings (degree) on ties, remaining ties
// arbitrary. The backtracking control flow never calls this with nothing
// left to assign; if that happens anyway it is a bug, so panic.
func (s *Solver) selectUnassigned(a Assignment) grid.Variable {
	var best grid.Variable
	found := false
	for _, v := range s.g.Variables() {
		if _, bound := a[v]; bound {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		dv, db := len(s.domains[v]), len(s.domains[best])
		if dv < db || (dv == db && len(s.g.Neighbors(v)) > len(s.g.Neighbors(best))) {
			best = v
		}
	}
	if !found {
		panic("selectUnassigned: no unassigned variables remaining")
	}
	return best
}

// orderDomainValues orders v's candidates least-constraining first: for
// each candidate, count the assigned neighbors whose domains still contain
// that exact word (binding it here would rule it out for them), then sort
// ascending by that count. Candidates are shuffled first so that equal
// counts stay in no particular order.
//
// Whether a candidate's letters actually clash at a crossing is left to
// the consistency check; counting literal membership only is deliberate.
func (s *Solver) orderDomainValues(v grid.Variable, a Assignment) []string {
	vals := make([]string, 0, len(s.domains[v]))
	for w := range s.domains[v] {
		vals = append(vals, w)
	}
	frand.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})

	eliminations := make(map[string]int, len(vals))
	for _, w := range vals {
		for _, n := range s.g.Neighbors(v) {
			if _, bound := a[n]; !bound {
				continue
			}
			if _, ok := s.domains[n][w]; ok {
				eliminations[w]++
			}
		}
	}
	sort.SliceStable(vals, func(i, j int) bool {
		return eliminations[vals[i]] < eliminations[vals[j]]
	})
	return vals
}

// backtrack extends the assignment one slot at a time, undoing each failed
// binding before trying the next candidate, and short-circuits upward as
// soon as a branch completes. Returns nil when every candidate for the
// selected slot fails, which makes the caller backtrack further.
func (s *Solver) backtrack(a Assignment) Assignment {
	if s.Complete(a) {
		return a
	}
	v := s.selectUnassigned(a)
	for _, w := range s.orderDomainValues(v, a) {
		a[v] = w
		if s.Consistent(a) {
			if result := s.backtrack(a); result != nil {
				return result
			}
		}
		delete(a, v)
	}
	return nil
}
