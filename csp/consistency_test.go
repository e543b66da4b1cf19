package csp

import (
	"testing"

	"github.com/matryer/is"

	"github.com/dstol/crossfill/grid"
)

func mustGrid(t *testing.T, rows []string) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func domainsSnapshot(s *Solver) map[grid.Variable][]string {
	snap := make(map[grid.Variable][]string)
	for v := range s.domains {
		snap[v] = s.Domain(v)
	}
	return snap
}

func TestNodeConsistencyFiltersByLength(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	s := NewSolver(g, []string{"CAT", "HOUSE", "AB", "DOG"})
	s.EnforceNodeConsistency()
	for _, v := range g.Variables() {
		for _, w := range s.Domain(v) {
			is.Equal(len(w), v.Length)
		}
		is.Equal(s.DomainSize(v), 2) // only CAT and DOG fit
	}
}

func TestNodeConsistencyIdempotent(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	s := NewSolver(g, []string{"CAT", "HOUSE", "DOG"})
	s.EnforceNodeConsistency()
	before := domainsSnapshot(s)
	s.EnforceNodeConsistency()
	is.Equal(domainsSnapshot(s), before)
}

func TestReviseRemovesUnsupported(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	across := g.Variables()[0]
	down := g.Variables()[1]

	// Crossing is at offset 1 of both slots: middle letters must match.
	s := NewSolver(g, []string{"CAT", "DOG", "BAT"})
	s.EnforceNodeConsistency()
	revised := s.Revise(across, down)
	is.True(revised)
	// DOG's middle O has no partner among {CAT, BAT, DOG\DOG}.
	is.Equal(s.Domain(across), []string{"BAT", "CAT"})
}

func TestReviseNoCrossingIsNoop(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, []string{
		`___`,
		`###`,
		`___`,
	})
	x, y := g.Variables()[0], g.Variables()[1]
	s := NewSolver(g, []string{"CAT", "DOG"})
	s.EnforceNodeConsistency()
	is.True(!s.Revise(x, y))
	is.Equal(s.DomainSize(x), 2)
}

func TestReviseWordCannotSupportItself(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	across := g.Variables()[0]
	down := g.Variables()[1]

	// Both slots could only hold CAT, but one CAT cannot witness the
	// other's consistency.
	s := NewSolver(g, []string{"CAT"})
	s.EnforceNodeConsistency()
	is.True(s.Revise(across, down))
	is.Equal(s.DomainSize(across), 0)
}

func TestAC3ExplicitEmptyListSucceeds(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	s := NewSolver(g, []string{"CAT"})
	before := domainsSnapshot(s)
	is.True(s.AC3([]Arc{}))
	is.Equal(domainsSnapshot(s), before)
}

func TestAC3Soundness(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.LadderGrid)
	s := NewSolver(g, []string{
		"STRAND", "PUZZLE", "STREAM", "PEOPLE",
		"STOP", "DATE", "SOAP", "DOME",
	})
	s.EnforceNodeConsistency()
	is.True(s.AC3(nil))

	// Every surviving word has a compatible partner in every neighbor's
	// domain.
	for _, x := range g.Variables() {
		for _, y := range g.Neighbors(x) {
			c, ok := g.Overlap(x, y)
			is.True(ok)
			for _, xw := range s.Domain(x) {
				supported := false
				for _, yw := range s.Domain(y) {
					if yw != xw && xw[c.X] == yw[c.Y] {
						supported = true
						break
					}
				}
				is.True(supported)
			}
		}
	}
}

func TestAC3Idempotent(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.LadderGrid)
	s := NewSolver(g, []string{"STRAND", "PUZZLE", "STOP", "DATE", "SOAP"})
	s.EnforceNodeConsistency()
	is.True(s.AC3(nil))
	before := domainsSnapshot(s)
	is.True(s.AC3(nil))
	is.Equal(domainsSnapshot(s), before)
}

func TestAC3ReportsEmptiedDomain(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	// Middle letters never match, so propagation wipes a domain out.
	s := NewSolver(g, []string{"CAT", "DIG"})
	s.EnforceNodeConsistency()
	is.True(!s.AC3(nil))
}
