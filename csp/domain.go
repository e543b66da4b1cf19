// Package csp is the constraint-satisfaction core of the filler. Slots are
// variables, candidate words are values, and every crossing imposes a
// letter-equality constraint. The solver enforces node and arc consistency
// over the domains and then runs a backtracking search with MRV/degree
// variable selection and least-constraining-value ordering.
package csp

import (
	"sort"

	"github.com/dstol/crossfill/grid"
)

// Assignment maps slots to the words chosen for them. It is partial during
// search and complete in a returned solution.
type Assignment map[grid.Variable]string

type wordSet map[string]struct{}

// Solver owns the domains for a single fill. Each Solver instance is
// independent; nothing is shared between solvers, so concurrent fills of
// different puzzles never interfere.
type Solver struct {
	g       *grid.Grid
	domains map[grid.Variable]wordSet
}

// NewSolver initializes every slot's domain to the full vocabulary.
// Domains only ever shrink after this point.
func NewSolver(g *grid.Grid, words []string) *Solver {
	s := &Solver{
		g:       g,
		domains: make(map[grid.Variable]wordSet, len(g.Variables())),
	}
	for _, v := range g.Variables() {
		d := make(wordSet, len(words))
		for _, w := range words {
			d[w] = struct{}{}
		}
		s.domains[v] = d
	}
	return s
}

// Domain returns the remaining candidates for v, sorted for stable output.
func (s *Solver) Domain(v grid.Variable) []string {
	d := s.domains[v]
	words := make([]string, 0, len(d))
	for w := range d {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// DomainSize returns the number of candidates remaining for v.
func (s *Solver) DomainSize(v grid.Variable) int {
	return len(s.domains[v])
}
