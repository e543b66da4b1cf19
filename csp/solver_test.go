package csp

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/dstol/crossfill/grid"
)

func checkSolution(t *testing.T, g *grid.Grid, a Assignment) {
	t.Helper()
	is := is.New(t)
	is.Equal(len(a), len(g.Variables())) // every slot bound

	seen := make(map[string]bool)
	for v, w := range a {
		is.Equal(len(w), v.Length)
		is.True(!seen[w]) // no word used twice
		seen[w] = true
	}
	for _, x := range g.Variables() {
		for _, y := range g.Neighbors(x) {
			c, ok := g.Overlap(x, y)
			is.True(ok)
			is.Equal(a[x][c.X], a[y][c.Y])
		}
	}
}

func TestSolveSingleSlot(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.LoneSlotGrid)
	s := NewSolver(g, []string{"CAT", "DOG"})
	a, err := s.Solve()
	is.NoErr(err)
	checkSolution(t, g, a)
	w := a[g.Variables()[0]]
	is.True(w == "CAT" || w == "DOG")
}

func TestSolveCrossingFirstLetters(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, []string{
		`___`,
		`_##`,
		`_##`,
	})
	s := NewSolver(g, []string{"CAT", "COG", "DOG"})
	a, err := s.Solve()
	is.NoErr(err)
	checkSolution(t, g, a)

	across := grid.Variable{Row: 0, Col: 0, Length: 3, Direction: grid.Across}
	down := grid.Variable{Row: 0, Col: 0, Length: 3, Direction: grid.Down}
	is.Equal(a[across][0], a[down][0])
	is.True(a[across] != a[down])
}

func TestSolveNoWordFits(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.LoneSlotGrid)
	s := NewSolver(g, []string{"AB", "HOUSE"})
	_, err := s.Solve()
	is.True(errors.Is(err, ErrNoSolution))
}

func TestSolveDistinctnessForbidsSharedOnlyWord(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, []string{
		`___`,
		`###`,
		`___`,
	})
	// Two disjoint slots, one fitting word: arc consistency has nothing
	// to prune (no crossings), but search must reject using CAT twice.
	s := NewSolver(g, []string{"CAT"})
	_, err := s.Solve()
	is.True(errors.Is(err, ErrNoSolution))

	s = NewSolver(g, []string{"CAT", "DOG"})
	a, err := s.Solve()
	is.NoErr(err)
	checkSolution(t, g, a)
}

func TestSolveLadder(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.LadderGrid)
	s := NewSolver(g, []string{
		"STRAND", "PUZZLE", "STREAM", "PEOPLE",
		"STOP", "DATE", "SOAP", "DOME", "CAT",
	})
	a, err := s.Solve()
	is.NoErr(err)
	checkSolution(t, g, a)
}

func TestSolveCornerUniqueFill(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.CornerGrid)
	s := NewSolver(g, []string{"TIP", "TANK", "KILN"})
	a, err := s.Solve()
	is.NoErr(err)
	checkSolution(t, g, a)
	is.Equal(a[grid.Variable{Row: 0, Col: 1, Length: 3, Direction: grid.Across}], "TIP")
	is.Equal(a[grid.Variable{Row: 0, Col: 1, Length: 4, Direction: grid.Down}], "TANK")
	is.Equal(a[grid.Variable{Row: 3, Col: 1, Length: 4, Direction: grid.Across}], "KILN")
}

func TestSelectUnassignedMRV(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.CornerGrid)
	// Three 4-letter words, one 3-letter word: the across-3 slot has the
	// smallest domain after node consistency.
	s := NewSolver(g, []string{"TIP", "TANK", "KILN", "DATE"})
	s.EnforceNodeConsistency()
	v := s.selectUnassigned(Assignment{})
	is.Equal(v, grid.Variable{Row: 0, Col: 1, Length: 3, Direction: grid.Across})
}

func TestSelectUnassignedDegreeTieBreak(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.CornerGrid)
	// All domains equal in size; the down slot crosses both across slots
	// and wins on degree.
	s := NewSolver(g, nil)
	v := s.selectUnassigned(Assignment{})
	is.Equal(v, grid.Variable{Row: 0, Col: 1, Length: 4, Direction: grid.Down})
}

func TestSelectUnassignedPanicsWhenDone(t *testing.T) {
	g := mustGrid(t, grid.LoneSlotGrid)
	s := NewSolver(g, []string{"CAT"})
	a := Assignment{g.Variables()[0]: "CAT"}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic with no unassigned variables left")
		}
	}()
	s.selectUnassigned(a)
}

func TestOrderDomainValuesLeastConstrainingFirst(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	across := g.Variables()[0]
	down := g.Variables()[1]

	s := NewSolver(g, []string{"AAA", "BBB"})
	// Shrink the neighbor's domain by hand so the counts differ: AAA is
	// still open for the assigned neighbor, BBB is not.
	s.domains[across] = wordSet{"AAA": {}}
	a := Assignment{across: "AAA"}
	vals := s.orderDomainValues(down, a)
	is.Equal(vals, []string{"BBB", "AAA"})
}

func TestCompleteAndConsistent(t *testing.T) {
	is := is.New(t)
	g := mustGrid(t, grid.PlusSignGrid)
	across := g.Variables()[0]
	down := g.Variables()[1]
	s := NewSolver(g, []string{"CAT", "BAT"})

	is.True(!s.Complete(Assignment{}))
	is.True(s.Consistent(Assignment{}))

	partial := Assignment{across: "CAT"}
	is.True(!s.Complete(partial))
	is.True(s.Consistent(partial))

	// Middle letters agree (A/A) and words are distinct.
	full := Assignment{across: "CAT", down: "BAT"}
	is.True(s.Complete(full))
	is.True(s.Consistent(full))

	// Same word twice.
	is.True(!s.Consistent(Assignment{across: "CAT", down: "CAT"}))
	// Wrong length.
	is.True(!s.Consistent(Assignment{across: "CATS"}))
	// Crossing letters disagree.
	is.True(!s.Consistent(Assignment{across: "CAT", down: "DOG"}))
}
