// Package grid contains the structural model of a crossword puzzle: the
// grid geometry parsed from a structure file, the slot variables derived
// from it, and the crossing offsets between every pair of slots.
package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// OpenCell is the structure-file symbol for a fillable cell. Any other
// non-newline character blocks the cell.
const OpenCell = '_'

type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Variable identifies one slot: its start cell, its length, and its
// direction. Variables are immutable values and are used as map keys.
type Variable struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Direction, v.Length)
}

// Cell returns the grid coordinates of the k-th letter of this slot.
func (v Variable) Cell(k int) (row, col int) {
	if v.Direction == Across {
		return v.Row, v.Col + k
	}
	return v.Row + k, v.Col
}

// Crossing gives the offsets at which two slots share a cell: letter X of
// the first slot's word must equal letter Y of the second's.
type Crossing struct {
	X int
	Y int
}

// Grid is the parsed puzzle structure. It is immutable after Parse; the
// solver only reads from it.
type Grid struct {
	Width  int
	Height int

	open      [][]bool
	variables []Variable
	crossings map[[2]Variable]Crossing
	neighbors map[Variable][]Variable
}

var ErrEmptyStructure = errors.New("structure file contains no cells")

// ParseFile reads a structure file from disk. See Parse for the format.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	return g, nil
}

// Parse reads a plain-text structure. Each line is a row; an underscore
// marks an open cell and anything else a blocked one. Short lines are
// padded with blocked cells to the width of the longest line.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// FromRows builds a Grid from structure rows already split into strings.
func FromRows(rows []string) (*Grid, error) {
	width := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}
	if width == 0 || len(rows) == 0 {
		return nil, ErrEmptyStructure
	}
	g := &Grid{
		Width:     width,
		Height:    len(rows),
		crossings: make(map[[2]Variable]Crossing),
		neighbors: make(map[Variable][]Variable),
	}
	g.open = make([][]bool, g.Height)
	for i, row := range rows {
		g.open[i] = make([]bool, width)
		// Index by rune, not byte: blocked cells are often multibyte
		// characters like the full block.
		j := 0
		for _, c := range row {
			g.open[i][j] = c == OpenCell
			j++
		}
	}
	g.findVariables()
	g.findCrossings()
	log.Debug().Int("width", g.Width).Int("height", g.Height).
		Int("variables", len(g.variables)).Msg("parsed structure")
	return g, nil
}

// Open reports whether the cell at (row, col) is fillable.
func (g *Grid) Open(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width &&
		g.open[row][col]
}

// Variables returns all slots of the puzzle.
func (g *Grid) Variables() []Variable {
	return g.variables
}

// Neighbors returns the slots that cross v.
func (g *Grid) Neighbors(v Variable) []Variable {
	return g.neighbors[v]
}

// Overlap returns the crossing offsets for x and y, if they share a cell.
func (g *Grid) Overlap(x, y Variable) (Crossing, bool) {
	c, ok := g.crossings[[2]Variable{x, y}]
	return c, ok
}

// findVariables scans every row for maximal horizontal runs of open cells
// and every column for vertical ones. Runs of a single cell belong to the
// crossing slot in the other direction and are not variables themselves.
func (g *Grid) findVariables() {
	for i := 0; i < g.Height; i++ {
		runStart := -1
		for j := 0; j <= g.Width; j++ {
			if j < g.Width && g.open[i][j] {
				if runStart < 0 {
					runStart = j
				}
				continue
			}
			if runStart >= 0 && j-runStart > 1 {
				g.variables = append(g.variables, Variable{
					Row: i, Col: runStart, Length: j - runStart, Direction: Across,
				})
			}
			runStart = -1
		}
	}
	for j := 0; j < g.Width; j++ {
		runStart := -1
		for i := 0; i <= g.Height; i++ {
			if i < g.Height && g.open[i][j] {
				if runStart < 0 {
					runStart = i
				}
				continue
			}
			if runStart >= 0 && i-runStart > 1 {
				g.variables = append(g.variables, Variable{
					Row: runStart, Col: j, Length: i - runStart, Direction: Down,
				})
			}
			runStart = -1
		}
	}
}

// findCrossings records, for every cell shared by an across slot and a
// down slot, the offset pair in both orders. Two slots with the same
// direction can never share a cell since runs are maximal.
func (g *Grid) findCrossings() {
	type cell struct{ row, col int }
	type slotCell struct {
		v   Variable
		idx int
	}
	acrossAt := make(map[cell]slotCell)
	for _, v := range g.variables {
		if v.Direction != Across {
			continue
		}
		for k := 0; k < v.Length; k++ {
			r, c := v.Cell(k)
			acrossAt[cell{r, c}] = slotCell{v, k}
		}
	}
	for _, v := range g.variables {
		if v.Direction != Down {
			continue
		}
		for k := 0; k < v.Length; k++ {
			r, c := v.Cell(k)
			a, ok := acrossAt[cell{r, c}]
			if !ok {
				continue
			}
			g.crossings[[2]Variable{a.v, v}] = Crossing{X: a.idx, Y: k}
			g.crossings[[2]Variable{v, a.v}] = Crossing{X: k, Y: a.idx}
			g.neighbors[a.v] = append(g.neighbors[a.v], v)
			g.neighbors[v] = append(g.neighbors[v], a.v)
		}
	}
}
