// Package render turns a solved assignment back into something a person
// can look at: a letter grid, terminal text, or a PNG.
package render

import (
	"strings"

	"github.com/dstol/crossfill/csp"
	"github.com/dstol/crossfill/grid"
)

// LetterGrid lays the assignment's words onto a Height x Width rune grid.
// Cells not covered by any slot hold zero runes.
func LetterGrid(g *grid.Grid, a csp.Assignment) [][]rune {
	letters := make([][]rune, g.Height)
	for i := range letters {
		letters[i] = make([]rune, g.Width)
	}
	for v, word := range a {
		for k, c := range word {
			r, col := v.Cell(k)
			letters[r][col] = c
		}
	}
	return letters
}

// Text renders the filled grid for the terminal, with blocked cells drawn
// as full blocks.
func Text(g *grid.Grid, a csp.Assignment) string {
	letters := LetterGrid(g, a)
	var sb strings.Builder
	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			switch {
			case !g.Open(i, j):
				sb.WriteRune('█')
			case letters[i][j] != 0:
				sb.WriteRune(letters[i][j])
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
