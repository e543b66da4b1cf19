package render

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/dstol/crossfill/csp"
	"github.com/dstol/crossfill/grid"
)

const (
	cellSize   = 100
	cellBorder = 2
	fontSize   = 80
)

// SavePNG writes the filled grid as an image: black background, white
// cells, centered black letters.
func SavePNG(g *grid.Grid, a csp.Assignment, path string) error {
	letters := LetterGrid(g, a)

	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: fontSize,
		DPI:  72,
	})
	if err != nil {
		return err
	}

	dc := gg.NewContext(g.Width*cellSize, g.Height*cellSize)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetFontFace(face)

	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			if !g.Open(i, j) {
				continue
			}
			x := float64(j*cellSize + cellBorder)
			y := float64(i*cellSize + cellBorder)
			side := float64(cellSize - 2*cellBorder)
			dc.SetRGB(1, 1, 1)
			dc.DrawRectangle(x, y, side, side)
			dc.Fill()
			if letters[i][j] != 0 {
				dc.SetRGB(0, 0, 0)
				dc.DrawStringAnchored(string(letters[i][j]),
					x+side/2, y+side/2, 0.5, 0.5)
			}
		}
	}
	return dc.SavePNG(path)
}
