//go:build ebiten

package render

import (
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from board cells, one pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the cells of src into the painter image and draws it scaled
// to cellW x cellH pixels per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, src core.CellReader, on, off color.Color, cellW, cellH int) {
	if size := src.Size(); size.W != gp.w || size.H != gp.h {
		return
	}
	fillCellsRGBA(gp.buf, src, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellW), float64(cellH))
	dst.DrawImage(gp.img, op)
}
