//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"mad-life/internal/life"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws the hover highlight and optional grid lines on top of the board.
type Overlay struct {
	ctrl      *life.Controller
	palette   render.Palette
	gridLines bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(ctrl *life.Controller, palette render.Palette, gridLines bool) *Overlay {
	o := &Overlay{ctrl: ctrl, palette: palette, gridLines: gridLines}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	cells := o.ctrl.CellSize()
	if cells.W <= 0 || cells.H <= 0 {
		return
	}
	if o.gridLines {
		o.drawGridLines(screen, cells)
	}
	if p, ok := o.ctrl.Hover(); ok {
		o.fillRect(screen, cells.CellRect(p), o.palette.Hover)
	}
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, cells life.CellSize) {
	size := o.ctrl.Board().Size()
	w, h := cells.ScreenSize(size)
	for x := 1; x < size.W; x++ {
		o.fillRect(screen, image.Rect(x*cells.W, 0, x*cells.W+1, h), o.palette.GridLine)
	}
	for y := 1; y < size.H; y++ {
		o.fillRect(screen, image.Rect(0, y*cells.H, w, y*cells.H+1), o.palette.GridLine)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, rect image.Rectangle, col color.Color) {
	if o.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
