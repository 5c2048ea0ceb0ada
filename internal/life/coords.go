package life

import (
	"image"
	"strconv"

	"mad-life/internal/core"
)

// CellSize is the on-screen pixel size of one grid cell.
type CellSize struct {
	W int
	H int
}

// ScreenToCell maps a screen pixel to the grid cell underneath it. Negative
// pixels and pixels past the grid are rejected.
func (c CellSize) ScreenToCell(px, py int, grid core.Size) (core.Point, bool) {
	if px < 0 || py < 0 || c.W <= 0 || c.H <= 0 {
		return core.Point{}, false
	}
	p := core.Point{X: px / c.W, Y: py / c.H}
	if p.X >= grid.W || p.Y >= grid.H {
		return core.Point{}, false
	}
	return p, true
}

// CellRect returns the screen rectangle covered by grid cell p.
func (c CellSize) CellRect(p core.Point) image.Rectangle {
	x0, y0 := p.X*c.W, p.Y*c.H
	return image.Rect(x0, y0, x0+c.W, y0+c.H)
}

// ScreenSize returns the pixel size of a grid drawn at this cell size.
func (c CellSize) ScreenSize(grid core.Size) (int, int) {
	return grid.W * c.W, grid.H * c.H
}

func formatPoint(p core.Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}
