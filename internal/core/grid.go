package core

import "fmt"

// Grid stores a fixed-size 2D grid of alive flags in row-major order.
// Coordinates outside [0,W) x [0,H) are never wrapped.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a grid with the given dimensions and every cell dead.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y), or false when the coordinate is off the grid.
func (g *Grid) At(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.data[g.Index(x, y)]
}

// Set writes one cell. Writing outside the grid is a programming error.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	g.data[g.Index(x, y)] = alive
}

// Count returns the number of alive cells.
func (g *Grid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
