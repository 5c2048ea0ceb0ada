// Package life implements Conway's Game of Life on an edge-bounded grid and
// the interaction state machine that drives it from host callbacks.
package life

import (
	"hash/fnv"

	"mad-life/internal/core"
	pkgcore "mad-life/pkg/core"
)

// neighbourOffsets lists the eight cells surrounding a cell.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board owns the grid and the generation rule. Off-grid cells are always dead.
type Board struct {
	cur *core.Grid
	nxt *core.Grid
	gen uint64
}

// NewBoard returns a board of the given size with every cell dead.
func NewBoard(w, h int) *Board {
	cur := core.NewGrid(w, h)
	return &Board{cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return b.cur.Size() }

// Cell reports whether (x, y) is alive. Coordinates outside the grid read dead.
func (b *Board) Cell(x, y int) bool { return b.cur.At(x, y) }

// SetCell writes one cell. The caller must range-check (x, y) first.
func (b *Board) SetCell(x, y int, alive bool) { b.cur.Set(x, y, alive) }

// Neighbours counts the alive cells around (x, y).
func (b *Board) Neighbours(x, y int) int {
	n := 0
	for _, off := range neighbourOffsets {
		if b.cur.At(x+off[0], y+off[1]) {
			n++
		}
	}
	return n
}

// AdvanceGeneration computes the next generation from the current one and
// swaps it in once every cell has been evaluated.
func (b *Board) AdvanceGeneration() {
	w, h := b.cur.W, b.cur.H
	next := b.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := b.Neighbours(x, y)
			alive := b.cur.At(x, y)
			next[b.nxt.Index(x, y)] = n == 3 || (alive && n == 2)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}

// Generation returns how many generations have been advanced.
func (b *Board) Generation() uint64 { return b.gen }

// Population returns the number of alive cells.
func (b *Board) Population() int { return b.cur.Count() }

// Clear kills every cell and resets the generation counter.
func (b *Board) Clear() {
	b.cur.Clear()
	b.gen = 0
}

// Randomize fills the board so that each cell is alive with probability density.
func (b *Board) Randomize(rng *pkgcore.RNG, density float64) {
	rng.FillDensity(b.cur.Cells(), density)
	b.gen = 0
}

// Snapshot returns a copy of the cells in row-major order.
func (b *Board) Snapshot() []bool {
	return append([]bool(nil), b.cur.Cells()...)
}

// Hash fingerprints the current grid contents.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	cells := b.cur.Cells()
	buf := make([]byte, (len(cells)+7)/8)
	for i, alive := range cells {
		if alive {
			buf[i/8] |= 1 << (i % 8)
		}
	}
	h.Write(buf)
	return h.Sum64()
}
