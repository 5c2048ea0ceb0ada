package life

import (
	"time"

	"mad-life/internal/core"
)

// Key identifies the keys the controller reacts to. Hosts map their own key
// codes onto these values and pass KeyOther for everything else.
type Key int

const (
	// KeyOther stands for any key the controller ignores.
	KeyOther Key = iota
	// KeyEscape requests quit.
	KeyEscape
	// KeySpace toggles pause.
	KeySpace
)

// Button identifies a pointer button.
type Button int

const (
	// ButtonOther stands for any button the controller ignores.
	ButtonOther Button = iota
	// ButtonLeft paints cells alive.
	ButtonLeft
	// ButtonRight paints cells dead.
	ButtonRight
)

// Controller owns a Board plus the interaction state and turns host
// callbacks into board mutations. It is not safe for concurrent use; hosts
// deliver one callback at a time.
type Controller struct {
	board *Board
	gate  *core.TickGate
	cells CellSize
	tps   int

	paused  bool
	focused bool
	hover   *core.Point
	quit    bool
}

// NewController wraps board, ticking at tps and starting the first interval at start.
func NewController(board *Board, cells CellSize, tps int, start time.Time) *Controller {
	if tps <= 0 {
		tps = core.DefaultTPS
	}
	return &Controller{
		board: board,
		gate:  core.NewTickGate(tps, start),
		cells: cells,
		tps:   tps,
	}
}

// Board exposes the simulated board for rendering queries.
func (c *Controller) Board() *Board { return c.board }

// CellSize returns the pixel size used by the screen mapping.
func (c *Controller) CellSize() CellSize { return c.cells }

// TickInterval returns the minimum time between generations.
func (c *Controller) TickInterval() time.Duration { return c.gate.Interval() }

// LastTick returns the time of the most recent generation advance.
func (c *Controller) LastTick() time.Time { return c.gate.Last() }

// Paused reports whether generation advance is suppressed.
func (c *Controller) Paused() bool { return c.paused }

// Focused reports whether the host window has input focus.
func (c *Controller) Focused() bool { return c.focused }

// Hover returns the grid cell under the pointer, if any.
func (c *Controller) Hover() (core.Point, bool) {
	if c.hover == nil {
		return core.Point{}, false
	}
	return *c.hover, true
}

// QuitRequested reports whether Quit has been called.
func (c *Controller) QuitRequested() bool { return c.quit }

// TogglePause flips the paused flag. Edits stay active while paused.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// Quit asks the host to exit.
func (c *Controller) Quit() { c.quit = true }

// SetFocus records a focus change. Losing focus clears the hover cell.
func (c *Controller) SetFocus(gained bool) {
	c.focused = gained
	if !gained {
		c.hover = nil
	}
}

// Key dispatches a key press: Escape quits, Space toggles pause.
func (c *Controller) Key(k Key) {
	switch k {
	case KeyEscape:
		c.Quit()
	case KeySpace:
		c.TogglePause()
	}
}

// PointerMove handles pointer motion with the current button states.
func (c *Controller) PointerMove(x, y int, leftDown, rightDown bool) {
	c.edit(x, y, leftDown, rightDown)
}

// PointerButton handles a button press at (x, y).
func (c *Controller) PointerButton(b Button, x, y int) {
	c.edit(x, y, b == ButtonLeft, b == ButtonRight)
}

// edit paints the cell under (x, y): left sets alive and wins over right,
// right sets dead, neither is a pure hover.
func (c *Controller) edit(x, y int, leftDown, rightDown bool) {
	if !leftDown && !rightDown {
		return
	}
	p, ok := c.cells.ScreenToCell(x, y, c.board.Size())
	if !ok {
		return
	}
	c.board.SetCell(p.X, p.Y, leftDown)
}

// Update runs once per host frame. It advances one generation when running
// and a tick is due, then refreshes the hover cell from the cursor position.
// It reports whether a generation was advanced.
func (c *Controller) Update(now time.Time, cursorX, cursorY int) bool {
	advanced := false
	if !c.paused && c.gate.Tick(now) {
		c.board.AdvanceGeneration()
		advanced = true
	}
	c.hover = nil
	if c.focused {
		if p, ok := c.cells.ScreenToCell(cursorX, cursorY, c.board.Size()); ok {
			c.hover = &p
		}
	}
	return advanced
}

// Parameters reports the controller state for status displays.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.board.Size()
	state := "running"
	if c.paused {
		state = "paused"
	}
	hover := "-"
	if p, ok := c.Hover(); ok {
		hover = formatPoint(p)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.IntParam("tps", "Ticks/s", c.tps),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.StringParam("state", "State", state),
				core.Uint64Param("generation", "Generation", c.board.Generation()),
				core.IntParam("population", "Population", c.board.Population()),
			},
		},
		{
			Name: "Input",
			Params: []core.Parameter{
				core.BoolParam("focused", "Focused", c.focused),
				core.StringParam("hover", "Hover", hover),
			},
		},
	}}
}
