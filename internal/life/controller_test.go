package life

import (
	"testing"
	"time"
)

var epoch = time.Unix(1_700_000_000, 0)

func newTestController() *Controller {
	return NewController(NewBoard(32, 24), CellSize{W: 25, H: 25}, 6, epoch)
}

func seedBlinker(b *Board) {
	setAlive(b, [2]int{4, 5}, [2]int{5, 5}, [2]int{6, 5})
}

func TestUpdateTickGate(t *testing.T) {
	c := newTestController()
	seedBlinker(c.Board())
	interval := c.TickInterval()
	if interval != 166*time.Millisecond {
		t.Fatalf("TickInterval() = %s, expected 166ms at 6 ticks/s", interval)
	}

	if c.Update(epoch.Add(interval-time.Millisecond), -1, -1) {
		t.Fatal("advanced before the tick interval elapsed")
	}
	if c.Board().Generation() != 0 {
		t.Fatalf("Generation() = %d, expected 0", c.Board().Generation())
	}

	now := epoch.Add(interval)
	if !c.Update(now, -1, -1) {
		t.Fatal("expected an advance once the interval elapsed")
	}
	if c.Board().Generation() != 1 || !c.Board().Cell(5, 4) {
		t.Fatal("Update did not advance the board exactly once")
	}
	if !c.LastTick().Equal(now) {
		t.Fatalf("LastTick() = %s, expected %s", c.LastTick(), now)
	}

	if c.Update(now.Add(time.Millisecond), -1, -1) {
		t.Fatal("a second advance within one interval")
	}
}

func TestUpdateSlowHostAdvancesOncePerCall(t *testing.T) {
	c := newTestController()
	c.Update(epoch.Add(10*time.Second), -1, -1)
	if got := c.Board().Generation(); got != 1 {
		t.Fatalf("Generation() = %d, expected a single advance for a late call", got)
	}
}

func TestPausedUpdateNeverAdvances(t *testing.T) {
	c := newTestController()
	seedBlinker(c.Board())
	c.TogglePause()
	if !c.Paused() {
		t.Fatal("TogglePause did not pause")
	}
	before := c.Board().Hash()
	for i := 1; i <= 50; i++ {
		if c.Update(epoch.Add(time.Duration(i)*time.Second), -1, -1) {
			t.Fatal("paused controller advanced")
		}
	}
	if c.Board().Hash() != before || c.Board().Generation() != 0 {
		t.Fatal("grid changed while paused")
	}

	c.TogglePause()
	if !c.Update(epoch.Add(51*time.Second), -1, -1) {
		t.Fatal("resumed controller did not advance")
	}
}

func TestEditsWhilePaused(t *testing.T) {
	c := newTestController()
	c.Key(KeySpace)
	c.PointerButton(ButtonLeft, 60, 35)
	if !c.Board().Cell(2, 1) {
		t.Fatal("left click while paused did not set the cell alive")
	}
}

func TestPointerEdits(t *testing.T) {
	cases := []struct {
		name        string
		start       bool
		left, right bool
		want        bool
	}{
		{name: "left sets alive", start: false, left: true, want: true},
		{name: "right sets dead", start: true, right: true, want: false},
		{name: "both prefers left", start: false, left: true, right: true, want: true},
		{name: "hover leaves alive", start: true, want: true},
		{name: "hover leaves dead", start: false, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			c.Board().SetCell(3, 2, tc.start)
			c.PointerMove(3*25+12, 2*25+24, tc.left, tc.right)
			if got := c.Board().Cell(3, 2); got != tc.want {
				t.Fatalf("cell alive=%v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPointerButton(t *testing.T) {
	c := newTestController()
	c.PointerButton(ButtonLeft, 0, 0)
	if !c.Board().Cell(0, 0) {
		t.Fatal("left button did not set the cell alive")
	}
	c.PointerButton(ButtonOther, 0, 0)
	if !c.Board().Cell(0, 0) {
		t.Fatal("other buttons must be ignored")
	}
	c.PointerButton(ButtonRight, 24, 24)
	if c.Board().Cell(0, 0) {
		t.Fatal("right button did not kill the cell")
	}
}

func TestPointerOutsideGridIgnored(t *testing.T) {
	c := newTestController()
	for _, pos := range [][2]int{{-1, 10}, {10, -30}, {800, 10}, {10, 600}, {5000, 5000}} {
		c.PointerMove(pos[0], pos[1], true, false)
		c.PointerButton(ButtonLeft, pos[0], pos[1])
	}
	if got := c.Board().Population(); got != 0 {
		t.Fatalf("Population() = %d, expected off-grid edits to be rejected", got)
	}
}

func TestHoverFollowsCursorWhileFocused(t *testing.T) {
	c := newTestController()
	c.Update(epoch, 130, 60)
	if _, ok := c.Hover(); ok {
		t.Fatal("hover set while unfocused")
	}

	c.SetFocus(true)
	c.Update(epoch, 130, 60)
	p, ok := c.Hover()
	if !ok || p.X != 5 || p.Y != 2 {
		t.Fatalf("Hover() = %+v,%v, expected (5,2)", p, ok)
	}

	c.Update(epoch, 900, 60)
	if _, ok := c.Hover(); ok {
		t.Fatal("hover kept for a cursor outside the grid")
	}
}

func TestFocusLossClearsHover(t *testing.T) {
	c := newTestController()
	c.SetFocus(true)
	c.PointerMove(30, 30, false, false)
	c.Update(epoch, 30, 30)
	if _, ok := c.Hover(); !ok {
		t.Fatal("expected a hover cell while focused")
	}

	c.SetFocus(false)
	if _, ok := c.Hover(); ok {
		t.Fatal("losing focus did not clear the hover cell")
	}
	c.Update(epoch, 30, 30)
	if _, ok := c.Hover(); ok {
		t.Fatal("update restored hover while unfocused")
	}
}

func TestKeyDispatch(t *testing.T) {
	c := newTestController()
	c.Key(KeyOther)
	if c.Paused() || c.QuitRequested() {
		t.Fatal("unmapped keys must be ignored")
	}
	c.Key(KeySpace)
	c.Key(KeySpace)
	if c.Paused() {
		t.Fatal("two space presses should resume")
	}
	c.Key(KeyEscape)
	if !c.QuitRequested() {
		t.Fatal("escape did not request quit")
	}
}

func TestParametersSnapshot(t *testing.T) {
	c := newTestController()
	c.Board().SetCell(1, 1, true)
	c.TogglePause()

	snap := c.Parameters()
	checks := map[string]string{
		"w":          "32",
		"h":          "24",
		"tps":        "6",
		"state":      "paused",
		"generation": "0",
		"population": "1",
		"focused":    "false",
		"hover":      "-",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, expected %q", key, p.Value, want)
		}
	}
}
