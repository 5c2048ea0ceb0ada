//go:build ebiten

package app

import (
	"time"

	"mad-life/internal/life"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *life.Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette

	screenW, screenH int
	boardW, boardH   int

	focused     bool
	cursorX     int
	cursorY     int
	cursorKnown bool
	keys        []ebiten.Key
	now         func() time.Time
}

// New constructs a Game driving ctrl with the provided configuration.
func New(ctrl *life.Controller, cfg *Config) *Game {
	size := ctrl.Board().Size()
	palette := render.DefaultPalette()
	g := &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(ctrl, palette, cfg.GridLines),
		hud:     ui.NewHUD(ctrl, cfg.Title, cfg.HUDWidth),
		palette: palette,
		now:     time.Now,
	}
	g.boardW, g.boardH = ctrl.CellSize().ScreenSize(size)
	g.screenW, g.screenH = cfg.ScreenSize()
	return g
}

// Update delivers this frame's input to the controller and runs its tick gate.
func (g *Game) Update() error {
	g.syncFocus()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		wasPaused := g.ctrl.Paused()
		g.ctrl.Key(mapKey(k))
		if g.ctrl.QuitRequested() {
			log.WithField("generation", g.ctrl.Board().Generation()).Info("quit requested")
			return ebiten.Termination
		}
		if g.ctrl.Paused() != wasPaused {
			log.WithField("paused", g.ctrl.Paused()).Debug("pause toggled")
		}
	}

	g.deliverPointer()

	if g.ctrl.Update(g.now(), g.cursorX, g.cursorY) {
		log.WithFields(log.Fields{
			"generation": g.ctrl.Board().Generation(),
			"population": g.ctrl.Board().Population(),
		}).Debug("generation advanced")
	}
	g.hud.Update()
	return nil
}

func (g *Game) syncFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	g.ctrl.SetFocus(focused)
	log.WithField("focused", focused).Debug("focus changed")
}

func (g *Game) deliverPointer() {
	x, y := ebiten.CursorPosition()
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight} {
		if inpututil.IsMouseButtonJustPressed(b) {
			g.ctrl.PointerButton(mapButton(b), x, y)
		}
	}
	if !g.cursorKnown || x != g.cursorX || y != g.cursorY {
		g.ctrl.PointerMove(x, y,
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	}
	g.cursorX, g.cursorY = x, y
	g.cursorKnown = true
}

// Draw renders the board, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.ctrl.CellSize()
	bg := g.palette.BackgroundFor(g.ctrl.Paused())
	screen.Fill(bg)
	g.painter.Blit(screen, g.ctrl.Board(), g.palette.Alive, bg, cells.W, cells.H)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardW, g.boardH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
