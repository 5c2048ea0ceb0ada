package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"mad-life/internal/core"
	"mad-life/internal/life"
)

// Config represents the startup parameters for the application.
type Config struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	CellW      int    `json:"cell_w"`
	CellH      int    `json:"cell_h"`
	TPS        int    `json:"tps"`
	HUDWidth   int    `json:"hud_width"`
	GridLines  bool   `json:"grid_lines"`
	LogLevel   string `json:"log_level"`
	ConfigPath string `json:"-"`
}

// NewConfig returns a Config holding the reference 32x24 board drawn with
// 25px cells at 6 ticks per second.
func NewConfig() *Config {
	return &Config{
		Title:    "game_of_life",
		Width:    32,
		Height:   24,
		CellW:    25,
		CellH:    25,
		TPS:      core.DefaultTPS,
		HUDWidth: 160,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellW, "cell-w", c.CellW, "cell width in pixels")
	fs.IntVar(&c.CellH, "cell-h", c.CellH, "cell height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 disables)")
	fs.BoolVar(&c.GridLines, "grid-lines", c.GridLines, "draw lines between cells")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON config file")
}

// LoadFile overlays the values found in the JSON file at path.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "decode config %s", path)
	}
	return nil
}

// Validate reports the first setting that cannot drive a board.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	case c.CellW <= 0 || c.CellH <= 0:
		return errors.Errorf("cell size %dx%d must be positive", c.CellW, c.CellH)
	case c.TPS <= 0:
		return errors.Errorf("tps %d must be positive", c.TPS)
	case c.HUDWidth < 0:
		return errors.Errorf("hud width %d must not be negative", c.HUDWidth)
	}
	return nil
}

// CellSize returns the configured pixel size of one cell.
func (c *Config) CellSize() life.CellSize {
	return life.CellSize{W: c.CellW, H: c.CellH}
}

// ScreenSize returns the window size: the board plus the HUD panel.
func (c *Config) ScreenSize() (int, int) {
	w, h := c.CellSize().ScreenSize(core.Size{W: c.Width, H: c.Height})
	return w + c.HUDWidth, h
}
