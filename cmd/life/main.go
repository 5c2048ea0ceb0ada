//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/life"

	"github.com/apex/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.ConfigPath != "" {
		if err := cfg.LoadFile(cfg.ConfigPath); err != nil {
			log.WithError(err).Fatal("load config")
		}
	}
	if err := app.ConfigureLogging(cfg.LogLevel, os.Stderr); err != nil {
		log.WithError(err).Fatal("configure logging")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	board := life.NewBoard(cfg.Width, cfg.Height)
	ctrl := life.NewController(board, cfg.CellSize(), cfg.TPS, time.Now())
	game := app.New(ctrl, cfg)

	screenW, screenH := cfg.ScreenSize()
	log.WithFields(log.Fields{
		"cols":     cfg.Width,
		"rows":     cfg.Height,
		"window_w": screenW,
		"window_h": screenH,
		"tps":      cfg.TPS,
		"interval": ctrl.TickInterval(),
	}).Info("starting")

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(screenW, screenH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run game")
	}
	log.Info("game exited cleanly")
}
