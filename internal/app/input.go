//go:build ebiten

package app

import (
	"mad-life/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func mapKey(k ebiten.Key) life.Key {
	switch k {
	case ebiten.KeyEscape:
		return life.KeyEscape
	case ebiten.KeySpace:
		return life.KeySpace
	default:
		return life.KeyOther
	}
}

func mapButton(b ebiten.MouseButton) life.Button {
	switch b {
	case ebiten.MouseButtonLeft:
		return life.ButtonLeft
	case ebiten.MouseButtonRight:
		return life.ButtonRight
	default:
		return life.ButtonOther
	}
}
