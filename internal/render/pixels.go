package render

import (
	"image/color"

	"mad-life/internal/core"
)

// Palette holds the colours used to draw a board.
type Palette struct {
	Alive            color.Color
	Background       color.Color
	PausedBackground color.Color
	Hover            color.Color
	GridLine         color.Color
}

// DefaultPalette draws blue cells on black, switching to a white background
// while paused, with a translucent grey hover highlight.
func DefaultPalette() Palette {
	return Palette{
		Alive:            color.RGBA{B: 255, A: 255},
		Background:       color.Black,
		PausedBackground: color.White,
		Hover:            color.NRGBA{R: 128, G: 128, B: 128, A: 64},
		GridLine:         color.RGBA{R: 48, G: 48, B: 56, A: 255},
	}
}

// BackgroundFor returns the background colour for the paused state.
func (p Palette) BackgroundFor(paused bool) color.Color {
	if paused {
		return p.PausedBackground
	}
	return p.Background
}

// fillCellsRGBA converts the cells of src into one RGBA pixel per cell in buf.
func fillCellsRGBA(buf []byte, src core.CellReader, on, off color.Color) {
	size := src.Size()
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			if src.Cell(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
