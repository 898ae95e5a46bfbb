package theme

import (
	"image/color"
)

// Theme defines the colors of the editor window around the meme.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area outside the composition surface
	Foreground color.RGBA // Status text

	// Canvas
	CheckerLight color.RGBA // Shown through transparent image pixels
	CheckerDark  color.RGBA
	Frame        color.RGBA // Border around the composition surface

	// Captions
	DragOutline color.RGBA // Outline of the caption being dragged
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:         "Default",
		Background:   color.RGBA{220, 220, 220, 255},
		Foreground:   color.RGBA{0, 0, 0, 255},
		CheckerLight: color.RGBA{220, 220, 220, 255},
		CheckerDark:  color.RGBA{192, 192, 192, 255},
		Frame:        color.RGBA{250, 204, 21, 255},
		DragOutline:  color.RGBA{255, 255, 255, 77},
	}
}
