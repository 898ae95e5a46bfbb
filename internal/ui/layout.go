package ui

import (
	"image"
	"image/draw"

	"github.com/example/memesmith/internal/overlay"
	"github.com/example/memesmith/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	statusHeight = 24
	margin       = 24
	// MaxZoom caps how far a small image is enlarged to fill the window.
	MaxZoom = 4.0

	maxCanvasWidth  = 960
	maxCanvasHeight = 720
)

// windowSize picks the initial window size for img.
func windowSize(img *image.RGBA) (int, int) {
	cw, ch := 640, 480
	if img != nil {
		b := img.Bounds()
		z := render.FitZoom(b.Dx(), b.Dy(), maxCanvasWidth, maxCanvasHeight, 1)
		cw = int(float64(b.Dx()) * z)
		ch = int(float64(b.Dy()) * z)
	}
	return cw + 2*margin, ch + 2*margin + statusHeight
}

// canvasArea is the part of the window available to the surface.
func canvasArea(width, height int) image.Rectangle {
	if width <= 2*margin || height <= statusHeight+2*margin {
		return image.Rectangle{}
	}
	return image.Rect(margin, margin, width-margin, height-statusHeight-margin)
}

func (a *App) status() string {
	s := a.Surface
	switch {
	case s.Image() == nil:
		return "no image loaded"
	case s.Dragging(overlay.Top):
		return "moving top caption"
	case s.Dragging(overlay.Bottom):
		return "moving bottom caption"
	case s.Static():
		return "captions are fixed - Q quit"
	}
	return "drag a caption to move it - Q quit"
}

func (a *App) paint(dst *image.RGBA) {
	a.Surface.Paint(dst, a.Theme)
	b := dst.Bounds()
	bar := image.Rect(b.Min.X, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	draw.Draw(dst, bar, image.NewUniform(a.Theme.Background), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(a.Theme.Foreground),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(bar.Min.X+8, bar.Min.Y+16),
	}
	d.DrawString(a.status())
}
