package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// FitZoom returns the scale that fits a w×h image inside availW×availH.
// Images are never enlarged past maxZoom.
func FitZoom(w, h, availW, availH int, maxZoom float64) float64 {
	if w <= 0 || h <= 0 || availW <= 0 || availH <= 0 {
		return 0
	}
	zx := float64(availW) / float64(w)
	zy := float64(availH) / float64(h)
	z := zx
	if zy < z {
		z = zy
	}
	if maxZoom > 0 && z > maxZoom {
		z = maxZoom
	}
	return z
}

// CenteredRect returns the w×h rectangle centered in area.
func CenteredRect(area image.Rectangle, w, h int) image.Rectangle {
	x := area.Min.X + (area.Dx()-w)/2
	y := area.Min.Y + (area.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Scaled returns src resized to w×h. The source is returned unchanged when it
// already has that size.
func Scaled(src *image.RGBA, w, h int) *image.RGBA {
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
