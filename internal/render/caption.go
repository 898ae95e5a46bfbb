package render

import (
	"image"
	"image/draw"

	"github.com/example/memesmith/internal/overlay"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// CaptionImage renders a laid out caption, centered line by line, onto a
// transparent tile the size of the caption element.
func CaptionImage(face font.Face, b Block, style overlay.Style) *image.RGBA {
	w, h := b.Size()
	tile := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{Dst: tile, Src: image.NewUniform(style.Color), Face: face}
	for i, line := range b.Lines {
		x := CaptionPadding + (b.Width-b.LineWidths[i])/2
		y := CaptionPadding + b.Ascent + i*b.LineHeight
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
	}
	return tile
}

// DrawCaption composites the caption with its top-left corner at at. The
// shadow, when enabled, may extend past the caption rectangle.
func DrawCaption(dst draw.Image, at image.Point, face font.Face, b Block, style overlay.Style) {
	tile := CaptionImage(face, b, style)
	if style.HasShadow {
		res := ApplyShadow(tile, TextShadowOptions())
		if res.Image != nil {
			r := res.Image.Bounds().Add(at.Sub(res.Offset))
			draw.Draw(dst, r, res.Image, res.Image.Bounds().Min, draw.Over)
			return
		}
	}
	draw.Draw(dst, tile.Bounds().Add(at), tile, image.Point{}, draw.Over)
}

// DrawOutline strokes a one pixel rectangle border, used to mark the caption
// under the pointer while it is dragged.
func DrawOutline(dst draw.Image, r image.Rectangle, c image.Image) {
	if r.Empty() {
		return
	}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), c, image.Point{}, draw.Over)
	}
}
