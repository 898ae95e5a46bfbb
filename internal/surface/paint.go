package surface

import (
	"image"
	"image/draw"

	"github.com/example/memesmith/internal/render"
	"github.com/example/memesmith/internal/theme"
)

// FrameWidth is the border drawn around the surface.
const FrameWidth = 8

// Paint draws the surface and its captions into dst.
func (s *Surface) Paint(dst *image.RGBA, th *theme.Theme) {
	if th == nil {
		th = theme.Default()
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.Background), image.Point{}, draw.Src)
	view := s.view.Image()
	if s.image == nil || view.Empty() {
		return
	}

	draw.Draw(dst, view.Inset(-FrameWidth), image.NewUniform(th.Frame), image.Point{}, draw.Src)
	render.DrawCheckerboard(dst, view, 8, th.CheckerLight, th.CheckerDark)
	if s.scaled == nil {
		s.scaled = render.Scaled(s.image, view.Dx(), view.Dy())
	}
	if s.scaled != nil {
		draw.Draw(dst, view, s.scaled, image.Point{}, draw.Over)
	}

	clip, ok := dst.SubImage(view).(*image.RGBA)
	if !ok {
		return
	}
	for _, c := range s.captions {
		face, b, ok := s.layout(c)
		if !ok {
			continue
		}
		r := s.CaptionBounds(c.anchor).Image()
		render.DrawCaption(clip, r.Min, face, b, s.style)
		if s.Dragging(c.anchor) {
			render.DrawOutline(clip, r, image.NewUniform(th.DragOutline))
			render.DrawOutline(clip, r.Inset(1), image.NewUniform(th.DragOutline))
		}
	}
}
