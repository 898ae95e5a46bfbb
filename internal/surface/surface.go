// Package surface implements the composition surface: the scaled meme image
// with its top and bottom captions. It owns caption positions and hands each
// caption's Draggable references to itself for measurement.
package surface

import (
	"image"

	"github.com/example/memesmith/internal/geom"
	"github.com/example/memesmith/internal/input"
	"github.com/example/memesmith/internal/overlay"
	"github.com/example/memesmith/internal/render"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

// MaxCaptionWidth is the share of the surface width a caption may occupy
// before its text wraps.
const MaxCaptionWidth = 0.9

type caption struct {
	anchor overlay.Anchor
	text   string
	pos    overlay.Position
	// placed is set once the user moved the caption; until then it sits at
	// its anchor default even though pos is (0,0).
	placed bool
	drag   *overlay.Draggable
}

// Surface is the composition surface.
type Surface struct {
	image  *image.RGBA
	scaled *image.RGBA
	view   geom.Rect
	style  overlay.Style

	fonts    *render.Fonts
	scope    *input.Scope
	static   bool
	onChange func()

	captions []*caption
	log      *logrus.Entry
}

// Option configures a Surface.
type Option func(*Surface)

// WithScope sets the window listener scope used for drags.
func WithScope(s *input.Scope) Option { return func(sf *Surface) { sf.scope = s } }

// WithFonts shares a font cache.
func WithFonts(f *render.Fonts) Option { return func(sf *Surface) { sf.fonts = f } }

// WithStyle sets the caption style.
func WithStyle(st overlay.Style) Option { return func(sf *Surface) { sf.style = st } }

// WithStatic disables dragging; captions stay at their anchors.
func WithStatic(static bool) Option { return func(sf *Surface) { sf.static = static } }

// WithOnChange registers a callback invoked whenever the surface needs a
// repaint.
func WithOnChange(fn func()) Option { return func(sf *Surface) { sf.onChange = fn } }

// New creates a surface with empty top and bottom captions.
func New(opts ...Option) *Surface {
	s := &Surface{
		style: overlay.DefaultStyle(),
		log:   logrus.WithField("component", "surface"),
	}
	for _, o := range opts {
		o(s)
	}
	if s.fonts == nil {
		s.fonts = render.NewFonts()
	}
	scope := s.scope
	if s.static {
		scope = nil
	}
	for _, a := range []overlay.Anchor{overlay.Top, overlay.Bottom} {
		c := &caption{anchor: a}
		anchor := a
		c.drag = overlay.New(overlay.Config{
			Label:            s.label(c),
			OnPositionChange: func(p overlay.Position) { s.setPosition(anchor, p) },
			Container:        overlay.ContainerFunc(s.Bounds),
			Element:          overlay.ElementFunc(func() geom.Rect { return s.CaptionBounds(anchor) }),
			Scope:            scope,
		})
		s.captions = append(s.captions, c)
	}
	return s
}

func (s *Surface) label(c *caption) overlay.Label {
	return overlay.Label{Text: c.text, Style: s.style, Anchor: c.anchor}
}

func (s *Surface) caption(a overlay.Anchor) *caption {
	for _, c := range s.captions {
		if c.anchor == a {
			return c
		}
	}
	return s.captions[0]
}

func (s *Surface) sync(c *caption) { c.drag.Update(s.label(c), c.pos) }

func (s *Surface) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// SetImage replaces the image. Caption positions are reset since offsets
// into the old image mean nothing for the new one.
func (s *Surface) SetImage(img *image.RGBA) {
	s.image = img
	s.scaled = nil
	for _, c := range s.captions {
		c.pos = overlay.Position{}
		c.placed = false
		s.sync(c)
	}
	if img != nil {
		s.log.WithFields(logrus.Fields{"width": img.Bounds().Dx(), "height": img.Bounds().Dy()}).Info("image loaded")
	}
	s.changed()
}

// Image returns the unscaled image.
func (s *Surface) Image() *image.RGBA { return s.image }

// SetCaption sets the text of one caption. Empty text hides it.
func (s *Surface) SetCaption(a overlay.Anchor, text string) {
	c := s.caption(a)
	c.text = text
	s.sync(c)
	s.changed()
}

// Caption returns the text of one caption.
func (s *Surface) Caption(a overlay.Anchor) string { return s.caption(a).text }

// SetStyle changes the style of both captions.
func (s *Surface) SetStyle(st overlay.Style) {
	s.style = st
	for _, c := range s.captions {
		s.sync(c)
	}
	s.changed()
}

// Style returns the caption style.
func (s *Surface) Style() overlay.Style { return s.style }

// Static reports whether dragging is disabled.
func (s *Surface) Static() bool { return s.static || s.scope == nil }

// SetView places the surface in the window. Positions of placed captions
// are scaled with the surface so they stay over the same part of the image.
func (s *Surface) SetView(r geom.Rect) {
	old := s.view
	s.view = r
	resized := old.Dx() != r.Dx() || old.Dy() != r.Dy()
	if resized {
		s.scaled = nil
	}
	if resized && old.Dx() > 0 && old.Dy() > 0 {
		sx, sy := r.Dx()/old.Dx(), r.Dy()/old.Dy()
		for _, c := range s.captions {
			if !c.placed {
				continue
			}
			p := geom.Pt(c.pos.X*sx, c.pos.Y*sy)
			cb := s.CaptionBounds(c.anchor)
			c.pos = geom.ClampInto(p, cb.Dx(), cb.Dy(), r.Dx(), r.Dy())
			s.sync(c)
		}
	}
	s.changed()
}

// FitInto centers the image in area at the largest zoom that fits, never
// enlarging past maxZoom.
func (s *Surface) FitInto(area image.Rectangle, maxZoom float64) {
	if s.image == nil {
		s.SetView(geom.Rect{})
		return
	}
	b := s.image.Bounds()
	z := render.FitZoom(b.Dx(), b.Dy(), area.Dx(), area.Dy(), maxZoom)
	w := int(float64(b.Dx()) * z)
	h := int(float64(b.Dy()) * z)
	s.SetView(geom.FromImage(render.CenteredRect(area, w, h)))
}

// View returns the surface rectangle in window coordinates.
func (s *Surface) View() geom.Rect { return s.view }

// Bounds reports the surface rectangle for caption positioning. There is
// nothing to position against until an image is shown.
func (s *Surface) Bounds() (geom.Rect, bool) {
	if s.image == nil || s.view.Empty() {
		return geom.Rect{}, false
	}
	return s.view, true
}

// Position returns a caption's stored position.
func (s *Surface) Position(a overlay.Anchor) overlay.Position { return s.caption(a).pos }

// Placed reports whether the user has moved a caption since the last image
// change.
func (s *Surface) Placed(a overlay.Anchor) bool { return s.caption(a).placed }

// Dragging reports whether a caption is being dragged.
func (s *Surface) Dragging(a overlay.Anchor) bool {
	return s.caption(a).drag.State() == overlay.Dragging
}

func (s *Surface) setPosition(a overlay.Anchor, p overlay.Position) {
	c := s.caption(a)
	c.pos = p
	c.placed = true
	s.sync(c)
	s.changed()
}

func (s *Surface) layout(c *caption) (font.Face, render.Block, bool) {
	if s.label(c).Empty() {
		return nil, render.Block{}, false
	}
	face, err := s.fonts.Face(s.style.FontFamily, s.style.FontSizePx)
	if err != nil {
		s.log.WithError(err).Warn("falling back to default font")
		face, err = s.fonts.Face(render.DefaultFamily, s.style.FontSizePx)
		if err != nil {
			s.log.WithError(err).Error("no caption font")
			return nil, render.Block{}, false
		}
	}
	maxWidth := int(s.view.Dx() * MaxCaptionWidth)
	return face, render.Layout(face, c.text, maxWidth), true
}

// CaptionBounds returns the caption element rectangle in window
// coordinates, measured from the current text, style and surface width.
// Hidden captions have an empty rectangle at the surface origin.
func (s *Surface) CaptionBounds(a overlay.Anchor) geom.Rect {
	c := s.caption(a)
	_, b, ok := s.layout(c)
	if !ok {
		return geom.Rect{Min: s.view.Min, Max: s.view.Min}
	}
	iw, ih := b.Size()
	w, h := float64(iw), float64(ih)
	off := c.pos
	if !c.placed {
		off = anchorOffset(a, w, h, s.view.Dx(), s.view.Dy())
	}
	return geom.RectOf(s.view.Min.Add(off), w, h)
}

// anchorOffset is where an unplaced caption sits: centered horizontally and
// flush with its side.
func anchorOffset(a overlay.Anchor, w, h, cw, ch float64) geom.Point {
	p := geom.Pt((cw-w)/2, 0)
	if a == overlay.Bottom {
		p.Y = ch - h
	}
	return geom.ClampInto(p, w, h, cw, ch)
}

// HandleEvent routes a pointer event. Down events go to the caption under
// the pointer, topmost first; everything else goes to the window scope where
// an active drag is listening. It reports whether the event was consumed.
func (s *Surface) HandleEvent(ev input.Event) bool {
	if ev.Kind == input.Down {
		// A second down from the same source means its release was lost.
		if s.scope != nil && s.scope.Dispatch(input.Event{Kind: input.Cancel, Source: ev.Source}) {
			s.changed()
		}
		for i := len(s.captions) - 1; i >= 0; i-- {
			c := s.captions[i]
			if !s.CaptionBounds(c.anchor).Contains(ev.Point) {
				continue
			}
			if c.drag.Press(ev) {
				s.changed()
				return true
			}
		}
		return false
	}
	if s.scope == nil {
		return false
	}
	handled := s.scope.Dispatch(ev)
	if handled && (ev.Kind == input.Up || ev.Kind == input.Cancel) {
		s.changed()
	}
	return handled
}

// Close ends any drag and detaches every caption from the scope.
func (s *Surface) Close() {
	for _, c := range s.captions {
		c.drag.Close()
	}
}
