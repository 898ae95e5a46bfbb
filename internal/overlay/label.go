package overlay

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/example/memesmith/internal/geom"
)

// Position is a caption offset relative to the composition surface's
// top-left corner, in surface pixels.
type Position = geom.Point

// Anchor is the side a caption sits on before the user moves it.
type Anchor int

const (
	Top Anchor = iota
	Bottom
)

func (a Anchor) String() string {
	if a == Bottom {
		return "bottom"
	}
	return "top"
}

// ParseAnchor accepts "top" or "bottom".
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, fmt.Errorf("unknown anchor %q", s)
}

// Style describes how caption text is drawn.
type Style struct {
	FontFamily string
	FontSizePx float64
	Color      color.RGBA
	HasShadow  bool
}

// DefaultStyle matches the classic meme look: white Impact with a shadow.
func DefaultStyle() Style {
	return Style{
		FontFamily: "Impact",
		FontSizePx: 32,
		Color:      color.RGBA{255, 255, 255, 255},
		HasShadow:  true,
	}
}

// Label is one caption as handed to a Draggable on each render.
type Label struct {
	Text   string
	Style  Style
	Anchor Anchor
}

// Empty reports whether the label has nothing to render.
func (l Label) Empty() bool { return strings.TrimSpace(l.Text) == "" }
