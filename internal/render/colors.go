package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/example/memesmith/internal/theme"
)

// NamedColor is a caption color offered by name.
type NamedColor struct {
	Name  string
	Color color.RGBA
}

var captionColors = []NamedColor{
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
}

// CaptionColors lists the named caption colors.
func CaptionColors() []NamedColor {
	out := make([]NamedColor, len(captionColors))
	copy(out, captionColors)
	return out
}

// ParseColor accepts a caption color name or a #RRGGBB / #RRGGBBAA value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return theme.ParseColor(s)
	}
	for _, c := range captionColors {
		if strings.EqualFold(c.Name, s) {
			return c.Color, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// ColorName returns the name of c, or its hex form when it has none.
func ColorName(c color.RGBA) string {
	for _, nc := range captionColors {
		if nc.Color == c {
			return nc.Name
		}
	}
	return theme.Hex(c)
}
