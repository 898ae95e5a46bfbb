package render

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomedium"
		"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Caption sizes are clamped to this pixel range.
const (
	MinFontSize = 16
	MaxFontSize = 64
)

// DefaultFamily is used when a style names no family.
const DefaultFamily = "Impact"

type family struct {
	name string
	ttf  []byte
}

// The caption families offered to users, each backed by an embedded Go font
// with a similar weight.
var families = []family{
	{"Impact", gobold.TTF},
	{"Comic Sans MS", gobolditalic.TTF},
	{"Roboto", gomedium.TTF},
	{"Arial", goregular.TTF},
	// The Go fonts have no serif face; regular is the nearest in weight.
	{"Times New Roman", goregular.TTF},
}

// Families lists the supported family names.
func Families() []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.name
	}
	return names
}

// CanonicalFamily resolves a user supplied family name. It accepts CSS style
// lists such as "'Comic Sans MS', cursive" and matches case-insensitively.
func CanonicalFamily(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFamily, true
	}
	first := strings.SplitN(name, ",", 2)[0]
	first = strings.Trim(strings.TrimSpace(first), `'"`)
	for _, f := range families {
		if strings.EqualFold(f.name, first) {
			return f.name, true
		}
	}
	return "", false
}

// ClampSize limits a pixel size to the supported caption range.
func ClampSize(px float64) float64 {
	if px < MinFontSize {
		return MinFontSize
	}
	if px > MaxFontSize {
		return MaxFontSize
	}
	return px
}

type faceKey struct {
	family string
	size   float64
}

// Fonts caches parsed fonts and sized faces.
type Fonts struct {
	mu     sync.Mutex
	parsed map[string]*opentype.Font
	faces  map[faceKey]font.Face
}

// NewFonts returns an empty cache.
func NewFonts() *Fonts {
	return &Fonts{
		parsed: map[string]*opentype.Font{},
		faces:  map[faceKey]font.Face{},
	}
}

// Face returns the face for family at sizePx pixels.
func (f *Fonts) Face(familyName string, sizePx float64) (font.Face, error) {
	name, ok := CanonicalFamily(familyName)
	if !ok {
		return nil, fmt.Errorf("unknown font family %q", familyName)
	}
	key := faceKey{family: name, size: ClampSize(sizePx)}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	otf, ok := f.parsed[name]
	if !ok {
		var data []byte
		for _, fam := range families {
			if fam.name == name {
				data = fam.ttf
				break
			}
		}
		var err error
		otf, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", name, err)
		}
		f.parsed[name] = otf
	}
	// At 72 DPI one point is one pixel.
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: key.size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face %s %gpx: %w", name, key.size, err)
	}
	f.faces[key] = face
	return face, nil
}
