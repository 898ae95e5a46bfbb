package render

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaptionPadding is the space kept around caption text on every side.
const CaptionPadding = 8

// Block is caption text broken into lines.
type Block struct {
	Lines      []string
	LineWidths []int
	Width      int
	Height     int
	Ascent     int
	LineHeight int
}

// Size returns the caption element size including padding.
func (b Block) Size() (int, int) {
	return b.Width + 2*CaptionPadding, b.Height + 2*CaptionPadding
}

var upper = cases.Upper(language.Und)

// Layout uppercases text and wraps it at word boundaries so no line is wider
// than maxWidth pixels. A single word wider than maxWidth keeps its own line.
// maxWidth <= 0 disables wrapping.
func Layout(face font.Face, text string, maxWidth int) Block {
	text = upper.String(text)
	m := face.Metrics()
	b := Block{Ascent: m.Ascent.Ceil(), LineHeight: m.Height.Ceil()}

	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			next := line + " " + w
			if maxWidth > 0 && font.MeasureString(face, next).Ceil() > maxWidth {
				b.addLine(face, line)
				line = w
				continue
			}
			line = next
		}
		b.addLine(face, line)
	}
	b.Height = len(b.Lines) * b.LineHeight
	return b
}

func (b *Block) addLine(face font.Face, line string) {
	w := font.MeasureString(face, line).Ceil()
	b.Lines = append(b.Lines, line)
	b.LineWidths = append(b.LineWidths, w)
	if w > b.Width {
		b.Width = w
	}
}
