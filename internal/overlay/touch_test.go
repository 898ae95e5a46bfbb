package overlay

import (
	"github.com/example/memesmith/internal/geom"
	"golang.org/x/mobile/event/touch"
)

// touchAt builds a touch event; phase 0 begins, 1 moves, 2 ends.
func touchAt(seq touch.Sequence, phase int, p geom.Point) touch.Event {
	typ := touch.TypeBegin
	switch phase {
	case 1:
		typ = touch.TypeMove
	case 2:
		typ = touch.TypeEnd
	}
	return touch.Event{X: float32(p.X), Y: float32(p.Y), Sequence: seq, Type: typ}
}
