package input

import (
	"github.com/example/memesmith/internal/geom"
	"golang.org/x/mobile/event/mouse"
)

// FromMouse translates a shiny mouse event. Only the left button starts and
// ends gestures; motion with any button state is reported as Move. Wheel
// steps and other buttons are not pointer gestures and report false.
func FromMouse(e mouse.Event) (Event, bool) {
	ev := Event{Source: Mouse, Point: geom.Pt(float64(e.X), float64(e.Y))}
	switch e.Direction {
	case mouse.DirNone:
		ev.Kind = Move
		return ev, true
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return Event{}, false
		}
		ev.Kind = Down
		return ev, true
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft {
			return Event{}, false
		}
		ev.Kind = Up
		return ev, true
	}
	return Event{}, false
}
