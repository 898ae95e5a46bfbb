package input

import (
	"github.com/example/memesmith/internal/geom"
	"golang.org/x/mobile/event/touch"
)

// TouchTracker follows the primary touch. The first finger down becomes the
// primary; other fingers are ignored until it lifts.
type TouchTracker struct {
	active  bool
	primary touch.Sequence
}

// Translate converts a touch event for the primary finger. Events from any
// other finger report false.
func (t *TouchTracker) Translate(e touch.Event) (Event, bool) {
	ev := Event{Source: Touch, Point: geom.Pt(float64(e.X), float64(e.Y))}
	switch e.Type {
	case touch.TypeBegin:
		if t.active {
			return Event{}, false
		}
		t.active = true
		t.primary = e.Sequence
		ev.Kind = Down
		return ev, true
	case touch.TypeMove:
		if !t.active || e.Sequence != t.primary {
			return Event{}, false
		}
		ev.Kind = Move
		return ev, true
	case touch.TypeEnd:
		if !t.active || e.Sequence != t.primary {
			return Event{}, false
		}
		t.active = false
		ev.Kind = Up
		return ev, true
	}
	return Event{}, false
}

// Active reports whether a primary touch is down.
func (t *TouchTracker) Active() bool { return t.active }

// Reset forgets the primary touch, e.g. after the window lost focus.
func (t *TouchTracker) Reset() { *t = TouchTracker{} }
