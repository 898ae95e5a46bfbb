package input

import (
	"testing"

	"github.com/example/memesmith/internal/geom"
	"github.com/stretchr/testify/assert"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

func TestFromMouse(t *testing.T) {
	ev, ok := FromMouse(mouse.Event{X: 3, Y: 4, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	assert.True(t, ok)
	assert.Equal(t, Event{Kind: Down, Source: Mouse, Point: geom.Pt(3, 4)}, ev)

	ev, ok = FromMouse(mouse.Event{X: 5, Y: 6, Direction: mouse.DirNone})
	assert.True(t, ok)
	assert.Equal(t, Move, ev.Kind)

	ev, ok = FromMouse(mouse.Event{Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	assert.True(t, ok)
	assert.Equal(t, Up, ev.Kind)

	_, ok = FromMouse(mouse.Event{Button: mouse.ButtonRight, Direction: mouse.DirPress})
	assert.False(t, ok)
	_, ok = FromMouse(mouse.Event{Button: mouse.ButtonWheelUp, Direction: mouse.DirStep})
	assert.False(t, ok)
}

func TestTouchTrackerIgnoresSecondFinger(t *testing.T) {
	var tr TouchTracker

	ev, ok := tr.Translate(touch.Event{X: 10, Y: 10, Sequence: 1, Type: touch.TypeBegin})
	assert.True(t, ok)
	assert.Equal(t, Event{Kind: Down, Source: Touch, Point: geom.Pt(10, 10)}, ev)

	_, ok = tr.Translate(touch.Event{X: 90, Y: 90, Sequence: 2, Type: touch.TypeBegin})
	assert.False(t, ok, "second finger down")
	_, ok = tr.Translate(touch.Event{X: 95, Y: 95, Sequence: 2, Type: touch.TypeMove})
	assert.False(t, ok, "second finger move")

	ev, ok = tr.Translate(touch.Event{X: 20, Y: 15, Sequence: 1, Type: touch.TypeMove})
	assert.True(t, ok)
	assert.Equal(t, geom.Pt(20, 15), ev.Point)

	_, ok = tr.Translate(touch.Event{Sequence: 2, Type: touch.TypeEnd})
	assert.False(t, ok)
	assert.True(t, tr.Active())

	ev, ok = tr.Translate(touch.Event{X: 20, Y: 15, Sequence: 1, Type: touch.TypeEnd})
	assert.True(t, ok)
	assert.Equal(t, Up, ev.Kind)
	assert.False(t, tr.Active())

	ev, ok = tr.Translate(touch.Event{X: 1, Y: 1, Sequence: 3, Type: touch.TypeBegin})
	assert.True(t, ok, "a new first finger becomes primary")
	assert.Equal(t, Down, ev.Kind)
}
