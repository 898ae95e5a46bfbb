package overlay

import (
	"testing"

	"github.com/example/memesmith/internal/geom"
	"github.com/example/memesmith/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness plays the composition surface: it owns the position, applies
// every proposal and measures the element from it.
type harness struct {
	scope     *input.Scope
	origin    geom.Point
	cw, ch    float64
	ew, eh    float64
	noSurface bool
	pos       Position
	emitted   []Position
	d         *Draggable
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		scope:  input.NewScope(),
		origin: geom.Pt(50, 70),
		cw:     400,
		ch:     400,
		ew:     100,
		eh:     40,
	}
	h.d = New(Config{
		Label:    Label{Text: "one does not simply", Style: DefaultStyle(), Anchor: Top},
		Position: h.pos,
		OnPositionChange: func(p Position) {
			h.emitted = append(h.emitted, p)
			h.pos = p
			h.d.Update(h.d.Label(), p)
		},
		Container: ContainerFunc(func() (geom.Rect, bool) {
			if h.noSurface {
				return geom.Rect{}, false
			}
			return geom.RectOf(h.origin, h.cw, h.ch), true
		}),
		Element: ElementFunc(func() geom.Rect {
			return geom.RectOf(h.origin.Add(h.pos), h.ew, h.eh)
		}),
		Scope: h.scope,
	})
	return h
}

// local converts a point in surface coordinates to the viewport.
func (h *harness) local(x, y float64) geom.Point { return h.origin.Add(geom.Pt(x, y)) }

func (h *harness) mouse(kind input.Kind, p geom.Point) bool {
	ev := input.Event{Kind: kind, Source: input.Mouse, Point: p}
	if kind == input.Down {
		return h.d.Press(ev)
	}
	return h.scope.Dispatch(ev)
}

func TestDragClampsScenario(t *testing.T) {
	h := newHarness(t)

	// Grab the element 10,5 from its top-left corner.
	require.True(t, h.mouse(input.Down, h.local(10, 5)))
	assert.Equal(t, Dragging, h.d.State())

	// Candidate (450, 10) is past the right edge.
	h.mouse(input.Move, h.local(450+10, 10+5))
	require.Len(t, h.emitted, 1)
	assert.Equal(t, geom.Pt(300, 10), h.emitted[0])
}

func TestDragFollowsPointerDelta(t *testing.T) {
	h := newHarness(t)
	h.pos = geom.Pt(120, 80)
	h.d.Update(h.d.Label(), h.pos)

	p0 := h.local(120+30, 80+12)
	require.True(t, h.mouse(input.Down, p0))
	p1 := p0.Add(geom.Pt(-45, 60))
	h.mouse(input.Move, p1)

	require.Len(t, h.emitted, 1)
	assert.Equal(t, geom.Pt(75, 140), h.emitted[0])
}

func TestContainerShrinkMidDragPinsToZero(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.mouse(input.Down, h.local(10, 5)))
	h.mouse(input.Move, h.local(200, 100))
	require.Len(t, h.emitted, 1)

	h.cw = 80
	h.mouse(input.Move, h.local(250, 100))
	require.Len(t, h.emitted, 2)
	assert.Equal(t, 0.0, h.emitted[1].X)
	assert.Equal(t, 95.0, h.emitted[1].Y)
}

func TestNoEmissionWhileIdle(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.mouse(input.Move, h.local(100, 100)))
	assert.Empty(t, h.emitted)
	assert.Equal(t, Idle, h.d.State())
}

func TestReleaseStopsUpdates(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.mouse(input.Down, h.local(10, 5)))
	h.mouse(input.Move, h.local(60, 60))
	require.Equal(t, 1, h.scope.Len())

	h.mouse(input.Up, h.local(60, 60))
	assert.Equal(t, Idle, h.d.State())
	assert.Zero(t, h.scope.Len(), "listeners must be released on up")

	h.mouse(input.Move, h.local(200, 200))
	h.mouse(input.Up, h.local(200, 200))
	assert.Len(t, h.emitted, 1)
}

func TestCloseWhileDraggingReleasesListeners(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.mouse(input.Down, h.local(10, 5)))
	h.d.Close()

	assert.Equal(t, Idle, h.d.State())
	assert.Zero(t, h.scope.Len())
	h.mouse(input.Move, h.local(200, 200))
	assert.Empty(t, h.emitted)
	assert.False(t, h.mouse(input.Down, h.local(10, 5)), "closed element ignores presses")
}

func TestRepressWithoutMoveKeepsPosition(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.mouse(input.Down, h.local(10, 5)))
	h.mouse(input.Move, h.local(110, 205))
	h.mouse(input.Up, h.local(110, 205))
	require.Len(t, h.emitted, 1)
	before := h.pos

	require.True(t, h.mouse(input.Down, h.local(110, 205)))
	h.mouse(input.Up, h.local(110, 205))
	assert.Equal(t, before, h.pos)

	require.True(t, h.mouse(input.Down, h.local(110, 205)))
	h.mouse(input.Move, h.local(110, 205))
	require.Len(t, h.emitted, 2)
	assert.Equal(t, before, h.emitted[1], "zero delta move must not drift")
}

func TestReentrantDownRegrabs(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.mouse(input.Down, h.local(10, 5)))
	h.mouse(input.Move, h.local(60, 45))
	require.Equal(t, geom.Pt(50, 40), h.pos)

	// A second down before any up, grabbing a different spot.
	require.True(t, h.mouse(input.Down, h.local(80, 60)))
	assert.Equal(t, 1, h.scope.Len(), "regrab must not stack listeners")

	h.mouse(input.Move, h.local(80, 60))
	assert.Equal(t, geom.Pt(50, 40), h.pos, "no jump after regrab")
	h.mouse(input.Move, h.local(90, 70))
	assert.Equal(t, geom.Pt(60, 50), h.pos)
}

func TestMissingContainerDropsMove(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.mouse(input.Down, h.local(10, 5)))

	h.noSurface = true
	assert.True(t, h.mouse(input.Move, h.local(100, 100)))
	assert.Empty(t, h.emitted)
	assert.Equal(t, Dragging, h.d.State())

	h.noSurface = false
	h.mouse(input.Move, h.local(100, 100))
	assert.Len(t, h.emitted, 1)
}

func TestOtherSourceDoesNotDrive(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.mouse(input.Down, h.local(10, 5)))

	h.scope.Dispatch(input.Event{Kind: input.Move, Source: input.Touch, Point: h.local(200, 200)})
	h.scope.Dispatch(input.Event{Kind: input.Up, Source: input.Touch, Point: h.local(200, 200)})
	assert.Empty(t, h.emitted)
	assert.Equal(t, Dragging, h.d.State())
}

func TestStaticWithoutScope(t *testing.T) {
	var calls int
	d := New(Config{
		Label:            Label{Text: "static"},
		OnPositionChange: func(Position) { calls++ },
		Container:        ContainerFunc(func() (geom.Rect, bool) { return geom.RectOf(geom.Pt(0, 0), 100, 100), true }),
		Element:          ElementFunc(func() geom.Rect { return geom.RectOf(geom.Pt(0, 0), 10, 10) }),
	})
	assert.True(t, d.Static())
	assert.False(t, d.Press(input.Event{Kind: input.Down}))
	assert.Equal(t, Idle, d.State())
	assert.Zero(t, calls)
}

func TestEmptyLabelIsNotDraggable(t *testing.T) {
	h := newHarness(t)
	h.d.Update(Label{Text: "  "}, h.pos)
	assert.False(t, h.mouse(input.Down, h.local(10, 5)))
	assert.Zero(t, h.scope.Len())
}

func TestTouchDragUsesPrimaryFinger(t *testing.T) {
	h := newHarness(t)
	var tr input.TouchTracker
	feed := func(ev input.Event, ok bool) {
		if !ok {
			return
		}
		if ev.Kind == input.Down {
			h.d.Press(ev)
			return
		}
		h.scope.Dispatch(ev)
	}

	feed(tr.Translate(touchAt(1, 0, h.local(10, 5))))
	feed(tr.Translate(touchAt(2, 0, h.local(300, 300))))
	require.Equal(t, Dragging, h.d.State())

	feed(tr.Translate(touchAt(2, 1, h.local(350, 350))))
	assert.Empty(t, h.emitted, "second finger moves are ignored")

	feed(tr.Translate(touchAt(1, 1, h.local(40, 25))))
	require.Len(t, h.emitted, 1)
	assert.Equal(t, geom.Pt(30, 20), h.emitted[0])

	feed(tr.Translate(touchAt(1, 2, h.local(40, 25))))
	assert.Equal(t, Idle, h.d.State())
	assert.Zero(t, h.scope.Len())
}
