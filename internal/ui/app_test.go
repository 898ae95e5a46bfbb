package ui

import (
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/example/memesmith/internal/geom"
	"github.com/example/memesmith/internal/input"
	"github.com/example/memesmith/internal/overlay"
	"github.com/example/memesmith/internal/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestForwardUpdatesStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	updates := make(chan struct{}, 1)
	var sent atomic.Int32
	stop := forwardUpdates(updates, func() { sent.Add(1) })

	updates <- struct{}{}
	require.Eventually(t, func() bool { return sent.Load() == 1 }, time.Second, time.Millisecond)

	stop()
	stop()
}

func TestNotifyChangedCoalesces(t *testing.T) {
	a := New()
	a.NotifyChanged()
	a.NotifyChanged()
	a.NotifyChanged()
	assert.Len(t, a.updateCh, 1)
}

func TestOnCloseOnce(t *testing.T) {
	calls := 0
	a := New(WithOnClose(func() { calls++ }))
	a.notifyClose()
	a.notifyClose()
	assert.Equal(t, 1, calls)
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(nil)
	assert.Equal(t, 640+2*margin, w)
	assert.Equal(t, 480+2*margin+statusHeight, h)

	w, h = windowSize(image.NewRGBA(image.Rect(0, 0, 1920, 1080)))
	assert.Equal(t, 960+2*margin, w)
	assert.Equal(t, 540+2*margin+statusHeight, h)

	w, h = windowSize(image.NewRGBA(image.Rect(0, 0, 300, 200)))
	assert.Equal(t, 300+2*margin, w)
	assert.Equal(t, 200+2*margin+statusHeight, h)
}

func TestCanvasArea(t *testing.T) {
	assert.Equal(t, image.Rect(margin, margin, 400-margin, 300-statusHeight-margin), canvasArea(400, 300))
	assert.True(t, canvasArea(10, 10).Empty())
	assert.Equal(t, image.Rectangle{}, canvasArea(10, 10))
	assert.Equal(t, image.Rectangle{}, canvasArea(2*margin, 300))
	assert.Equal(t, image.Rectangle{}, canvasArea(400, statusHeight+2*margin))
	assert.Equal(t, image.Rect(margin, margin, margin+1, margin+1), canvasArea(2*margin+1, statusHeight+2*margin+1))
}

func TestTinyWindowHidesSurface(t *testing.T) {
	a, _ := newApp(t)
	a.Surface.FitInto(canvasArea(30, 30), MaxZoom)
	_, ok := a.Surface.Bounds()
	assert.False(t, ok)
}

func newApp(t *testing.T) (*App, *input.Scope) {
	t.Helper()
	scope := input.NewScope()
	a := New()
	a.Surface = surface.New(surface.WithScope(scope), surface.WithOnChange(a.NotifyChanged))
	a.Surface.SetImage(image.NewRGBA(image.Rect(0, 0, 300, 200)))
	a.Surface.SetCaption(overlay.Top, "top text")
	a.Surface.FitInto(canvasArea(windowSize(a.Surface.Image())), MaxZoom)
	return a, scope
}

func TestCancelGesturesOnFocusLoss(t *testing.T) {
	a, scope := newApp(t)
	r := a.Surface.CaptionBounds(overlay.Top)
	p := geom.Pt(r.Min.X+4, r.Min.Y+4)
	require.True(t, a.Surface.HandleEvent(input.Event{Kind: input.Down, Source: input.Touch, Point: p}))
	assert.Equal(t, "moving top caption", a.status())

	a.cancelGestures()
	assert.Zero(t, scope.Len())
	assert.False(t, a.Surface.Dragging(overlay.Top))
	assert.Equal(t, "drag a caption to move it - Q quit", a.status())
}

func TestPaintStatusBar(t *testing.T) {
	a, _ := newApp(t)
	w, h := windowSize(a.Surface.Image())
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	a.paint(dst)

	fg := 0
	for y := h - statusHeight; y < h; y++ {
		for x := 0; x < w; x++ {
			if dst.RGBAAt(x, y) == a.Theme.Foreground {
				fg++
			}
		}
	}
	assert.Positive(t, fg, "status text drawn")
}
