// Package ui hosts the composition surface in a shiny window and feeds it
// mouse and touch input.
package ui

import (
	"image"
	"sync"

	"github.com/example/memesmith/internal/input"
	"github.com/example/memesmith/internal/surface"
	"github.com/example/memesmith/internal/theme"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

// ProgramTitle is the default window title.
const ProgramTitle = "memesmith"

// App is the editor window.
type App struct {
	Surface *surface.Surface
	Theme   *theme.Theme
	Title   string

	updateCh chan struct{}

	onClose   func()
	closeOnce sync.Once

	log *logrus.Entry
}

// Option modifies an App during creation.
type Option func(*App)

// WithTheme sets the window colors.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *App) { a.Title = title } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App. Set Surface before calling Run; the surface should
// call NotifyChanged whenever it needs a repaint.
func New(opts ...Option) *App {
	a := &App{
		Title:    ProgramTitle,
		updateCh: make(chan struct{}, 1),
		log:      logrus.WithField("component", "ui"),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

// NotifyChanged requests a repaint. Requests made before the pending one is
// served are merged into it.
func (a *App) NotifyChanged() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

// Main runs the window event loop on s until the window is closed.
func (a *App) Main(s screen.Screen) {
	defer a.notifyClose()
	if a.Surface == nil {
		a.log.Error("no surface to show")
		return
	}
	defer a.Surface.Close()

	width, height := windowSize(a.Surface.Image())
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		a.log.WithError(err).Error("new window")
		return
	}
	defer w.Release()

	stop := forwardUpdates(a.updateCh, func() { w.Send(paint.Event{}) })
	defer stop()

	var buf screen.Buffer
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	var touches input.TouchTracker
	a.Surface.FitInto(canvasArea(width, height), MaxZoom)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				a.cancelGestures()
				touches.Reset()
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			a.Surface.FitInto(canvasArea(width, height), MaxZoom)
		case paint.Event:
			want := image.Pt(width, height)
			if want.X <= 0 || want.Y <= 0 {
				continue
			}
			if buf == nil || buf.Size() != want {
				if buf != nil {
					buf.Release()
				}
				buf, err = s.NewBuffer(want)
				if err != nil {
					a.log.WithError(err).Error("new buffer")
					buf = nil
					continue
				}
			}
			a.paint(buf.RGBA())
			w.Upload(image.Point{}, buf, buf.Bounds())
			w.Publish()
		case mouse.Event:
			if ev, ok := input.FromMouse(e); ok {
				a.Surface.HandleEvent(ev)
			}
		case touch.Event:
			if ev, ok := touches.Translate(e); ok {
				a.Surface.HandleEvent(ev)
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if e.Code == key.CodeEscape || e.Rune == 'q' || e.Rune == 'Q' {
				return
			}
		case error:
			a.log.WithError(e).Error("window event")
		}
	}
}

// cancelGestures ends any drag when the window loses focus, since the
// matching release will never arrive.
func (a *App) cancelGestures() {
	for _, src := range []input.Source{input.Mouse, input.Touch} {
		if a.Surface.HandleEvent(input.Event{Kind: input.Cancel, Source: src}) {
			a.log.WithField("source", src).Debug("drag cancelled on focus loss")
		}
	}
}

// forwardUpdates calls send for every value received on updates until the
// returned stop function is called. stop waits for the goroutine to exit.
func forwardUpdates(updates <-chan struct{}, send func()) func() {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for {
			select {
			case <-updates:
				send()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}
}
