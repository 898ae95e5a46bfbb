// Package overlay implements draggable caption elements. A Draggable turns
// pointer gestures into clamped positions inside its container and reports
// them to its owner; it never stores a position of its own choosing.
package overlay

import (
	"github.com/example/memesmith/internal/geom"
	"github.com/example/memesmith/internal/input"
	"github.com/sirupsen/logrus"
)

// Container is a reference to the composition surface. Bounds reports the
// surface rectangle in viewport coordinates, or false when there is no
// surface to position against.
type Container interface {
	Bounds() (geom.Rect, bool)
}

// Element measures the caption as currently rendered, in viewport
// coordinates.
type Element interface {
	Bounds() geom.Rect
}

// ContainerFunc adapts a function to Container.
type ContainerFunc func() (geom.Rect, bool)

func (f ContainerFunc) Bounds() (geom.Rect, bool) { return f() }

// ElementFunc adapts a function to Element.
type ElementFunc func() geom.Rect

func (f ElementFunc) Bounds() geom.Rect { return f() }

// State is the gesture state of a Draggable.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Config wires a Draggable to its owner.
type Config struct {
	Label            Label
	Position         Position
	OnPositionChange func(Position)
	Container        Container
	Element          Element
	// Scope receives the move and up listeners while dragging. A nil scope
	// means the host has no pointer input and the element stays static.
	Scope *input.Scope
}

// Draggable is one positionable caption.
type Draggable struct {
	label    Label
	position Position
	onChange func(Position)

	container Container
	element   Element
	scope     *input.Scope

	state  State
	grab   geom.Point
	source input.Source
	sub    *input.Subscription
	closed bool

	log *logrus.Entry
}

// New creates an idle Draggable.
func New(cfg Config) *Draggable {
	d := &Draggable{
		label:     cfg.Label,
		position:  cfg.Position,
		onChange:  cfg.OnPositionChange,
		container: cfg.Container,
		element:   cfg.Element,
		scope:     cfg.Scope,
		log:       logrus.WithFields(logrus.Fields{"component": "overlay", "anchor": cfg.Label.Anchor.String()}),
	}
	if d.Static() {
		d.log.Debug("no pointer input, caption is static")
	}
	return d
}

// Update replaces the label and position supplied by the owner.
func (d *Draggable) Update(label Label, pos Position) {
	d.label = label
	d.position = pos
}

// Label returns the current label.
func (d *Draggable) Label() Label { return d.label }

// Position returns the last position supplied by the owner.
func (d *Draggable) Position() Position { return d.position }

// State returns the gesture state.
func (d *Draggable) State() State { return d.state }

// Static reports whether the element can never be dragged.
func (d *Draggable) Static() bool {
	return d.scope == nil || d.container == nil || d.element == nil
}

// Press starts a gesture for a down event that landed on the element. A
// press while already dragging regrabs from the current pointer and element
// positions. It returns true when the event was consumed.
func (d *Draggable) Press(ev input.Event) bool {
	if ev.Kind != input.Down || d.closed || d.Static() || d.label.Empty() {
		return false
	}
	d.release()

	el := d.element.Bounds()
	d.grab = ev.Point.Sub(el.Min)
	d.source = ev.Source
	d.sub = d.scope.Subscribe(d.handle)
	d.state = Dragging
	d.log.WithFields(logrus.Fields{"source": ev.Source, "grab": d.grab}).Debug("drag start")
	return true
}

// Close ends any gesture and detaches from the scope. The element ignores
// all further input.
func (d *Draggable) Close() {
	if d.state == Dragging {
		d.log.Debug("closed while dragging")
	}
	d.release()
	d.closed = true
}

func (d *Draggable) handle(ev input.Event) bool {
	if d.state != Dragging || ev.Source != d.source {
		return false
	}
	switch ev.Kind {
	case input.Move:
		pos, ok := d.propose(ev.Point)
		if !ok {
			return true
		}
		if d.onChange != nil {
			d.onChange(pos)
		}
		return true
	case input.Up, input.Cancel:
		d.release()
		d.log.Debug("drag end")
		return true
	}
	return false
}

// propose computes the clamped surface position for a pointer at p. The
// container and element are measured on every call since either may change
// size mid gesture.
func (d *Draggable) propose(p geom.Point) (Position, bool) {
	c, ok := d.container.Bounds()
	if !ok {
		d.log.Trace("no container, move dropped")
		return Position{}, false
	}
	el := d.element.Bounds()
	candidate := p.Sub(c.Min).Sub(d.grab)
	return geom.ClampInto(candidate, el.Dx(), el.Dy(), c.Dx(), c.Dy()), true
}

func (d *Draggable) release() {
	d.sub.Release()
	d.sub = nil
	d.state = Idle
}
