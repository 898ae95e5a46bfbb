// Package input turns platform mouse and touch events into one pointer
// event model and hosts the window level listener scope used while a
// caption is being dragged.
package input

import (
	"fmt"

	"github.com/example/memesmith/internal/geom"
)

// Kind classifies a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	// Cancel ends a gesture without a matching Up, e.g. the window lost the
	// pointer.
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Source identifies the device family that produced an event.
type Source int

const (
	Mouse Source = iota
	Touch
)

func (s Source) String() string {
	if s == Touch {
		return "touch"
	}
	return "mouse"
}

// Event is a pointer event in viewport (window) coordinates.
type Event struct {
	Kind   Kind
	Source Source
	Point  geom.Point
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s at %v", e.Source, e.Kind, e.Point)
}
