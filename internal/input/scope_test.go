package input

import (
	"testing"

	"github.com/example/memesmith/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeSubscribeRelease(t *testing.T) {
	s := NewScope()
	var got []Event
	sub := s.Subscribe(func(ev Event) bool {
		got = append(got, ev)
		return true
	})
	require.Equal(t, 1, s.Len())

	ev := Event{Kind: Move, Point: geom.Pt(1, 2)}
	assert.True(t, s.Dispatch(ev))
	assert.Equal(t, []Event{ev}, got)

	sub.Release()
	sub.Release()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Dispatch(ev))
	assert.Len(t, got, 1)
}

func TestScopeReleaseDuringDispatch(t *testing.T) {
	s := NewScope()
	var second int
	var first *Subscription
	var other *Subscription
	first = s.Subscribe(func(Event) bool {
		first.Release()
		other.Release()
		return true
	})
	other = s.Subscribe(func(Event) bool {
		second++
		return false
	})

	assert.True(t, s.Dispatch(Event{Kind: Up}))
	assert.Zero(t, second, "handler released mid dispatch must not run")
	assert.Zero(t, s.Len())
}

func TestNilSubscriptionRelease(t *testing.T) {
	var sub *Subscription
	assert.NotPanics(t, sub.Release)
}
