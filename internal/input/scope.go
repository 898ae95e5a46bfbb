package input

import "sync"

// Handler receives events dispatched on a Scope. It returns true when it
// consumed the event so the host skips its default handling.
type Handler func(Event) bool

type entry struct {
	id uint64
	fn Handler
}

// Scope is the window level listener registry. Handlers are only present
// while something holds a Subscription for them.
type Scope struct {
	mu       sync.Mutex
	handlers []entry
	nextID   uint64
}

// NewScope returns an empty scope.
func NewScope() *Scope { return &Scope{} }

// Subscribe registers fn until the returned Subscription is released.
func (s *Scope) Subscribe(fn Handler) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.handlers = append(s.handlers, entry{id: s.nextID, fn: fn})
	return &Subscription{scope: s, id: s.nextID}
}

// Dispatch delivers ev to every handler registered at the time of the call.
// Handlers may release their own subscription while running.
func (s *Scope) Dispatch(ev Event) bool {
	s.mu.Lock()
	snapshot := make([]entry, len(s.handlers))
	copy(snapshot, s.handlers)
	s.mu.Unlock()

	handled := false
	for _, e := range snapshot {
		if !s.live(e.id) {
			continue
		}
		if e.fn(ev) {
			handled = true
		}
	}
	return handled
}

// Len reports the number of live subscriptions.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func (s *Scope) live(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.handlers {
		if e.id == id {
			return true
		}
	}
	return false
}

func (s *Scope) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.handlers {
		if s.handlers[i].id == id {
			copy(s.handlers[i:], s.handlers[i+1:])
			s.handlers[len(s.handlers)-1] = entry{}
			s.handlers = s.handlers[:len(s.handlers)-1]
			return
		}
	}
}

// Subscription is the handle for one registered handler.
type Subscription struct {
	scope *Scope
	id    uint64
	once  sync.Once
}

// Release unregisters the handler. It is safe to call more than once.
func (sub *Subscription) Release() {
	if sub == nil || sub.scope == nil {
		return
	}
	sub.once.Do(func() { sub.scope.remove(sub.id) })
}
