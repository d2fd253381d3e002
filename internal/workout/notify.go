package workout

import "sync"

// subscribers is a set of change callbacks.
type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (s *subscribers) add(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	id := s.next
	s.next++
	s.fns[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

// notify calls every subscriber. It must be called without holding the owner's lock so
// callbacks can read the new state.
func (s *subscribers) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
