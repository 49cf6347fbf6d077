package eventdispatch

import (
	"sync"

	cdisp "github.com/next-trace/scg-event-dispatch/contract/dispatch"
)

// store is the binding multi-map: event name to an unordered collection of
// bindings. Duplicate triples are independent entries. All methods are safe
// for concurrent use; none of them ever invokes a callback.
type store struct {
	mu sync.RWMutex
	m  map[string][]cdisp.Binding
	n  int
}

func newStore() *store {
	return &store{m: make(map[string][]cdisp.Binding)}
}

func (s *store) insert(event string, owner cdisp.Owner, cb cdisp.Callback) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[event] = append(s.m[event], cdisp.Binding{Event: event, Owner: owner, Callback: cb})
	s.n++
}

// removeAll removes every binding matching (event, owner) and returns how
// many were removed. Removing nothing is not an error.
func (s *store) removeAll(event string, owner cdisp.Owner) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	bindings, ok := s.m[event]
	if !ok {
		return 0
	}

	kept := bindings[:0]
	for _, b := range bindings {
		if b.Owner != owner {
			kept = append(kept, b)
		}
	}

	removed := len(bindings) - len(kept)
	if len(kept) == 0 {
		delete(s.m, event)
	} else {
		s.m[event] = kept
	}
	s.n -= removed

	return removed
}

// removeOwner removes the owner's bindings across every event. Backs the
// owner-lifecycle hook.
func (s *store) removeOwner(owner cdisp.Owner) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for event, bindings := range s.m {
		kept := bindings[:0]
		for _, b := range bindings {
			if b.Owner != owner {
				kept = append(kept, b)
			}
		}

		removed += len(bindings) - len(kept)
		if len(kept) == 0 {
			delete(s.m, event)
		} else {
			s.m[event] = kept
		}
	}
	s.n -= removed

	return removed
}

// snapshot returns an independent point-in-time copy of the event's bindings.
// Mutations after the call never affect the returned slice. Iteration order
// is unspecified.
func (s *store) snapshot(event string) []cdisp.Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bindings := s.m[event]
	if len(bindings) == 0 {
		return nil
	}

	out := make([]cdisp.Binding, len(bindings))
	copy(out, bindings)

	return out
}

func (s *store) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.n
}

func (s *store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m = make(map[string][]cdisp.Binding)
	s.n = 0
}
