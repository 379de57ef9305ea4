package viewstate

import (
	"sync"

	"github.com/microcourses/microcourses-web/internal/upstream"
)

// State is one session's view data across all dashboards. It lives from the
// first gated request after login until logout drops it from the Registry.
type State struct {
	// List tabs, one slot each. Which of these ever fill depends on the
	// session's role.
	Approved *Slot[[]upstream.Course]
	Enrolled *Slot[[]upstream.Course]
	Mine     *Slot[[]upstream.Course]
	Pending  *Slot[[]upstream.Course]
	Users    *Slot[[]upstream.User]
	Stats    *Slot[upstream.Stats]

	// Keyed by course id.
	Lessons  *Cache[[]upstream.Lesson]
	Progress *Cache[upstream.Progress]

	// One open course panel, and independently one open lesson panel.
	ExpandedCourse *Expansion
	ExpandedLesson *Expansion

	mu      sync.Mutex
	visited map[string]bool
}

// NewState creates an empty session state.
func NewState() *State {
	return &State{
		Approved:       NewSlot[[]upstream.Course](),
		Enrolled:       NewSlot[[]upstream.Course](),
		Mine:           NewSlot[[]upstream.Course](),
		Pending:        NewSlot[[]upstream.Course](),
		Users:          NewSlot[[]upstream.User](),
		Stats:          NewSlot[upstream.Stats](),
		Lessons:        NewCache[[]upstream.Lesson](),
		Progress:       NewCache[upstream.Progress](),
		ExpandedCourse: NewExpansion(),
		ExpandedLesson: NewExpansion(),
		visited:        make(map[string]bool),
	}
}

// FirstVisit records a tab visit and reports whether it was the first in
// this session. Dashboards fetch a tab's data only on its first visit;
// later visits render from cache.
func (s *State) FirstVisit(tab string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visited[tab] {
		return false
	}
	s.visited[tab] = true
	return true
}

// Registry maps session ids to their State. Entries are created on demand
// and dropped at logout, so cache lifetime equals session lifetime.
type Registry struct {
	mu sync.Mutex
	m  map[string]*State
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*State)}
}

// Get returns the State for sid, creating it if absent.
func (r *Registry) Get(sid string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.m[sid]
	if !ok {
		st = NewState()
		r.m[sid] = st
	}
	return st
}

// Drop discards the State for sid. Idempotent.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, sid)
}
