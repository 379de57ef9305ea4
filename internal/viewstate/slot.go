package viewstate

import "sync"

// Slot is a single unkeyed cache slot, used for whole-list tabs (approved
// catalog, enrollments, pending reviews, users, stats). A filled-but-empty
// list is distinct from an unfetched slot.
type Slot[V any] struct {
	mu     sync.Mutex
	v      V
	filled bool
}

// NewSlot creates an empty slot.
func NewSlot[V any]() *Slot[V] {
	return &Slot[V]{}
}

// Get returns the cached value and whether the slot has ever been filled.
func (s *Slot[V]) Get() (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v, s.filled
}

// FetchAndStore runs fetch and overwrites the slot with the result. Same
// last-write-wins contract as Cache.FetchAndStore; failure leaves the slot
// untouched.
func (s *Slot[V]) FetchAndStore(fetch func() (V, error)) (V, error) {
	v, err := fetch()
	if err != nil {
		var zero V
		return zero, err
	}

	s.mu.Lock()
	s.v = v
	s.filled = true
	s.mu.Unlock()
	return v, nil
}

// Set fills the slot directly.
func (s *Slot[V]) Set(v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v = v
	s.filled = true
}

// Clear empties the slot so the next tab visit fetches fresh. Used after a
// write that changes a list this side cannot reconstruct locally.
func (s *Slot[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero V
	s.v = zero
	s.filled = false
}

// Mutate applies a local edit to a filled slot, for post-success cache edits
// (remove an approved course from pending, append an enrollment) that avoid
// a full refetch. Unfilled slots are left alone: there is nothing to edit
// and the next tab visit fetches fresh anyway.
func (s *Slot[V]) Mutate(fn func(V) V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.filled {
		return
	}
	s.v = fn(s.v)
}
