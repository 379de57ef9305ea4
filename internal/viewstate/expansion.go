package viewstate

import "sync"

// Expansion tracks the single expanded key within one disclosure level: at
// most one course's lesson panel, and independently at most one lesson's
// content panel, is open at a time.
type Expansion struct {
	mu   sync.Mutex
	key  int
	open bool
}

// NewExpansion creates a fully collapsed tracker.
func NewExpansion() *Expansion {
	return &Expansion{}
}

// Toggle flips the expansion state of key and returns whether it is now
// expanded. Expanding a key implicitly collapses whichever sibling was open.
func (e *Expansion) Toggle(key int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.open && e.key == key {
		e.open = false
		return false
	}
	e.key = key
	e.open = true
	return true
}

// Expanded returns the currently open key, if any.
func (e *Expansion) Expanded() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.key, e.open
}

// IsExpanded reports whether key is the open one.
func (e *Expansion) IsExpanded(key int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open && e.key == key
}

// Collapse closes the level.
func (e *Expansion) Collapse() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = false
}
