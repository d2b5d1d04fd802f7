// Package selection holds the transient multi-select state for bulk
// add-to-team workflows. The selection is a set of creature identity strings;
// capacity is not checked here, only at commit time by the team store.
package selection

import "sync"

// Store is an in-memory selection set preserving insertion order. It is safe
// for concurrent use and is never persisted.
type Store struct {
	mu  sync.Mutex
	ids []string
}

// New constructs an empty selection store.
func New() *Store {
	return &Store{}
}

// Add puts an id into the selection. Adding a present id is a no-op.
func (s *Store) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index(id) == -1 {
		s.ids = append(s.ids, id)
	}
}

// Remove drops an id from the selection. Removing an absent id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i != -1 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
	}
}

// Toggle flips membership of an id. Applying it twice restores the set.
func (s *Store) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i != -1 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
		return
	}
	s.ids = append(s.ids, id)
}

// List returns the selected ids in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clear empties the selection. Called after a successful bulk-add commit.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
}

func (s *Store) index(id string) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}
