// Package notify keeps the user's list of tracked machine cycles.
package notify

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"laundry-finder-backend/internal/model"
)

// ErrDuplicate is returned when adding an entry whose id is already tracked.
var ErrDuplicate = errors.New("notification already exists")

// Store is the notification list store. Entries keep insertion order and never expire
// on their own; only Remove takes them out.
type Store struct {
	mu      sync.Mutex
	entries []model.NotificationEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends entry. An empty id is replaced with a generated one.
func (s *Store) Add(entry model.NotificationEntry) (model.NotificationEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(entry.ID) >= 0 {
		return model.NotificationEntry{}, fmt.Errorf("add notification %q: %w", entry.ID, ErrDuplicate)
	}
	s.entries = append(s.entries, entry)
	return entry, nil
}

// Remove deletes the entry with the given id. It reports whether anything was removed;
// removing an unknown id is not an error.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// List returns a copy of the tracked entries in insertion order.
func (s *Store) List() []model.NotificationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.NotificationEntry{}, s.entries...)
}

// Len returns the number of tracked entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
