package dictionary

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no entry exists for an id.
var ErrNotFound = errors.New("dictionary: entry not found")

// Entry is a single vocabulary record.
type Entry struct {
	ID          string `json:"id"`
	English     string `json:"english"`
	Translation string `json:"translation"`
}

// Store is a volatile vocabulary store keeping entries in a process local
// map. It is safe for concurrent access and preserves insertion order on
// List. Returned entries are copies, so callers cannot mutate internal
// state.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// NewStore constructs an empty in-memory vocabulary store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// List returns all entries in insertion order.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}

// Get returns the entry for id.
func (s *Store) Get(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// Add stores a new entry and returns it with a generated id.
func (s *Store) Add(english, translation string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := Entry{ID: uuid.NewString(), English: english, Translation: translation}
	s.entries[e.ID] = e
	s.order = append(s.order, e.ID)
	return e
}

// Update replaces the english/translation pair of an existing entry.
func (s *Store) Update(id, english, translation string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	e.English = english
	e.Translation = translation
	s.entries[id] = e
	return e, nil
}

// Remove deletes an entry.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return ErrNotFound
	}
	delete(s.entries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
