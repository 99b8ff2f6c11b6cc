package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/five82/popcorn/internal/watched"
)

// Persister writes the watched list to durable storage.
type Persister interface {
	SaveWatched(list watched.List) error
}

// Snapshot represents the application state available to the UI.
type Snapshot struct {
	Query      string
	SelectedID string
	Watched    watched.List
	LastSaved  time.Time
	LastError  error
}

// HasSelection reports whether a title is selected.
func (s Snapshot) HasSelection() bool {
	return s.SelectedID != ""
}

// IsWatched reports whether id is already on the watched list.
func (s Snapshot) IsWatched(id string) bool {
	return s.Watched.Contains(id)
}

// Store owns the query, the selection and the watched list. Every change to
// the watched list is persisted before the mutating call returns.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	persist  Persister
}

// NewStore returns a Store seeded with initial. persist may be nil.
func NewStore(persist Persister, initial watched.List) *Store {
	return &Store{
		persist:  persist,
		snapshot: Snapshot{Watched: initial.Clone()},
	}
}

// SetQuery records the current search query.
func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Query = query
}

// Select toggles the selection: choosing the selected id again clears it.
// It returns the resulting selection.
func (s *Store) Select(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = strings.TrimSpace(id)
	if id == s.snapshot.SelectedID {
		s.snapshot.SelectedID = ""
	} else {
		s.snapshot.SelectedID = id
	}
	return s.snapshot.SelectedID
}

// CloseSelection clears the selection.
func (s *Store) CloseSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SelectedID = ""
}

// AddWatched appends e and persists the list. The in-memory list changes even
// when persisting fails; the error is recorded and returned.
func (s *Store) AddWatched(e watched.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Watched = s.snapshot.Watched.Add(e)
	return s.saveLocked()
}

// DeleteWatched removes the entry at index and persists the list.
func (s *Store) DeleteWatched(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.snapshot.Watched) {
		return fmt.Errorf("watched index %d out of range", index)
	}
	s.snapshot.Watched = s.snapshot.Watched.Delete(index)
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.SaveWatched(s.snapshot.Watched.Clone()); err != nil {
		s.snapshot.LastError = fmt.Errorf("save watched list: %w", err)
		return s.snapshot.LastError
	}
	s.snapshot.LastError = nil
	s.snapshot.LastSaved = time.Now()
	return nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Watched = s.snapshot.Watched.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
