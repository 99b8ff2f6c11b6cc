package storage

import (
	"github.com/five82/popcorn/internal/watched"
)

// WatchedKey is the slot that holds the serialized watched list.
const WatchedKey = "watched"

// WatchedSlot persists the watched list as JSON under WatchedKey.
type WatchedSlot struct {
	db *DB
}

// NewWatchedSlot returns a slot backed by db.
func NewWatchedSlot(db *DB) *WatchedSlot {
	return &WatchedSlot{db: db}
}

// SaveWatched replaces the stored list.
func (s *WatchedSlot) SaveWatched(list watched.List) error {
	data, err := watched.Marshal(list)
	if err != nil {
		return err
	}
	return s.db.Put(WatchedKey, data)
}

// LoadWatched returns the stored list, or an empty list when nothing has
// been saved yet.
func (s *WatchedSlot) LoadWatched() (watched.List, error) {
	data, ok, err := s.db.Get(WatchedKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return watched.List{}, nil
	}
	return watched.Unmarshal(data)
}
