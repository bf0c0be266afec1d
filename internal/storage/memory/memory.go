package memory

import (
	"errors"
	"sync"
	"time"

	"eventBoard/internal/models"
)

var ErrNotLoaded = errors.New("event snapshot not loaded yet")

// Storage holds the full fetched event list unmodified. It is the single
// source of truth every filter pass reads from; Replace swaps the snapshot
// wholesale and nothing ever writes back a filtered view.
type Storage struct {
	mu        sync.RWMutex
	events    []models.Event
	loaded    bool
	fetchedAt time.Time
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) Replace(events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = events
	s.loaded = true
	s.fetchedAt = time.Now()
}

// Events returns the current full snapshot, or ErrNotLoaded when no load
// has ever succeeded. Callers must treat the returned slice as read-only.
func (s *Storage) Events() ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrNotLoaded
	}

	return s.events, nil
}

func (s *Storage) FetchedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fetchedAt, s.loaded
}
