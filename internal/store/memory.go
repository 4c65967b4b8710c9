package store

import (
	"sync"
	"time"

	"fieldmap/internal/model"
)

// Store holds the current enriched record set for the process lifetime.
// Each successful ingestion run replaces the set wholesale; a failed run
// leaves the previous set untouched.
type Store struct {
	mu         sync.RWMutex
	records    []*model.CanonicalRecord
	filename   string
	lastImport time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Replace commits a new record set, discarding the previous one.
func (s *Store) Replace(filename string, records []*model.CanonicalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.filename = filename
	s.lastImport = time.Now()
}

// Records returns the current record set. The slice is copied so callers can
// filter and sort freely; the records themselves are not mutated after commit.
func (s *Store) Records() []*model.CanonicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.CanonicalRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the number of committed records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// LastImport returns the source filename and commit time of the current set.
func (s *Store) LastImport() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filename, s.lastImport
}

// Initialized reports whether any dataset has been committed.
func (s *Store) Initialized() bool {
	return s.Count() > 0
}
