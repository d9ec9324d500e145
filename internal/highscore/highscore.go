// Package highscore persists the best score and the name of its holder.
package highscore

import (
	"context"
	"sync"
)

// Record is the best score and who made it.
type Record struct {
	Score int
	Name  string
}

// Store reads and writes the single best record.
// Read returns a zero Record, not an error, when nothing was stored yet.
// Write keeps the stored record when it is already higher than rec, so
// hosts sharing a store cannot overwrite a better score.
type Store interface {
	Read(ctx context.Context) (Record, error)
	Write(ctx context.Context, rec Record) error
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu  sync.Mutex
	rec Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Read implements Store.
func (s *MemoryStore) Read(_ context.Context) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec, nil
}

// Write implements Store.
func (s *MemoryStore) Write(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.Score >= s.rec.Score {
		s.rec = rec
	}
	return nil
}

var _ Store = (*MemoryStore)(nil)
