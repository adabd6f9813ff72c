package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Its contents are discarded with the process.
type Storage struct {
	mu      sync.RWMutex
	records []model.RoundRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) AppendRoundRecord(ctx context.Context, record model.RoundRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// ListRoundRecords returns a copy so callers cannot rewrite history
func (s *Storage) ListRoundRecords(ctx context.Context) ([]model.RoundRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), nil
}

func (s *Storage) CountRoundRecords(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
