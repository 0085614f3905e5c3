package memory

import (
	"context"
	"sync"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/aevon-lab/reward-points/internal/core/storage"
)

// Store is an in-memory DocumentStore. It is safe for concurrent use and is
// what the service runs on with database.type=memory.
type Store struct {
	mu     sync.RWMutex
	docs   map[string]*v1.PeriodDocument
	writes int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		docs: make(map[string]*v1.PeriodDocument),
	}
}

// Exists reports whether a document with id is stored.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.docs[id]
	return ok, nil
}

// Insert stores a copy of doc. If a document already exists for the id the
// rewards are appended to it instead.
func (s *Store) Insert(ctx context.Context, doc *v1.PeriodDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes++
	if existing, ok := s.docs[doc.ID]; ok {
		existing.Rewards = append(existing.Rewards, doc.Rewards...)
		return nil
	}

	stored := *doc
	stored.Rewards = append([]v1.Reward(nil), doc.Rewards...)
	s.docs[doc.ID] = &stored
	return nil
}

// Append adds rewards to the end of the stored document.
func (s *Store) Append(ctx context.Context, id string, rewards []v1.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[id]
	if !ok {
		return storage.ErrNotFound
	}
	s.writes++
	existing.Rewards = append(existing.Rewards, rewards...)
	return nil
}

// SumRewards returns the document's reward total, 0 when absent.
func (s *Store) SumRewards(ctx context.Context, id string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return 0, nil
	}
	return doc.Total(), nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Get returns a copy of the stored document.
func (s *Store) Get(id string) (*v1.PeriodDocument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	cp := *doc
	cp.Rewards = append([]v1.Reward(nil), doc.Rewards...)
	return &cp, true
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Writes returns how many Insert/Append calls reached the store.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
