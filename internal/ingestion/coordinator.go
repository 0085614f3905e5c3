package ingestion

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aevon-lab/reward-points/internal/core/aggregation"
	rperr "github.com/aevon-lab/reward-points/internal/core/errors"
	"github.com/aevon-lab/reward-points/internal/core/storage"
)

// SeenSet records the period keys already written during one run.
// Safe for concurrent use.
type SeenSet struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

func NewSeenSet() *SeenSet {
	return &SeenSet{keys: make(map[string]struct{})}
}

func (s *SeenSet) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok
}

func (s *SeenSet) Add(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = struct{}{}
}

func (s *SeenSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// Coordinator decides insert versus append for each increment and executes
// the write against the document store.
type Coordinator struct {
	store storage.DocumentStore
}

func NewCoordinator(store storage.DocumentStore) *Coordinator {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	return &Coordinator{store: store}
}

// Persist writes inc and marks its key as seen.
//
// A key already in seen goes straight to append. Otherwise the store is asked
// whether the document exists. Callers must not persist the same key from two
// goroutines at once; strategies guarantee this by key ownership.
// Every store failure, unacknowledged writes included, is returned as a
// persistence error and is never retried.
func (c *Coordinator) Persist(ctx context.Context, inc aggregation.Increment, seen *SeenSet) error {
	appendPath := seen.Contains(inc.Key)
	if !appendPath {
		exists, err := c.store.Exists(ctx, inc.Key)
		if err != nil {
			return rperr.Persistence(err, "Unable to check rewards document %s", inc.Key)
		}
		appendPath = exists
	}

	if appendPath {
		if err := c.store.Append(ctx, inc.Key, inc.Rewards); err != nil {
			return rperr.Persistence(err, "Unable to append rewards to %s", inc.Key)
		}
	} else {
		doc := inc.Document()
		if err := doc.Validate(); err != nil {
			return rperr.Persistence(err, "Invalid rewards document %s", inc.Key)
		}
		if err := c.store.Insert(ctx, doc); err != nil {
			return rperr.Persistence(err, "Unable to insert rewards document %s", inc.Key)
		}
	}

	seen.Add(inc.Key)
	slog.Debug("[Coordinator] Persisted increment",
		"period_key", inc.Key,
		"append", appendPath,
		"rewards", len(inc.Rewards),
	)
	return nil
}
