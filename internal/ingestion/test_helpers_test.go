package ingestion

import (
	"context"
	"strings"
	"sync"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/aevon-lab/reward-points/internal/core/storage/memory"
)

var sampleLines = []string{
	"u1,2023-01-15T10:00:00+00:00,75.0",
	"u2,2023-01-20T08:30:00Z,120.50",
	"u1,2023-01-31T23:59:59+00:00,51",
	"u1,2023-02-01T00:00:00+00:00,200",
}

func source(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func allStrategies() []Strategy {
	return []Strategy{
		Sequential{},
		Concurrent{Workers: 3, QueueSize: 2},
		PreAggregated{Parallelism: 2},
	}
}

// faultyStore fails every write for one key and counts inserts per key.
type faultyStore struct {
	*memory.Store

	failKey string
	failErr error

	mu      sync.Mutex
	inserts map[string]int
}

func newFaultyStore(failKey string, failErr error) *faultyStore {
	return &faultyStore{
		Store:   memory.NewStore(),
		failKey: failKey,
		failErr: failErr,
		inserts: make(map[string]int),
	}
}

func (f *faultyStore) Insert(ctx context.Context, doc *v1.PeriodDocument) error {
	if doc.ID == f.failKey {
		return f.failErr
	}
	f.mu.Lock()
	f.inserts[doc.ID]++
	f.mu.Unlock()
	return f.Store.Insert(ctx, doc)
}

func (f *faultyStore) Append(ctx context.Context, id string, rewards []v1.Reward) error {
	if id == f.failKey {
		return f.failErr
	}
	return f.Store.Append(ctx, id, rewards)
}

func (f *faultyStore) insertCount(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inserts[id]
}
