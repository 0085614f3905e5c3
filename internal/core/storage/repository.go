package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
)

var (
	// ErrUnacknowledged is returned when the store reports a write as not
	// durably committed. Callers treat it as fatal; it is never retried.
	ErrUnacknowledged = errors.New("write was not acknowledged by the store")

	// ErrNotFound is returned by Append when no document exists for the id.
	ErrNotFound = errors.New("period document not found")
)

// DocumentStore persists one PeriodDocument per identity per calendar month.
//
// Implementations must provide per-document atomicity for a single call.
// Insert must not create a second document when one already exists for the
// id (a concurrent writer may have won the race); implementations merge the
// rewards into the existing document instead.
type DocumentStore interface {
	// Exists reports whether a document with the given id is stored.
	Exists(ctx context.Context, id string) (bool, error)

	// Insert creates doc with its full rewards sequence.
	Insert(ctx context.Context, doc *v1.PeriodDocument) error

	// Append adds rewards to the end of the existing document's sequence.
	// Existing entries are never removed or rewritten.
	Append(ctx context.Context, id string, rewards []v1.Reward) error

	// SumRewards returns the sum of rewardPointAmt across the document's
	// rewards. A missing document yields 0, not an error.
	SumRewards(ctx context.Context, id string) (int64, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
