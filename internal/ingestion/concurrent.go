package ingestion

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/aevon-lab/reward-points/internal/core/aggregation"
	"github.com/aevon-lab/reward-points/internal/core/partition"
	"github.com/aevon-lab/reward-points/internal/core/rewards"
	"golang.org/x/sync/errgroup"
)

// Concurrent streams lines from a single reader to a fixed pool of workers.
//
// Every period key is owned by exactly one worker (partition.For), so appends
// to one document are serialized and two workers can never both decide to
// insert the same new key. Each worker has its own bounded queue; the reader
// blocks when the owning worker's queue is full.
type Concurrent struct {
	Workers   int
	QueueSize int
}

func (Concurrent) Name() string { return StrategyConcurrent }

func (c Concurrent) normalized() Concurrent {
	n := c
	if n.Workers <= 0 {
		n.Workers = defaultWorkerCount
	}
	if n.QueueSize <= 0 {
		n.QueueSize = defaultQueueSize
	}
	return n
}

func (c Concurrent) Run(ctx context.Context, lines io.Reader, run *Run) error {
	opts := c.normalized()
	g, gctx := errgroup.WithContext(ctx)

	queues := make([]chan v1.Transaction, opts.Workers)
	for i := range queues {
		queues[i] = make(chan v1.Transaction, opts.QueueSize)
	}

	var read, written atomic.Int64

	g.Go(func() error {
		defer func() {
			for _, q := range queues {
				close(q)
			}
		}()
		return scanLines(gctx, lines, func(line string) error {
			tx, err := rewards.ParseLine(line)
			if err != nil {
				return err
			}
			read.Add(1)
			q := queues[partition.For(rewards.KeyOf(tx), opts.Workers)]
			select {
			case q <- tx:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	for _, q := range queues {
		g.Go(func() error {
			for tx := range q {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := run.persist(gctx, aggregation.Single(tx)); err != nil {
					return err
				}
				written.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	slog.Info("[Concurrent] Finished",
		"process_id", run.ProcessID,
		"workers", opts.Workers,
		"lines", read.Load(),
		"writes", written.Load(),
		"keys", run.Seen.Len(),
		"error", err,
	)
	return err
}
