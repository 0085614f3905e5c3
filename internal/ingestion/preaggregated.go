package ingestion

import (
	"context"
	"io"
	"log/slog"

	v1 "github.com/aevon-lab/reward-points/internal/api/v1"
	"github.com/aevon-lab/reward-points/internal/core/aggregation"
	"github.com/aevon-lab/reward-points/internal/core/rewards"
	"golang.org/x/sync/errgroup"
)

// PreAggregated reads the whole source, collapses it into one increment per
// period key and then writes each increment once. A parse error anywhere in
// the source means nothing is written. Increments for distinct keys are
// written in parallel, bounded by Parallelism.
type PreAggregated struct {
	Parallelism int
}

func (PreAggregated) Name() string { return StrategyPreAggregated }

func (p PreAggregated) Run(ctx context.Context, lines io.Reader, run *Run) error {
	var txs []v1.Transaction
	err := scanLines(ctx, lines, func(line string) error {
		tx, err := rewards.ParseLine(line)
		if err != nil {
			return err
		}
		txs = append(txs, tx)
		return nil
	})
	if err != nil {
		return err
	}

	increments := aggregation.Aggregate(txs)
	slog.Info("[PreAggregated] Aggregated input",
		"process_id", run.ProcessID,
		"lines", len(txs),
		"increments", len(increments),
	)

	parallelism := p.Parallelism
	if parallelism <= 0 {
		parallelism = defaultParallelism
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, inc := range increments {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return run.persist(gctx, inc)
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	slog.Info("[PreAggregated] Finished",
		"process_id", run.ProcessID,
		"keys", run.Seen.Len(),
		"error", err,
	)
	return err
}
