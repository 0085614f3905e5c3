package ingestion

import (
	"context"
	"io"
	"log/slog"

	"github.com/aevon-lab/reward-points/internal/core/aggregation"
	"github.com/aevon-lab/reward-points/internal/core/rewards"
)

// Sequential parses and persists one line at a time before reading the next.
// One store write per line.
type Sequential struct{}

func (Sequential) Name() string { return StrategySequential }

func (Sequential) Run(ctx context.Context, lines io.Reader, run *Run) error {
	count := 0
	err := scanLines(ctx, lines, func(line string) error {
		tx, err := rewards.ParseLine(line)
		if err != nil {
			return err
		}
		if err := run.persist(ctx, aggregation.Single(tx)); err != nil {
			return err
		}
		count++
		return nil
	})

	slog.Info("[Sequential] Finished",
		"process_id", run.ProcessID,
		"lines", count,
		"keys", run.Seen.Len(),
		"error", err,
	)
	return err
}
