package ingestion

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aevon-lab/reward-points/internal/core/aggregation"
)

const (
	StrategyPreAggregated = "preaggregated"
	StrategySequential    = "sequential"
	StrategyConcurrent    = "concurrent"

	defaultWorkerCount = 4
	defaultQueueSize   = 256
	defaultParallelism = 8

	maxLineBytes = 1024 * 1024
)

// Run is the in-memory state of one ingestion: its process ID and the period
// keys written so far. It is discarded once the terminal notification is sent.
type Run struct {
	ProcessID string
	Seen      *SeenSet

	coordinator *Coordinator
}

func NewRun(processID string, coordinator *Coordinator) *Run {
	return &Run{
		ProcessID:   processID,
		Seen:        NewSeenSet(),
		coordinator: coordinator,
	}
}

func (r *Run) persist(ctx context.Context, inc aggregation.Increment) error {
	return r.coordinator.Persist(ctx, inc, r.Seen)
}

// Strategy processes every line of a source for one run. It returns the
// first parse or persistence error and processes nothing after it.
// Documents already written are left in place.
type Strategy interface {
	Name() string
	Run(ctx context.Context, lines io.Reader, run *Run) error
}

// ParseStrategy builds the strategy configured under ingestion.strategy.
func ParseStrategy(name string, workers, queueSize, parallelism int) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyPreAggregated:
		return PreAggregated{Parallelism: parallelism}, nil
	case StrategySequential:
		return Sequential{}, nil
	case StrategyConcurrent:
		return Concurrent{Workers: workers, QueueSize: queueSize}, nil
	default:
		return nil, fmt.Errorf("unknown ingestion strategy %q", name)
	}
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}

// scanLines calls fn for every line of r, stripping a trailing carriage return.
// It stops at the first error from fn, ctx, or the reader.
func scanLines(ctx context.Context, r io.Reader, fn func(line string) error) error {
	sc := newLineScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
