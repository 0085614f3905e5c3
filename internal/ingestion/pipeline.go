package ingestion

import (
	"context"
	"io"
	"log/slog"
	"time"

	rperr "github.com/aevon-lab/reward-points/internal/core/errors"
	"github.com/aevon-lab/reward-points/internal/core/storage"
	"github.com/aevon-lab/reward-points/internal/notify"
)

const parseErrorPrefix = "ERROR: "

// Pipeline runs one strategy over a source of lines and reports the outcome
// on the notification sink.
type Pipeline struct {
	coordinator *Coordinator
	strategy    Strategy
	sink        notify.Sink
}

func NewPipeline(store storage.DocumentStore, strategy Strategy, sink notify.Sink) *Pipeline {
	if strategy == nil {
		panic("ingestion: strategy must not be nil")
	}
	if sink == nil {
		panic("ingestion: sink must not be nil")
	}
	return &Pipeline{
		coordinator: NewCoordinator(store),
		strategy:    strategy,
		sink:        sink,
	}
}

// Ingest processes src under processID. Exactly one terminal message is
// published per call: "success", or the failure message (prefixed with
// "ERROR: " for malformed input). The returned error is the same failure.
func (p *Pipeline) Ingest(ctx context.Context, src io.Reader, processID string) error {
	run := NewRun(processID, p.coordinator)
	start := time.Now()

	slog.Info("[Pipeline] Starting ingestion",
		"process_id", processID,
		"strategy", p.strategy.Name(),
	)

	err := p.strategy.Run(ctx, src, run)
	p.sink.Publish(processID, TerminalMessage(err))

	if err != nil {
		slog.Error("[Pipeline] Ingestion aborted",
			"process_id", processID,
			"strategy", p.strategy.Name(),
			"kind", rperr.KindOf(err).String(),
			"keys_written", run.Seen.Len(),
			"error", err,
		)
		return err
	}

	slog.Info("[Pipeline] Ingestion complete",
		"process_id", processID,
		"strategy", p.strategy.Name(),
		"keys_written", run.Seen.Len(),
		"duration", time.Since(start),
	)
	return nil
}

// TerminalMessage maps a run outcome to the text published for it.
func TerminalMessage(err error) string {
	if err == nil {
		return notify.MessageSuccess
	}
	if rperr.IsKind(err, rperr.KindParse) {
		return parseErrorPrefix + err.Error()
	}
	return err.Error()
}
