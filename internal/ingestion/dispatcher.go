package ingestion

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Ingester is the work a Dispatcher runs in the background.
type Ingester interface {
	Ingest(ctx context.Context, src io.Reader, processID string) error
}

// Dispatcher starts ingestions in the background and hands back their
// process ID straight away. Outcomes are only observable on the sink.
type Dispatcher struct {
	ctx      context.Context
	ingester Ingester
	wg       sync.WaitGroup
	newID    func() string
}

// NewDispatcher binds every run to ctx; cancelling it aborts in-flight runs.
func NewDispatcher(ctx context.Context, ingester Ingester) *Dispatcher {
	if ingester == nil {
		panic("ingestion: ingester must not be nil")
	}
	return &Dispatcher{
		ctx:      ctx,
		ingester: ingester,
		newID:    uuid.NewString,
	}
}

// Submit starts ingesting src and returns the new process ID. src is closed
// when the run ends.
func (d *Dispatcher) Submit(src io.ReadCloser) string {
	processID := d.newID()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if err := src.Close(); err != nil {
				slog.Warn("[Dispatcher] Failed to close source", "process_id", processID, "error", err)
			}
		}()

		// The pipeline has already published and logged the outcome.
		_ = d.ingester.Ingest(d.ctx, src, processID)
	}()

	return processID
}

// Wait blocks until every submitted run has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
