// Package reconciler keeps the document section of the state container
// aligned with the backend while documents are being processed. It runs
// two polling loops: a slow one replacing the fleet-wide processing
// summary and a fast one refreshing the status of every document that
// has not completed yet.
package reconciler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/custodia-labs/botdesk-client/internal/core/ports/driving"
	"github.com/custodia-labs/botdesk-client/internal/state"
)

// Config holds the reconciler configuration.
type Config struct {
	Documents driving.DocumentService
	State     *state.Store
	Logger    *slog.Logger

	// SummaryInterval is the processing summary poll period (default: 10s)
	SummaryInterval time.Duration

	// StatusInterval is the per-document status poll period (default: 5s)
	StatusInterval time.Duration
}

// Reconciler drives the document polling loops.
type Reconciler struct {
	documents driving.DocumentService
	state     *state.Store
	logger    *slog.Logger

	summaryInterval time.Duration
	statusInterval  time.Duration

	// Internal state
	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a new reconciler.
func New(cfg Config) *Reconciler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	summaryInterval := cfg.SummaryInterval
	if summaryInterval == 0 {
		summaryInterval = 10 * time.Second
	}
	statusInterval := cfg.StatusInterval
	if statusInterval == 0 {
		statusInterval = 5 * time.Second
	}

	return &Reconciler{
		documents:       cfg.Documents,
		state:           cfg.State,
		logger:          logger,
		summaryInterval: summaryInterval,
		statusInterval:  statusInterval,
	}
}

// Start fetches the document list once, then begins both polling loops.
// It runs until Stop is called or the context is cancelled. Calling
// Start on a running reconciler is a no-op.
func (r *Reconciler) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.mu.Unlock()

	r.logger.Info("reconciler starting",
		"summary_interval", r.summaryInterval,
		"status_interval", r.statusInterval)

	// Seed the list before the loops start so the first status tick has
	// a poll set to work from. A failure here is not fatal; the loops
	// run against whatever the state already holds.
	if docs, err := r.documents.List(ctx); err != nil {
		r.logger.Error("initial document list fetch failed", "error", err)
	} else {
		r.state.SetDocuments(docs)
	}

	go r.run(ctx)

	return nil
}

// Stop gracefully stops both loops. Safe to call repeatedly.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	close(r.stopCh)
	r.mu.Unlock()

	<-r.doneCh

	r.mu.Lock()
	r.running = false
	r.mu.Unlock()

	r.logger.Info("reconciler stopped")
}

// run drives both loops and closes doneCh when they have exited.
func (r *Reconciler) run(ctx context.Context) {
	defer close(r.doneCh)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		r.loop(ctx, r.summaryInterval, r.pollSummary)
	}()
	go func() {
		defer wg.Done()
		r.loop(ctx, r.statusInterval, r.pollStatuses)
	}()

	wg.Wait()
}

// loop runs fn immediately, then on every tick until shutdown.
func (r *Reconciler) loop(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fn(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// pollSummary replaces the processing summary. On failure the previous
// summary stays in place.
func (r *Reconciler) pollSummary(ctx context.Context) {
	summary, err := r.documents.ProcessingStats(ctx)
	if err != nil {
		r.logger.Warn("summary poll failed", "error", err)
		return
	}
	r.state.SetSummary(summary)
}

// pollStatuses refreshes every document whose merged status has not
// reached completed. The poll set is recomputed from current state on
// each tick, so documents finishing drop out and new uploads join
// without restarting the loop.
func (r *Reconciler) pollStatuses(ctx context.Context) {
	for _, id := range r.state.UnfinishedDocumentIDs() {
		status, err := r.documents.Status(ctx, id)
		if err != nil {
			r.logger.Warn("status poll failed", "document_id", id, "error", err)
			continue
		}
		r.state.ApplyDocumentStatus(id, *status)
	}
}
