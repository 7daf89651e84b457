// Package worker runs background maintenance alongside the request path.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/openpays/checkout-orchestrator/internal/infrastructure/store"
)

// ReferenceSweeper evicts in-memory session references past their TTL.
// It is the retention policy collaborator: the checkout core itself
// never deletes references.
type ReferenceSweeper struct {
	store    *store.MemoryStore
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
}

func NewReferenceSweeper(
	store *store.MemoryStore,
	interval time.Duration,
	ttl time.Duration,
	logger *slog.Logger,
) *ReferenceSweeper {
	return &ReferenceSweeper{
		store:    store,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (w *ReferenceSweeper) Start(ctx context.Context) {
	w.logger.Info("reference sweeper started", "interval", w.interval, "ttl", w.ttl)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reference sweeper stopping")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *ReferenceSweeper) sweep() {
	cutoff := time.Now().Add(-w.ttl)
	removed := w.store.SweepOlderThan(cutoff)
	if removed > 0 {
		w.logger.Info("swept expired session references",
			"removed", removed,
			"remaining", w.store.Len(),
		)
	}
}
