package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpays/checkout-orchestrator/internal/infrastructure/store"
	"github.com/openpays/checkout-orchestrator/internal/worker"
)

func TestReferenceSweeper_EvictsExpiredEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refs := store.NewMemoryStore()
	require.NoError(t, refs.Put(ctx, "session-1", "PSP-1"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sweeper := worker.NewReferenceSweeper(refs, 10*time.Millisecond, time.Nanosecond, logger)

	done := make(chan struct{})
	go func() {
		sweeper.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return refs.Len() == 0
	}, time.Second, 10*time.Millisecond, "expired reference should be swept")

	cancel()
	<-done
}
