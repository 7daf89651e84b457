// Package services sequences request building, the processor call and
// reference tracking for each checkout operation.
package services

import (
	"log/slog"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/observability"
)

// CheckoutService is the orchestration façade the REST layer calls. It
// holds no per-request state; the reference store is the only shared
// mutable state it touches.
type CheckoutService struct {
	builder   *application.RequestBuilder
	processor application.ProcessorClient
	refs      application.ReferenceStore
	metrics   *observability.Metrics
	logger    *slog.Logger
}

func NewCheckoutService(
	builder *application.RequestBuilder,
	processor application.ProcessorClient,
	refs application.ReferenceStore,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		builder:   builder,
		processor: processor,
		refs:      refs,
		metrics:   metrics,
		logger:    logger,
	}
}
