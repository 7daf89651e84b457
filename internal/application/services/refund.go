package services

import (
	"context"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/domain"
)

// Refund issues a refund against the session's recorded payment. It
// fails fast without contacting the processor when the session never
// completed a payment. The processor acknowledgement is returned
// verbatim: refunds settle asynchronously on the processor side.
func (s *CheckoutService) Refund(ctx context.Context, session *domain.PaymentSession, amountOverride *domain.Money) (*application.RefundResponse, error) {
	if session == nil || session.ID == "" {
		return nil, application.NewValidationError("missing checkout session")
	}

	pspReference, ok, err := s.refs.Get(ctx, session.ID)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	if !ok {
		return nil, application.NewPreconditionError("no completed payment to refund")
	}

	req, err := s.builder.RefundRequest(session, amountOverride, "")
	if err != nil {
		return nil, err
	}

	s.logger.Info("requesting refund",
		"session_id", session.ID,
		"psp_reference", pspReference,
		"reference", req.Reference,
		"amount", req.Amount.Value,
	)

	resp, err := s.processor.RefundPayment(ctx, pspReference, req)
	if err != nil {
		s.metrics.UpstreamError("refunds")
		return nil, application.WrapUpstream(err)
	}

	s.metrics.RefundAccepted(resp.Status)
	return resp, nil
}
