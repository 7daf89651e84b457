package services

import (
	"context"
	"errors"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/domain"
)

// SubmitResult is the terminal outcome of a payment submission, or the
// challenge the shopper must complete first. Exactly one of Outcome and
// Action is set.
type SubmitResult struct {
	Response *application.PaymentResponse
	Outcome  *domain.Outcome
	Action   *application.PaymentAction
}

// SubmitPayment builds and submits one payment attempt. Any reference
// the processor returns is recorded before this method returns, even
// when the outcome is not final yet.
func (s *CheckoutService) SubmitPayment(ctx context.Context, session *domain.PaymentSession, input application.SubmitInput) (*SubmitResult, error) {
	if session == nil || session.ID == "" {
		return nil, application.NewValidationError("missing checkout session")
	}

	req, idempotencyKey, err := s.builder.PaymentRequest(session, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("submitting payment",
		"session_id", session.ID,
		"reference", req.Reference,
		"amount", req.Amount.Value,
		"currency", req.Amount.Currency,
	)

	resp, err := s.processor.SubmitPayment(ctx, req, idempotencyKey)
	if err != nil {
		s.metrics.UpstreamError("payments")
		return nil, application.WrapUpstream(err)
	}

	if err := s.recordReference(ctx, session, resp.PspReference); err != nil {
		return nil, err
	}

	if resp.Action != nil {
		// Challenge required: the outcome is not final, so no result
		// code is written yet.
		s.logger.Info("payment requires shopper action",
			"session_id", session.ID,
			"action_type", resp.Action.Type,
		)
		return &SubmitResult{Response: resp, Action: resp.Action}, nil
	}

	outcome := domain.Classify(domain.ResultCode(resp.ResultCode))
	session.RecordResult(outcome.DisplayCode)
	s.metrics.PaymentResolved(string(outcome.Bucket))

	s.logger.Info("payment resolved",
		"session_id", session.ID,
		"result_code", resp.ResultCode,
		"bucket", outcome.Bucket,
	)
	return &SubmitResult{Response: resp, Outcome: &outcome}, nil
}

// recordReference writes the processor reference to the store and the
// session, surfacing write-once violations as conflicts.
func (s *CheckoutService) recordReference(ctx context.Context, session *domain.PaymentSession, pspReference string) error {
	if pspReference == "" {
		return nil
	}

	if err := s.refs.Put(ctx, session.ID, pspReference); err != nil {
		if errors.Is(err, domain.ErrReferenceConflict) {
			return application.NewConflictError(err)
		}
		return application.NewInternalError(err)
	}

	if err := session.AssignReference(pspReference); err != nil {
		return application.NewConflictError(err)
	}
	return nil
}
