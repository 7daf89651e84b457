package services

import (
	"context"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/domain"
)

// RedirectResolution is the terminal outcome of a redirect/challenge
// flow, with the storefront path the shopper should land on.
type RedirectResolution struct {
	Response     *application.PaymentDetailsResponse
	Outcome      domain.Outcome
	RedirectPath string
}

// ResolveRedirect completes the payment after the shopper returns from
// the challenge. At most one of payload and redirectResult is populated
// by the protocol; when both are empty the details call still goes out
// and the processor's rejection is surfaced unchanged.
func (s *CheckoutService) ResolveRedirect(ctx context.Context, session *domain.PaymentSession, payload, redirectResult string) (*RedirectResolution, error) {
	if session == nil || session.ID == "" {
		return nil, application.NewValidationError("missing checkout session")
	}

	req := s.builder.PaymentDetailsRequest(redirectResult, payload)

	resp, err := s.processor.SubmitPaymentDetails(ctx, req)
	if err != nil {
		s.metrics.UpstreamError("payments/details")
		return nil, application.WrapUpstream(err)
	}

	if err := s.recordReference(ctx, session, resp.PspReference); err != nil {
		return nil, err
	}

	outcome := domain.Classify(domain.ResultCode(resp.ResultCode))
	session.RecordResult(outcome.DisplayCode)
	s.metrics.PaymentResolved(string(outcome.Bucket))

	s.logger.Info("redirect resolved",
		"session_id", session.ID,
		"result_code", resp.ResultCode,
		"bucket", outcome.Bucket,
	)

	return &RedirectResolution{
		Response:     resp,
		Outcome:      outcome,
		RedirectPath: outcome.RedirectPath(),
	}, nil
}
