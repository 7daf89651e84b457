package services

import (
	"context"

	"github.com/openpays/checkout-orchestrator/internal/application"
)

// ListPaymentMethods queries the processor for the methods available to
// the configured merchant. No session state is touched.
func (s *CheckoutService) ListPaymentMethods(ctx context.Context) (*application.PaymentMethodsResponse, error) {
	req, err := s.builder.PaymentMethodsRequest()
	if err != nil {
		return nil, err
	}

	resp, err := s.processor.PaymentMethods(ctx, req)
	if err != nil {
		s.metrics.UpstreamError("paymentMethods")
		return nil, application.WrapUpstream(err)
	}

	s.logger.Info("retrieved payment methods", "count", len(resp.PaymentMethods))
	return resp, nil
}
