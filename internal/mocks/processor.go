// Package mocks holds hand-rolled test doubles for the application ports.
package mocks

import (
	"context"
	"sync"

	"github.com/openpays/checkout-orchestrator/internal/application"
)

// MockProcessorClient implements application.ProcessorClient. Behavior
// is overridden per test through the Fn fields; call counts allow
// asserting that an operation was (or was not) reached.
type MockProcessorClient struct {
	mu sync.Mutex

	PaymentMethodsFn       func(ctx context.Context, req application.PaymentMethodsRequest) (*application.PaymentMethodsResponse, error)
	SubmitPaymentFn        func(ctx context.Context, req application.PaymentRequest, idempotencyKey string) (*application.PaymentResponse, error)
	SubmitPaymentDetailsFn func(ctx context.Context, req application.PaymentDetailsRequest) (*application.PaymentDetailsResponse, error)
	RefundPaymentFn        func(ctx context.Context, paymentPspReference string, req application.RefundRequest) (*application.RefundResponse, error)

	PaymentMethodsCalls       int
	SubmitPaymentCalls        int
	SubmitPaymentDetailsCalls int
	RefundPaymentCalls        int

	// Recorded arguments of the most recent calls.
	LastPaymentRequest  application.PaymentRequest
	LastIdempotencyKeys []string
	LastDetailsRequest  application.PaymentDetailsRequest
	LastRefundReference string
	LastRefundRequest   application.RefundRequest
}

func NewMockProcessorClient() *MockProcessorClient {
	return &MockProcessorClient{}
}

var _ application.ProcessorClient = (*MockProcessorClient)(nil)

func (m *MockProcessorClient) PaymentMethods(ctx context.Context, req application.PaymentMethodsRequest) (*application.PaymentMethodsResponse, error) {
	m.mu.Lock()
	m.PaymentMethodsCalls++
	m.mu.Unlock()

	if m.PaymentMethodsFn != nil {
		return m.PaymentMethodsFn(ctx, req)
	}
	return &application.PaymentMethodsResponse{}, nil
}

func (m *MockProcessorClient) SubmitPayment(ctx context.Context, req application.PaymentRequest, idempotencyKey string) (*application.PaymentResponse, error) {
	m.mu.Lock()
	m.SubmitPaymentCalls++
	m.LastPaymentRequest = req
	m.LastIdempotencyKeys = append(m.LastIdempotencyKeys, idempotencyKey)
	m.mu.Unlock()

	if m.SubmitPaymentFn != nil {
		return m.SubmitPaymentFn(ctx, req, idempotencyKey)
	}
	return &application.PaymentResponse{ResultCode: "Authorised", PspReference: "PSP-DEFAULT"}, nil
}

func (m *MockProcessorClient) SubmitPaymentDetails(ctx context.Context, req application.PaymentDetailsRequest) (*application.PaymentDetailsResponse, error) {
	m.mu.Lock()
	m.SubmitPaymentDetailsCalls++
	m.LastDetailsRequest = req
	m.mu.Unlock()

	if m.SubmitPaymentDetailsFn != nil {
		return m.SubmitPaymentDetailsFn(ctx, req)
	}
	return &application.PaymentDetailsResponse{ResultCode: "Authorised", PspReference: "PSP-DEFAULT"}, nil
}

func (m *MockProcessorClient) RefundPayment(ctx context.Context, paymentPspReference string, req application.RefundRequest) (*application.RefundResponse, error) {
	m.mu.Lock()
	m.RefundPaymentCalls++
	m.LastRefundReference = paymentPspReference
	m.LastRefundRequest = req
	m.mu.Unlock()

	if m.RefundPaymentFn != nil {
		return m.RefundPaymentFn(ctx, paymentPspReference, req)
	}
	return &application.RefundResponse{
		PspReference:        "REFUND-DEFAULT",
		PaymentPspReference: paymentPspReference,
		Status:              "received",
		Amount:              req.Amount,
	}, nil
}

// IdempotencyKeys returns a copy of the keys seen by SubmitPayment.
func (m *MockProcessorClient) IdempotencyKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, len(m.LastIdempotencyKeys))
	copy(keys, m.LastIdempotencyKeys)
	return keys
}
