package application

import (
	"context"
)

// ProcessorClient is the port for the external payment processor.
// Implementations own transport, authentication and retry policy; the
// core never retries.
type ProcessorClient interface {
	PaymentMethods(ctx context.Context, req PaymentMethodsRequest) (*PaymentMethodsResponse, error)
	SubmitPayment(ctx context.Context, req PaymentRequest, idempotencyKey string) (*PaymentResponse, error)
	SubmitPaymentDetails(ctx context.Context, req PaymentDetailsRequest) (*PaymentDetailsResponse, error)
	RefundPayment(ctx context.Context, paymentPspReference string, req RefundRequest) (*RefundResponse, error)
}

// ReferenceStore is the port for the session-to-reference mapping. The
// reference for a session is write-once: Put with a different reference
// for an already-mapped session must fail with domain.ErrReferenceConflict,
// while re-putting the identical reference succeeds as a no-op.
type ReferenceStore interface {
	Put(ctx context.Context, sessionID, pspReference string) error
	Get(ctx context.Context, sessionID string) (string, bool, error)
	Delete(ctx context.Context, sessionID string) error
}
