package application

import (
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"github.com/openpays/checkout-orchestrator/internal/domain"
)

// MerchantContext is the static merchant identity every outbound request
// carries. It comes from configuration and never changes at runtime.
type MerchantContext struct {
	MerchantAccount string
	Channel         string
	Currency        string
	CountryCode     string
	ReturnURLBase   string
	ShopperEmail    string
	BillingAddress  BillingAddress
}

// SubmitInput is the caller-supplied part of a payment submission.
// IdempotencyKey is empty for a new logical attempt; a retry of the same
// attempt passes the original key through instead of minting a new one.
type SubmitInput struct {
	PaymentMethod  json.RawMessage
	BrowserInfo    *BrowserInfo
	ShopperIP      string
	IdempotencyKey string
}

// RequestBuilder shapes outbound processor requests. Builders are pure
// apart from reference/key generation, which is injectable through the
// caller-supplied idempotency key so retries are deterministic in tests.
type RequestBuilder struct {
	mctx MerchantContext
}

func NewRequestBuilder(mctx MerchantContext) *RequestBuilder {
	return &RequestBuilder{mctx: mctx}
}

func (b *RequestBuilder) checkMerchantContext() error {
	if b.mctx.MerchantAccount == "" {
		return NewConfigurationError("merchant account")
	}
	if b.mctx.Currency == "" {
		return NewConfigurationError("currency")
	}
	return nil
}

func (b *RequestBuilder) PaymentMethodsRequest() (PaymentMethodsRequest, error) {
	if err := b.checkMerchantContext(); err != nil {
		return PaymentMethodsRequest{}, err
	}
	return PaymentMethodsRequest{
		MerchantAccount: b.mctx.MerchantAccount,
		Channel:         b.mctx.Channel,
		CountryCode:     b.mctx.CountryCode,
	}, nil
}

// PaymentRequest assembles the submission for one checkout attempt. The
// return URL carries the session ID so the redirect back from the
// challenge can be correlated with the original submission.
func (b *RequestBuilder) PaymentRequest(session *domain.PaymentSession, input SubmitInput) (PaymentRequest, string, error) {
	if err := b.checkMerchantContext(); err != nil {
		return PaymentRequest{}, "", err
	}

	idempotencyKey := input.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	returnURL := b.mctx.ReturnURLBase + "/api/handleShopperRedirect?sessionId=" + url.QueryEscape(session.ID)

	req := PaymentRequest{
		Amount: Amount{
			Currency: session.Amount.Currency,
			Value:    session.Amount.Amount,
		},
		MerchantAccount: b.mctx.MerchantAccount,
		Channel:         b.mctx.Channel,
		Reference:       uuid.New().String(),
		ReturnURL:       returnURL,
		AuthenticationData: &AuthenticationData{
			// Always request strong authentication when available.
			AttemptAuthentication: "always",
		},
		Origin:        b.mctx.ReturnURLBase,
		BrowserInfo:   input.BrowserInfo,
		ShopperIP:     input.ShopperIP,
		PaymentMethod: input.PaymentMethod,
		CountryCode:   b.mctx.CountryCode,
		ShopperEmail:  b.mctx.ShopperEmail,
	}
	if b.mctx.BillingAddress != (BillingAddress{}) {
		addr := b.mctx.BillingAddress
		req.BillingAddress = &addr
	}

	return req, idempotencyKey, nil
}

// PaymentDetailsRequest wraps whichever redirect token the shopper came
// back with. Presence is not validated here: an empty request is still
// well-formed and the processor rejects it.
func (b *RequestBuilder) PaymentDetailsRequest(redirectResult, payload string) PaymentDetailsRequest {
	return PaymentDetailsRequest{
		Details: PaymentCompletionDetails{
			RedirectResult: redirectResult,
			Payload:        payload,
		},
	}
}

// RefundRequest builds a refund for the session's payment. A zero
// amountOverride falls back to the session's original amount.
func (b *RequestBuilder) RefundRequest(session *domain.PaymentSession, amountOverride *domain.Money, refundReference string) (RefundRequest, error) {
	if err := b.checkMerchantContext(); err != nil {
		return RefundRequest{}, err
	}

	amount := session.Amount
	if amountOverride != nil {
		amount = *amountOverride
	}
	if refundReference == "" {
		refundReference = "refund-" + uuid.New().String()
	}

	return RefundRequest{
		Amount: Amount{
			Currency: amount.Currency,
			Value:    amount.Amount,
		},
		MerchantAccount: b.mctx.MerchantAccount,
		Reference:       refundReference,
	}, nil
}
