package application_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/domain"
)

func testMerchantContext() application.MerchantContext {
	return application.MerchantContext{
		MerchantAccount: "TestMerchant",
		Channel:         "Web",
		Currency:        "EUR",
		CountryCode:     "NL",
		ReturnURLBase:   "http://localhost:8080",
		ShopperEmail:    "s.hopper@example.com",
	}
}

func testSession(t *testing.T) *domain.PaymentSession {
	t.Helper()
	session, err := domain.NewPaymentSession("session-1", domain.Money{Amount: 9999, Currency: "EUR"})
	require.NoError(t, err)
	return session
}

func TestPaymentMethodsRequest(t *testing.T) {
	builder := application.NewRequestBuilder(testMerchantContext())

	req, err := builder.PaymentMethodsRequest()
	require.NoError(t, err)

	assert.Equal(t, "TestMerchant", req.MerchantAccount)
	assert.Equal(t, "Web", req.Channel)
	assert.Equal(t, "NL", req.CountryCode)
}

func TestPaymentMethodsRequest_MissingMerchantAccount(t *testing.T) {
	mctx := testMerchantContext()
	mctx.MerchantAccount = ""
	builder := application.NewRequestBuilder(mctx)

	_, err := builder.PaymentMethodsRequest()
	require.Error(t, err)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeConfiguration, svcErr.Code)
}

func TestPaymentRequest_Shape(t *testing.T) {
	builder := application.NewRequestBuilder(testMerchantContext())
	session := testSession(t)

	req, key, err := builder.PaymentRequest(session, application.SubmitInput{
		PaymentMethod: json.RawMessage(`{"type":"scheme"}`),
		ShopperIP:     "192.0.2.7",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9999), req.Amount.Value)
	assert.Equal(t, "EUR", req.Amount.Currency)
	assert.Equal(t, "TestMerchant", req.MerchantAccount)
	assert.Equal(t, "Web", req.Channel)
	assert.NotEmpty(t, req.Reference)
	assert.NotEmpty(t, key)
	assert.Equal(t, "http://localhost:8080", req.Origin)
	assert.Equal(t, "192.0.2.7", req.ShopperIP)
	assert.Equal(t, "http://localhost:8080/api/handleShopperRedirect?sessionId=session-1", req.ReturnURL)

	require.NotNil(t, req.AuthenticationData)
	assert.Equal(t, "always", req.AuthenticationData.AttemptAuthentication)
}

func TestPaymentRequest_FreshKeysForNewAttempts(t *testing.T) {
	builder := application.NewRequestBuilder(testMerchantContext())
	session := testSession(t)

	_, key1, err := builder.PaymentRequest(session, application.SubmitInput{})
	require.NoError(t, err)
	_, key2, err := builder.PaymentRequest(session, application.SubmitInput{})
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2, "distinct logical attempts must not share an idempotency key")
}

func TestPaymentRequest_RetryReusesInjectedKey(t *testing.T) {
	builder := application.NewRequestBuilder(testMerchantContext())
	session := testSession(t)

	_, key, err := builder.PaymentRequest(session, application.SubmitInput{IdempotencyKey: "retry-key-1"})
	require.NoError(t, err)

	assert.Equal(t, "retry-key-1", key)
}

func TestPaymentRequest_MissingCurrency(t *testing.T) {
	mctx := testMerchantContext()
	mctx.Currency = ""
	builder := application.NewRequestBuilder(mctx)

	_, _, err := builder.PaymentRequest(testSession(t), application.SubmitInput{})
	require.Error(t, err)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeConfiguration, svcErr.Code)
}

func TestPaymentDetailsRequest_WrapsEitherToken(t *testing.T) {
	builder := application.NewRequestBuilder(testMerchantContext())

	req := builder.PaymentDetailsRequest("redirect-token", "")
	assert.Equal(t, "redirect-token", req.Details.RedirectResult)
	assert.Empty(t, req.Details.Payload)

	req = builder.PaymentDetailsRequest("", "payload-token")
	assert.Equal(t, "payload-token", req.Details.Payload)
	assert.Empty(t, req.Details.RedirectResult)

	// Both empty is still a well-formed request; the processor rejects it.
	req = builder.PaymentDetailsRequest("", "")
	assert.Empty(t, req.Details.RedirectResult)
	assert.Empty(t, req.Details.Payload)
}

func TestRefundRequest_DefaultsToSessionAmount(t *testing.T) {
	builder := application.NewRequestBuilder(testMerchantContext())
	session := testSession(t)

	req, err := builder.RefundRequest(session, nil, "")
	require.NoError(t, err)

	assert.Equal(t, int64(9999), req.Amount.Value)
	assert.Equal(t, "EUR", req.Amount.Currency)
	assert.Equal(t, "TestMerchant", req.MerchantAccount)
	assert.NotEmpty(t, req.Reference)
}

func TestRefundRequest_Override(t *testing.T) {
	builder := application.NewRequestBuilder(testMerchantContext())
	session := testSession(t)

	req, err := builder.RefundRequest(session, &domain.Money{Amount: 500, Currency: "EUR"}, "refund-ref-1")
	require.NoError(t, err)

	assert.Equal(t, int64(500), req.Amount.Value)
	assert.Equal(t, "refund-ref-1", req.Reference)
}
