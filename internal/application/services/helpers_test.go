package services_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/application/services"
	"github.com/openpays/checkout-orchestrator/internal/domain"
	"github.com/openpays/checkout-orchestrator/internal/infrastructure/store"
	"github.com/openpays/checkout-orchestrator/internal/mocks"
	"github.com/openpays/checkout-orchestrator/internal/observability"
)

func testMerchantContext() application.MerchantContext {
	return application.MerchantContext{
		MerchantAccount: "TestMerchant",
		Channel:         "Web",
		Currency:        "EUR",
		CountryCode:     "NL",
		ReturnURLBase:   "http://localhost:8080",
	}
}

func newTestService(t *testing.T, processor *mocks.MockProcessorClient) (*services.CheckoutService, *store.MemoryStore) {
	t.Helper()

	refs := store.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	builder := application.NewRequestBuilder(testMerchantContext())

	return services.NewCheckoutService(builder, processor, refs, metrics, logger), refs
}

func newSession(t *testing.T, id string) *domain.PaymentSession {
	t.Helper()
	session, err := domain.NewPaymentSession(id, domain.Money{Amount: 9999, Currency: "EUR"})
	require.NoError(t, err)
	return session
}
