// Package handlers exposes the checkout API surface consumed by the
// storefront drop-in.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/openpays/checkout-orchestrator/internal/application/services"
	"github.com/openpays/checkout-orchestrator/internal/domain"
	"github.com/openpays/checkout-orchestrator/internal/interfaces/rest"
)

// SessionHeader correlates the submit and redirect legs of one checkout
// attempt when the storefront supplies its own session identifier.
const SessionHeader = "X-Session-Id"

type Handlers struct {
	checkout    *services.CheckoutService
	amount      domain.Money
	clientKey   string
	environment string
	logger      *slog.Logger
}

func NewHandlers(
	checkout *services.CheckoutService,
	amount domain.Money,
	clientKey string,
	environment string,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		checkout:    checkout,
		amount:      amount,
		clientKey:   clientKey,
		environment: environment,
		logger:      logger,
	}
}

// RegisterRoutes wires the API endpoints onto the mux.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/paymentMethods", h.PaymentMethods)
	mux.HandleFunc("POST /api/payments", h.Payments)
	mux.HandleFunc("POST /api/payments/details", h.PaymentDetails)
	mux.HandleFunc("GET /api/handleShopperRedirect", h.HandleShopperRedirect)
	mux.HandleFunc("POST /api/refund", h.Refund)
	mux.HandleFunc("GET /api/config", h.ClientConfig)
	mux.HandleFunc("GET /healthz", h.Healthz)
}

// sessionFromRequest builds the checkout session for this request. The
// session ID comes from the storefront header when present so a later
// redirect resolution can address the same stored reference.
func (h *Handlers) sessionFromRequest(r *http.Request) (*domain.PaymentSession, error) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		sessionID = r.URL.Query().Get("sessionId")
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	return domain.NewPaymentSession(sessionID, h.amount)
}

func (h *Handlers) ClientConfig(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{
		"clientKey":   h.clientKey,
		"environment": h.environment,
	})
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
