package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/domain"
	"github.com/openpays/checkout-orchestrator/internal/interfaces/rest"
)

type refundRequestBody struct {
	AmountMinor int64  `json:"amountMinor,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// Refund issues a refund for the session's completed payment. A session
// with no recorded payment reference answers 422.
func (h *Handlers) Refund(w http.ResponseWriter, r *http.Request) {
	var body refundRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		rest.WriteError(w, application.NewValidationError("malformed refund request body"))
		return
	}

	session, err := h.sessionFromRequest(r)
	if err != nil {
		rest.WriteError(w, application.NewValidationError(err.Error()))
		return
	}

	var amountOverride *domain.Money
	if body.AmountMinor > 0 {
		currency := body.Currency
		if currency == "" {
			currency = session.Amount.Currency
		}
		amountOverride = &domain.Money{Amount: body.AmountMinor, Currency: currency}
	}

	resp, err := h.checkout.Refund(r.Context(), session, amountOverride)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, resp)
}
