package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/interfaces/rest"
)

type paymentDetailsBody struct {
	Details application.PaymentCompletionDetails `json:"details"`
}

// PaymentDetails is the explicit submission path for challenge results
// the drop-in collected itself.
func (h *Handlers) PaymentDetails(w http.ResponseWriter, r *http.Request) {
	var body paymentDetailsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		rest.WriteError(w, application.NewValidationError("malformed payment details body"))
		return
	}

	session, err := h.sessionFromRequest(r)
	if err != nil {
		rest.WriteError(w, application.NewValidationError(err.Error()))
		return
	}

	resolution, err := h.checkout.ResolveRedirect(r.Context(), session, body.Details.Payload, body.Details.RedirectResult)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, resolution.Response)
}

// HandleShopperRedirect is where the processor sends the shopper's
// browser back after a challenge. The outcome is rendered as a redirect
// to the storefront result page.
func (h *Handlers) HandleShopperRedirect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	payload := query.Get("payload")
	redirectResult := query.Get("redirectResult")

	session, err := h.sessionFromRequest(r)
	if err != nil {
		rest.WriteError(w, application.NewValidationError(err.Error()))
		return
	}

	resolution, err := h.checkout.ResolveRedirect(r.Context(), session, payload, redirectResult)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	http.Redirect(w, r, resolution.RedirectPath, http.StatusFound)
}
