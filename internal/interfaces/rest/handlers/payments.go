package handlers

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/openpays/checkout-orchestrator/internal/application"
	"github.com/openpays/checkout-orchestrator/internal/interfaces/rest"
)

func (h *Handlers) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	resp, err := h.checkout.ListPaymentMethods(r.Context())
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, resp)
}

type paymentRequestBody struct {
	PaymentMethod json.RawMessage          `json:"paymentMethod"`
	BrowserInfo   *application.BrowserInfo `json:"browserInfo,omitempty"`
}

// Payments submits one payment attempt. The response is the processor
// response shape the drop-in expects: either an action to perform or a
// final resultCode.
func (h *Handlers) Payments(w http.ResponseWriter, r *http.Request) {
	var body paymentRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		rest.WriteError(w, application.NewValidationError("malformed payment request body"))
		return
	}

	session, err := h.sessionFromRequest(r)
	if err != nil {
		rest.WriteError(w, application.NewValidationError(err.Error()))
		return
	}
	w.Header().Set(SessionHeader, session.ID)

	input := application.SubmitInput{
		PaymentMethod:  body.PaymentMethod,
		BrowserInfo:    body.BrowserInfo,
		ShopperIP:      clientIP(r),
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	}

	result, err := h.checkout.SubmitPayment(r.Context(), session, input)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result.Response)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
