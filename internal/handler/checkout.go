package handler

import (
	"io"
	"net/http"

	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/internal/service"
)

// CheckoutHandler handles checkout creation and payment webhooks.
type CheckoutHandler struct {
	svc *service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Create handles POST /api/stripe/checkout. Failures are reported as
// {ok:false, error} with the mapped status code.
func (h *CheckoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeCheckoutError(w, err)
		return
	}

	resp, err := h.svc.CreateCheckout(r.Context(), &req)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	JSON(w, http.StatusOK, resp)
}

// Webhook handles POST /api/stripe/webhook. The body signature is verified
// by the service before any VIP state changes.
func (h *CheckoutHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		Error(w, domain.ErrBadRequest("failed to read body"))
		return
	}

	signature := r.Header.Get("X-Webhook-Signature")
	if err := h.svc.HandleWebhook(r.Context(), payload, signature); err != nil {
		Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeCheckoutError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"
	if appErr, ok := domain.AsAppError(err); ok {
		status = appErr.Code
		msg = appErr.Message
	}
	JSON(w, status, domain.CheckoutResponse{OK: false, Error: msg})
}
