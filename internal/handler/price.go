package handler

import (
	"net/http"

	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/internal/service"
)

// PriceHandler exposes the public price preview endpoints.
type PriceHandler struct {
	pricing *service.PricingService
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(pricing *service.PricingService) *PriceHandler {
	return &PriceHandler{pricing: pricing}
}

// Quote handles GET /api/price?plan={vip|standard}&code={string?}.
func (h *PriceHandler) Quote(w http.ResponseWriter, r *http.Request) {
	plan := r.URL.Query().Get("plan")
	if plan == "" {
		plan = domain.PlanVip
	}
	code := r.URL.Query().Get("code")

	quote, err := h.pricing.Quote(r.Context(), plan, code)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"amount": quote.FinalAmount,
		"coupon": quote.Coupon,
	})
}

// Plans handles GET /api/plans, returning the static price table.
func (h *PriceHandler) Plans(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, []map[string]interface{}{
		{"id": domain.PlanVip, "name": "VIP", "monthlyUsd": domain.VipMonthlyUSD},
		{"id": domain.PlanStandard, "name": "Standard", "monthlyUsd": domain.StandardMonthlyUSD},
	})
}
