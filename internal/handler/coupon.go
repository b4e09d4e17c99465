package handler

import (
	"net/http"

	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CouponHandler handles coupon admin endpoints.
type CouponHandler struct {
	svc *service.CouponService
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(svc *service.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// List handles GET /api/coupons.
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.svc.List(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, coupons)
}

// Create handles POST /api/coupons.
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCouponRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	coupon, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusCreated, map[string]interface{}{
		"ok":     true,
		"coupon": coupon,
	})
}

// SetActive handles PATCH /api/coupons/{code}.
func (h *CouponHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req domain.SetCouponActiveRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	coupon, err := h.svc.SetActive(r.Context(), chi.URLParam(r, "code"), req.Active)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"coupon": coupon,
	})
}
