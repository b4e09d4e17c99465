package handler

import (
	"net/http"

	"github.com/adwell/backend/internal/contextkeys"
	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// AdHandler handles listing HTTP endpoints.
type AdHandler struct {
	svc *service.AdService
}

// NewAdHandler creates a new AdHandler.
func NewAdHandler(svc *service.AdService) *AdHandler {
	return &AdHandler{svc: svc}
}

// List handles GET /api/ads with optional category/country/city/vip filters.
func (h *AdHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AdFilter{
		Category: q.Get("category"),
		Country:  q.Get("country"),
		City:     q.Get("city"),
		VipOnly:  q.Get("vip") == "true",
	}

	ads, err := h.svc.List(r.Context(), filter)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, ads)
}

// GetByID handles GET /api/ads/{id}.
func (h *AdHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ad, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, ad)
}

// Create handles POST /api/ads. The owner is the authenticated user.
func (h *AdHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerEmail, _ := r.Context().Value(contextkeys.UserEmail).(string)

	var req domain.CreateAdRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	ad, err := h.svc.Create(r.Context(), ownerEmail, &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusCreated, map[string]interface{}{
		"ok": true,
		"ad": ad,
	})
}

// Update handles PUT /api/ads/{id}.
func (h *AdHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(contextkeys.UserEmail).(string)
	role, _ := r.Context().Value(contextkeys.UserRole).(string)

	var req domain.UpdateAdRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	ad, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), email, role == "admin", &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"ad": ad,
	})
}

// Delete handles DELETE /api/ads/{id}.
func (h *AdHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(contextkeys.UserEmail).(string)
	role, _ := r.Context().Value(contextkeys.UserRole).(string)

	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), email, role == "admin"); err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
