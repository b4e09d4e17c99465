package handler

import (
	"net/http"

	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// CategoryHandler handles directory section endpoints.
type CategoryHandler struct {
	svc *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, cats)
}

// Create handles POST /api/categories (admin only).
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCategoryRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	cat, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusCreated, cat)
}

// UpdateColor handles PATCH /api/categories/{slug}/color (admin only).
func (h *CategoryHandler) UpdateColor(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCategoryColorRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	cat, err := h.svc.UpdateColor(r.Context(), chi.URLParam(r, "slug"), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, cat)
}
