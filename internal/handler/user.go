package handler

import (
	"net/http"

	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// UserHandler handles user management endpoints (admin only).
type UserHandler struct {
	auth *service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, users)
}

// Update handles PATCH /api/admin/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	user, err := h.auth.UpdateUser(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"user": user,
	})
}

// Delete handles DELETE /api/admin/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
