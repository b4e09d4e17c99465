package handler

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// AdminHandler serves system-wide metrics for the admin panel.
type AdminHandler struct {
	db *pgxpool.Pool
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *pgxpool.Pool) *AdminHandler {
	return &AdminHandler{db: db}
}

// GetStats handles GET /api/admin/stats.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var usersCount, adsCount, vipCount, couponsCount int

	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM users").Scan(&usersCount); err != nil {
		log.Error().Err(err).Msg("failed to count users")
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM ads").Scan(&adsCount); err != nil {
		log.Error().Err(err).Msg("failed to count ads")
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM ads WHERE is_vip = TRUE").Scan(&vipCount); err != nil {
		log.Error().Err(err).Msg("failed to count vip ads")
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM coupons WHERE active = TRUE").Scan(&couponsCount); err != nil {
		log.Error().Err(err).Msg("failed to count coupons")
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"users":         usersCount,
		"ads":           adsCount,
		"vipAds":        vipCount,
		"activeCoupons": couponsCount,
	})
}
