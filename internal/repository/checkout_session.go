package repository

import (
	"context"
	"fmt"

	"github.com/adwell/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckoutSessionRepository persists hosted-payment sessions so the webhook
// can resolve them after the redirect.
type CheckoutSessionRepository struct {
	db *pgxpool.Pool
}

// NewCheckoutSessionRepository creates a new CheckoutSessionRepository.
func NewCheckoutSessionRepository(db *pgxpool.Pool) *CheckoutSessionRepository {
	return &CheckoutSessionRepository{db: db}
}

// Create inserts a pending checkout session.
func (r *CheckoutSessionRepository) Create(ctx context.Context, s *domain.CheckoutSession) error {
	query := `
		INSERT INTO checkout_sessions (id, ad_id, plan, amount_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.AdID, s.Plan, s.AmountCents, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create checkout session: %w", err)
	}
	return nil
}

// FindByID returns a session by its order ID.
func (r *CheckoutSessionRepository) FindByID(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	query := `
		SELECT id, ad_id, plan, amount_cents, status, created_at, updated_at
		FROM checkout_sessions WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)

	var s domain.CheckoutSession
	err := row.Scan(&s.ID, &s.AdID, &s.Plan, &s.AmountCents, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find checkout session: %w", err)
	}
	return &s, nil
}

// UpdateStatus moves a session to a new state.
func (r *CheckoutSessionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE checkout_sessions SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update checkout session: %w", err)
	}
	return nil
}
