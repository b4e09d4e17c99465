package repository

import (
	"context"
	"fmt"

	"github.com/adwell/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CouponRepository handles database operations for coupons.
type CouponRepository struct {
	db *pgxpool.Pool
}

// NewCouponRepository creates a new CouponRepository.
func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{db: db}
}

// Upsert inserts a coupon or overwrites an existing code (last write wins).
func (r *CouponRepository) Upsert(ctx context.Context, c *domain.Coupon) error {
	query := `
		INSERT INTO coupons (code, percent, active, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE SET percent = $2, active = $3
	`
	_, err := r.db.Exec(ctx, query, c.Code, c.Percent, c.Active, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert coupon: %w", err)
	}
	return nil
}

// FindByCode returns a coupon by its case-sensitive code.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	query := `SELECT code, percent, active, created_at FROM coupons WHERE code = $1`
	row := r.db.QueryRow(ctx, query, code)

	var c domain.Coupon
	err := row.Scan(&c.Code, &c.Percent, &c.Active, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find coupon: %w", err)
	}
	return &c, nil
}

// SetActive flips the active flag. Returns false if the code is absent.
func (r *CouponRepository) SetActive(ctx context.Context, code string, active bool) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE coupons SET active = $1 WHERE code = $2`, active, code)
	if err != nil {
		return false, fmt.Errorf("failed to toggle coupon: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListAll returns all coupons ordered by creation date.
func (r *CouponRepository) ListAll(ctx context.Context) ([]*domain.Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT code, percent, active, created_at FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer rows.Close()

	coupons := []*domain.Coupon{}
	for rows.Next() {
		var c domain.Coupon
		if err := rows.Scan(&c.Code, &c.Percent, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		coupons = append(coupons, &c)
	}
	return coupons, nil
}
