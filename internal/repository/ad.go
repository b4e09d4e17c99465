package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/adwell/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adColumns = `id, company_name, description, category, country, city,
	image, logo, phone, whatsapp, website, email, owner_email,
	is_vip, vip_expires_at, created_at`

// AdRepository handles database operations for listings.
type AdRepository struct {
	db *pgxpool.Pool
}

// NewAdRepository creates a new AdRepository.
func NewAdRepository(db *pgxpool.Pool) *AdRepository {
	return &AdRepository{db: db}
}

// Create inserts a new listing.
func (r *AdRepository) Create(ctx context.Context, ad *domain.Ad) error {
	query := `
		INSERT INTO ads (` + adColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.Exec(ctx, query,
		ad.ID, ad.CompanyName, ad.Description, ad.Category, ad.Country, ad.City,
		ad.Image, ad.Logo, ad.Phone, ad.Whatsapp, ad.Website, ad.Email, ad.OwnerEmail,
		ad.IsVip, ad.VipExpiresAt, ad.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ad: %w", err)
	}
	return nil
}

// FindByID returns a listing by ID.
func (r *AdRepository) FindByID(ctx context.Context, id string) (*domain.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanAd(row)
}

// List returns listings matching the filter, VIP listings first.
func (r *AdRepository) List(ctx context.Context, f domain.AdFilter) ([]*domain.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE 1=1`
	args := []interface{}{}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Country != "" {
		args = append(args, f.Country)
		query += fmt.Sprintf(" AND country = $%d", len(args))
	}
	if f.City != "" {
		args = append(args, f.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if f.VipOnly {
		query += " AND is_vip = TRUE"
	}
	query += " ORDER BY is_vip DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ads: %w", err)
	}
	defer rows.Close()

	ads := []*domain.Ad{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}
	return ads, nil
}

// Update persists the mutable listing fields.
func (r *AdRepository) Update(ctx context.Context, ad *domain.Ad) error {
	query := `
		UPDATE ads SET company_name = $1, description = $2, category = $3,
			country = $4, city = $5, image = $6, logo = $7, phone = $8,
			whatsapp = $9, website = $10, email = $11
		WHERE id = $12
	`
	_, err := r.db.Exec(ctx, query,
		ad.CompanyName, ad.Description, ad.Category, ad.Country, ad.City,
		ad.Image, ad.Logo, ad.Phone, ad.Whatsapp, ad.Website, ad.Email, ad.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ad: %w", err)
	}
	return nil
}

// SetVip updates the VIP flag and expiry of a listing.
func (r *AdRepository) SetVip(ctx context.Context, id string, isVip bool, expiresAt *time.Time) error {
	query := `UPDATE ads SET is_vip = $1, vip_expires_at = $2 WHERE id = $3`
	_, err := r.db.Exec(ctx, query, isVip, expiresAt, id)
	if err != nil {
		return fmt.Errorf("failed to update ad vip state: %w", err)
	}
	return nil
}

// Delete removes a listing.
func (r *AdRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}
	return nil
}

func scanAd(row pgx.Row) (*domain.Ad, error) {
	var ad domain.Ad
	err := row.Scan(
		&ad.ID, &ad.CompanyName, &ad.Description, &ad.Category, &ad.Country, &ad.City,
		&ad.Image, &ad.Logo, &ad.Phone, &ad.Whatsapp, &ad.Website, &ad.Email, &ad.OwnerEmail,
		&ad.IsVip, &ad.VipExpiresAt, &ad.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan ad: %w", err)
	}
	return &ad, nil
}
