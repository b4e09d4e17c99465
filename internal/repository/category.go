package repository

import (
	"context"
	"fmt"

	"github.com/adwell/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository handles database operations for categories.
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (slug, name_ar, name_en, image, color)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, c.Slug, c.NameAr, c.NameEn, c.Image, c.Color)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// FindBySlug returns a category by slug.
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `SELECT slug, name_ar, name_en, image, color FROM categories WHERE slug = $1`
	row := r.db.QueryRow(ctx, query, slug)

	var c domain.Category
	err := row.Scan(&c.Slug, &c.NameAr, &c.NameEn, &c.Image, &c.Color)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &c, nil
}

// ListAll returns all categories ordered by slug.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, name_ar, name_en, image, color FROM categories ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Slug, &c.NameAr, &c.NameEn, &c.Image, &c.Color); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, nil
}

// UpdateColor sets a category's card color. Returns false if absent.
func (r *CategoryRepository) UpdateColor(ctx context.Context, slug, color string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE categories SET color = $1 WHERE slug = $2`, color, slug)
	if err != nil {
		return false, fmt.Errorf("failed to update category color: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
