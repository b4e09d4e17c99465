package service

import (
	"context"

	"github.com/adwell/backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

// CategoryStore is the persistence contract the category service depends on.
type CategoryStore interface {
	Create(ctx context.Context, c *domain.Category) error
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListAll(ctx context.Context) ([]*domain.Category, error)
	UpdateColor(ctx context.Context, slug, color string) (bool, error)
}

// defaultCategoryColor matches the admin form's preselected card color.
const defaultCategoryColor = "#1e88e5"

// CategoryService handles directory sections.
type CategoryService struct {
	store    CategoryStore
	validate *validator.Validate
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store, validate: validator.New()}
}

// Create adds a category (admin only). Slugs are unique.
func (s *CategoryService) Create(ctx context.Context, req *domain.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(formatValidationErrors(err))
	}

	existing, err := s.store.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, domain.ErrInternal("failed to check category", err)
	}
	if existing != nil {
		return nil, domain.ErrBadRequest("category slug already exists")
	}

	cat := &domain.Category{
		Slug:   req.Slug,
		NameAr: req.NameAr,
		NameEn: req.NameEn,
		Image:  req.Image,
		Color:  req.Color,
	}
	if cat.Image == "" {
		cat.Image = domain.PlaceholderImage
	}
	if cat.Color == "" {
		cat.Color = defaultCategoryColor
	}

	if err := s.store.Create(ctx, cat); err != nil {
		return nil, domain.ErrInternal("failed to save category", err)
	}
	return cat, nil
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	cats, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list categories", err)
	}
	return cats, nil
}

// UpdateColor changes a category's card color (admin only).
func (s *CategoryService) UpdateColor(ctx context.Context, slug string, req *domain.UpdateCategoryColorRequest) (*domain.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(formatValidationErrors(err))
	}

	found, err := s.store.UpdateColor(ctx, slug, req.Color)
	if err != nil {
		return nil, domain.ErrInternal("failed to update category", err)
	}
	if !found {
		return nil, domain.ErrNotFound("category not found")
	}
	return s.store.FindBySlug(ctx, slug)
}
