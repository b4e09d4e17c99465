package service

import (
	"context"
	"time"

	"github.com/adwell/backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// CouponStore is the persistence contract the coupon registry depends on.
type CouponStore interface {
	Upsert(ctx context.Context, c *domain.Coupon) error
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
	SetActive(ctx context.Context, code string, active bool) (bool, error)
	ListAll(ctx context.Context) ([]*domain.Coupon, error)
}

// CouponService is the admin-managed discount code registry.
type CouponService struct {
	store    CouponStore
	validate *validator.Validate
}

// NewCouponService creates a new CouponService.
func NewCouponService(store CouponStore) *CouponService {
	return &CouponService{store: store, validate: validator.New()}
}

// Create stores a coupon with active = true. The percent is clamped to
// [0, 100] and an existing code is overwritten (last write wins).
func (s *CouponService) Create(ctx context.Context, req *domain.CreateCouponRequest) (*domain.Coupon, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(formatValidationErrors(err))
	}

	coupon := &domain.Coupon{
		Code:      req.Code,
		Percent:   domain.ClampPercent(req.Percent),
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.store.Upsert(ctx, coupon); err != nil {
		return nil, domain.ErrInternal("failed to save coupon", err)
	}

	log.Info().Str("code", coupon.Code).Int("percent", coupon.Percent).Msg("coupon created")
	return coupon, nil
}

// SetActive flips the active flag of a coupon.
func (s *CouponService) SetActive(ctx context.Context, code string, active bool) (*domain.Coupon, error) {
	found, err := s.store.SetActive(ctx, code, active)
	if err != nil {
		return nil, domain.ErrInternal("failed to toggle coupon", err)
	}
	if !found {
		return nil, domain.ErrNotFound("coupon not found")
	}

	coupon, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, domain.ErrInternal("failed to load coupon", err)
	}
	return coupon, nil
}

// FindActive resolves a code to a coupon only when the code is non-empty,
// known, and active. A missing or inactive coupon is not an error; it simply
// means no discount.
func (s *CouponService) FindActive(ctx context.Context, code string) (*domain.Coupon, error) {
	if code == "" {
		return nil, nil
	}
	coupon, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if coupon == nil || !coupon.Active {
		return nil, nil
	}
	return coupon, nil
}

// List returns all coupons for the admin panel.
func (s *CouponService) List(ctx context.Context) ([]*domain.Coupon, error) {
	coupons, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list coupons", err)
	}
	return coupons, nil
}
