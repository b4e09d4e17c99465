package service

import (
	"context"

	"github.com/adwell/backend/internal/domain"
)

// PricingService resolves the final charge for a plan tier with an optional
// coupon. It depends on nothing but the coupon registry.
type PricingService struct {
	coupons *CouponService
}

// NewPricingService creates a new PricingService.
func NewPricingService(coupons *CouponService) *PricingService {
	return &PricingService{coupons: coupons}
}

// Quote computes the discounted amount for a plan. All amounts are rounded
// to two decimals; an unknown or inactive coupon code resolves to the base
// price rather than an error.
func (s *PricingService) Quote(ctx context.Context, plan, couponCode string) (*domain.PriceQuote, error) {
	base := domain.BasePrice(plan)

	coupon, err := s.coupons.FindActive(ctx, couponCode)
	if err != nil {
		return nil, domain.ErrInternal("failed to resolve coupon", err)
	}

	amount := base
	if coupon != nil {
		amount = domain.Round2(base * (1 - float64(coupon.Percent)/100))
		if amount < 0 {
			amount = 0
		}
	}

	return &domain.PriceQuote{
		Plan:        plan,
		BaseAmount:  base,
		Coupon:      coupon,
		FinalAmount: amount,
	}, nil
}
