package service

import (
	"context"
	"testing"
	"time"

	"github.com/adwell/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingService(coupons ...*domain.Coupon) *PricingService {
	return NewPricingService(NewCouponService(newFakeCouponStore(coupons...)))
}

func TestPricingService_Quote(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		coupons    []*domain.Coupon
		plan       string
		code       string
		wantAmount float64
		wantCoupon bool
	}{
		{
			name:       "no coupon code",
			plan:       domain.PlanVip,
			wantAmount: 29.99,
		},
		{
			name:       "no coupon code standard plan",
			plan:       domain.PlanStandard,
			wantAmount: 9.99,
		},
		{
			name:       "unknown code resolves to base price",
			plan:       domain.PlanVip,
			code:       "NOPE",
			wantAmount: 29.99,
		},
		{
			name:       "inactive coupon never discounts",
			coupons:    []*domain.Coupon{{Code: "OFF", Percent: 50, Active: false, CreatedAt: now}},
			plan:       domain.PlanVip,
			code:       "OFF",
			wantAmount: 29.99,
		},
		{
			name:       "active 50 percent coupon",
			coupons:    []*domain.Coupon{{Code: "SAVE50", Percent: 50, Active: true, CreatedAt: now}},
			plan:       domain.PlanVip,
			code:       "SAVE50",
			wantAmount: 14.99,
			wantCoupon: true,
		},
		{
			name:       "active 100 percent coupon floors at zero",
			coupons:    []*domain.Coupon{{Code: "FREE", Percent: 100, Active: true, CreatedAt: now}},
			plan:       domain.PlanVip,
			code:       "FREE",
			wantAmount: 0,
			wantCoupon: true,
		},
		{
			name:       "active zero percent coupon keeps base price",
			coupons:    []*domain.Coupon{{Code: "ZERO", Percent: 0, Active: true, CreatedAt: now}},
			plan:       domain.PlanVip,
			code:       "ZERO",
			wantAmount: 29.99,
			wantCoupon: true,
		},
		{
			name:       "coupon applies to standard plan",
			coupons:    []*domain.Coupon{{Code: "SAVE50", Percent: 50, Active: true, CreatedAt: now}},
			plan:       domain.PlanStandard,
			code:       "SAVE50",
			wantAmount: 5.00,
			wantCoupon: true,
		},
		{
			name:       "unknown plan prices as vip",
			plan:       "platinum",
			wantAmount: 29.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newPricingService(tt.coupons...)

			quote, err := svc.Quote(context.Background(), tt.plan, tt.code)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantAmount, quote.FinalAmount, 0.0001)
			if tt.wantCoupon {
				require.NotNil(t, quote.Coupon)
				assert.Equal(t, tt.code, quote.Coupon.Code)
			} else {
				assert.Nil(t, quote.Coupon)
			}
		})
	}
}

func TestPricingService_QuoteIsTwoDecimal(t *testing.T) {
	// 33% off 29.99 is 20.0933; the quote must carry exactly two decimals.
	svc := newPricingService(&domain.Coupon{Code: "THIRD", Percent: 33, Active: true})

	quote, err := svc.Quote(context.Background(), domain.PlanVip, "THIRD")
	require.NoError(t, err)

	assert.InDelta(t, 20.09, quote.FinalAmount, 0.0001)
	assert.Equal(t, int64(2009), domain.ToCents(quote.FinalAmount))
}
