package service

import (
	"context"
	"testing"

	"github.com/adwell/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponService_CreateClampsPercent(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    int
	}{
		{"in range", 30, 30},
		{"above range", 150, 100},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCouponService(newFakeCouponStore())

			coupon, err := svc.Create(context.Background(), &domain.CreateCouponRequest{
				Code:    "CODE",
				Percent: tt.percent,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, coupon.Percent)
			assert.True(t, coupon.Active)
		})
	}
}

func TestCouponService_CreateLastWriteWins(t *testing.T) {
	svc := NewCouponService(newFakeCouponStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateCouponRequest{Code: "DEAL", Percent: 10})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &domain.CreateCouponRequest{Code: "DEAL", Percent: 25})
	require.NoError(t, err)

	coupon, err := svc.FindActive(ctx, "DEAL")
	require.NoError(t, err)
	require.NotNil(t, coupon)
	assert.Equal(t, 25, coupon.Percent)
}

func TestCouponService_SetActive(t *testing.T) {
	svc := NewCouponService(newFakeCouponStore(&domain.Coupon{Code: "DEAL", Percent: 10, Active: true}))
	ctx := context.Background()

	coupon, err := svc.SetActive(ctx, "DEAL", false)
	require.NoError(t, err)
	assert.False(t, coupon.Active)

	found, err := svc.FindActive(ctx, "DEAL")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCouponService_SetActiveNotFound(t *testing.T) {
	svc := NewCouponService(newFakeCouponStore())

	_, err := svc.SetActive(context.Background(), "MISSING", true)
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestCouponService_FindActive(t *testing.T) {
	svc := NewCouponService(newFakeCouponStore(
		&domain.Coupon{Code: "ON", Percent: 10, Active: true},
		&domain.Coupon{Code: "OFF", Percent: 10, Active: false},
	))
	ctx := context.Background()

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"empty code", "", false},
		{"unknown code", "NOPE", false},
		{"inactive coupon", "OFF", false},
		{"case mismatch", "on", false},
		{"active coupon", "ON", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupon, err := svc.FindActive(ctx, tt.code)
			require.NoError(t, err)
			if tt.want {
				require.NotNil(t, coupon)
				assert.Equal(t, tt.code, coupon.Code)
			} else {
				assert.Nil(t, coupon)
			}
		})
	}
}
