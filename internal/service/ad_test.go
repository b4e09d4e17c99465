package service

import (
	"context"
	"testing"
	"time"

	"github.com/adwell/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAd(id string) *domain.Ad {
	return &domain.Ad{
		ID:          id,
		CompanyName: "Falcon Trading",
		Description: "Import and export",
		Category:    "trading",
		Country:     "AE",
		City:        "Dubai",
		Phone:       "+971500000000",
		OwnerEmail:  "owner@example.com",
		CreatedAt:   time.Now(),
	}
}

func TestAdService_SetVipIdempotent(t *testing.T) {
	store := newFakeAdStore(testAd("A1"))
	svc := NewAdService(store)
	ctx := context.Background()

	ad, err := svc.SetVip(ctx, "A1", true)
	require.NoError(t, err)
	assert.True(t, ad.IsVip)

	ad, err = svc.SetVip(ctx, "A1", true)
	require.NoError(t, err)
	assert.True(t, ad.IsVip)

	stored, err := store.FindByID(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, stored.IsVip)
}

func TestAdService_SetVipNotFound(t *testing.T) {
	store := newFakeAdStore(testAd("A1"))
	svc := NewAdService(store)

	_, err := svc.SetVip(context.Background(), "unknown", true)
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)

	stored, err := store.FindByID(context.Background(), "A1")
	require.NoError(t, err)
	assert.False(t, stored.IsVip)
}

func TestAdService_SetVipRenewalExtendsExpiry(t *testing.T) {
	store := newFakeAdStore(testAd("A1"))
	svc := NewAdService(store)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	ad, err := svc.SetVip(ctx, "A1", true)
	require.NoError(t, err)
	require.NotNil(t, ad.VipExpiresAt)
	first := *ad.VipExpiresAt
	assert.Equal(t, now.Add(vipPeriod), first)

	// Renewal before expiry extends from the current expiry, not from now.
	ad, err = svc.SetVip(ctx, "A1", true)
	require.NoError(t, err)
	require.NotNil(t, ad.VipExpiresAt)
	assert.Equal(t, first.Add(vipPeriod), *ad.VipExpiresAt)

	// Activation after expiry starts from now again.
	svc.now = func() time.Time { return first.Add(3 * vipPeriod) }
	ad, err = svc.SetVip(ctx, "A1", true)
	require.NoError(t, err)
	assert.Equal(t, first.Add(4*vipPeriod), *ad.VipExpiresAt)
}

func TestAdService_SetVipOffClearsExpiry(t *testing.T) {
	store := newFakeAdStore(testAd("A1"))
	svc := NewAdService(store)
	ctx := context.Background()

	_, err := svc.SetVip(ctx, "A1", true)
	require.NoError(t, err)

	ad, err := svc.SetVip(ctx, "A1", false)
	require.NoError(t, err)
	assert.False(t, ad.IsVip)
	assert.Nil(t, ad.VipExpiresAt)
}

func TestAdService_CreateAppliesPlaceholders(t *testing.T) {
	svc := NewAdService(newFakeAdStore())

	ad, err := svc.Create(context.Background(), "owner@example.com", &domain.CreateAdRequest{
		CompanyName: "Falcon Trading",
		Description: "Import and export",
		Category:    "trading",
		Country:     "AE",
		City:        "Dubai",
		Phone:       "+971500000000",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PlaceholderImage, ad.Image)
	assert.Equal(t, domain.PlaceholderLogo, ad.Logo)
	assert.Equal(t, "owner@example.com", ad.OwnerEmail)
	assert.False(t, ad.IsVip)
	assert.NotEmpty(t, ad.ID)
}

func TestAdService_CreateValidation(t *testing.T) {
	svc := NewAdService(newFakeAdStore())

	_, err := svc.Create(context.Background(), "owner@example.com", &domain.CreateAdRequest{
		Description: "missing company name",
	})
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
}

func TestAdService_UpdateOwnership(t *testing.T) {
	name := "Renamed Co"

	tests := []struct {
		name       string
		actorEmail string
		isAdmin    bool
		wantCode   int
	}{
		{"owner can edit", "owner@example.com", false, 0},
		{"admin can edit", "admin@adwell.local", true, 0},
		{"stranger is forbidden", "other@example.com", false, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAdService(newFakeAdStore(testAd("A1")))

			ad, err := svc.Update(context.Background(), "A1", tt.actorEmail, tt.isAdmin,
				&domain.UpdateAdRequest{CompanyName: &name})
			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, name, ad.CompanyName)
				return
			}
			require.Error(t, err)
			appErr, ok := domain.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestAdService_DeleteOwnership(t *testing.T) {
	store := newFakeAdStore(testAd("A1"))
	svc := NewAdService(store)
	ctx := context.Background()

	err := svc.Delete(ctx, "A1", "other@example.com", false)
	require.Error(t, err)

	err = svc.Delete(ctx, "A1", "owner@example.com", false)
	require.NoError(t, err)

	stored, err := store.FindByID(ctx, "A1")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAdService_ListFilters(t *testing.T) {
	vip := testAd("V1")
	vip.IsVip = true
	vip.Category = "food"
	store := newFakeAdStore(testAd("A1"), vip)
	svc := NewAdService(store)
	ctx := context.Background()

	all, err := svc.List(ctx, domain.AdFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	vips, err := svc.List(ctx, domain.AdFilter{VipOnly: true})
	require.NoError(t, err)
	require.Len(t, vips, 1)
	assert.Equal(t, "V1", vips[0].ID)

	food, err := svc.List(ctx, domain.AdFilter{Category: "food"})
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, "V1", food[0].ID)
}
