package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPriceTestHandler() *PriceHandler {
	coupons := &memCoupons{coupons: map[string]*domain.Coupon{
		"SAVE50": {Code: "SAVE50", Percent: 50, Active: true},
		"OLD":    {Code: "OLD", Percent: 50, Active: false},
	}}
	return NewPriceHandler(service.NewPricingService(service.NewCouponService(coupons)))
}

func TestPriceHandler_Quote(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantAmount float64
	}{
		{"default plan is vip", "", 29.99},
		{"standard plan", "?plan=standard", 9.99},
		{"vip with coupon", "?plan=vip&code=SAVE50", 14.99},
		{"inactive coupon ignored", "?plan=vip&code=OLD", 29.99},
		{"unknown coupon ignored", "?plan=vip&code=NOPE", 29.99},
	}

	h := newPriceTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/price"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.Quote(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				OK     bool    `json:"ok"`
				Amount float64 `json:"amount"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.OK)
			assert.InDelta(t, tt.wantAmount, resp.Amount, 0.0001)
		})
	}
}

func TestPriceHandler_Plans(t *testing.T) {
	h := newPriceTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
	rec := httptest.NewRecorder()
	h.Plans(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var plans []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "vip", plans[0]["id"])
}
