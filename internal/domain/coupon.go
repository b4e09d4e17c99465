package domain

import "time"

// Coupon is a percent discount code managed by the admin. Codes are
// case-sensitive and never deleted; only the active flag is toggled.
type Coupon struct {
	Code      string    `json:"code"`
	Percent   int       `json:"percent"` // 0-100
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCouponRequest is the validated admin input for creating a coupon.
type CreateCouponRequest struct {
	Code    string `json:"code" validate:"required,min=1,max=60"`
	Percent int    `json:"percent" validate:"gte=0"`
}

// SetCouponActiveRequest toggles a coupon's active flag.
type SetCouponActiveRequest struct {
	Active bool `json:"active"`
}

// ClampPercent bounds a discount percent to [0, 100].
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
