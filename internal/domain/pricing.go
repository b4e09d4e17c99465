package domain

import "math"

// Plan tiers for listings.
const (
	PlanVip      = "vip"
	PlanStandard = "standard"
)

// Monthly base prices in USD.
const (
	VipMonthlyUSD      = 29.99
	StandardMonthlyUSD = 9.99
)

// BasePrice returns the monthly price for a plan tier. Unknown tiers price
// as VIP, matching how the public price endpoint defaults.
func BasePrice(plan string) float64 {
	if plan == PlanStandard {
		return StandardMonthlyUSD
	}
	return VipMonthlyUSD
}

// PriceQuote is the resolved charge for a plan with an optional coupon
// applied. Quotes are computed on demand and never stored.
type PriceQuote struct {
	Plan        string  `json:"plan"`
	BaseAmount  float64 `json:"baseAmount"`
	Coupon      *Coupon `json:"coupon,omitempty"`
	FinalAmount float64 `json:"amount"`
}

// Round2 rounds a monetary amount to two decimal places. This is the single
// rounding rule for quoted amounts; minor-unit conversion happens only at
// the payment provider boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToCents converts a two-decimal dollar amount to integer cents.
func ToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
