package domain

import "time"

// Checkout session states. A simulated checkout never creates a session;
// it activates the plan immediately.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionAbandoned = "abandoned"
)

// CheckoutSession records a hosted-payment session awaiting confirmation.
// The webhook resolves it to confirmed or abandoned.
type CheckoutSession struct {
	ID          string    `json:"id"` // order id passed to the provider
	AdID        string    `json:"adId"`
	Plan        string    `json:"plan"`
	AmountCents int64     `json:"amountCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CheckoutRequest is the input for creating a checkout.
type CheckoutRequest struct {
	Plan       string `json:"plan" validate:"omitempty,oneof=vip standard"`
	CouponCode string `json:"couponCode"`
	AdID       string `json:"adId"`
}

// CheckoutResponse is returned to the client to redirect into payment.
type CheckoutResponse struct {
	OK        bool    `json:"ok"`
	URL       string  `json:"url,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Simulated bool    `json:"simulated,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// WebhookEvent is the parsed payment notification delivered by the
// provider after a hosted session completes or is canceled.
type WebhookEvent struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"` // payment.StatusSuccess / StatusCanceled
}
