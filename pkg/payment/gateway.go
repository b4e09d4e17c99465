package payment

import "context"

// SessionParams describes a hosted checkout session to create.
type SessionParams struct {
	OrderID     string
	ProductName string
	AmountCents int64
	Currency    string
	SuccessURL  string
	CancelURL   string
}

// Gateway is the payment provider boundary. Consumed only as
// "create session -> get URL" plus webhook signature verification.
type Gateway interface {
	// CreateCheckoutSession creates a hosted session and returns its URL.
	CreateCheckoutSession(ctx context.Context, p SessionParams) (string, error)
	// VerifySignature checks the webhook payload signature.
	VerifySignature(payload []byte, signature string) bool
}

// Webhook event statuses.
const (
	StatusSuccess  = "success"
	StatusCanceled = "canceled"
)

// MockGateway is a dummy implementation for tests and local development.
type MockGateway struct {
	// Err, when set, is returned from CreateCheckoutSession.
	Err error
	// RejectWebhooks makes VerifySignature fail.
	RejectWebhooks bool
	// Sessions records the params of every created session.
	Sessions []SessionParams
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) CreateCheckoutSession(_ context.Context, p SessionParams) (string, error) {
	if g.Err != nil {
		return "", g.Err
	}
	g.Sessions = append(g.Sessions, p)
	return "https://pay.example.com/session/" + p.OrderID, nil
}

func (g *MockGateway) VerifySignature(payload []byte, signature string) bool {
	return !g.RejectWebhooks
}
