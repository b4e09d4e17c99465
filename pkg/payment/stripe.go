package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// StripeGateway creates hosted Checkout sessions over the Stripe REST API.
type StripeGateway struct {
	secretKey     string
	webhookSecret string
	client        *http.Client
	baseURL       string
}

// NewStripeGateway builds a gateway with a bounded request timeout so a slow
// provider cannot stall a checkout request indefinitely.
func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	return &StripeGateway{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		client:        &http.Client{Timeout: 15 * time.Second},
		baseURL:       stripeAPIBase,
	}
}

// CreateCheckoutSession requests a hosted subscription checkout session and
// returns its redirect URL.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p SessionParams) (string, error) {
	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("client_reference_id", p.OrderID)
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][product_data][name]", p.ProductName)
	form.Set("line_items[0][price_data][recurring][interval]", "month")
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.AmountCents, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read session response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("stripe: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}

	var session struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("stripe: session created without redirect URL")
	}
	return session.URL, nil
}

// VerifySignature checks an HMAC-SHA256 hex signature of the webhook payload
// against the configured webhook secret.
func (g *StripeGateway) VerifySignature(payload []byte, signature string) bool {
	if g.webhookSecret == "" || signature == "" {
		return false
	}
	sig := strings.TrimPrefix(signature, "sha256=")
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(sig), []byte(expected))
}
