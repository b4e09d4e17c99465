package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adwell/backend/internal/domain"
	"github.com/adwell/backend/pkg/payment"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// SessionStore is the persistence contract for hosted-payment sessions.
type SessionStore interface {
	Create(ctx context.Context, s *domain.CheckoutSession) error
	FindByID(ctx context.Context, id string) (*domain.CheckoutSession, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// CheckoutService orchestrates plan checkout. Without provider credentials
// it simulates payment and activates VIP immediately; with credentials it
// creates a hosted session and defers activation to the verified webhook.
type CheckoutService struct {
	pricing   *PricingService
	ads       *AdService
	sessions  SessionStore
	gateway   payment.Gateway
	siteURL   string
	simulated bool
	validate  *validator.Validate
	now       func() time.Time
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	pricing *PricingService,
	ads *AdService,
	sessions SessionStore,
	gateway payment.Gateway,
	siteURL string,
	simulated bool,
) *CheckoutService {
	return &CheckoutService{
		pricing:   pricing,
		ads:       ads,
		sessions:  sessions,
		gateway:   gateway,
		siteURL:   siteURL,
		simulated: simulated,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// CreateCheckout resolves the price and either simulates payment or creates
// a hosted session, returning the redirect URL.
func (s *CheckoutService) CreateCheckout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(formatValidationErrors(err))
	}

	plan := req.Plan
	if plan == "" {
		plan = domain.PlanVip
	}

	quote, err := s.pricing.Quote(ctx, plan, req.CouponCode)
	if err != nil {
		return nil, err
	}

	successURL, cancelURL := s.redirectURLs(req.AdID)

	if s.simulated {
		if req.AdID != "" {
			if _, err := s.ads.SetVip(ctx, req.AdID, plan == domain.PlanVip); err != nil {
				return nil, err
			}
		}
		log.Info().Str("adId", req.AdID).Str("plan", plan).
			Float64("amount", quote.FinalAmount).Msg("simulated checkout")
		return &domain.CheckoutResponse{
			OK:        true,
			URL:       successURL,
			Amount:    quote.FinalAmount,
			Simulated: true,
		}, nil
	}

	session := &domain.CheckoutSession{
		ID:          domain.NewID(),
		AdID:        req.AdID,
		Plan:        plan,
		AmountCents: domain.ToCents(quote.FinalAmount),
		Status:      domain.SessionPending,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, domain.ErrInternal("failed to save checkout session", err)
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, payment.SessionParams{
		OrderID:     session.ID,
		ProductName: productName(plan),
		AmountCents: session.AmountCents,
		Currency:    "usd",
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
	})
	if err != nil {
		return nil, domain.ErrExternal("failed to create payment session", err)
	}

	log.Info().Str("orderId", session.ID).Str("adId", req.AdID).
		Int64("amountCents", session.AmountCents).Msg("checkout session created")
	return &domain.CheckoutResponse{OK: true, URL: url}, nil
}

// HandleWebhook processes a payment notification. The signature is verified
// before any state is touched; unknown or already-resolved sessions are
// acknowledged without effect so provider retries stay idempotent.
func (s *CheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if !s.gateway.VerifySignature(payload, signature) {
		return domain.ErrUnauthorized("invalid webhook signature")
	}

	var event domain.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return domain.ErrBadRequest("invalid webhook payload")
	}
	if event.OrderID == "" {
		return domain.ErrBadRequest("missing order id")
	}

	session, err := s.sessions.FindByID(ctx, event.OrderID)
	if err != nil {
		return domain.ErrInternal("failed to load checkout session", err)
	}
	if session == nil {
		log.Warn().Str("orderId", event.OrderID).Msg("webhook for unknown session")
		return nil
	}
	if session.Status != domain.SessionPending {
		return nil
	}

	switch event.Status {
	case payment.StatusSuccess:
		if err := s.sessions.UpdateStatus(ctx, session.ID, domain.SessionConfirmed); err != nil {
			return domain.ErrInternal("failed to confirm session", err)
		}
		if session.AdID != "" {
			if _, err := s.ads.SetVip(ctx, session.AdID, session.Plan == domain.PlanVip); err != nil {
				return err
			}
		}
		log.Info().Str("orderId", session.ID).Str("adId", session.AdID).Msg("payment confirmed")
	case payment.StatusCanceled:
		if err := s.sessions.UpdateStatus(ctx, session.ID, domain.SessionAbandoned); err != nil {
			return domain.ErrInternal("failed to abandon session", err)
		}
	default:
		return domain.ErrBadRequest(fmt.Sprintf("unknown payment status %q", event.Status))
	}
	return nil
}

func (s *CheckoutService) redirectURLs(adID string) (successURL, cancelURL string) {
	if adID != "" {
		base := fmt.Sprintf("%s/ad/%s/manage", s.siteURL, adID)
		return base + "?checkout=success", base + "?checkout=cancel"
	}
	return s.siteURL + "/?checkout=success", s.siteURL + "/?checkout=cancel"
}

func productName(plan string) string {
	if plan == domain.PlanStandard {
		return "AdWell Standard"
	}
	return "AdWell VIP"
}
