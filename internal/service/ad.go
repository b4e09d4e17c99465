package service

import (
	"context"
	"time"

	"github.com/adwell/backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// vipPeriod is how long one VIP activation or renewal lasts.
const vipPeriod = 30 * 24 * time.Hour

// AdStore is the persistence contract the listing service depends on.
type AdStore interface {
	Create(ctx context.Context, ad *domain.Ad) error
	FindByID(ctx context.Context, id string) (*domain.Ad, error)
	List(ctx context.Context, f domain.AdFilter) ([]*domain.Ad, error)
	Update(ctx context.Context, ad *domain.Ad) error
	SetVip(ctx context.Context, id string, isVip bool, expiresAt *time.Time) error
	Delete(ctx context.Context, id string) error
}

// AdService handles listing CRUD and VIP state transitions.
type AdService struct {
	store    AdStore
	validate *validator.Validate
	now      func() time.Time
}

// NewAdService creates a new AdService.
func NewAdService(store AdStore) *AdService {
	return &AdService{store: store, validate: validator.New(), now: time.Now}
}

// Create publishes a listing owned by the authenticated advertiser.
func (s *AdService) Create(ctx context.Context, ownerEmail string, req *domain.CreateAdRequest) (*domain.Ad, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(formatValidationErrors(err))
	}

	image := req.Image
	if image == "" {
		image = domain.PlaceholderImage
	}
	logo := req.Logo
	if logo == "" {
		logo = domain.PlaceholderLogo
	}

	ad := &domain.Ad{
		ID:          domain.NewID(),
		CompanyName: req.CompanyName,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Image:       image,
		Logo:        logo,
		Phone:       req.Phone,
		Whatsapp:    req.Whatsapp,
		Website:     req.Website,
		Email:       req.Email,
		OwnerEmail:  ownerEmail,
		IsVip:       false,
		CreatedAt:   s.now(),
	}

	if err := s.store.Create(ctx, ad); err != nil {
		return nil, domain.ErrInternal("failed to save ad", err)
	}
	return ad, nil
}

// GetByID returns a single listing.
func (s *AdService) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	ad, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to load ad", err)
	}
	if ad == nil {
		return nil, domain.ErrNotFound("ad not found")
	}
	return ad, nil
}

// List returns listings matching the filter, VIP first.
func (s *AdService) List(ctx context.Context, f domain.AdFilter) ([]*domain.Ad, error) {
	ads, err := s.store.List(ctx, f)
	if err != nil {
		return nil, domain.ErrInternal("failed to list ads", err)
	}
	return ads, nil
}

// Update edits a listing. Only the owner or an admin may mutate it; the
// owner claim is checked against the authenticated identity, never against
// a client-supplied value.
func (s *AdService) Update(ctx context.Context, id, actorEmail string, isAdmin bool, req *domain.UpdateAdRequest) (*domain.Ad, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(formatValidationErrors(err))
	}

	ad, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && ad.OwnerEmail != actorEmail {
		return nil, domain.ErrForbidden("not the owner of this ad")
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&ad.CompanyName, req.CompanyName)
	applyString(&ad.Description, req.Description)
	applyString(&ad.Category, req.Category)
	applyString(&ad.Country, req.Country)
	applyString(&ad.City, req.City)
	applyString(&ad.Image, req.Image)
	applyString(&ad.Logo, req.Logo)
	applyString(&ad.Phone, req.Phone)
	applyString(&ad.Whatsapp, req.Whatsapp)
	applyString(&ad.Website, req.Website)
	applyString(&ad.Email, req.Email)

	if err := s.store.Update(ctx, ad); err != nil {
		return nil, domain.ErrInternal("failed to update ad", err)
	}
	return ad, nil
}

// Delete removes a listing (owner or admin).
func (s *AdService) Delete(ctx context.Context, id, actorEmail string, isAdmin bool) error {
	ad, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && ad.OwnerEmail != actorEmail {
		return domain.ErrForbidden("not the owner of this ad")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete ad", err)
	}
	return nil
}

// SetVip mutates a listing's VIP state and returns the updated record.
// Activation is idempotent in the flag; a repeated activation extends the
// expiry from max(now, current expiry), so renewal is observable.
func (s *AdService) SetVip(ctx context.Context, id string, isVip bool) (*domain.Ad, error) {
	ad, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if isVip {
		from := s.now()
		if ad.VipExpiresAt != nil && ad.VipExpiresAt.After(from) {
			from = *ad.VipExpiresAt
		}
		t := from.Add(vipPeriod)
		expiresAt = &t
	}

	if err := s.store.SetVip(ctx, id, isVip, expiresAt); err != nil {
		return nil, domain.ErrInternal("failed to update vip state", err)
	}

	ad.IsVip = isVip
	ad.VipExpiresAt = expiresAt
	log.Info().Str("adId", id).Bool("vip", isVip).Msg("vip state updated")
	return ad, nil
}
