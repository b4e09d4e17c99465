package service

import (
	"context"
	"sync"
	"time"

	"github.com/adwell/backend/internal/domain"
)

// In-memory store fakes guarded by a mutex, mirroring the repository
// contracts without a database.

type fakeAdStore struct {
	mu  sync.Mutex
	ads map[string]*domain.Ad
}

func newFakeAdStore(ads ...*domain.Ad) *fakeAdStore {
	s := &fakeAdStore{ads: make(map[string]*domain.Ad)}
	for _, ad := range ads {
		copied := *ad
		s.ads[ad.ID] = &copied
	}
	return s
}

func (s *fakeAdStore) Create(_ context.Context, ad *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *ad
	s.ads[ad.ID] = &copied
	return nil
}

func (s *fakeAdStore) FindByID(_ context.Context, id string) (*domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad, ok := s.ads[id]
	if !ok {
		return nil, nil
	}
	copied := *ad
	return &copied, nil
}

func (s *fakeAdStore) List(_ context.Context, f domain.AdFilter) ([]*domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Ad{}
	for _, ad := range s.ads {
		if f.Category != "" && ad.Category != f.Category {
			continue
		}
		if f.Country != "" && ad.Country != f.Country {
			continue
		}
		if f.City != "" && ad.City != f.City {
			continue
		}
		if f.VipOnly && !ad.IsVip {
			continue
		}
		copied := *ad
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeAdStore) Update(_ context.Context, ad *domain.Ad) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[ad.ID]; ok {
		copied := *ad
		s.ads[ad.ID] = &copied
	}
	return nil
}

func (s *fakeAdStore) SetVip(_ context.Context, id string, isVip bool, expiresAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ad, ok := s.ads[id]; ok {
		ad.IsVip = isVip
		ad.VipExpiresAt = expiresAt
	}
	return nil
}

func (s *fakeAdStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ads, id)
	return nil
}

type fakeCouponStore struct {
	mu      sync.Mutex
	coupons map[string]*domain.Coupon
}

func newFakeCouponStore(coupons ...*domain.Coupon) *fakeCouponStore {
	s := &fakeCouponStore{coupons: make(map[string]*domain.Coupon)}
	for _, c := range coupons {
		copied := *c
		s.coupons[c.Code] = &copied
	}
	return s
}

func (s *fakeCouponStore) Upsert(_ context.Context, c *domain.Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *c
	s.coupons[c.Code] = &copied
	return nil
}

func (s *fakeCouponStore) FindByCode(_ context.Context, code string) (*domain.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coupons[code]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCouponStore) SetActive(_ context.Context, code string, active bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coupons[code]
	if !ok {
		return false, nil
	}
	c.Active = active
	return true, nil
}

func (s *fakeCouponStore) ListAll(_ context.Context) ([]*domain.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Coupon{}
	for _, c := range s.coupons {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.CheckoutSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*domain.CheckoutSession)}
}

func (s *fakeSessionStore) Create(_ context.Context, cs *domain.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *cs
	s.sessions[cs.ID] = &copied
	return nil
}

func (s *fakeSessionStore) FindByID(_ context.Context, id string) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *cs
	return &copied, nil
}

func (s *fakeSessionStore) UpdateStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cs, ok := s.sessions[id]; ok {
		cs.Status = status
	}
	return nil
}

func (s *fakeSessionStore) only() *domain.CheckoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cs := range s.sessions {
		copied := *cs
		return &copied
	}
	return nil
}
