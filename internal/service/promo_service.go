package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/ekivenapictured-ship-it/venaok/internal/repository"
)

var (
	ErrPromoInactive  = errors.New("promo code inactive")
	ErrPromoExpired   = errors.New("promo code expired")
	ErrPromoExhausted = errors.New("promo code usage limit reached")
)

type PromoService struct {
	Promos repository.PromoCodeRepository
}

// CheckPromo verifies a code is currently redeemable.
func CheckPromo(p domain.PromoCode, now time.Time) error {
	if !p.IsActive {
		return ErrPromoInactive
	}
	if p.ExpiryDate != nil && now.After(*p.ExpiryDate) {
		return ErrPromoExpired
	}
	if p.MaxUsage != nil && p.UsageCount >= *p.MaxUsage {
		return ErrPromoExhausted
	}
	return nil
}

// DiscountAmount computes the discount in rupiah for a given base amount.
func DiscountAmount(p domain.PromoCode, base int64) int64 {
	var d int64
	switch p.DiscountType {
	case domain.DiscountPercentage:
		d = base * p.DiscountValue / 100
	case domain.DiscountFixed:
		d = p.DiscountValue
	}
	if d > base {
		d = base
	}
	if d < 0 {
		d = 0
	}
	return d
}

// Validate looks up a code and checks redeemability without consuming usage.
func (s PromoService) Validate(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo, err := s.Promos.GetByCode(ctx, strings.TrimSpace(strings.ToUpper(code)))
	if err != nil {
		return nil, err
	}
	if err := CheckPromo(*promo, time.Now()); err != nil {
		return nil, err
	}
	return promo, nil
}

// Redeem validates a code and records one usage.
func (s PromoService) Redeem(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo, err := s.Validate(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.Promos.IncrementUsage(ctx, promo.ID)
}
