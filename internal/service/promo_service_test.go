package service

import (
	"testing"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
)

func intPtr(v int) *int          { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func TestCheckPromo(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		promo domain.PromoCode
		want  error
	}{
		{"active no limits", domain.PromoCode{IsActive: true}, nil},
		{"inactive", domain.PromoCode{IsActive: false}, ErrPromoInactive},
		{"expired", domain.PromoCode{IsActive: true, ExpiryDate: timePtr(now.Add(-time.Hour))}, ErrPromoExpired},
		{"not yet expired", domain.PromoCode{IsActive: true, ExpiryDate: timePtr(now.Add(time.Hour))}, nil},
		{"exhausted", domain.PromoCode{IsActive: true, UsageCount: 5, MaxUsage: intPtr(5)}, ErrPromoExhausted},
		{"under limit", domain.PromoCode{IsActive: true, UsageCount: 4, MaxUsage: intPtr(5)}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckPromo(tc.promo, now); got != tc.want {
				t.Fatalf("CheckPromo = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	pct := domain.PromoCode{DiscountType: domain.DiscountPercentage, DiscountValue: 10}
	if got := DiscountAmount(pct, 1500000); got != 150000 {
		t.Fatalf("percentage discount = %d, want 150000", got)
	}

	fixed := domain.PromoCode{DiscountType: domain.DiscountFixed, DiscountValue: 200000}
	if got := DiscountAmount(fixed, 1500000); got != 200000 {
		t.Fatalf("fixed discount = %d, want 200000", got)
	}

	// Discount never exceeds the base amount.
	if got := DiscountAmount(fixed, 100000); got != 100000 {
		t.Fatalf("capped discount = %d, want 100000", got)
	}
}
