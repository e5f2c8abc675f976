package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PromoCodeRepository struct {
	DB *db.Postgres
}

type PromoCodeInput struct {
	Code          string
	DiscountType  domain.DiscountType
	DiscountValue int64
	IsActive      bool
	MaxUsage      *int
	ExpiryDate    *time.Time
}

const promoColumns = `id, code, discount_type, discount_value, is_active, usage_count, max_usage, expiry_date, created_at, updated_at`

func scanPromoCode(row pgx.Row) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := row.Scan(&p.ID, &p.Code, (*string)(&p.DiscountType), &p.DiscountValue, &p.IsActive,
		&p.UsageCount, &p.MaxUsage, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r PromoCodeRepository) List(ctx context.Context, limit int) ([]domain.PromoCode, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+promoColumns+`
		FROM promo_codes
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.PromoCode
	for rows.Next() {
		p, err := scanPromoCode(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r PromoCodeRepository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	return scanPromoCode(r.DB.Pool.QueryRow(ctx, `
		SELECT `+promoColumns+` FROM promo_codes WHERE code=$1 AND deleted_at IS NULL
	`, code))
}

func (r PromoCodeRepository) Create(ctx context.Context, in PromoCodeInput) (*domain.PromoCode, error) {
	return scanPromoCode(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO promo_codes (code, discount_type, discount_value, is_active, usage_count, max_usage, expiry_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,0,$5,$6, now(), now())
		RETURNING `+promoColumns+`
	`, in.Code, string(in.DiscountType), in.DiscountValue, in.IsActive, in.MaxUsage, in.ExpiryDate))
}

func (r PromoCodeRepository) Update(ctx context.Context, id int64, in PromoCodeInput) (*domain.PromoCode, error) {
	return scanPromoCode(r.DB.Pool.QueryRow(ctx, `
		UPDATE promo_codes
		SET code=$2, discount_type=$3, discount_value=$4, is_active=$5, max_usage=$6, expiry_date=$7, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+promoColumns+`
	`, id, in.Code, string(in.DiscountType), in.DiscountValue, in.IsActive, in.MaxUsage, in.ExpiryDate))
}

// SetActive flips the activation toggle.
func (r PromoCodeRepository) SetActive(ctx context.Context, id int64, active bool) (*domain.PromoCode, error) {
	return scanPromoCode(r.DB.Pool.QueryRow(ctx, `
		UPDATE promo_codes SET is_active=$2, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+promoColumns+`
	`, id, active))
}

// IncrementUsage records one redemption.
func (r PromoCodeRepository) IncrementUsage(ctx context.Context, id int64) (*domain.PromoCode, error) {
	return scanPromoCode(r.DB.Pool.QueryRow(ctx, `
		UPDATE promo_codes SET usage_count=usage_count+1, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+promoColumns+`
	`, id))
}

func (r PromoCodeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE promo_codes SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
