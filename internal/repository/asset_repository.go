package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type AssetRepository struct {
	DB *db.Postgres
}

type AssetInput struct {
	Name          string
	Category      string
	PurchaseDate  time.Time
	PurchasePrice int64
	SerialNumber  *string
	Status        domain.AssetStatus
	Notes         string
}

const assetColumns = `id, name, category, purchase_date, purchase_price, serial_number, status, notes, created_at, updated_at`

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(&a.ID, &a.Name, &a.Category, &a.PurchaseDate, &a.PurchasePrice,
		&a.SerialNumber, (*string)(&a.Status), &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r AssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+assetColumns+`
		FROM assets
		WHERE deleted_at IS NULL
		ORDER BY purchase_date DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r AssetRepository) Create(ctx context.Context, in AssetInput) (*domain.Asset, error) {
	return scanAsset(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO assets (name, category, purchase_date, purchase_price, serial_number, status, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7, now(), now())
		RETURNING `+assetColumns+`
	`, in.Name, in.Category, in.PurchaseDate, in.PurchasePrice, in.SerialNumber, string(in.Status), in.Notes))
}

func (r AssetRepository) Update(ctx context.Context, id int64, in AssetInput) (*domain.Asset, error) {
	return scanAsset(r.DB.Pool.QueryRow(ctx, `
		UPDATE assets
		SET name=$2, category=$3, purchase_date=$4, purchase_price=$5, serial_number=$6, status=$7, notes=$8, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+assetColumns+`
	`, id, in.Name, in.Category, in.PurchaseDate, in.PurchasePrice, in.SerialNumber, string(in.Status), in.Notes))
}

func (r AssetRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE assets SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
