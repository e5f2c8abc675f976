package repository

import (
	"context"
	"errors"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PackageRepository struct {
	DB *db.Postgres
}

type PackageInput struct {
	Name              string
	Price             int64
	Description       string
	DurationTimeframe string
	Photographers     string
	Videographers     string
}

const packageColumns = `id, name, price, description, duration_timeframe, photographers, videographers, created_at, updated_at`

func scanPackage(row pgx.Row) (*domain.Package, error) {
	var p domain.Package
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.DurationTimeframe,
		&p.Photographers, &p.Videographers, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r PackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+packageColumns+`
		FROM packages
		WHERE deleted_at IS NULL
		ORDER BY price ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r PackageRepository) Create(ctx context.Context, in PackageInput) (*domain.Package, error) {
	return scanPackage(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO packages (name, price, description, duration_timeframe, photographers, videographers, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6, now(), now())
		RETURNING `+packageColumns+`
	`, in.Name, in.Price, in.Description, in.DurationTimeframe, in.Photographers, in.Videographers))
}

func (r PackageRepository) Update(ctx context.Context, id int64, in PackageInput) (*domain.Package, error) {
	return scanPackage(r.DB.Pool.QueryRow(ctx, `
		UPDATE packages
		SET name=$2, price=$3, description=$4, duration_timeframe=$5, photographers=$6, videographers=$7, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+packageColumns+`
	`, id, in.Name, in.Price, in.Description, in.DurationTimeframe, in.Photographers, in.Videographers))
}

func (r PackageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE packages SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
