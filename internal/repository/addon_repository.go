package repository

import (
	"context"
	"errors"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type AddOnRepository struct {
	DB *db.Postgres
}

type AddOnInput struct {
	Name  string
	Price int64
}

func scanAddOn(row pgx.Row) (*domain.AddOn, error) {
	var a domain.AddOn
	err := row.Scan(&a.ID, &a.Name, &a.Price, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r AddOnRepository) List(ctx context.Context) ([]domain.AddOn, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, name, price, created_at, updated_at
		FROM addons
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.AddOn
	for rows.Next() {
		a, err := scanAddOn(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r AddOnRepository) Create(ctx context.Context, in AddOnInput) (*domain.AddOn, error) {
	return scanAddOn(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO addons (name, price, created_at, updated_at)
		VALUES ($1,$2, now(), now())
		RETURNING id, name, price, created_at, updated_at
	`, in.Name, in.Price))
}

func (r AddOnRepository) Update(ctx context.Context, id int64, in AddOnInput) (*domain.AddOn, error) {
	return scanAddOn(r.DB.Pool.QueryRow(ctx, `
		UPDATE addons SET name=$2, price=$3, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, name, price, created_at, updated_at
	`, id, in.Name, in.Price))
}

func (r AddOnRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE addons SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
