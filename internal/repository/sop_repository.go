package repository

import (
	"context"
	"errors"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type SOPRepository struct {
	DB *db.Postgres
}

type SOPInput struct {
	Title    string
	Category string
	Content  string
}

func scanSOP(row pgx.Row) (*domain.SOP, error) {
	var s domain.SOP
	err := row.Scan(&s.ID, &s.Title, &s.Category, &s.Content, &s.LastUpdated, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r SOPRepository) List(ctx context.Context) ([]domain.SOP, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, title, category, content, last_updated, created_at
		FROM sops
		WHERE deleted_at IS NULL
		ORDER BY last_updated DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.SOP
	for rows.Next() {
		s, err := scanSOP(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r SOPRepository) Create(ctx context.Context, in SOPInput) (*domain.SOP, error) {
	return scanSOP(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO sops (title, category, content, last_updated, created_at)
		VALUES ($1,$2,$3, now(), now())
		RETURNING id, title, category, content, last_updated, created_at
	`, in.Title, in.Category, in.Content))
}

func (r SOPRepository) Update(ctx context.Context, id int64, in SOPInput) (*domain.SOP, error) {
	return scanSOP(r.DB.Pool.QueryRow(ctx, `
		UPDATE sops SET title=$2, category=$3, content=$4, last_updated=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING id, title, category, content, last_updated, created_at
	`, id, in.Title, in.Category, in.Content))
}

func (r SOPRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE sops SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
