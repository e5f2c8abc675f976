package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type LeadRepository struct {
	DB *db.Postgres
}

type LeadInput struct {
	Name           string
	ContactChannel string
	Location       string
	Status         domain.LeadStatus
	Date           time.Time
	Notes          string
}

const leadColumns = `id, name, contact_channel, location, status, lead_date, notes, created_at, updated_at`

func scanLead(row pgx.Row) (*domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(&l.ID, &l.Name, &l.ContactChannel, &l.Location, (*string)(&l.Status),
		&l.Date, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r LeadRepository) List(ctx context.Context, limit int) ([]domain.Lead, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE deleted_at IS NULL
		ORDER BY lead_date DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

func (r LeadRepository) Create(ctx context.Context, in LeadInput) (*domain.Lead, error) {
	return scanLead(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO leads (name, contact_channel, location, status, lead_date, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6, now(), now())
		RETURNING `+leadColumns+`
	`, in.Name, in.ContactChannel, in.Location, string(in.Status), in.Date, in.Notes))
}

func (r LeadRepository) Update(ctx context.Context, id int64, in LeadInput) (*domain.Lead, error) {
	return scanLead(r.DB.Pool.QueryRow(ctx, `
		UPDATE leads
		SET name=$2, contact_channel=$3, location=$4, status=$5, lead_date=$6, notes=$7, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+leadColumns+`
	`, id, in.Name, in.ContactChannel, in.Location, string(in.Status), in.Date, in.Notes))
}

func (r LeadRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE leads SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
