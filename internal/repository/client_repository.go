package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClientRepository struct {
	DB *db.Postgres
}

type ClientInput struct {
	Name        string
	Email       string
	Phone       string
	Instagram   string
	ClientType  string
	Status      domain.ClientStatus
	Since       time.Time
	LastContact time.Time
}

const clientColumns = `id, name, email, phone, instagram, client_type, status, since, last_contact, portal_access_id, created_at, updated_at`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Instagram, &c.ClientType,
		(*string)(&c.Status), &c.Since, &c.LastContact, &c.PortalAccessID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r ClientRepository) List(ctx context.Context, limit int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE deleted_at IS NULL
		ORDER BY name ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r ClientRepository) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return scanClient(r.DB.Pool.QueryRow(ctx, `
		SELECT `+clientColumns+` FROM clients WHERE id=$1 AND deleted_at IS NULL
	`, id))
}

// GetByPortalID resolves the opaque share link id used by the public report.
func (r ClientRepository) GetByPortalID(ctx context.Context, portalID string) (*domain.Client, error) {
	return scanClient(r.DB.Pool.QueryRow(ctx, `
		SELECT `+clientColumns+` FROM clients WHERE portal_access_id=$1 AND deleted_at IS NULL
	`, portalID))
}

func (r ClientRepository) Create(ctx context.Context, in ClientInput) (*domain.Client, error) {
	return scanClient(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO clients (name, email, phone, instagram, client_type, status, since, last_contact, portal_access_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now(), now())
		RETURNING `+clientColumns+`
	`, in.Name, in.Email, in.Phone, in.Instagram, in.ClientType, string(in.Status),
		in.Since, in.LastContact, uuid.NewString()))
}

func (r ClientRepository) Update(ctx context.Context, id int64, in ClientInput) (*domain.Client, error) {
	return scanClient(r.DB.Pool.QueryRow(ctx, `
		UPDATE clients
		SET name=$2, email=$3, phone=$4, instagram=$5, client_type=$6, status=$7, since=$8, last_contact=$9, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+clientColumns+`
	`, id, in.Name, in.Email, in.Phone, in.Instagram, in.ClientType, string(in.Status), in.Since, in.LastContact))
}

func (r ClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE clients SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
