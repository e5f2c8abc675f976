package repository

import (
	"context"
	"errors"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TeamMemberRepository struct {
	DB *db.Postgres
}

type TeamMemberInput struct {
	Name        string
	Role        string
	Email       string
	Phone       string
	StandardFee int64
	Rating      float64
}

const teamMemberColumns = `id, name, role, email, phone, standard_fee, rating, created_at, updated_at`

func scanTeamMember(row pgx.Row) (*domain.TeamMember, error) {
	var m domain.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Email, &m.Phone, &m.StandardFee, &m.Rating,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r TeamMemberRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+teamMemberColumns+`
		FROM team_members
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

func (r TeamMemberRepository) Create(ctx context.Context, in TeamMemberInput) (*domain.TeamMember, error) {
	return scanTeamMember(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO team_members (name, role, email, phone, standard_fee, rating, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6, now(), now())
		RETURNING `+teamMemberColumns+`
	`, in.Name, in.Role, in.Email, in.Phone, in.StandardFee, in.Rating))
}

func (r TeamMemberRepository) Update(ctx context.Context, id int64, in TeamMemberInput) (*domain.TeamMember, error) {
	return scanTeamMember(r.DB.Pool.QueryRow(ctx, `
		UPDATE team_members
		SET name=$2, role=$3, email=$4, phone=$5, standard_fee=$6, rating=$7, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+teamMemberColumns+`
	`, id, in.Name, in.Role, in.Email, in.Phone, in.StandardFee, in.Rating))
}

func (r TeamMemberRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE team_members SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
