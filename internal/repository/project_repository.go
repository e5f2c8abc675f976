package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository struct {
	DB *db.Postgres
}

type ProjectInput struct {
	ClientID    int64
	ProjectName string
	ProjectType string
	PackageID   *int64
	Status      string
	Date        time.Time
	Deadline    *time.Time
	Location    string
	Progress    int
	TotalCost   int64
	AmountPaid  int64
	Notes       string
}

const projectColumns = `id, client_id, project_name, project_type, package_id, status, project_date, deadline, location, progress, total_cost, amount_paid, notes, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.ClientID, &p.ProjectName, &p.ProjectType, &p.PackageID, &p.Status,
		&p.Date, &p.Deadline, &p.Location, &p.Progress, &p.TotalCost, &p.AmountPaid, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r ProjectRepository) List(ctx context.Context, limit int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE deleted_at IS NULL
		ORDER BY project_date DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r ProjectRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE deleted_at IS NULL AND client_id=$1
		ORDER BY project_date DESC, id DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return scanProject(r.DB.Pool.QueryRow(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE id=$1 AND deleted_at IS NULL
	`, id))
}

func (r ProjectRepository) Create(ctx context.Context, in ProjectInput) (*domain.Project, error) {
	return scanProject(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO projects (client_id, project_name, project_type, package_id, status, project_date, deadline, location, progress, total_cost, amount_paid, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now(), now())
		RETURNING `+projectColumns+`
	`, in.ClientID, in.ProjectName, in.ProjectType, in.PackageID, in.Status, in.Date, in.Deadline,
		in.Location, in.Progress, in.TotalCost, in.AmountPaid, in.Notes))
}

func (r ProjectRepository) Update(ctx context.Context, id int64, in ProjectInput) (*domain.Project, error) {
	return scanProject(r.DB.Pool.QueryRow(ctx, `
		UPDATE projects
		SET client_id=$2, project_name=$3, project_type=$4, package_id=$5, status=$6, project_date=$7,
		    deadline=$8, location=$9, progress=$10, total_cost=$11, amount_paid=$12, notes=$13, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+projectColumns+`
	`, id, in.ClientID, in.ProjectName, in.ProjectType, in.PackageID, in.Status, in.Date, in.Deadline,
		in.Location, in.Progress, in.TotalCost, in.AmountPaid, in.Notes))
}

func (r ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE projects SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
