package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TransactionRepository struct {
	DB *db.Postgres
}

type TransactionInput struct {
	ProjectID   *int64
	ClientID    *int64
	Type        domain.TransactionType
	Amount      int64
	Category    string
	Description string
	Method      string
	Date        time.Time
}

const transactionColumns = `id, project_id, client_id, type, amount, category, description, method, tx_date, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.ProjectID, &t.ClientID, (*string)(&t.Type), &t.Amount,
		&t.Category, &t.Description, &t.Method, &t.Date, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r TransactionRepository) List(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 2000
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE deleted_at IS NULL
		ORDER BY tx_date DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

func (r TransactionRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Transaction, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE deleted_at IS NULL AND client_id=$1
		ORDER BY tx_date DESC, id DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

func (r TransactionRepository) Create(ctx context.Context, in TransactionInput) (*domain.Transaction, error) {
	return scanTransaction(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO transactions (project_id, client_id, type, amount, category, description, method, tx_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now())
		RETURNING `+transactionColumns+`
	`, in.ProjectID, in.ClientID, string(in.Type), in.Amount, in.Category, in.Description, in.Method, in.Date))
}

func (r TransactionRepository) Update(ctx context.Context, id int64, in TransactionInput) (*domain.Transaction, error) {
	return scanTransaction(r.DB.Pool.QueryRow(ctx, `
		UPDATE transactions
		SET project_id=$2, client_id=$3, type=$4, amount=$5, category=$6, description=$7, method=$8, tx_date=$9
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+transactionColumns+`
	`, id, in.ProjectID, in.ClientID, string(in.Type), in.Amount, in.Category, in.Description, in.Method, in.Date))
}

func (r TransactionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE transactions SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
