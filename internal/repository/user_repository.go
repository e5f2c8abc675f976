package repository

import (
	"context"
	"errors"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	DB *db.Postgres
}

type CreateUserParams struct {
	Name         string
	Email        string
	Role         domain.UserRole
	PasswordHash *string
	IsGoogle     bool
}

func (r UserRepository) Create(ctx context.Context, in CreateUserParams) (*domain.User, error) {
	var u domain.User
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO users (name, email, role, is_google, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, now(), now())
		RETURNING id, name, email, role, is_google, password_hash, created_at, updated_at
	`, in.Name, in.Email, string(in.Role), in.IsGoogle, in.PasswordHash).Scan(
		&u.ID, &u.Name, &u.Email, (*string)(&u.Role), &u.IsGoogle, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `email=$1`, email)
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, `id=$1`, id)
}

func (r UserRepository) getBy(ctx context.Context, cond string, arg any) (*domain.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `
		SELECT id, name, email, role, is_google, password_hash, created_at, updated_at
		FROM users
		WHERE deleted_at IS NULL AND `+cond, arg)
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, (*string)(&u.Role), &u.IsGoogle, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var ErrNotFound = errors.New("not found")

// IsDuplicate detects unique constraint violation.
func IsDuplicate(err error) bool {
	return db.IsUniqueViolation(err)
}
