package repository

import (
	"context"
	"errors"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository manages the single studio profile row.
type ProfileRepository struct {
	DB *db.Postgres
}

type ProfileInput struct {
	FullName          string
	Email             string
	Phone             string
	CompanyName       string
	Website           string
	Address           string
	BankAccount       string
	Bio               string
	IncomeCategories  []string
	ExpenseCategories []string
	ProjectTypes      []string
	EventTypes        []string
}

const profileColumns = `id, full_name, email, phone, company_name, website, address, bank_account, bio,
	income_categories, expense_categories, project_types, event_types, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.CompanyName, &p.Website, &p.Address,
		&p.BankAccount, &p.Bio, &p.IncomeCategories, &p.ExpenseCategories, &p.ProjectTypes,
		&p.EventTypes, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	return scanProfile(r.DB.Pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profile WHERE id=1`))
}

// Upsert writes the profile row, creating it on first save.
func (r ProfileRepository) Upsert(ctx context.Context, in ProfileInput) (*domain.Profile, error) {
	return scanProfile(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO profile (id, full_name, email, phone, company_name, website, address, bank_account, bio,
			income_categories, expense_categories, project_types, event_types, updated_at)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now())
		ON CONFLICT (id) DO UPDATE SET
			full_name=EXCLUDED.full_name, email=EXCLUDED.email, phone=EXCLUDED.phone,
			company_name=EXCLUDED.company_name, website=EXCLUDED.website, address=EXCLUDED.address,
			bank_account=EXCLUDED.bank_account, bio=EXCLUDED.bio,
			income_categories=EXCLUDED.income_categories, expense_categories=EXCLUDED.expense_categories,
			project_types=EXCLUDED.project_types, event_types=EXCLUDED.event_types, updated_at=now()
		RETURNING `+profileColumns+`
	`, in.FullName, in.Email, in.Phone, in.CompanyName, in.Website, in.Address, in.BankAccount, in.Bio,
		in.IncomeCategories, in.ExpenseCategories, in.ProjectTypes, in.EventTypes))
}
