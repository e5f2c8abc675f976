package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ContractRepository struct {
	DB *db.Postgres
}

type ContractInput struct {
	ContractNumber  string
	ClientID        int64
	ProjectID       *int64
	SigningDate     time.Time
	SigningLocation string
	ClientName1     string
	ClientAddress1  string
	ClientPhone1    string
	ShootingDetails string
	PaymentTerms    string
	Cancellation    string
	Jurisdiction    string
}

const contractColumns = `id, contract_number, client_id, project_id, signing_date, signing_location,
	client_name1, client_address1, client_phone1, shooting_details, payment_terms, cancellation,
	jurisdiction, vendor_signature, client_signature, created_at, updated_at`

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(&c.ID, &c.ContractNumber, &c.ClientID, &c.ProjectID, &c.SigningDate, &c.SigningLocation,
		&c.ClientName1, &c.ClientAddress1, &c.ClientPhone1, &c.ShootingDetails, &c.PaymentTerms,
		&c.Cancellation, &c.Jurisdiction, &c.VendorSignature, &c.ClientSignature, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r ContractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE deleted_at IS NULL
		ORDER BY signing_date DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r ContractRepository) Get(ctx context.Context, id int64) (*domain.Contract, error) {
	return scanContract(r.DB.Pool.QueryRow(ctx, `
		SELECT `+contractColumns+` FROM contracts WHERE id=$1 AND deleted_at IS NULL
	`, id))
}

func (r ContractRepository) Create(ctx context.Context, in ContractInput) (*domain.Contract, error) {
	return scanContract(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO contracts (contract_number, client_id, project_id, signing_date, signing_location,
			client_name1, client_address1, client_phone1, shooting_details, payment_terms, cancellation,
			jurisdiction, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, now(), now())
		RETURNING `+contractColumns+`
	`, in.ContractNumber, in.ClientID, in.ProjectID, in.SigningDate, in.SigningLocation,
		in.ClientName1, in.ClientAddress1, in.ClientPhone1, in.ShootingDetails, in.PaymentTerms,
		in.Cancellation, in.Jurisdiction))
}

func (r ContractRepository) Update(ctx context.Context, id int64, in ContractInput) (*domain.Contract, error) {
	return scanContract(r.DB.Pool.QueryRow(ctx, `
		UPDATE contracts
		SET contract_number=$2, client_id=$3, project_id=$4, signing_date=$5, signing_location=$6,
		    client_name1=$7, client_address1=$8, client_phone1=$9, shooting_details=$10,
		    payment_terms=$11, cancellation=$12, jurisdiction=$13, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+contractColumns+`
	`, id, in.ContractNumber, in.ClientID, in.ProjectID, in.SigningDate, in.SigningLocation,
		in.ClientName1, in.ClientAddress1, in.ClientPhone1, in.ShootingDetails, in.PaymentTerms,
		in.Cancellation, in.Jurisdiction))
}

// Sign stores a drawn signature (data URL) for one of the two parties.
func (r ContractRepository) Sign(ctx context.Context, id int64, party string, signature string) (*domain.Contract, error) {
	column := "client_signature"
	if party == "vendor" {
		column = "vendor_signature"
	}
	return scanContract(r.DB.Pool.QueryRow(ctx, `
		UPDATE contracts SET `+column+`=$2, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+contractColumns+`
	`, id, signature))
}

func (r ContractRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE contracts SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
