package repository

import (
	"context"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
)

type FeedbackRepository struct {
	DB *db.Postgres
}

type FeedbackInput struct {
	ClientName   string
	Satisfaction string
	Rating       int
	Feedback     string
	Date         time.Time
}

func (r FeedbackRepository) List(ctx context.Context, limit int) ([]domain.ClientFeedback, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, client_name, satisfaction, rating, feedback, feedback_date, created_at
		FROM client_feedback
		ORDER BY feedback_date DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.ClientFeedback
	for rows.Next() {
		var f domain.ClientFeedback
		if err := rows.Scan(&f.ID, &f.ClientName, &f.Satisfaction, &f.Rating, &f.Feedback, &f.Date, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// ListByClientName returns feedback left for a single client. Feedback rows
// reference the client by display name, as submitted through the portal.
func (r FeedbackRepository) ListByClientName(ctx context.Context, clientName string) ([]domain.ClientFeedback, error) {
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT id, client_name, satisfaction, rating, feedback, feedback_date, created_at
		FROM client_feedback
		WHERE client_name=$1
		ORDER BY feedback_date DESC, id DESC
	`, clientName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.ClientFeedback
	for rows.Next() {
		var f domain.ClientFeedback
		if err := rows.Scan(&f.ID, &f.ClientName, &f.Satisfaction, &f.Rating, &f.Feedback, &f.Date, &f.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r FeedbackRepository) Create(ctx context.Context, in FeedbackInput) (*domain.ClientFeedback, error) {
	var f domain.ClientFeedback
	err := r.DB.Pool.QueryRow(ctx, `
		INSERT INTO client_feedback (client_name, satisfaction, rating, feedback, feedback_date, created_at)
		VALUES ($1,$2,$3,$4,$5, now())
		RETURNING id, client_name, satisfaction, rating, feedback, feedback_date, created_at
	`, in.ClientName, in.Satisfaction, in.Rating, in.Feedback, in.Date).Scan(
		&f.ID, &f.ClientName, &f.Satisfaction, &f.Rating, &f.Feedback, &f.Date, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
