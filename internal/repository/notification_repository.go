package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type NotificationRepository struct {
	DB *db.Postgres
}

type NotificationInput struct {
	Title     string
	Message   string
	Timestamp time.Time
	Icon      string
	Link      string
}

const notificationColumns = `id, title, message, notified_at, is_read, icon, link, created_at`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Timestamp, &n.IsRead, &n.Icon, &n.Link, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r NotificationRepository) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE deleted_at IS NULL
		ORDER BY notified_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

func (r NotificationRepository) Create(ctx context.Context, in NotificationInput) (*domain.Notification, error) {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return scanNotification(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO notifications (title, message, notified_at, is_read, icon, link, created_at)
		VALUES ($1,$2,$3,false,$4,$5, now())
		RETURNING `+notificationColumns+`
	`, in.Title, in.Message, ts, in.Icon, in.Link))
}

func (r NotificationRepository) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	return scanNotification(r.DB.Pool.QueryRow(ctx, `
		UPDATE notifications SET is_read=true
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+notificationColumns+`
	`, id))
}

func (r NotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.DB.Pool.Exec(ctx, `UPDATE notifications SET is_read=true WHERE deleted_at IS NULL AND is_read=false`)
	return err
}

func (r NotificationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE notifications SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
