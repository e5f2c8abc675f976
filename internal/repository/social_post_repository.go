package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ekivenapictured-ship-it/venaok/internal/db"
	"github.com/ekivenapictured-ship-it/venaok/internal/domain"
	"github.com/jackc/pgx/v5"
)

type SocialPostRepository struct {
	DB *db.Postgres
}

type SocialPostInput struct {
	ProjectID     *int64
	ClientName    string
	PostType      string
	Platform      string
	ScheduledDate time.Time
	Caption       string
	MediaURL      string
	Status        domain.PostStatus
	Notes         string
}

const socialPostColumns = `id, project_id, client_name, post_type, platform, scheduled_date, caption, media_url, status, notes, created_at, updated_at`

func scanSocialPost(row pgx.Row) (*domain.SocialMediaPost, error) {
	var p domain.SocialMediaPost
	err := row.Scan(&p.ID, &p.ProjectID, &p.ClientName, &p.PostType, &p.Platform, &p.ScheduledDate,
		&p.Caption, &p.MediaURL, (*string)(&p.Status), &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r SocialPostRepository) List(ctx context.Context, limit int) ([]domain.SocialMediaPost, error) {
	if limit <= 0 {
		limit = 500
	}
	rows, err := r.DB.Pool.Query(ctx, `
		SELECT `+socialPostColumns+`
		FROM social_media_posts
		WHERE deleted_at IS NULL
		ORDER BY scheduled_date DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.SocialMediaPost
	for rows.Next() {
		p, err := scanSocialPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r SocialPostRepository) Create(ctx context.Context, in SocialPostInput) (*domain.SocialMediaPost, error) {
	return scanSocialPost(r.DB.Pool.QueryRow(ctx, `
		INSERT INTO social_media_posts (project_id, client_name, post_type, platform, scheduled_date, caption, media_url, status, notes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, now(), now())
		RETURNING `+socialPostColumns+`
	`, in.ProjectID, in.ClientName, in.PostType, in.Platform, in.ScheduledDate, in.Caption,
		in.MediaURL, string(in.Status), in.Notes))
}

func (r SocialPostRepository) Update(ctx context.Context, id int64, in SocialPostInput) (*domain.SocialMediaPost, error) {
	return scanSocialPost(r.DB.Pool.QueryRow(ctx, `
		UPDATE social_media_posts
		SET project_id=$2, client_name=$3, post_type=$4, platform=$5, scheduled_date=$6, caption=$7,
		    media_url=$8, status=$9, notes=$10, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+socialPostColumns+`
	`, id, in.ProjectID, in.ClientName, in.PostType, in.Platform, in.ScheduledDate, in.Caption,
		in.MediaURL, string(in.Status), in.Notes))
}

// UpdateStatus moves a post through the planner workflow without touching
// the rest of the record.
func (r SocialPostRepository) UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) (*domain.SocialMediaPost, error) {
	return scanSocialPost(r.DB.Pool.QueryRow(ctx, `
		UPDATE social_media_posts
		SET status=$2, updated_at=now()
		WHERE id=$1 AND deleted_at IS NULL
		RETURNING `+socialPostColumns+`
	`, id, string(status)))
}

func (r SocialPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Pool.Exec(ctx, `UPDATE social_media_posts SET deleted_at=now() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
