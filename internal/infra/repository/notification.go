package repository

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// CreateBatch persists the in-app copies of a fan-out in one round trip.
// Callers invoke this before responding; push delivery happens elsewhere.
func (r *NotificationRepository) CreateBatch(ctx context.Context, records []commands.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
INSERT INTO notifications (id, user_id, title, body, job_id, is_read)
VALUES ($1, $2, $3, $4, $5, false)`,
			uuid.New(), rec.UserID, rec.Title, rec.Body, pgconv.UUIDPtrToPgtype(rec.JobID))
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range records {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to create notifications", err, infra.KindFromPgErr(err))
		}
	}
	return nil
}

// MarkRead only flips notifications owned by the caller.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
