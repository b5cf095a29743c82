package readstore

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, title, body, job_id, is_read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	result := []*queries.NotificationView{}
	for rows.Next() {
		var (
			view      queries.NotificationView
			jobID     pgtype.UUID
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.UserID, &view.Title, &view.Body, &jobID, &view.IsRead, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		view.JobID = pgconv.UUIDPtrFromPgtype(jobID)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}
	return result, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID).
		Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
