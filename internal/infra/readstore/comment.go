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

type CommentReadStore struct {
	pool *pgxpool.Pool
}

func NewCommentReadStore(pool *pgxpool.Pool) *CommentReadStore {
	return &CommentReadStore{pool: pool}
}

// ListByJob returns a job's comments oldest first (conversation order).
func (r *CommentReadStore) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*queries.CommentView, error) {
	rows, err := r.pool.Query(ctx, `
SELECT c.id, c.job_id, c.user_id, u.name, c.body, c.created_at
FROM job_comments c
JOIN users u ON u.id = c.user_id
WHERE c.job_id = $1
ORDER BY c.created_at ASC`, jobID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list job comments", err)
	}
	defer rows.Close()

	result := []*queries.CommentView{}
	for rows.Next() {
		var (
			view      queries.CommentView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.JobID, &view.UserID, &view.UserName, &view.Body, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return result, nil
}
