package repository

import (
	"context"

	"glass-dispatch/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, jobID, userID uuid.UUID, body string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO job_comments (id, job_id, user_id, body) VALUES ($1, $2, $3, $4)`,
		id, jobID, userID, body)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create comment", err, infra.KindFromPgErr(err))
	}
	return id, nil
}
