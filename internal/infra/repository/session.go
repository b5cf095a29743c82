package repository

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, rec commands.SessionRecord) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO sessions (token, user_id, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (token) DO UPDATE SET expires_at = EXCLUDED.expires_at`,
		rec.Token, rec.UserID, pgconv.TimeToPgtype(rec.ExpiresAt))
	if err != nil {
		return infra.WrapRepoErr("failed to create session", err, infra.KindFromPgErr(err))
	}
	return nil
}

// DeleteByToken is a no-op when the token is already gone; logout never fails
// on a missing session.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	return nil
}
