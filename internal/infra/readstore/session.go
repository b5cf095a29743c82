package readstore

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionReadStore struct {
	pool *pgxpool.Pool
}

func NewSessionReadStore(pool *pgxpool.Pool) *SessionReadStore {
	return &SessionReadStore{pool: pool}
}

func (r *SessionReadStore) FindByToken(ctx context.Context, token string) (*queries.SessionView, error) {
	var (
		view      queries.SessionView
		expiresAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`SELECT token, user_id, expires_at FROM sessions WHERE token = $1`, token).
		Scan(&view.Token, &view.UserID, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by token", err)
	}

	view.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &view, nil
}
