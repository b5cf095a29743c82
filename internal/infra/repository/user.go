package repository

import (
	"context"

	"glass-dispatch/internal/domain/user"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (id, email, name, picture, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID(), u.Email(), u.Name(), pgconv.StringPtrToPgtype(u.Picture()), u.Role().String(), u.IsActive())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, infra.KindFromPgErr(err))
	}
	return u.ID(), nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role user.Role) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1`, id, role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetPushToken registers (or clears, with nil) the device token used for
// advisory push delivery.
func (r *UserRepository) SetPushToken(ctx context.Context, id uuid.UUID, token *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET push_token = $2, updated_at = now() WHERE id = $1`,
		id, pgconv.StringPtrToPgtype(token))
	if err != nil {
		return infra.WrapRepoErr("failed to set push token", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
