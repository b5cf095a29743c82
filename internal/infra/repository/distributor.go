package repository

import (
	"context"

	"glass-dispatch/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DistributorRepository struct {
	pool *pgxpool.Pool
}

func NewDistributorRepository(pool *pgxpool.Pool) *DistributorRepository {
	return &DistributorRepository{pool: pool}
}

func (r *DistributorRepository) Create(ctx context.Context, name string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO distributors (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create distributor", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

// Delete leaves referencing jobs in place; their distributor_id is nulled by
// the schema's ON DELETE SET NULL so parts reporting moves them to the
// unassigned bucket.
func (r *DistributorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete distributor", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("distributor not found", nil, infra.KindNotFound)
	}
	return nil
}
