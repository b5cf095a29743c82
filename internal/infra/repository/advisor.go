package repository

import (
	"context"

	"glass-dispatch/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceAdvisorRepository struct {
	pool *pgxpool.Pool
}

func NewServiceAdvisorRepository(pool *pgxpool.Pool) *ServiceAdvisorRepository {
	return &ServiceAdvisorRepository{pool: pool}
}

func (r *ServiceAdvisorRepository) Create(ctx context.Context, name string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO service_advisors (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service advisor", err, infra.KindFromPgErr(err))
	}
	return id, nil
}

func (r *ServiceAdvisorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM service_advisors WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service advisor", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service advisor not found", nil, infra.KindNotFound)
	}
	return nil
}
