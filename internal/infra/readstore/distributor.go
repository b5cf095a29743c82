package readstore

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DistributorReadStore struct {
	pool *pgxpool.Pool
}

func NewDistributorReadStore(pool *pgxpool.Pool) *DistributorReadStore {
	return &DistributorReadStore{pool: pool}
}

func (r *DistributorReadStore) List(ctx context.Context) ([]*queries.DistributorView, error) {
	rows, err := r.pool.Query(ctx, `
SELECT d.id, d.name,
       (SELECT COUNT(*) FROM jobs j WHERE j.distributor_id = d.id),
       d.created_at
FROM distributors d
ORDER BY d.name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list distributors", err)
	}
	defer rows.Close()

	result := []*queries.DistributorView{}
	for rows.Next() {
		var (
			view      queries.DistributorView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.JobCount, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan distributor row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate distributor rows", err)
	}
	return result, nil
}
