package readstore

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceAdvisorReadStore struct {
	pool *pgxpool.Pool
}

func NewServiceAdvisorReadStore(pool *pgxpool.Pool) *ServiceAdvisorReadStore {
	return &ServiceAdvisorReadStore{pool: pool}
}

func (r *ServiceAdvisorReadStore) List(ctx context.Context) ([]*queries.ServiceAdvisorView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM service_advisors ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service advisors", err)
	}
	defer rows.Close()

	result := []*queries.ServiceAdvisorView{}
	for rows.Next() {
		var (
			view      queries.ServiceAdvisorView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service advisor row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service advisor rows", err)
	}
	return result, nil
}
