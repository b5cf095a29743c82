package readstore

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The job_count column is a usage counter: how many jobs reference the
// customer by name. Jobs store the customer name denormalized, so the match
// is by name rather than foreign key.
const customerViewSelect = `
SELECT c.id, c.name, c.phone, c.address, c.notes,
       (SELECT COUNT(*) FROM jobs j WHERE j.customer_name = c.name),
       c.created_at, c.updated_at
FROM customers c`

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := r.pool.QueryRow(ctx, customerViewSelect+` WHERE c.id = $1`, id)

	view, err := scanCustomerView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return view, nil
}

func (r *CustomerReadStore) List(ctx context.Context) ([]*queries.CustomerView, error) {
	rows, err := r.pool.Query(ctx, customerViewSelect+` ORDER BY c.name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	result := []*queries.CustomerView{}
	for rows.Next() {
		view, err := scanCustomerView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customer rows", err)
	}
	return result, nil
}

func scanCustomerView(row pgx.Row) (*queries.CustomerView, error) {
	var (
		view      queries.CustomerView
		notes     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Name, &view.Phone, &view.Address, &notes, &view.JobCount, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
