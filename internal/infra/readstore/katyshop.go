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

const shopJobViewSelect = `
SELECT k.id, k.title, k.customer_name, k.part_number,
       to_char(k.scheduled_date, 'YYYY-MM-DD'), k.time_slot, k.status, k.notes,
       k.created_by, u.name, k.created_at, k.updated_at
FROM katyshop_jobs k
JOIN users u ON u.id = k.created_by`

type ShopJobReadStore struct {
	pool *pgxpool.Pool
}

func NewShopJobReadStore(pool *pgxpool.Pool) *ShopJobReadStore {
	return &ShopJobReadStore{pool: pool}
}

func (r *ShopJobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ShopJobView, error) {
	row := r.pool.QueryRow(ctx, shopJobViewSelect+` WHERE k.id = $1`, id)

	view, err := scanShopJobView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop job by ID", err)
	}
	return view, nil
}

// List orders by time slot within the day: the shop works the queue top to
// bottom.
func (r *ShopJobReadStore) List(ctx context.Context, date *string, status *string) ([]*queries.ShopJobView, error) {
	query := shopJobViewSelect
	conds := []string{}
	args := []any{}

	if date != nil {
		args = append(args, *date)
		conds = append(conds, `to_char(k.scheduled_date, 'YYYY-MM-DD') = $1`)
	}
	if status != nil {
		args = append(args, *status)
		if len(args) == 1 {
			conds = append(conds, `k.status = $1`)
		} else {
			conds = append(conds, `k.status = $2`)
		}
	}
	for i, cond := range conds {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY k.scheduled_date ASC, k.time_slot ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shop jobs", err)
	}
	defer rows.Close()

	result := []*queries.ShopJobView{}
	for rows.Next() {
		view, err := scanShopJobView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan shop job row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shop job rows", err)
	}
	return result, nil
}

func scanShopJobView(row pgx.Row) (*queries.ShopJobView, error) {
	var (
		view       queries.ShopJobView
		partNumber pgtype.Text
		notes      pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Title, &view.CustomerName, &partNumber,
		&view.ScheduledDate, &view.TimeSlot, &view.Status, &notes,
		&view.CreatedBy, &view.CreatedByName, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	view.PartNumber = pgconv.StringPtrFromPgtype(partNumber)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
