package readstore

import (
	"context"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PartsReadStore backs the parts-by-distributor report. The date match is a
// string comparison on the UTC date portion of the appointment, not a range
// query, mirroring the way the shop schedules part pickups.
type PartsReadStore struct {
	pool *pgxpool.Pool
}

func NewPartsReadStore(pool *pgxpool.Pool) *PartsReadStore {
	return &PartsReadStore{pool: pool}
}

// PartsJobsForDate returns all non-cancelled jobs carrying a part number
// whose appointment date equals the target date (YYYY-MM-DD).
func (r *PartsReadStore) PartsJobsForDate(ctx context.Context, date string) ([]*queries.PartsJobItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT j.id, j.customer_name, j.part_number, j.job_type, j.status,
       j.appointment_time, j.distributor_id, d.name
FROM jobs j
LEFT JOIN distributors d ON d.id = j.distributor_id
WHERE j.status <> 'cancelled'
  AND j.part_number IS NOT NULL
  AND j.part_number <> ''
  AND to_char(j.appointment_time AT TIME ZONE 'UTC', 'YYYY-MM-DD') = $1
ORDER BY j.appointment_time ASC`, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parts jobs", err)
	}
	defer rows.Close()

	result := []*queries.PartsJobItem{}
	for rows.Next() {
		var (
			item            queries.PartsJobItem
			appointmentTime pgtype.Timestamptz
			distributorID   pgtype.UUID
			distributorName pgtype.Text
		)
		err := rows.Scan(&item.JobID, &item.CustomerName, &item.PartNumber, &item.JobType,
			&item.Status, &appointmentTime, &distributorID, &distributorName)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan parts job row", err)
		}

		item.AppointmentTime = pgconv.TimePtrFromPgtype(appointmentTime)
		item.DistributorID = pgconv.UUIDPtrFromPgtype(distributorID)
		item.DistributorName = pgconv.StringPtrFromPgtype(distributorName)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate parts job rows", err)
	}
	return result, nil
}

// CountJobsForDate counts every non-cancelled job scheduled on the target
// date, part-carrying or not, for the report header.
func (r *PartsReadStore) CountJobsForDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM jobs
WHERE status <> 'cancelled'
  AND to_char(appointment_time AT TIME ZONE 'UTC', 'YYYY-MM-DD') = $1`, date).
		Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count jobs for date", err)
	}
	return count, nil
}
