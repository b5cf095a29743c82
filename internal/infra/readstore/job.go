package readstore

import (
	"context"
	"time"

	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobViewSelect = `
SELECT j.id, j.customer_name, j.phone, j.address, j.lat, j.lng,
       j.vehicle_make, j.vehicle_model, j.vehicle_year, j.vin_or_lp,
       j.job_type, j.status, j.is_first_stop, j.appointment_time,
       j.part_number, j.distributor_id, d.name,
       j.service_advisor_id, sa.name,
       j.assigned_to, au.name,
       j.notes, j.photos, j.created_by, cu.name,
       j.created_at, j.updated_at
FROM jobs j
JOIN users cu ON cu.id = j.created_by
LEFT JOIN users au ON au.id = j.assigned_to
LEFT JOIN distributors d ON d.id = j.distributor_id
LEFT JOIN service_advisors sa ON sa.id = j.service_advisor_id`

type JobReadStore struct {
	pool *pgxpool.Pool
}

func NewJobReadStore(pool *pgxpool.Pool) *JobReadStore {
	return &JobReadStore{pool: pool}
}

func (r *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	row := r.pool.QueryRow(ctx, jobViewSelect+` WHERE j.id = $1`, id)

	view, err := scanJobView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job by ID", err)
	}
	return view, nil
}

// List returns jobs newest first, optionally filtered by status.
func (r *JobReadStore) List(ctx context.Context, status *string, limit int32) ([]*queries.JobListItem, error) {
	query := `
SELECT j.id, j.customer_name, j.address, j.job_type, j.status, j.is_first_stop,
       j.appointment_time, j.part_number, j.assigned_to, au.name, j.created_at
FROM jobs j
LEFT JOIN users au ON au.id = j.assigned_to`

	args := []any{limit}
	if status != nil {
		query += ` WHERE j.status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY j.created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list jobs", err)
	}
	defer rows.Close()

	result := []*queries.JobListItem{}
	for rows.Next() {
		var (
			item            queries.JobListItem
			appointmentTime pgtype.Timestamptz
			partNumber      pgtype.Text
			assignedTo      pgtype.UUID
			assignedToName  pgtype.Text
			createdAt       pgtype.Timestamptz
		)
		err := rows.Scan(&item.ID, &item.CustomerName, &item.Address, &item.JobType, &item.Status,
			&item.IsFirstStop, &appointmentTime, &partNumber, &assignedTo, &assignedToName, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan job row", err)
		}

		item.AppointmentTime = pgconv.TimePtrFromPgtype(appointmentTime)
		item.PartNumber = pgconv.StringPtrFromPgtype(partNumber)
		item.AssignedTo = pgconv.UUIDPtrFromPgtype(assignedTo)
		item.AssignedToName = pgconv.StringPtrFromPgtype(assignedToName)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate job rows", err)
	}
	return result, nil
}

// CountFirstStopsInWindow counts first-stop jobs with an appointment inside
// [start, end). The job being updated, if any, is excluded so a no-op write
// does not count against itself.
func (r *JobReadStore) CountFirstStopsInWindow(ctx context.Context, start, end time.Time, exclude *uuid.UUID) (int64, error) {
	query := `
SELECT COUNT(*) FROM jobs
WHERE is_first_stop
  AND appointment_time >= $1
  AND appointment_time < $2`

	args := []any{pgconv.TimeToPgtype(start), pgconv.TimeToPgtype(end)}
	if exclude != nil {
		query += ` AND id <> $3`
		args = append(args, *exclude)
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count first stops", err)
	}
	return count, nil
}

func scanJobView(row rowScanner) (*queries.JobView, error) {
	var (
		view               queries.JobView
		vinOrLP            pgtype.Text
		appointmentTime    pgtype.Timestamptz
		partNumber         pgtype.Text
		distributorID      pgtype.UUID
		distributorName    pgtype.Text
		serviceAdvisorID   pgtype.UUID
		serviceAdvisorName pgtype.Text
		assignedTo         pgtype.UUID
		assignedToName     pgtype.Text
		notes              pgtype.Text
		createdAt          pgtype.Timestamptz
		updatedAt          pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.CustomerName, &view.Phone, &view.Address, &view.Lat, &view.Lng,
		&view.VehicleMake, &view.VehicleModel, &view.VehicleYear, &vinOrLP,
		&view.JobType, &view.Status, &view.IsFirstStop, &appointmentTime,
		&partNumber, &distributorID, &distributorName,
		&serviceAdvisorID, &serviceAdvisorName,
		&assignedTo, &assignedToName,
		&notes, &view.Photos, &view.CreatedBy, &view.CreatedByName,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.VinOrLP = pgconv.StringPtrFromPgtype(vinOrLP)
	view.AppointmentTime = pgconv.TimePtrFromPgtype(appointmentTime)
	view.PartNumber = pgconv.StringPtrFromPgtype(partNumber)
	view.DistributorID = pgconv.UUIDPtrFromPgtype(distributorID)
	view.DistributorName = pgconv.StringPtrFromPgtype(distributorName)
	view.ServiceAdvisorID = pgconv.UUIDPtrFromPgtype(serviceAdvisorID)
	view.ServiceAdvisorName = pgconv.StringPtrFromPgtype(serviceAdvisorName)
	view.AssignedTo = pgconv.UUIDPtrFromPgtype(assignedTo)
	view.AssignedToName = pgconv.StringPtrFromPgtype(assignedToName)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	if view.Photos == nil {
		view.Photos = []string{}
	}
	return &view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}
