package repository

import (
	"context"
	"fmt"
	"strings"

	"glass-dispatch/internal/domain/job"
	"glass-dispatch/internal/infra"
	"glass-dispatch/internal/pkg/pgconv"
	"glass-dispatch/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, j *job.Job) (uuid.UUID, error) {
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (
    id, customer_name, phone, address, lat, lng,
    vehicle_make, vehicle_model, vehicle_year, vin_or_lp,
    job_type, status, is_first_stop, appointment_time,
    part_number, distributor_id, service_advisor_id, assigned_to,
    notes, photos, created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		j.ID(), j.CustomerName(), j.Phone(), j.Address(), j.Lat(), j.Lng(),
		j.VehicleMake(), j.VehicleModel(), j.VehicleYear(), pgconv.StringPtrToPgtype(j.VinOrLP()),
		j.JobType().String(), j.Status().String(), j.IsFirstStop(), pgconv.TimePtrToPgtype(j.AppointmentTime()),
		pgconv.StringPtrToPgtype(j.PartNumber()), pgconv.UUIDPtrToPgtype(j.DistributorID()),
		pgconv.UUIDPtrToPgtype(j.ServiceAdvisorID()), pgconv.UUIDPtrToPgtype(j.AssignedTo()),
		pgconv.StringPtrToPgtype(j.Notes()), j.Photos(), j.CreatedBy(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create job", err, infra.KindFromPgErr(err))
	}
	return j.ID(), nil
}

// Update writes only the provided fields. The caller has already run the
// business checks; this is a plain partial write.
func (r *JobRepository) Update(ctx context.Context, id uuid.UUID, p commands.UpdateJobParams) error {
	set := []string{}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.CustomerName != nil {
		add("customer_name", *p.CustomerName)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.Address != nil {
		add("address", *p.Address)
	}
	if p.Lat != nil {
		add("lat", *p.Lat)
	}
	if p.Lng != nil {
		add("lng", *p.Lng)
	}
	if p.VehicleMake != nil {
		add("vehicle_make", *p.VehicleMake)
	}
	if p.VehicleModel != nil {
		add("vehicle_model", *p.VehicleModel)
	}
	if p.VehicleYear != nil {
		add("vehicle_year", *p.VehicleYear)
	}
	if p.VinOrLP != nil {
		add("vin_or_lp", *p.VinOrLP)
	}
	if p.JobType != nil {
		add("job_type", *p.JobType)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.IsFirstStop != nil {
		add("is_first_stop", *p.IsFirstStop)
	}
	if p.AppointmentTime != nil {
		add("appointment_time", pgconv.TimeToPgtype(*p.AppointmentTime))
	}
	if p.PartNumber != nil {
		add("part_number", *p.PartNumber)
	}
	if p.DistributorID != nil {
		add("distributor_id", *p.DistributorID)
	}
	if p.ServiceAdvisorID != nil {
		add("service_advisor_id", *p.ServiceAdvisorID)
	}
	if p.AssignedTo != nil {
		add("assigned_to", *p.AssignedTo)
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	if p.Photos != nil {
		add("photos", p.Photos)
	}

	if len(set) == 0 {
		return nil
	}
	set = append(set, "updated_at = now()")

	query := `UPDATE jobs SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update job", err, infra.KindFromPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}
	return nil
}
