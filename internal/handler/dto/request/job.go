package request

import (
	"time"

	"glass-dispatch/internal/domain/job"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	CustomerName     string     `json:"customer_name" binding:"required"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address" binding:"required"`
	Lat              float64    `json:"lat"`
	Lng              float64    `json:"lng"`
	VehicleMake      string     `json:"vehicle_make"`
	VehicleModel     string     `json:"vehicle_model"`
	VehicleYear      string     `json:"vehicle_year"`
	VinOrLP          *string    `json:"vin_or_lp,omitempty"`
	JobType          string     `json:"job_type" binding:"required"`
	Status           string     `json:"status"`
	IsFirstStop      bool       `json:"is_first_stop"`
	AppointmentTime  *time.Time `json:"appointment_time,omitempty"`
	PartNumber       *string    `json:"part_number,omitempty"`
	DistributorID    *uuid.UUID `json:"distributor_id,omitempty"`
	ServiceAdvisorID *uuid.UUID `json:"service_advisor_id,omitempty"`
	AssignedTo       *uuid.UUID `json:"assigned_to,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	Photos           []string   `json:"photos,omitempty"`
}

func (r CreateJobRequest) ToDomain(createdBy uuid.UUID) (*job.Job, error) {
	return job.NewJob(job.NewJobParams{
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		Address:          r.Address,
		Lat:              r.Lat,
		Lng:              r.Lng,
		VehicleMake:      r.VehicleMake,
		VehicleModel:     r.VehicleModel,
		VehicleYear:      r.VehicleYear,
		VinOrLP:          r.VinOrLP,
		JobType:          r.JobType,
		Status:           r.Status,
		IsFirstStop:      r.IsFirstStop,
		AppointmentTime:  r.AppointmentTime,
		PartNumber:       r.PartNumber,
		DistributorID:    r.DistributorID,
		ServiceAdvisorID: r.ServiceAdvisorID,
		AssignedTo:       r.AssignedTo,
		Notes:            r.Notes,
		Photos:           r.Photos,
	}, createdBy)
}

// UpdateJobRequest is a partial update: absent fields stay untouched.
type UpdateJobRequest struct {
	CustomerName     *string    `json:"customer_name,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Address          *string    `json:"address,omitempty"`
	Lat              *float64   `json:"lat,omitempty"`
	Lng              *float64   `json:"lng,omitempty"`
	VehicleMake      *string    `json:"vehicle_make,omitempty"`
	VehicleModel     *string    `json:"vehicle_model,omitempty"`
	VehicleYear      *string    `json:"vehicle_year,omitempty"`
	VinOrLP          *string    `json:"vin_or_lp,omitempty"`
	JobType          *string    `json:"job_type,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IsFirstStop      *bool      `json:"is_first_stop,omitempty"`
	AppointmentTime  *time.Time `json:"appointment_time,omitempty"`
	PartNumber       *string    `json:"part_number,omitempty"`
	DistributorID    *uuid.UUID `json:"distributor_id,omitempty"`
	ServiceAdvisorID *uuid.UUID `json:"service_advisor_id,omitempty"`
	AssignedTo       *uuid.UUID `json:"assigned_to,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	Photos           []string   `json:"photos,omitempty"`
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=2000"`
}
