//go:build unit || e2e

package builder

import (
	"time"

	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type JobBuilder struct {
	CustomerName    string
	Address         string
	JobType         string
	Status          string
	IsFirstStop     bool
	AppointmentTime *time.Time
	PartNumber      *string
	DistributorID   *uuid.UUID
	AssignedTo      *uuid.UUID
}

func NewJobBuilder() *JobBuilder {
	return &JobBuilder{
		CustomerName: "Jane Driver",
		Address:      "123 Main St, Katy TX",
		JobType:      "windshield",
		Status:       "scheduled",
	}
}

func (b *JobBuilder) BuildDTO() reqdto.CreateJobRequest {
	return reqdto.CreateJobRequest{
		CustomerName:    b.CustomerName,
		Address:         b.Address,
		JobType:         b.JobType,
		Status:          b.Status,
		IsFirstStop:     b.IsFirstStop,
		AppointmentTime: b.AppointmentTime,
		PartNumber:      b.PartNumber,
		DistributorID:   b.DistributorID,
		AssignedTo:      b.AssignedTo,
	}
}

func (b *JobBuilder) BuildReadModel() *queries.JobView {
	now := time.Now().UTC()
	return &queries.JobView{
		ID:              uuid.New(),
		CustomerName:    b.CustomerName,
		Address:         b.Address,
		JobType:         b.JobType,
		Status:          b.Status,
		IsFirstStop:     b.IsFirstStop,
		AppointmentTime: b.AppointmentTime,
		PartNumber:      b.PartNumber,
		DistributorID:   b.DistributorID,
		AssignedTo:      b.AssignedTo,
		Photos:          []string{},
		CreatedBy:       uuid.New(),
		CreatedByName:   "Test Technician",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Fluent builder methods
func (b *JobBuilder) WithCustomerName(name string) *JobBuilder {
	b.CustomerName = name
	return b
}

func (b *JobBuilder) WithJobType(jobType string) *JobBuilder {
	b.JobType = jobType
	return b
}

func (b *JobBuilder) WithPartNumber(partNumber string) *JobBuilder {
	b.PartNumber = &partNumber
	return b
}

func (b *JobBuilder) WithDistributor(id uuid.UUID) *JobBuilder {
	b.DistributorID = &id
	return b
}

func (b *JobBuilder) WithAssignee(id uuid.UUID) *JobBuilder {
	b.AssignedTo = &id
	return b
}

func (b *JobBuilder) AsFirstStop(appointment time.Time) *JobBuilder {
	b.IsFirstStop = true
	b.AppointmentTime = &appointment
	return b
}
