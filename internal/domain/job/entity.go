package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName      = errors.New("customer name is required")
	ErrPartWithoutDistributor = errors.New("distributor reference requires a part number")
)

// Job is the central dispatch entity: one field visit for one vehicle.
type Job struct {
	id               uuid.UUID
	customerName     string
	phone            string
	address          string
	lat              float64
	lng              float64
	vehicleMake      string
	vehicleModel     string
	vehicleYear      string
	vinOrLP          *string
	jobType          Type
	status           Status
	isFirstStop      bool
	appointmentTime  *time.Time
	partNumber       *string
	distributorID    *uuid.UUID
	serviceAdvisorID *uuid.UUID
	assignedTo       *uuid.UUID
	notes            *string
	photos           []string
	createdBy        uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

type NewJobParams struct {
	CustomerName     string
	Phone            string
	Address          string
	Lat              float64
	Lng              float64
	VehicleMake      string
	VehicleModel     string
	VehicleYear      string
	VinOrLP          *string
	JobType          string
	Status           string
	IsFirstStop      bool
	AppointmentTime  *time.Time
	PartNumber       *string
	DistributorID    *uuid.UUID
	ServiceAdvisorID *uuid.UUID
	AssignedTo       *uuid.UUID
	Notes            *string
	Photos           []string
}

func NewJob(p NewJobParams, createdBy uuid.UUID) (*Job, error) {
	if p.CustomerName == "" {
		return nil, ErrEmptyCustomerName
	}

	jobType, err := NewType(p.JobType)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if p.Status != "" {
		status, err = NewStatus(p.Status)
		if err != nil {
			return nil, err
		}
	}

	if p.DistributorID != nil && (p.PartNumber == nil || *p.PartNumber == "") {
		return nil, ErrPartWithoutDistributor
	}

	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}

	return &Job{
		id:               uuid.New(),
		customerName:     p.CustomerName,
		phone:            p.Phone,
		address:          p.Address,
		lat:              p.Lat,
		lng:              p.Lng,
		vehicleMake:      p.VehicleMake,
		vehicleModel:     p.VehicleModel,
		vehicleYear:      p.VehicleYear,
		vinOrLP:          p.VinOrLP,
		jobType:          jobType,
		status:           status,
		isFirstStop:      p.IsFirstStop,
		appointmentTime:  p.AppointmentTime,
		partNumber:       p.PartNumber,
		distributorID:    p.DistributorID,
		serviceAdvisorID: p.ServiceAdvisorID,
		assignedTo:       p.AssignedTo,
		notes:            p.Notes,
		photos:           photos,
		createdBy:        createdBy,
	}, nil
}

// NeedsFirstStopCheck reports whether creating this job must consult the
// daily capacity count. Jobs without an appointment time are not yet pinned
// to a calendar day and skip the check.
func (j *Job) NeedsFirstStopCheck() bool {
	return j.isFirstStop && j.appointmentTime != nil
}

func (j *Job) FirstStopWindow() DayWindow {
	return NewDayWindow(*j.appointmentTime)
}

func (j *Job) HasPart() bool {
	return j.partNumber != nil && *j.partNumber != ""
}

func (j *Job) ID() uuid.UUID               { return j.id }
func (j *Job) CustomerName() string        { return j.customerName }
func (j *Job) Phone() string               { return j.phone }
func (j *Job) Address() string             { return j.address }
func (j *Job) Lat() float64                { return j.lat }
func (j *Job) Lng() float64                { return j.lng }
func (j *Job) VehicleMake() string         { return j.vehicleMake }
func (j *Job) VehicleModel() string        { return j.vehicleModel }
func (j *Job) VehicleYear() string         { return j.vehicleYear }
func (j *Job) VinOrLP() *string            { return j.vinOrLP }
func (j *Job) JobType() Type               { return j.jobType }
func (j *Job) Status() Status              { return j.status }
func (j *Job) IsFirstStop() bool           { return j.isFirstStop }
func (j *Job) AppointmentTime() *time.Time { return j.appointmentTime }
func (j *Job) PartNumber() *string         { return j.partNumber }
func (j *Job) DistributorID() *uuid.UUID   { return j.distributorID }
func (j *Job) ServiceAdvisorID() *uuid.UUID {
	return j.serviceAdvisorID
}
func (j *Job) AssignedTo() *uuid.UUID { return j.assignedTo }
func (j *Job) Notes() *string         { return j.notes }
func (j *Job) Photos() []string       { return j.photos }
func (j *Job) CreatedBy() uuid.UUID   { return j.createdBy }
func (j *Job) CreatedAt() time.Time   { return j.createdAt }
func (j *Job) UpdatedAt() time.Time   { return j.updatedAt }
