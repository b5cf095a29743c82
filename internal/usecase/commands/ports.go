package commands

import (
	"time"

	"github.com/google/uuid"
)

// UpdateJobParams carries a partial update: nil means "field not provided".
// Only provided fields are written.
type UpdateJobParams struct {
	CustomerName     *string
	Phone            *string
	Address          *string
	Lat              *float64
	Lng              *float64
	VehicleMake      *string
	VehicleModel     *string
	VehicleYear      *string
	VinOrLP          *string
	JobType          *string
	Status           *string
	IsFirstStop      *bool
	AppointmentTime  *time.Time
	PartNumber       *string
	DistributorID    *uuid.UUID
	ServiceAdvisorID *uuid.UUID
	AssignedTo       *uuid.UUID
	Notes            *string
	Photos           []string
}

// IsEmpty reports whether no field was provided at all.
func (p UpdateJobParams) IsEmpty() bool {
	return p.CustomerName == nil && p.Phone == nil && p.Address == nil &&
		p.Lat == nil && p.Lng == nil &&
		p.VehicleMake == nil && p.VehicleModel == nil && p.VehicleYear == nil &&
		p.VinOrLP == nil && p.JobType == nil && p.Status == nil &&
		p.IsFirstStop == nil && p.AppointmentTime == nil &&
		p.PartNumber == nil && p.DistributorID == nil && p.ServiceAdvisorID == nil &&
		p.AssignedTo == nil && p.Notes == nil && p.Photos == nil
}

type UpdateCustomerParams struct {
	Name    *string
	Phone   *string
	Address *string
	Notes   *string
}

func (p UpdateCustomerParams) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Address == nil && p.Notes == nil
}

// NotificationRecord is one in-app notification to persist during fan-out.
type NotificationRecord struct {
	UserID uuid.UUID
	Title  string
	Body   string
	JobID  *uuid.UUID
}

// SessionRecord is the stored exchange result from the identity provider.
type SessionRecord struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}
