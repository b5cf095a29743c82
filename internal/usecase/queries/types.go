package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture,omitempty"`
	Role      string    `json:"role"`
	PushToken *string   `json:"push_token,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionView maps an opaque token to a user and an expiry instant
type SessionView struct {
	Token     string    `json:"-"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type JobView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerName       string     `json:"customer_name"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	Lat                float64    `json:"lat"`
	Lng                float64    `json:"lng"`
	VehicleMake        string     `json:"vehicle_make"`
	VehicleModel       string     `json:"vehicle_model"`
	VehicleYear        string     `json:"vehicle_year"`
	VinOrLP            *string    `json:"vin_or_lp,omitempty"`
	JobType            string     `json:"job_type"`
	Status             string     `json:"status"`
	IsFirstStop        bool       `json:"is_first_stop"`
	AppointmentTime    *time.Time `json:"appointment_time,omitempty"`
	PartNumber         *string    `json:"part_number,omitempty"`
	DistributorID      *uuid.UUID `json:"distributor_id,omitempty"`
	DistributorName    *string    `json:"distributor_name,omitempty"`
	ServiceAdvisorID   *uuid.UUID `json:"service_advisor_id,omitempty"`
	ServiceAdvisorName *string    `json:"service_advisor_name,omitempty"`
	AssignedTo         *uuid.UUID `json:"assigned_to,omitempty"`
	AssignedToName     *string    `json:"assigned_to_name,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	Photos             []string   `json:"photos"`
	CreatedBy          uuid.UUID  `json:"created_by"`
	CreatedByName      string     `json:"created_by_name"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// JobListItem omits the photo payload for list endpoints
type JobListItem struct {
	ID              uuid.UUID  `json:"id"`
	CustomerName    string     `json:"customer_name"`
	Address         string     `json:"address"`
	JobType         string     `json:"job_type"`
	Status          string     `json:"status"`
	IsFirstStop     bool       `json:"is_first_stop"`
	AppointmentTime *time.Time `json:"appointment_time,omitempty"`
	PartNumber      *string    `json:"part_number,omitempty"`
	AssignedTo      *uuid.UUID `json:"assigned_to,omitempty"`
	AssignedToName  *string    `json:"assigned_to_name,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type CommentView struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	JobID     *uuid.UUID `json:"job_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     *string   `json:"notes,omitempty"`
	JobCount  int64     `json:"job_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DistributorView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	JobCount  int64     `json:"job_count"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceAdvisorView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ShopJobView struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	CustomerName  string    `json:"customer_name"`
	PartNumber    *string   `json:"part_number,omitempty"`
	ScheduledDate string    `json:"scheduled_date"`
	TimeSlot      string    `json:"time_slot"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PartsJobItem is one part-carrying job inside a parts report bucket
type PartsJobItem struct {
	JobID           uuid.UUID  `json:"job_id"`
	CustomerName    string     `json:"customer_name"`
	PartNumber      string     `json:"part_number"`
	JobType         string     `json:"job_type"`
	Status          string     `json:"status"`
	AppointmentTime *time.Time `json:"appointment_time,omitempty"`
	DistributorID   *uuid.UUID `json:"distributor_id,omitempty"`
	DistributorName *string    `json:"distributor_name,omitempty"`
}
