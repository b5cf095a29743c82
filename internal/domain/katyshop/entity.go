package katyshop

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyTitle = errors.New("shop job title is required")

// Slots are clock times within the shop day, e.g. "09:30".
var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ShopJob is an entry in the single-technician in-shop queue. Unlike field
// jobs it is scheduled by date plus time-of-day slot, never dispatched.
type ShopJob struct {
	id            uuid.UUID
	title         string
	customerName  string
	partNumber    *string
	scheduledDate time.Time
	timeSlot      string
	status        Status
	notes         *string
	createdBy     uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

type NewShopJobParams struct {
	Title         string
	CustomerName  string
	PartNumber    *string
	ScheduledDate time.Time
	TimeSlot      string
	Notes         *string
}

func NewShopJob(p NewShopJobParams, createdBy uuid.UUID) (*ShopJob, error) {
	if p.Title == "" {
		return nil, ErrEmptyTitle
	}
	if !timeSlotPattern.MatchString(p.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	return &ShopJob{
		id:            uuid.New(),
		title:         p.Title,
		customerName:  p.CustomerName,
		partNumber:    p.PartNumber,
		scheduledDate: p.ScheduledDate,
		timeSlot:      p.TimeSlot,
		status:        StatusPending,
		notes:         p.Notes,
		createdBy:     createdBy,
	}, nil
}

func (s *ShopJob) ID() uuid.UUID            { return s.id }
func (s *ShopJob) Title() string            { return s.title }
func (s *ShopJob) CustomerName() string     { return s.customerName }
func (s *ShopJob) PartNumber() *string      { return s.partNumber }
func (s *ShopJob) ScheduledDate() time.Time { return s.scheduledDate }
func (s *ShopJob) TimeSlot() string         { return s.timeSlot }
func (s *ShopJob) Status() Status           { return s.status }
func (s *ShopJob) Notes() *string           { return s.notes }
func (s *ShopJob) CreatedBy() uuid.UUID     { return s.createdBy }
