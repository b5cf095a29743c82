package request

import (
	"time"

	"glass-dispatch/internal/domain/katyshop"

	"github.com/google/uuid"
)

type CreateShopJobRequest struct {
	Title         string  `json:"title" binding:"required"`
	CustomerName  string  `json:"customer_name"`
	PartNumber    *string `json:"part_number,omitempty"`
	ScheduledDate string  `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
	TimeSlot      string  `json:"time_slot" binding:"required"`
	Notes         *string `json:"notes,omitempty"`
}

func (r CreateShopJobRequest) ToDomain(createdBy uuid.UUID) (*katyshop.ShopJob, error) {
	date, err := time.ParseInLocation("2006-01-02", r.ScheduledDate, time.UTC)
	if err != nil {
		return nil, err
	}
	return katyshop.NewShopJob(katyshop.NewShopJobParams{
		Title:         r.Title,
		CustomerName:  r.CustomerName,
		PartNumber:    r.PartNumber,
		ScheduledDate: date,
		TimeSlot:      r.TimeSlot,
		Notes:         r.Notes,
	}, createdBy)
}

type UpdateShopJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
