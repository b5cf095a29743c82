package queries

import (
	"context"
	"time"

	"glass-dispatch/internal/domain/job"
	"glass-dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultJobListLimit = 1000

var ErrInvalidDate = errs.New("invalid date, expected YYYY-MM-DD")

// FirstStopCountView answers "how many first stops are taken on this day and
// how many slots remain".
type FirstStopCountView struct {
	Date      string `json:"date"`
	Count     int64  `json:"count"`
	Remaining int64  `json:"remaining"`
}

type JobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	List(ctx context.Context, status *string) ([]*JobListItem, error)
	FirstStopCount(ctx context.Context, date string) (*FirstStopCountView, error)
	ListComments(ctx context.Context, jobID uuid.UUID) ([]*CommentView, error)
}

type JobViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	List(ctx context.Context, status *string, limit int32) ([]*JobListItem, error)
	CountFirstStopsInWindow(ctx context.Context, start, end time.Time, exclude *uuid.UUID) (int64, error)
}

type CommentViewRepo interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*CommentView, error)
}

type jobQueriesImpl struct {
	jobs     JobViewRepo
	comments CommentViewRepo
}

func NewJobQueries(jobs JobViewRepo, comments CommentViewRepo) JobQueries {
	return &jobQueriesImpl{jobs: jobs, comments: comments}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*JobView, error) {
	return q.jobs.FindByID(ctx, id)
}

func (q *jobQueriesImpl) List(ctx context.Context, status *string) ([]*JobListItem, error) {
	return q.jobs.List(ctx, status, defaultJobListLimit)
}

func (q *jobQueriesImpl) FirstStopCount(ctx context.Context, date string) (*FirstStopCountView, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	window := job.NewDayWindow(day)
	count, err := q.jobs.CountFirstStopsInWindow(ctx, window.Start, window.End, nil)
	if err != nil {
		return nil, err
	}

	remaining := int64(job.MaxFirstStopsPerDay) - count
	if remaining < 0 {
		remaining = 0
	}
	return &FirstStopCountView{Date: date, Count: count, Remaining: remaining}, nil
}

func (q *jobQueriesImpl) ListComments(ctx context.Context, jobID uuid.UUID) ([]*CommentView, error) {
	return q.comments.ListByJob(ctx, jobID)
}
