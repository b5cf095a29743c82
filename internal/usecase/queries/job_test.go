//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glass-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJobViews struct {
	count     int64
	gotStart  time.Time
	gotEnd    time.Time
	gotExcl   *uuid.UUID
	callCount int
}

func (s *stubJobViews) FindByID(_ context.Context, _ uuid.UUID) (*queries.JobView, error) {
	return nil, nil
}

func (s *stubJobViews) List(_ context.Context, _ *string, _ int32) ([]*queries.JobListItem, error) {
	return nil, nil
}

func (s *stubJobViews) CountFirstStopsInWindow(_ context.Context, start, end time.Time, exclude *uuid.UUID) (int64, error) {
	s.callCount++
	s.gotStart = start
	s.gotEnd = end
	s.gotExcl = exclude
	return s.count, nil
}

type stubCommentViews struct{}

func (stubCommentViews) ListByJob(_ context.Context, _ uuid.UUID) ([]*queries.CommentView, error) {
	return nil, nil
}

func TestJobQueries_FirstStopCount(t *testing.T) {
	views := &stubJobViews{count: 2}
	q := queries.NewJobQueries(views, stubCommentViews{})

	got, err := q.FirstStopCount(context.Background(), "2025-06-03")

	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", got.Date)
	assert.Equal(t, int64(2), got.Count)
	assert.Equal(t, int64(1), got.Remaining)

	// window is the UTC calendar day, half open
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), views.gotStart)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), views.gotEnd)
	assert.Nil(t, views.gotExcl)
}

func TestJobQueries_FirstStopCount_RemainingClampedAtZero(t *testing.T) {
	views := &stubJobViews{count: 5}
	q := queries.NewJobQueries(views, stubCommentViews{})

	got, err := q.FirstStopCount(context.Background(), "2025-06-03")

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Count)
	assert.Equal(t, int64(0), got.Remaining)
}

func TestJobQueries_FirstStopCount_InvalidDate(t *testing.T) {
	views := &stubJobViews{}
	q := queries.NewJobQueries(views, stubCommentViews{})

	_, err := q.FirstStopCount(context.Background(), "June 3rd")

	require.Error(t, err)
	assert.True(t, errors.Is(err, queries.ErrInvalidDate))
	assert.Zero(t, views.callCount)
}
