//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glass-dispatch/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partsItem(distributorID *uuid.UUID, distributorName *string, part string) *queries.PartsJobItem {
	appt := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	return &queries.PartsJobItem{
		JobID:           uuid.New(),
		CustomerName:    "Jane Driver",
		PartNumber:      part,
		JobType:         "windshield",
		Status:          "scheduled",
		AppointmentTime: &appt,
		DistributorID:   distributorID,
		DistributorName: distributorName,
	}
}

func strPtr(s string) *string { return &s }

func TestBuildPartsReport_GroupsByDistributor(t *testing.T) {
	pilkington := uuid.New()
	mygrant := uuid.New()

	items := []*queries.PartsJobItem{
		partsItem(&pilkington, strPtr("Pilkington"), "WS-100"),
		partsItem(&mygrant, strPtr("Mygrant Glass"), "WS-200"),
		partsItem(nil, nil, "WS-300"),
		partsItem(&pilkington, strPtr("Pilkington"), "WS-101"),
	}

	report := queries.BuildPartsReport("2025-06-03", items)

	assert.Equal(t, "2025-06-03", report.Date)
	assert.Equal(t, 4, report.TotalParts)
	assert.Equal(t, 3, report.GroupCount)
	require.Len(t, report.Groups, 3)

	// groups sorted by name, unassigned bucket last
	names := []string{
		report.Groups[0].DistributorName,
		report.Groups[1].DistributorName,
		report.Groups[2].DistributorName,
	}
	if diff := cmp.Diff([]string{"Mygrant Glass", "Pilkington", queries.UnassignedBucket}, names); diff != "" {
		t.Errorf("group order mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, report.Groups[0].Parts, 1)
	assert.Len(t, report.Groups[1].Parts, 2)
	assert.Len(t, report.Groups[2].Parts, 1)
	assert.Nil(t, report.Groups[2].DistributorID)

	// every item lands in exactly one group
	total := 0
	for _, g := range report.Groups {
		total += len(g.Parts)
	}
	assert.Equal(t, report.TotalParts, total)
}

func TestBuildPartsReport_Empty(t *testing.T) {
	report := queries.BuildPartsReport("2025-06-03", nil)

	assert.Equal(t, 0, report.TotalParts)
	assert.Equal(t, 0, report.GroupCount)
	assert.Empty(t, report.Groups)
}

func TestBuildPartsReport_AllUnassigned(t *testing.T) {
	items := []*queries.PartsJobItem{
		partsItem(nil, nil, "WS-300"),
		partsItem(nil, nil, "WS-301"),
	}

	report := queries.BuildPartsReport("2025-06-03", items)

	require.Len(t, report.Groups, 1)
	assert.Equal(t, queries.UnassignedBucket, report.Groups[0].DistributorName)
	assert.Len(t, report.Groups[0].Parts, 2)
}

type stubPartsRepo struct {
	items     []*queries.PartsJobItem
	totalJobs int64
}

func (s *stubPartsRepo) PartsJobsForDate(_ context.Context, _ string) ([]*queries.PartsJobItem, error) {
	return s.items, nil
}

func (s *stubPartsRepo) CountJobsForDate(_ context.Context, _ string) (int64, error) {
	return s.totalJobs, nil
}

func TestPartsQueries_ReportForDate(t *testing.T) {
	id := uuid.New()
	q := queries.NewPartsQueries(&stubPartsRepo{
		items:     []*queries.PartsJobItem{partsItem(&id, strPtr("Pilkington"), "WS-100")},
		totalJobs: 7,
	})

	report, err := q.ReportForDate(context.Background(), "2025-06-03")

	require.NoError(t, err)
	assert.Equal(t, int64(7), report.TotalJobs)
	assert.Equal(t, 1, report.TotalParts)
}

func TestPartsQueries_ReportForDate_InvalidDate(t *testing.T) {
	q := queries.NewPartsQueries(&stubPartsRepo{})

	_, err := q.ReportForDate(context.Background(), "06/03/2025")

	require.Error(t, err)
	assert.True(t, errors.Is(err, queries.ErrInvalidDate))
}
