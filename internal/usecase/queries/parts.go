package queries

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// UnassignedBucket labels part-carrying jobs whose distributor reference is
// missing or was deleted.
const UnassignedBucket = "unassigned"

// PartsGroup is one distributor's share of a day's parts.
type PartsGroup struct {
	DistributorID   *uuid.UUID      `json:"distributor_id,omitempty"`
	DistributorName string          `json:"distributor_name"`
	Parts           []*PartsJobItem `json:"parts"`
}

// PartsReport is the daily pickup sheet: every part-carrying job scheduled on
// the date, partitioned by distributor.
type PartsReport struct {
	Date       string        `json:"date"`
	TotalJobs  int64         `json:"total_jobs"`
	TotalParts int           `json:"total_parts"`
	GroupCount int           `json:"group_count"`
	Groups     []*PartsGroup `json:"groups"`
}

type PartsQueries interface {
	ReportForDate(ctx context.Context, date string) (*PartsReport, error)
}

type PartsViewRepo interface {
	PartsJobsForDate(ctx context.Context, date string) ([]*PartsJobItem, error)
	CountJobsForDate(ctx context.Context, date string) (int64, error)
}

type partsQueriesImpl struct {
	repo PartsViewRepo
}

func NewPartsQueries(repo PartsViewRepo) PartsQueries {
	return &partsQueriesImpl{repo: repo}
}

func (q *partsQueriesImpl) ReportForDate(ctx context.Context, date string) (*PartsReport, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, time.UTC); err != nil {
		return nil, ErrInvalidDate
	}

	items, err := q.repo.PartsJobsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	totalJobs, err := q.repo.CountJobsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	report := BuildPartsReport(date, items)
	report.TotalJobs = totalJobs
	return report, nil
}

// BuildPartsReport partitions the day's part-carrying jobs into distributor
// groups plus an unassigned bucket. Every item lands in exactly one group.
// Groups are ordered by name with unassigned last.
func BuildPartsReport(date string, items []*PartsJobItem) *PartsReport {
	byDistributor := map[uuid.UUID]*PartsGroup{}
	var unassigned *PartsGroup

	for _, item := range items {
		if item.DistributorID == nil {
			if unassigned == nil {
				unassigned = &PartsGroup{DistributorName: UnassignedBucket, Parts: []*PartsJobItem{}}
			}
			unassigned.Parts = append(unassigned.Parts, item)
			continue
		}

		group, ok := byDistributor[*item.DistributorID]
		if !ok {
			name := UnassignedBucket
			if item.DistributorName != nil {
				name = *item.DistributorName
			}
			group = &PartsGroup{
				DistributorID:   item.DistributorID,
				DistributorName: name,
				Parts:           []*PartsJobItem{},
			}
			byDistributor[*item.DistributorID] = group
		}
		group.Parts = append(group.Parts, item)
	}

	groups := make([]*PartsGroup, 0, len(byDistributor)+1)
	for _, group := range byDistributor {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].DistributorName < groups[j].DistributorName
	})
	if unassigned != nil {
		groups = append(groups, unassigned)
	}

	return &PartsReport{
		Date:       date,
		TotalParts: len(items),
		GroupCount: len(groups),
		Groups:     groups,
	}
}
