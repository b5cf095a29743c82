//go:build unit

package job_test

import (
	"testing"
	"time"

	"glass-dispatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() job.NewJobParams {
	return job.NewJobParams{
		CustomerName: "Maria Lopez",
		Phone:        "555-0100",
		Address:      "12 Main St",
		Lat:          29.78,
		Lng:          -95.67,
		VehicleMake:  "Toyota",
		VehicleModel: "Camry",
		VehicleYear:  "2019",
		JobType:      "windshield",
	}
}

func TestNewJob(t *testing.T) {
	creator := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := job.NewJob(validParams(), creator)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, job.TypeWindshield, actual.JobType())
		assert.Equal(t, job.StatusPending, actual.Status())
		assert.Equal(t, creator, actual.CreatedBy())
		assert.NotNil(t, actual.Photos())
		assert.False(t, actual.NeedsFirstStopCheck())
	})

	t.Run("validation", func(t *testing.T) {
		part := "WS-100"
		distributorID := uuid.New()

		cases := []struct {
			name   string
			mutate func(*job.NewJobParams)
			errIs  error
		}{
			{
				name:   "empty customer name",
				mutate: func(p *job.NewJobParams) { p.CustomerName = "" },
				errIs:  job.ErrEmptyCustomerName,
			},
			{
				name:   "unknown job type",
				mutate: func(p *job.NewJobParams) { p.JobType = "sunroof" },
				errIs:  job.ErrInvalidJobType,
			},
			{
				name:   "unknown status",
				mutate: func(p *job.NewJobParams) { p.Status = "paused" },
				errIs:  job.ErrInvalidStatus,
			},
			{
				name:   "explicit valid status",
				mutate: func(p *job.NewJobParams) { p.Status = "scheduled" },
			},
			{
				name:   "distributor without part number",
				mutate: func(p *job.NewJobParams) { p.DistributorID = &distributorID },
				errIs:  job.ErrPartWithoutDistributor,
			},
			{
				name: "distributor with part number",
				mutate: func(p *job.NewJobParams) {
					p.DistributorID = &distributorID
					p.PartNumber = &part
				},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := validParams()
				tc.mutate(&p)

				actual, err := job.NewJob(p, creator)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, actual)
			})
		}
	})

	t.Run("first stop check requires appointment time", func(t *testing.T) {
		p := validParams()
		p.IsFirstStop = true

		actual, err := job.NewJob(p, creator)
		require.NoError(t, err)
		assert.False(t, actual.NeedsFirstStopCheck())

		at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		p.AppointmentTime = &at
		actual, err = job.NewJob(p, creator)
		require.NoError(t, err)
		assert.True(t, actual.NeedsFirstStopCheck())
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), actual.FirstStopWindow().Start)
	})
}
