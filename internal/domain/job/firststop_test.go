//go:build unit

package job_test

import (
	"testing"
	"time"

	"glass-dispatch/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayWindow(t *testing.T) {
	t.Run("truncates to UTC midnight", func(t *testing.T) {
		appointment := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		w := job.NewDayWindow(appointment)

		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), w.End)
	})

	t.Run("non-UTC input is evaluated in UTC", func(t *testing.T) {
		// 2024-06-01T22:00-05:00 is 2024-06-02T03:00Z, so the window is June 2nd.
		loc := time.FixedZone("EST", -5*60*60)
		appointment := time.Date(2024, 6, 1, 22, 0, 0, 0, loc)
		w := job.NewDayWindow(appointment)

		assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), w.Start)
	})

	t.Run("contains is half-open", func(t *testing.T) {
		w := job.NewDayWindow(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

		assert.True(t, w.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, w.Contains(time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)))
		assert.False(t, w.Contains(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)))
		assert.False(t, w.Contains(time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)))
	})
}

func TestCheckFirstStopCapacity(t *testing.T) {
	cases := []struct {
		name     string
		existing int64
		errIs    error
	}{
		{name: "empty day", existing: 0},
		{name: "one below the cap", existing: job.MaxFirstStopsPerDay - 1},
		{name: "at the cap", existing: job.MaxFirstStopsPerDay, errIs: job.ErrFirstStopCapacityExceeded},
		{name: "over the cap", existing: job.MaxFirstStopsPerDay + 1, errIs: job.ErrFirstStopCapacityExceeded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := job.CheckFirstStopCapacity(tc.existing)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
