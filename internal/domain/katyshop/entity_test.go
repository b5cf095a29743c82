//go:build unit

package katyshop_test

import (
	"testing"
	"time"

	"glass-dispatch/internal/domain/katyshop"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShopJob(t *testing.T) {
	creator := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := katyshop.NewShopJob(katyshop.NewShopJobParams{
			Title:         "Windshield swap - walk-in",
			CustomerName:  "J. Ortiz",
			ScheduledDate: date,
			TimeSlot:      "09:30",
		}, creator)
		require.NoError(t, err)

		assert.Equal(t, katyshop.StatusPending, actual.Status())
		assert.Equal(t, "09:30", actual.TimeSlot())
	})

	t.Run("time slot validation", func(t *testing.T) {
		cases := []struct {
			name string
			slot string
			ok   bool
		}{
			{name: "midnight", slot: "00:00", ok: true},
			{name: "last slot", slot: "23:59", ok: true},
			{name: "hour out of range", slot: "24:00"},
			{name: "minute out of range", slot: "09:60"},
			{name: "missing minutes", slot: "09"},
			{name: "with seconds", slot: "09:30:00"},
			{name: "empty", slot: ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := katyshop.NewShopJob(katyshop.NewShopJobParams{
					Title:         "t",
					ScheduledDate: date,
					TimeSlot:      tc.slot,
				}, creator)
				if tc.ok {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, katyshop.ErrInvalidTimeSlot)
			})
		}
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := katyshop.NewShopJob(katyshop.NewShopJobParams{
			ScheduledDate: date,
			TimeSlot:      "09:00",
		}, creator)
		require.ErrorIs(t, err, katyshop.ErrEmptyTitle)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    katyshop.Status
		to      katyshop.Status
		allowed bool
	}{
		{katyshop.StatusPending, katyshop.StatusInProgress, true},
		{katyshop.StatusPending, katyshop.StatusCompleted, true},
		{katyshop.StatusPending, katyshop.StatusCancelled, true},
		{katyshop.StatusInProgress, katyshop.StatusCompleted, true},
		{katyshop.StatusInProgress, katyshop.StatusCancelled, true},
		{katyshop.StatusInProgress, katyshop.StatusPending, false},
		{katyshop.StatusCompleted, katyshop.StatusInProgress, false},
		{katyshop.StatusCancelled, katyshop.StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}
