package job

import (
	"errors"
	"time"
)

// MaxFirstStopsPerDay bounds how many jobs across the whole fleet may be
// flagged as a technician's first stop on a single calendar day.
const MaxFirstStopsPerDay = 3

var ErrFirstStopCapacityExceeded = errors.New("first stop capacity exceeded for this day")

// DayWindow is the half-open UTC interval [Start, End) covering the calendar
// day of an appointment. The capacity rule is always evaluated in UTC,
// regardless of the server or database timezone.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

func NewDayWindow(appointment time.Time) DayWindow {
	utc := appointment.UTC()
	start := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return DayWindow{
		Start: start,
		End:   start.Add(24 * time.Hour),
	}
}

func (w DayWindow) Contains(t time.Time) bool {
	utc := t.UTC()
	return !utc.Before(w.Start) && utc.Before(w.End)
}

// CheckFirstStopCapacity applies the fleet-wide daily bound to the number of
// first-stop jobs already scheduled in the window.
func CheckFirstStopCapacity(existing int64) error {
	if existing >= MaxFirstStopsPerDay {
		return ErrFirstStopCapacityExceeded
	}
	return nil
}
