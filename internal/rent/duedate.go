// Package rent holds the small amount of date arithmetic the client
// derives itself; everything else about balances comes from the backend.
package rent

import (
	"time"

	"leaseify/internal/models"
)

// NextDueDate returns the soonest date whose day-of-month matches the
// lease's start day and that is not strictly before today. When this
// month's occurrence has already passed, it rolls to next month. Months
// shorter than the due day clamp to their last day (a lease starting on
// the 31st is due Feb 28).
func NextDueDate(startDay int, today time.Time) time.Time {
	year, month, day := today.Date()
	loc := today.Location()

	due := onDay(year, month, startDay, loc)
	if due.Before(time.Date(year, month, day, 0, 0, 0, 0, loc)) {
		due = onDay(year, month+1, startDay, loc)
	}
	return due
}

// onDay builds the date for startDay within year/month, clamped to the
// month's length. month may be out of range; time.Date normalizes it.
func onDay(year int, month time.Month, startDay int, loc *time.Location) time.Time {
	// Normalize the year/month pair first so clamping uses the right month.
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	year, month = first.Year(), first.Month()

	day := startDay
	if last := daysIn(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysUntil counts whole days from today to due, date-only.
func DaysUntil(due, today time.Time) int {
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}

// IsActive reports whether the lease's date range covers today, both
// ends inclusive.
func IsActive(lease models.Lease, today time.Time) bool {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(lease.StartDate.Year(), lease.StartDate.Month(), lease.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(lease.EndDate.Year(), lease.EndDate.Month(), lease.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !t.Before(start) && !t.After(end)
}
