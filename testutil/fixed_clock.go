package testutil

import (
	"time"

	"github.com/circulib/lending-ledger-go/ledger"
)

// FixedClock is a ledger.Clock pinned to a configurable day, so tests can
// borrow and return on exact dates.
type FixedClock struct {
	day time.Time
}

// NewFixedClock creates a FixedClock pinned to the given day.
func NewFixedClock(day time.Time) *FixedClock {
	return &FixedClock{day: ledger.ToCalendarDate(day)}
}

// Today returns the pinned day.
func (c *FixedClock) Today() time.Time {
	return c.day
}

// AdvanceDays moves the pinned day forward by the given number of days.
func (c *FixedClock) AdvanceDays(days int) {
	c.day = c.day.AddDate(0, 0, days)
}

// Day builds a calendar date for test fixtures.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
