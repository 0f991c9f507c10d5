package ledger

import (
	"time"
)

const hoursPerDay = 24

// Clock provides the current calendar date to the lending state machine.
// Injecting it keeps fine computation deterministic under test.
type Clock interface {
	Today() time.Time
}

// SystemClock is the production Clock reading wall-clock time.
type SystemClock struct{}

// Today returns the current calendar date, normalized to midnight UTC.
func (SystemClock) Today() time.Time {
	return ToCalendarDate(time.Now())
}

// ToCalendarDate normalizes a timestamp to its calendar date: midnight UTC,
// no time-of-day component. All ledger dates pass through this.
func ToCalendarDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from one date to another.
// Both arguments are normalized first; partial days never occur.
func DaysBetween(from time.Time, until time.Time) int {
	return int(ToCalendarDate(until).Sub(ToCalendarDate(from)).Hours() / hoursPerDay)
}
