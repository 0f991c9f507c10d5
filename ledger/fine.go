package ledger

import (
	"time"
)

const (
	// DefaultGracePeriodDays is the number of days after borrowing during which no fine accrues.
	DefaultGracePeriodDays = 14

	// DefaultDailyRateCents is the flat fine per overdue day, in currency units.
	DefaultDailyRateCents = 5
)

// FineSchedule derives the fine owed for a closed loan from its borrow and
// return dates: a grace period followed by a flat daily rate, computed in
// whole calendar days.
type FineSchedule struct {
	GracePeriodDays int
	DailyRateCents  int64
}

// DefaultFineSchedule returns the schedule with the stock grace period and rate.
func DefaultFineSchedule() FineSchedule {
	return FineSchedule{
		GracePeriodDays: DefaultGracePeriodDays,
		DailyRateCents:  DefaultDailyRateCents,
	}
}

// Fine computes the fine for a loan borrowed on borrowDate and returned on
// returnDate. A same-day return yields a negative overdue count before
// clamping, so the fine is zero; so is a return exactly at the grace boundary.
func (s FineSchedule) Fine(borrowDate time.Time, returnDate time.Time) int64 {
	overdueDays := DaysBetween(borrowDate, returnDate) - s.GracePeriodDays
	if overdueDays < 0 {
		overdueDays = 0
	}

	return int64(overdueDays) * s.DailyRateCents
}
