package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-ledger-go/ledger"
)

func Test_FineSchedule_Fine_DefaultSchedule(t *testing.T) {
	schedule := ledger.DefaultFineSchedule()
	returnDate := time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		daysBorrowed int
		expectedFine int64
	}{
		{
			name:         "same-day return yields no fine",
			daysBorrowed: 0,
			expectedFine: 0,
		},
		{
			name:         "return within grace period yields no fine",
			daysBorrowed: 10,
			expectedFine: 0,
		},
		{
			name:         "return exactly at grace boundary yields no fine",
			daysBorrowed: 14,
			expectedFine: 0,
		},
		{
			name:         "one day overdue yields one daily rate",
			daysBorrowed: 15,
			expectedFine: 5,
		},
		{
			name:         "twenty days borrowed yields six days of fines",
			daysBorrowed: 20,
			expectedFine: 30,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			borrowDate := returnDate.AddDate(0, 0, -tc.daysBorrowed)

			// act
			fine := schedule.Fine(borrowDate, returnDate)

			// assert
			assert.Equal(t, tc.expectedFine, fine)
		})
	}
}

func Test_FineSchedule_Fine_CustomScheduleIsApplied(t *testing.T) {
	// arrange
	schedule := ledger.FineSchedule{GracePeriodDays: 7, DailyRateCents: 25}
	returnDate := time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC)
	borrowDate := returnDate.AddDate(0, 0, -10)

	// act
	fine := schedule.Fine(borrowDate, returnDate)

	// assert
	assert.Equal(t, int64(3*25), fine)
}

func Test_FineSchedule_Fine_IgnoresTimeOfDay(t *testing.T) {
	// arrange - 15 calendar days apart, but the clock readings are 14.5 days apart
	schedule := ledger.DefaultFineSchedule()
	borrowDate := time.Date(2025, time.March, 1, 23, 0, 0, 0, time.UTC)
	returnDate := time.Date(2025, time.March, 16, 11, 0, 0, 0, time.UTC)

	// act
	fine := schedule.Fine(borrowDate, returnDate)

	// assert - whole-day delta counts, no partial-day proration
	assert.Equal(t, int64(5), fine)
}
