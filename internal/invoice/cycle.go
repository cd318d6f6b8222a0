package invoice

import (
	"time"

	"github.com/MrJamesThe3rd/carteira/internal/calendar"
)

// OpenCycleClosingDate returns the closing date of the billing cycle that is
// open on today for a card closing on closingDay. The closing day is clamped to
// the length of whichever month the cycle closes in, and the result is the
// calendar date at UTC midnight so it compares equal to stored closing dates.
func OpenCycleClosingDate(today time.Time, closingDay int) time.Time {
	year, month, day := today.Date()

	effective := min(closingDay, calendar.DaysIn(year, month))
	if day > effective {
		next := calendar.New(year, month+1, 1)
		year, month = next.Year(), next.Month()
		effective = min(closingDay, calendar.DaysIn(year, month))
	}

	return calendar.New(year, month, effective)
}
