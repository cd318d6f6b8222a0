package view

import (
	"time"

	"github.com/MrJamesThe3rd/carteira/internal/calendar"
)

type Timeframe int

const (
	TimeframeThisMonth Timeframe = iota
	TimeframeLastMonth
	TimeframeLast3Months
	TimeframeThisYear
	TimeframeAll
	TimeframeCustom
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeLastMonth:
		return "Last Month"
	case TimeframeLast3Months:
		return "Last 3 Months"
	case TimeframeThisYear:
		return "This Year"
	case TimeframeAll:
		return "All Time"
	case TimeframeCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// timeframeToDateRange resolves a predefined timeframe to inclusive calendar
// dates around today.
func timeframeToDateRange(tf Timeframe, today time.Time) (time.Time, time.Time) {
	today = calendar.Date(today)

	switch tf {
	case TimeframeThisMonth:
		first, _ := calendar.MonthBounds(today)
		return first, today
	case TimeframeLastMonth:
		return calendar.MonthBounds(calendar.AddMonths(today, -1))
	case TimeframeLast3Months:
		first, _ := calendar.MonthBounds(calendar.AddMonths(today, -2))
		return first, today
	case TimeframeThisYear:
		return calendar.New(today.Year(), time.January, 1), today
	}

	return time.Time{}, time.Time{}
}

// monthRange is the first and last day of the month offset months from today.
func monthRange(today time.Time, offset int) (time.Time, time.Time) {
	return calendar.MonthBounds(calendar.AddMonths(today, offset))
}
