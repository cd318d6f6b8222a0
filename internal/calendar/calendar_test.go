package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/carteira/internal/calendar"
)

func TestDate(t *testing.T) {
	brt := time.FixedZone("BRT", -3*3600)

	assert.Equal(t, calendar.New(2024, 3, 21), calendar.Date(time.Date(2024, 3, 21, 23, 30, 0, 0, brt)))
	assert.Equal(t, calendar.New(2024, 3, 21), calendar.Date(calendar.New(2024, 3, 21)))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{name: "Backwards", from: calendar.New(2024, 3, 15), n: -5, want: calendar.New(2023, 10, 15)},
		{name: "ClampsToFebruary", from: calendar.New(2024, 3, 31), n: -1, want: calendar.New(2024, 2, 29)},
		{name: "ClampsToApril", from: calendar.New(2024, 1, 31), n: 3, want: calendar.New(2024, 4, 30)},
		{name: "AcrossYear", from: calendar.New(2024, 11, 30), n: 2, want: calendar.New(2025, 1, 30)},
		{name: "Zero", from: calendar.New(2024, 5, 5), n: 0, want: calendar.New(2024, 5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.AddMonths(tt.from, tt.n))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	start, end := calendar.MonthBounds(calendar.New(2024, 2, 10))

	assert.Equal(t, calendar.New(2024, 2, 1), start)
	assert.Equal(t, calendar.New(2024, 2, 29), end)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, calendar.DaysIn(2024, time.February))
	assert.Equal(t, 28, calendar.DaysIn(2023, time.February))
	assert.Equal(t, 31, calendar.DaysIn(2024, time.December))
	assert.Equal(t, 30, calendar.DaysIn(2024, time.November))
}
