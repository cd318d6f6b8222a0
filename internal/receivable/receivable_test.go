package receivable_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/carteira/internal/calendar"
	"github.com/MrJamesThe3rd/carteira/internal/receivable"
)

func TestRecurringReceivable_ActiveDuring(t *testing.T) {
	marchStart, marchEnd := calendar.MonthBounds(calendar.New(2024, 3, 1))

	tests := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  bool
	}{
		{name: "OpenEndedStartedBefore", start: calendar.New(2023, 1, 10), want: true},
		{name: "StartsInsideMonth", start: calendar.New(2024, 3, 31), want: true},
		{name: "StartsAfterMonth", start: calendar.New(2024, 4, 1), want: false},
		{name: "EndedBeforeMonth", start: calendar.New(2023, 1, 10), end: new(calendar.New(2024, 2, 29)), want: false},
		{name: "EndsOnFirstDay", start: calendar.New(2023, 1, 10), end: new(calendar.New(2024, 3, 1)), want: true},
		{name: "EndsAfterMonth", start: calendar.New(2024, 3, 5), end: new(calendar.New(2024, 12, 31)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &receivable.RecurringReceivable{StartDate: tt.start, EndDate: tt.end, Interval: receivable.IntervalMonthly}
			assert.Equal(t, tt.want, r.ActiveDuring(marchStart, marchEnd))
		})
	}
}

func TestRecurringReceivable_Occurrences(t *testing.T) {
	tests := []struct {
		name     string
		template receivable.RecurringReceivable
		from, to time.Time
		want     []time.Time
	}{
		{
			name:     "MonthlyClampsShortMonths",
			template: receivable.RecurringReceivable{StartDate: calendar.New(2024, 1, 31), Interval: receivable.IntervalMonthly},
			from:     calendar.New(2024, 1, 1),
			to:       calendar.New(2024, 4, 30),
			want: []time.Time{
				calendar.New(2024, 1, 31),
				calendar.New(2024, 2, 29),
				calendar.New(2024, 3, 31),
				calendar.New(2024, 4, 30),
			},
		},
		{
			name:     "MonthlyFromLongAgo",
			template: receivable.RecurringReceivable{StartDate: calendar.New(2019, 6, 5), Interval: receivable.IntervalMonthly},
			from:     calendar.New(2024, 3, 1),
			to:       calendar.New(2024, 3, 31),
			want:     []time.Time{calendar.New(2024, 3, 5)},
		},
		{
			name:     "WeeklyWithinWindow",
			template: receivable.RecurringReceivable{StartDate: calendar.New(2024, 3, 1), Interval: receivable.IntervalWeekly},
			from:     calendar.New(2024, 3, 10),
			to:       calendar.New(2024, 3, 31),
			want:     []time.Time{calendar.New(2024, 3, 15), calendar.New(2024, 3, 22), calendar.New(2024, 3, 29)},
		},
		{
			name:     "DailyStopsAtEndDate",
			template: receivable.RecurringReceivable{StartDate: calendar.New(2024, 1, 1), Interval: receivable.IntervalDaily, EndDate: new(calendar.New(2024, 3, 3))},
			from:     calendar.New(2024, 3, 1),
			to:       calendar.New(2024, 3, 31),
			want:     []time.Time{calendar.New(2024, 3, 1), calendar.New(2024, 3, 2), calendar.New(2024, 3, 3)},
		},
		{
			name:     "YearlyLeapDay",
			template: receivable.RecurringReceivable{StartDate: calendar.New(2020, 2, 29), Interval: receivable.IntervalYearly},
			from:     calendar.New(2022, 1, 1),
			to:       calendar.New(2024, 12, 31),
			want:     []time.Time{calendar.New(2022, 2, 28), calendar.New(2023, 2, 28), calendar.New(2024, 2, 29)},
		},
		{
			name:     "WindowBeforeStart",
			template: receivable.RecurringReceivable{StartDate: calendar.New(2024, 5, 1), Interval: receivable.IntervalMonthly},
			from:     calendar.New(2024, 1, 1),
			to:       calendar.New(2024, 3, 31),
		},
		{
			name:     "UnknownInterval",
			template: receivable.RecurringReceivable{StartDate: calendar.New(2024, 1, 1), Interval: "hourly"},
			from:     calendar.New(2024, 1, 1),
			to:       calendar.New(2024, 3, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.template.Occurrences(tt.from, tt.to))
		})
	}
}

func TestRecurringReceivable_Validate(t *testing.T) {
	valid := receivable.RecurringReceivable{
		Description: "Aluguel recebido",
		Amount:      decimal.NewFromInt(900),
		StartDate:   calendar.New(2024, 1, 10),
		Interval:    receivable.IntervalMonthly,
	}
	assert.NoError(t, valid.Validate())

	badInterval := valid
	badInterval.Interval = "fortnightly"
	assert.ErrorIs(t, badInterval.Validate(), receivable.ErrInvalidInput)

	endsBeforeStart := valid
	endsBeforeStart.EndDate = new(calendar.New(2023, 12, 31))
	assert.ErrorIs(t, endsBeforeStart.Validate(), receivable.ErrInvalidInput)

	noAmount := valid
	noAmount.Amount = decimal.Zero
	assert.ErrorIs(t, noAmount.Validate(), receivable.ErrInvalidInput)
}
