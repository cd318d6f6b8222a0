package receivable

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/calendar"
)

var (
	ErrNotFound        = errors.New("receivable not found")
	ErrInvalidInput    = errors.New("invalid receivable")
	ErrAlreadyReceived = errors.New("receivable already received")
	ErrTemplate        = errors.New("recurring templates are received through their recurring receivable")
)

type Status string

const (
	StatusPending           Status = "pending"
	StatusReceived          Status = "received"
	StatusRecurringTemplate Status = "recurring_template"
)

// Receivable is a one-time expected inflow, or an instance materialized from a
// RecurringReceivable.
type Receivable struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      Status
	Category    string
	RecurringID *uuid.UUID
}

func (r *Receivable) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if r.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}

	return nil
}

type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
	IntervalYearly  Interval = "yearly"
)

func (i Interval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalYearly:
		return true
	}

	return false
}

// RecurringReceivable is a template; it is never received itself. Each
// occurrence is materialized into a Receivable when it is received.
type RecurringReceivable struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	StartDate   time.Time
	Interval    Interval
	EndDate     *time.Time
	Category    string
}

func (r *RecurringReceivable) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if !r.Interval.Valid() {
		return fmt.Errorf("%w: unknown interval %q", ErrInvalidInput, r.Interval)
	}

	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	return nil
}

// ActiveDuring reports whether [StartDate, EndDate] overlaps [start, end]. A
// missing end date leaves the template open.
func (r *RecurringReceivable) ActiveDuring(start, end time.Time) bool {
	if r.StartDate.After(end) {
		return false
	}

	return r.EndDate == nil || !r.EndDate.Before(start)
}

// Occurrences lists the due dates inside [from, to], both inclusive. Monthly and
// yearly schedules keep the start day, clamped to shorter months.
func (r *RecurringReceivable) Occurrences(from, to time.Time) []time.Time {
	if !r.Interval.Valid() {
		return nil
	}

	from, to = calendar.Date(from), calendar.Date(to)
	start := calendar.Date(r.StartDate)

	if r.EndDate != nil {
		if end := calendar.Date(*r.EndDate); end.Before(to) {
			to = end
		}
	}

	var out []time.Time

	for n := r.firstIndex(start, from); ; n++ {
		due := r.nth(start, n)
		if due.After(to) {
			break
		}

		if !due.Before(from) {
			out = append(out, due)
		}
	}

	return out
}

// firstIndex skips whole periods before from so long-running daily templates
// don't walk their full history.
func (r *RecurringReceivable) firstIndex(start, from time.Time) int {
	if !from.After(start) {
		return 0
	}

	days := int(from.Sub(start).Hours() / 24)

	switch r.Interval {
	case IntervalDaily:
		return days
	case IntervalWeekly:
		return days / 7
	case IntervalMonthly:
		return max(0, (from.Year()-start.Year())*12+int(from.Month()-start.Month())-1)
	case IntervalYearly:
		return max(0, from.Year()-start.Year()-1)
	}

	return 0
}

func (r *RecurringReceivable) nth(start time.Time, n int) time.Time {
	switch r.Interval {
	case IntervalDaily:
		return start.AddDate(0, 0, n)
	case IntervalWeekly:
		return start.AddDate(0, 0, 7*n)
	case IntervalMonthly:
		return calendar.AddMonths(start, n)
	default:
		return calendar.AddMonths(start, 12*n)
	}
}
