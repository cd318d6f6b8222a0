package fixedexpense

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("fixed expense not found")
	ErrInvalidInput = errors.New("invalid fixed expense")
)

// FixedExpense is a monthly obligation. It has no activation window: it counts
// towards every month.
type FixedExpense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	DueDay      int
	AccountID   uuid.UUID
	Category    string
}

func (e *FixedExpense) Validate() error {
	if e.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	if !e.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if e.DueDay < 1 || e.DueDay > 31 {
		return fmt.Errorf("%w: due day must be between 1 and 31", ErrInvalidInput)
	}

	return nil
}

func Total(expenses []*FixedExpense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return total
}
