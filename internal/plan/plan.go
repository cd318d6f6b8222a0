package plan

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("financial plan not found")
	ErrInvalidInput = errors.New("invalid financial plan")
)

var hundred = decimal.NewFromInt(100)

// FinancialPlan is a savings goal. CurrentAmount only grows through AddValue.
type FinancialPlan struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	GoalAmount    decimal.Decimal
	CurrentAmount decimal.Decimal
}

func (p *FinancialPlan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !p.GoalAmount.IsPositive() {
		return fmt.Errorf("%w: goal amount must be positive", ErrInvalidInput)
	}

	return nil
}

// Progress is the saved share of the goal in percent, capped at 100.
func (p *FinancialPlan) Progress() decimal.Decimal {
	if !p.GoalAmount.IsPositive() {
		return decimal.Zero
	}

	pct := p.CurrentAmount.Mul(hundred).Div(p.GoalAmount).Round(2)

	return decimal.Min(pct, hundred)
}

func (p *FinancialPlan) Remaining() decimal.Decimal {
	return decimal.Max(p.GoalAmount.Sub(p.CurrentAmount), decimal.Zero)
}
