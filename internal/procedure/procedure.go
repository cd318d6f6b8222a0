// Package procedure is the port to the backend's named remote procedures. Every
// balance change, invoice transition, installment split and recurring
// materialization happens inside them; callers only supply inputs.
package procedure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid procedure input")

//go:generate mockgen -source=procedure.go -destination=procedure_mock.go -package=procedure
type Procedures interface {
	PayInvoice(ctx context.Context, in PayInvoiceInput) error
	CreateExpense(ctx context.Context, in CreateExpenseInput) (uuid.UUID, error)
	CreateIncome(ctx context.Context, in CreateIncomeInput) (uuid.UUID, error)
	MarkReceivableReceived(ctx context.Context, in MarkReceivableReceivedInput) error
	ReceiveRecurringReceivable(ctx context.Context, in ReceiveRecurringReceivableInput) (uuid.UUID, error)
	DeleteTransaction(ctx context.Context, in DeleteInput) error
	DeleteReceivable(ctx context.Context, in DeleteInput) error
	DeleteRecurringReceivable(ctx context.Context, in DeleteInput) error
	AddPlanValue(ctx context.Context, in AddPlanValueInput) error
}

type PayInvoiceInput struct {
	UserID          uuid.UUID
	InvoiceID       uuid.UUID
	PayingAccountID uuid.UUID
	PaymentDate     time.Time
}

// CreateExpenseInput carries a positive amount; the backend stores it negated and
// splits it across Installments invoice cycles when the account is a card.
type CreateExpenseInput struct {
	UserID       uuid.UUID
	AccountID    uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	Category     string
	Installments int
}

func (in CreateExpenseInput) Validate() error {
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if in.Installments < 1 {
		return fmt.Errorf("%w: installments must be at least 1", ErrInvalidInput)
	}

	if in.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	return nil
}

type CreateIncomeInput struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    string
}

func (in CreateIncomeInput) Validate() error {
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if in.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	return nil
}

type MarkReceivableReceivedInput struct {
	UserID       uuid.UUID
	ReceivableID uuid.UUID
	AccountID    uuid.UUID
	ReceivedDate time.Time
}

// ReceiveRecurringReceivableInput materializes the instance due on DueDate and
// marks it received into AccountID.
type ReceiveRecurringReceivableInput struct {
	UserID       uuid.UUID
	RecurringID  uuid.UUID
	AccountID    uuid.UUID
	DueDate      time.Time
	ReceivedDate time.Time
}

type DeleteInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

type AddPlanValueInput struct {
	UserID uuid.UUID
	PlanID uuid.UUID
	Amount decimal.Decimal
}

func (in AddPlanValueInput) Validate() error {
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	return nil
}
