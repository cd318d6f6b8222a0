package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

// Transaction is a signed money movement on one account: positive is income,
// negative is expense. Card purchases carry the invoice they were billed to.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	AccountID          uuid.UUID
	Amount             decimal.Decimal
	Date               time.Time
	Category           string
	Description        string
	InstallmentNumber  *int
	TotalInstallments  *int
	OriginalPurchaseID *uuid.UUID
	InvoiceID          *uuid.UUID
	CreatedAt          time.Time
}

func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

func (t *Transaction) IsInstallment() bool {
	return t.TotalInstallments != nil && *t.TotalInstallments > 1
}
