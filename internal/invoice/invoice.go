package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

var (
	ErrNotFound    = errors.New("invoice not found")
	ErrNotCard     = errors.New("account is not a credit card")
	ErrAlreadyPaid = errors.New("invoice already paid")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusPaid   Status = "paid"
)

// Invoice is one billing cycle of a credit card. A card has at most one open
// invoice and closing dates are unique per card.
type Invoice struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AccountID    uuid.UUID
	ClosingDate  time.Time
	DueDate      time.Time
	Status       Status
	Transactions []*transaction.Transaction
}

// Total is the amount billed, regardless of the sign the purchases were stored with.
func (i *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range i.Transactions {
		total = total.Add(tx.Amount.Abs())
	}

	return total
}
