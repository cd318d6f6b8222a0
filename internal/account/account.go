package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrInvalidAccount = errors.New("invalid account")
)

type Type string

const (
	TypeWallet     Type = "wallet"
	TypeChecking   Type = "checking"
	TypeCreditCard Type = "credit_card"
)

func (t Type) Valid() bool {
	switch t {
	case TypeWallet, TypeChecking, TypeCreditCard:
		return true
	}

	return false
}

// Account is a wallet, a bank account or a credit card. For credit cards
// Balance is the outstanding debt.
type Account struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        Type
	Balance     decimal.Decimal
	CreditLimit *decimal.Decimal
	ClosingDay  *int
	DueDay      *int
	CreatedAt   time.Time
}

func (a *Account) IsCreditCard() bool {
	return a.Type == TypeCreditCard
}

func (a *Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidAccount)
	}

	if !a.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidAccount, a.Type)
	}

	if a.CreditLimit != nil && a.CreditLimit.IsNegative() {
		return fmt.Errorf("%w: credit limit must not be negative", ErrInvalidAccount)
	}

	if !a.IsCreditCard() {
		if a.ClosingDay != nil || a.DueDay != nil {
			return fmt.Errorf("%w: closing and due day only apply to credit cards", ErrInvalidAccount)
		}

		return nil
	}

	if a.ClosingDay == nil || a.DueDay == nil {
		return fmt.Errorf("%w: credit cards need a closing and a due day", ErrInvalidAccount)
	}

	if !validDay(*a.ClosingDay) || !validDay(*a.DueDay) {
		return fmt.Errorf("%w: closing and due day must be between 1 and 31", ErrInvalidAccount)
	}

	return nil
}

func validDay(d int) bool {
	return d >= 1 && d <= 31
}
