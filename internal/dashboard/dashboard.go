package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

const (
	TrendMonths             = 6
	RecentTransactionsLimit = 5
)

type MonthTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

type TrendPoint struct {
	// Month is the first day of the month.
	Month time.Time
	Label string
	MonthTotals
}

type Summary struct {
	TotalBalance       decimal.Decimal
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	Trend              []TrendPoint
	RecentTransactions []*transaction.Transaction
}

// TotalBalance nets what the user holds against what they owe: card balances
// are outstanding debt.
func TotalBalance(accounts []*account.Account) decimal.Decimal {
	total := decimal.Zero

	for _, a := range accounts {
		if a.IsCreditCard() {
			total = total.Sub(a.Balance)
			continue
		}

		total = total.Add(a.Balance)
	}

	return total
}
