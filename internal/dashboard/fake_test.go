package dashboard_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
	"github.com/MrJamesThe3rd/carteira/internal/fixedexpense"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/receivable"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

// ledger is an in-memory data source for one user.
type ledger struct {
	accounts     []*account.Account
	transactions []*transaction.Transaction
	fixed        []*fixedexpense.FixedExpense
	invoices     []*invoice.Invoice
	receivables  []*receivable.Receivable
	recurring    []*receivable.RecurringReceivable

	recentLimit int
}

func (l *ledger) readers() dashboard.Readers {
	return dashboard.Readers{
		Accounts:      l,
		Transactions:  l,
		FixedExpenses: l,
		Invoices:      l,
		Receivables:   l,
	}
}

func (l *ledger) ListAccounts(context.Context, uuid.UUID) ([]*account.Account, error) {
	return l.accounts, nil
}

func (l *ledger) ListTransactions(_ context.Context, _ uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	var out []*transaction.Transaction

	for _, tx := range l.transactions {
		if filter.AccountID != nil && tx.AccountID != *filter.AccountID {
			continue
		}

		if filter.StartDate != nil && tx.Date.Before(*filter.StartDate) {
			continue
		}

		if filter.EndDate != nil && tx.Date.After(*filter.EndDate) {
			continue
		}

		out = append(out, tx)
	}

	return out, nil
}

func (l *ledger) RecentTransactions(_ context.Context, _ uuid.UUID, limit int) ([]*transaction.Transaction, error) {
	l.recentLimit = limit

	return l.transactions[:min(limit, len(l.transactions))], nil
}

func (l *ledger) ListFixedExpenses(context.Context, uuid.UUID) ([]*fixedexpense.FixedExpense, error) {
	return l.fixed, nil
}

func (l *ledger) FindInvoice(_ context.Context, _ uuid.UUID, accountID uuid.UUID, closingDate time.Time, status invoice.Status) (*invoice.Invoice, error) {
	for _, inv := range l.invoices {
		if inv.AccountID == accountID && inv.ClosingDate.Equal(closingDate) && inv.Status == status {
			return inv, nil
		}
	}

	return nil, invoice.ErrNotFound
}

func (l *ledger) ListReceivables(_ context.Context, _ uuid.UUID, filter receivable.ListFilter) ([]*receivable.Receivable, error) {
	var out []*receivable.Receivable

	for _, r := range l.receivables {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}

		if filter.DueFrom != nil && r.DueDate.Before(*filter.DueFrom) {
			continue
		}

		if filter.DueTo != nil && r.DueDate.After(*filter.DueTo) {
			continue
		}

		out = append(out, r)
	}

	return out, nil
}

func (l *ledger) ListRecurringReceivables(context.Context, uuid.UUID) ([]*receivable.RecurringReceivable, error) {
	return l.recurring, nil
}
