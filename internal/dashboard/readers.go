package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/fixedexpense"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/receivable"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

//go:generate mockgen -source=readers.go -destination=readers_mock.go -package=dashboard
type AccountReader interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*account.Account, error)
}

type TransactionReader interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error)
	RecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*transaction.Transaction, error)
}

type FixedExpenseReader interface {
	ListFixedExpenses(ctx context.Context, userID uuid.UUID) ([]*fixedexpense.FixedExpense, error)
}

// InvoiceReader returns invoice.ErrNotFound when the card has no invoice with
// that closing date and status.
type InvoiceReader interface {
	FindInvoice(ctx context.Context, userID, accountID uuid.UUID, closingDate time.Time, status invoice.Status) (*invoice.Invoice, error)
}

type ReceivableReader interface {
	ListReceivables(ctx context.Context, userID uuid.UUID, filter receivable.ListFilter) ([]*receivable.Receivable, error)
	ListRecurringReceivables(ctx context.Context, userID uuid.UUID) ([]*receivable.RecurringReceivable, error)
}

// Readers are the data sources an aggregation reads from. The stores satisfy
// them directly.
type Readers struct {
	Accounts      AccountReader
	Transactions  TransactionReader
	FixedExpenses FixedExpenseReader
	Invoices      InvoiceReader
	Receivables   ReceivableReader
}
