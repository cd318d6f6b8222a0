package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/calendar"
	"github.com/MrJamesThe3rd/carteira/internal/fixedexpense"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/receivable"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type Service struct {
	readers Readers
	loc     *time.Location
	now     func() time.Time
}

type Option func(*Service)

// WithLocation sets the timezone "today" is evaluated in. Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(readers Readers, opts ...Option) *Service {
	s := &Service{readers: readers, loc: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Today is the current calendar date in the service's location.
func (s *Service) Today() time.Time {
	return calendar.Date(s.now().In(s.loc))
}

// Summary reads everything from scratch. The first failing read aborts the
// whole call.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	summary, err := s.summary(ctx, userID, s.Today())
	if err != nil {
		slog.Error("failed to build dashboard", "user_id", userID, "error", err)
		return nil, err
	}

	return summary, nil
}

func (s *Service) summary(ctx context.Context, userID uuid.UUID, today time.Time) (*Summary, error) {
	accounts, err := s.readers.Accounts.ListAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	var (
		trend  []TrendPoint
		recent []*transaction.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		trend, err = s.Trend(gctx, userID, accounts, today)

		return err
	})

	g.Go(func() error {
		var err error

		recent, err = s.readers.Transactions.RecentTransactions(gctx, userID, RecentTransactionsLimit)
		if err != nil {
			return fmt.Errorf("listing recent transactions: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The trend ends with the current month.
	current := trend[len(trend)-1]

	return &Summary{
		TotalBalance:       TotalBalance(accounts),
		MonthlyIncome:      current.Income,
		MonthlyExpenses:    current.Expenses,
		Trend:              trend,
		RecentTransactions: recent,
	}, nil
}

// Trend aggregates the TrendMonths months ending with today's, oldest first.
// Months are independent and computed concurrently.
func (s *Service) Trend(ctx context.Context, userID uuid.UUID, accounts []*account.Account, today time.Time) ([]TrendPoint, error) {
	points := make([]TrendPoint, TrendMonths)

	g, gctx := errgroup.WithContext(ctx)

	for i := range TrendMonths {
		ref := calendar.AddMonths(today, i-(TrendMonths-1))

		g.Go(func() error {
			totals, err := s.Month(gctx, userID, accounts, ref)
			if err != nil {
				return err
			}

			first, _ := calendar.MonthBounds(ref)
			points[i] = TrendPoint{Month: first, Label: first.Format("Jan"), MonthTotals: totals}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}

// Month totals the month containing ref. Card purchases count through the
// invoice of the cycle open as of ref, never as raw transactions.
func (s *Service) Month(ctx context.Context, userID uuid.UUID, accounts []*account.Account, ref time.Time) (MonthTotals, error) {
	start, end := calendar.MonthBounds(ref)

	slog.Debug("aggregating month", "user_id", userID, "month", start.Format("2006-01"))

	expenses, err := s.fixedExpenses(ctx, userID)
	if err != nil {
		return MonthTotals{}, err
	}

	income, spent, err := s.accountFlows(ctx, userID, accounts, start, end)
	if err != nil {
		return MonthTotals{}, err
	}

	expenses = expenses.Add(spent)

	billed, err := s.invoiceTotals(ctx, userID, accounts, ref)
	if err != nil {
		return MonthTotals{}, err
	}

	expenses = expenses.Add(billed)

	expected, err := s.receivables(ctx, userID, start, end)
	if err != nil {
		return MonthTotals{}, err
	}

	income = income.Add(expected)

	return MonthTotals{Income: income, Expenses: expenses}, nil
}

// fixedExpenses apply to every month alike.
func (s *Service) fixedExpenses(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	expenses, err := s.readers.FixedExpenses.ListFixedExpenses(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("listing fixed expenses: %w", err)
	}

	return fixedexpense.Total(expenses), nil
}

func (s *Service) accountFlows(ctx context.Context, userID uuid.UUID, accounts []*account.Account, start, end time.Time) (decimal.Decimal, decimal.Decimal, error) {
	txs, err := s.readers.Transactions.ListTransactions(ctx, userID, transaction.ListFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("listing transactions: %w", err)
	}

	cards := make(map[uuid.UUID]bool)

	for _, a := range accounts {
		if a.IsCreditCard() {
			cards[a.ID] = true
		}
	}

	income, expenses := decimal.Zero, decimal.Zero

	for _, tx := range txs {
		if cards[tx.AccountID] {
			continue
		}

		if tx.Amount.IsPositive() {
			income = income.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}

	return income, expenses, nil
}

func (s *Service) invoiceTotals(ctx context.Context, userID uuid.UUID, accounts []*account.Account, ref time.Time) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, a := range accounts {
		if !a.IsCreditCard() || a.ClosingDay == nil {
			continue
		}

		closing := invoice.OpenCycleClosingDate(ref, *a.ClosingDay)

		inv, err := s.readers.Invoices.FindInvoice(ctx, userID, a.ID, closing, invoice.StatusOpen)
		if errors.Is(err, invoice.ErrNotFound) {
			continue
		}

		if err != nil {
			return decimal.Zero, fmt.Errorf("finding open invoice of %s: %w", a.ID, err)
		}

		total = total.Add(inv.Total())
	}

	return total, nil
}

func (s *Service) receivables(ctx context.Context, userID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	pending, err := s.readers.Receivables.ListReceivables(ctx, userID, receivable.ListFilter{
		Status:  new(receivable.StatusPending),
		DueFrom: &start,
		DueTo:   &end,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("listing receivables: %w", err)
	}

	total := decimal.Zero
	for _, r := range pending {
		total = total.Add(r.Amount)
	}

	recurring, err := s.readers.Receivables.ListRecurringReceivables(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("listing recurring receivables: %w", err)
	}

	for _, r := range recurring {
		if r.Interval == receivable.IntervalMonthly && r.ActiveDuring(start, end) {
			total = total.Add(r.Amount)
		}
	}

	return total, nil
}
