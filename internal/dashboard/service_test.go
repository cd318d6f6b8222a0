package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/calendar"
	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
	"github.com/MrJamesThe3rd/carteira/internal/fixedexpense"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/receivable"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

var userID = uuid.New()

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, dec(want).String(), got.String(), msgAndArgs...)
}

func checking(balance string) *account.Account {
	return &account.Account{ID: uuid.New(), UserID: userID, Name: "Conta", Type: account.TypeChecking, Balance: dec(balance)}
}

func card(balance string, closingDay int) *account.Account {
	return &account.Account{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Cartão",
		Type:       account.TypeCreditCard,
		Balance:    dec(balance),
		ClosingDay: new(closingDay),
		DueDay:     new(min(closingDay+7, 28)),
	}
}

func tx(accountID uuid.UUID, amount string, date time.Time) *transaction.Transaction {
	return &transaction.Transaction{ID: uuid.New(), UserID: userID, AccountID: accountID, Amount: dec(amount), Date: date}
}

func TestTotalBalance(t *testing.T) {
	tests := []struct {
		name     string
		accounts []*account.Account
		want     string
	}{
		{name: "CardIsDebt", accounts: []*account.Account{checking("500"), card("200", 10)}, want: "300"},
		{
			name: "WalletCounts",
			accounts: []*account.Account{
				checking("1000.50"),
				{Type: account.TypeWallet, Balance: dec("49.50")},
				card("1500", 5),
			},
			want: "-450",
		},
		{name: "NoAccounts", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, dashboard.TotalBalance(tt.accounts))
		})
	}
}

func TestService_Month(t *testing.T) {
	today := calendar.New(2024, 3, 15)

	bank := checking("500")
	visa := card("300", 20)
	cardPurchase := tx(visa.ID, "-300", calendar.New(2024, 3, 10))

	l := &ledger{
		accounts: []*account.Account{bank, visa},
		transactions: []*transaction.Transaction{
			tx(bank.ID, "1000", calendar.New(2024, 3, 5)),
			cardPurchase,
		},
		fixed: []*fixedexpense.FixedExpense{{Amount: dec("50")}},
		invoices: []*invoice.Invoice{{
			ID:           uuid.New(),
			AccountID:    visa.ID,
			ClosingDate:  calendar.New(2024, 3, 20),
			Status:       invoice.StatusOpen,
			Transactions: []*transaction.Transaction{cardPurchase},
		}},
	}

	svc := dashboard.NewService(l.readers())

	got, err := svc.Month(context.Background(), userID, l.accounts, today)
	require.NoError(t, err)

	assertDecimal(t, "1000", got.Income)
	assertDecimal(t, "350", got.Expenses, "card purchase is counted once, through its invoice")
}

func TestService_Month_Transactions(t *testing.T) {
	bank := checking("0")
	visa := card("0", 10)

	l := &ledger{
		accounts: []*account.Account{bank, visa},
		transactions: []*transaction.Transaction{
			tx(bank.ID, "2500", calendar.New(2024, 3, 1)),
			tx(bank.ID, "-120.40", calendar.New(2024, 3, 31)),
			tx(bank.ID, "-9.60", calendar.New(2024, 3, 15)),
			tx(bank.ID, "-999", calendar.New(2024, 2, 29)),
			tx(bank.ID, "999", calendar.New(2024, 4, 1)),
			tx(visa.ID, "-75", calendar.New(2024, 3, 2)),
			tx(visa.ID, "20", calendar.New(2024, 3, 3)),
		},
	}

	got, err := dashboard.NewService(l.readers()).Month(context.Background(), userID, l.accounts, calendar.New(2024, 3, 20))
	require.NoError(t, err)

	assertDecimal(t, "2500", got.Income)
	assertDecimal(t, "130", got.Expenses)
}

func TestService_Month_OpenInvoiceNotFound(t *testing.T) {
	l := &ledger{
		accounts: []*account.Account{card("800", 5)},
		fixed:    []*fixedexpense.FixedExpense{{Amount: dec("10")}, {Amount: dec("15.5")}},
		invoices: []*invoice.Invoice{},
	}

	got, err := dashboard.NewService(l.readers()).Month(context.Background(), userID, l.accounts, calendar.New(2024, 3, 20))
	require.NoError(t, err)

	assertDecimal(t, "0", got.Income)
	assertDecimal(t, "25.5", got.Expenses)
}

func TestService_Month_CardWithoutClosingDaySkipped(t *testing.T) {
	ctrl := gomock.NewController(t)

	l := &ledger{}
	readers := l.readers()
	// No expectation: any invoice lookup fails the test.
	readers.Invoices = dashboard.NewMockInvoiceReader(ctrl)

	accounts := []*account.Account{{ID: uuid.New(), Type: account.TypeCreditCard, Balance: dec("10")}}

	got, err := dashboard.NewService(readers).Month(context.Background(), userID, accounts, calendar.New(2024, 3, 20))
	require.NoError(t, err)
	assertDecimal(t, "0", got.Expenses)
}

func TestService_Month_Receivables(t *testing.T) {
	march := calendar.New(2024, 3, 15)

	l := &ledger{
		receivables: []*receivable.Receivable{
			{Amount: dec("200"), DueDate: calendar.New(2024, 3, 25), Status: receivable.StatusPending},
			{Amount: dec("300"), DueDate: calendar.New(2024, 3, 10), Status: receivable.StatusReceived},
			{Amount: dec("400"), DueDate: calendar.New(2024, 4, 1), Status: receivable.StatusPending},
			{Amount: dec("50"), DueDate: calendar.New(2024, 3, 31), Status: receivable.StatusPending},
		},
		recurring: []*receivable.RecurringReceivable{
			{Amount: dec("1000"), StartDate: calendar.New(2024, 1, 15), Interval: receivable.IntervalMonthly},
			{Amount: dec("7"), StartDate: calendar.New(2023, 1, 1), Interval: receivable.IntervalMonthly, EndDate: new(calendar.New(2024, 2, 29))},
			{Amount: dec("11"), StartDate: calendar.New(2024, 3, 31), Interval: receivable.IntervalMonthly},
			{Amount: dec("13"), StartDate: calendar.New(2024, 4, 1), Interval: receivable.IntervalMonthly},
			{Amount: dec("17"), StartDate: calendar.New(2024, 1, 1), Interval: receivable.IntervalWeekly},
			{Amount: dec("19"), StartDate: calendar.New(2023, 3, 1), Interval: receivable.IntervalYearly},
			{Amount: dec("23"), StartDate: calendar.New(2023, 6, 1), Interval: receivable.IntervalMonthly, EndDate: new(calendar.New(2024, 3, 1))},
		},
	}

	got, err := dashboard.NewService(l.readers()).Month(context.Background(), userID, nil, march)
	require.NoError(t, err)

	// 200 + 50 pending in March; 1000 + 11 + 23 monthly templates active in March.
	assertDecimal(t, "1284", got.Income)
	assertDecimal(t, "0", got.Expenses)
}

func TestService_Trend_Window(t *testing.T) {
	tests := []struct {
		name       string
		today      time.Time
		wantMonths []time.Time
		wantLabels []string
	}{
		{
			name:  "MidYear",
			today: calendar.New(2024, 8, 31),
			wantMonths: []time.Time{
				calendar.New(2024, 3, 1), calendar.New(2024, 4, 1), calendar.New(2024, 5, 1),
				calendar.New(2024, 6, 1), calendar.New(2024, 7, 1), calendar.New(2024, 8, 1),
			},
			wantLabels: []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug"},
		},
		{
			name:  "AcrossYearBoundary",
			today: calendar.New(2024, 2, 29),
			wantMonths: []time.Time{
				calendar.New(2023, 9, 1), calendar.New(2023, 10, 1), calendar.New(2023, 11, 1),
				calendar.New(2023, 12, 1), calendar.New(2024, 1, 1), calendar.New(2024, 2, 1),
			},
			wantLabels: []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ledger{}

			points, err := dashboard.NewService(l.readers()).Trend(context.Background(), userID, nil, tt.today)
			require.NoError(t, err)
			require.Len(t, points, dashboard.TrendMonths)

			for i, p := range points {
				assert.Equal(t, tt.wantMonths[i], p.Month)
				assert.Equal(t, tt.wantLabels[i], p.Label)
			}
		})
	}
}

func TestService_Trend_ResolvesCyclePerMonth(t *testing.T) {
	visa := card("0", 10)
	today := calendar.New(2024, 3, 15)

	// Each iterated month is past the 10th, so its open cycle closes on the
	// 10th of the following month.
	l := &ledger{
		accounts: []*account.Account{visa},
		invoices: []*invoice.Invoice{
			{
				AccountID:    visa.ID,
				ClosingDate:  calendar.New(2024, 1, 10),
				Status:       invoice.StatusOpen,
				Transactions: []*transaction.Transaction{tx(visa.ID, "-40", calendar.New(2023, 12, 20))},
			},
			{
				AccountID:    visa.ID,
				ClosingDate:  calendar.New(2024, 4, 10),
				Status:       invoice.StatusOpen,
				Transactions: []*transaction.Transaction{tx(visa.ID, "-60", calendar.New(2024, 3, 12)), tx(visa.ID, "-40", calendar.New(2024, 3, 14))},
			},
			{
				AccountID:    visa.ID,
				ClosingDate:  calendar.New(2024, 2, 10),
				Status:       invoice.StatusPaid,
				Transactions: []*transaction.Transaction{tx(visa.ID, "-999", calendar.New(2024, 1, 20))},
			},
		},
	}

	points, err := dashboard.NewService(l.readers()).Trend(context.Background(), userID, l.accounts, today)
	require.NoError(t, err)
	require.Len(t, points, 6)

	want := []string{"0", "0", "40", "0", "0", "100"}
	for i, p := range points {
		assertDecimal(t, want[i], p.Expenses, "point %d (%s)", i, p.Label)
	}
}

func TestService_Summary(t *testing.T) {
	bank := checking("500")
	visa := card("200", 20)

	var txs []*transaction.Transaction
	for day := 1; day <= 7; day++ {
		txs = append(txs, tx(bank.ID, "100", calendar.New(2024, 3, day)))
	}

	l := &ledger{
		accounts:     []*account.Account{bank, visa},
		transactions: txs,
		fixed:        []*fixedexpense.FixedExpense{{Amount: dec("50")}},
	}

	now := func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	svc := dashboard.NewService(l.readers(), dashboard.WithClock(now))

	first, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)

	assertDecimal(t, "300", first.TotalBalance)
	assertDecimal(t, "700", first.MonthlyIncome)
	assertDecimal(t, "50", first.MonthlyExpenses)
	require.Len(t, first.Trend, dashboard.TrendMonths)
	assert.Equal(t, calendar.New(2024, 3, 1), first.Trend[5].Month)
	assert.True(t, first.Trend[5].Income.Equal(first.MonthlyIncome))
	assert.Len(t, first.RecentTransactions, dashboard.RecentTransactionsLimit)
	assert.Equal(t, dashboard.RecentTransactionsLimit, l.recentLimit)

	second, err := svc.Summary(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_Today(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	now := func() time.Time { return time.Date(2024, 4, 1, 2, 0, 0, 0, time.UTC) }

	utc := dashboard.NewService(dashboard.Readers{}, dashboard.WithClock(now))
	local := dashboard.NewService(dashboard.Readers{}, dashboard.WithClock(now), dashboard.WithLocation(saoPaulo))

	assert.Equal(t, calendar.New(2024, 4, 1), utc.Today())
	assert.Equal(t, calendar.New(2024, 3, 31), local.Today())
}

type mocks struct {
	accounts     *dashboard.MockAccountReader
	transactions *dashboard.MockTransactionReader
	fixed        *dashboard.MockFixedExpenseReader
	invoices     *dashboard.MockInvoiceReader
	receivables  *dashboard.MockReceivableReader
}

func TestService_Summary_FirstErrorAborts(t *testing.T) {
	errDB := errors.New("connection reset")
	visa := card("0", 10)

	type testCase struct {
		name      string
		setupMock func(m mocks)
	}

	tests := []testCase{
		{
			name: "Accounts",
			setupMock: func(m mocks) {
				m.accounts.EXPECT().ListAccounts(gomock.Any(), userID).Return(nil, errDB)
			},
		},
		{
			name: "Transactions",
			setupMock: func(m mocks) {
				m.transactions.EXPECT().ListTransactions(gomock.Any(), userID, gomock.Any()).Return(nil, errDB).AnyTimes()
			},
		},
		{
			name: "RecentTransactions",
			setupMock: func(m mocks) {
				m.transactions.EXPECT().RecentTransactions(gomock.Any(), userID, 5).Return(nil, errDB).AnyTimes()
			},
		},
		{
			name: "FixedExpenses",
			setupMock: func(m mocks) {
				m.fixed.EXPECT().ListFixedExpenses(gomock.Any(), userID).Return(nil, errDB).AnyTimes()
			},
		},
		{
			name: "Invoice",
			setupMock: func(m mocks) {
				m.invoices.EXPECT().FindInvoice(gomock.Any(), userID, visa.ID, gomock.Any(), invoice.StatusOpen).Return(nil, errDB).AnyTimes()
			},
		},
		{
			name: "Receivables",
			setupMock: func(m mocks) {
				m.receivables.EXPECT().ListReceivables(gomock.Any(), userID, gomock.Any()).Return(nil, errDB).AnyTimes()
			},
		},
		{
			name: "RecurringReceivables",
			setupMock: func(m mocks) {
				m.receivables.EXPECT().ListRecurringReceivables(gomock.Any(), userID).Return(nil, errDB).AnyTimes()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			m := mocks{
				accounts:     dashboard.NewMockAccountReader(ctrl),
				transactions: dashboard.NewMockTransactionReader(ctrl),
				fixed:        dashboard.NewMockFixedExpenseReader(ctrl),
				invoices:     dashboard.NewMockInvoiceReader(ctrl),
				receivables:  dashboard.NewMockReceivableReader(ctrl),
			}

			// The failing expectation is registered first so it takes
			// precedence over the healthy defaults below.
			tt.setupMock(m)

			m.accounts.EXPECT().ListAccounts(gomock.Any(), userID).Return([]*account.Account{visa}, nil).AnyTimes()
			m.transactions.EXPECT().ListTransactions(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()
			m.transactions.EXPECT().RecentTransactions(gomock.Any(), userID, 5).Return(nil, nil).AnyTimes()
			m.fixed.EXPECT().ListFixedExpenses(gomock.Any(), userID).Return(nil, nil).AnyTimes()
			m.invoices.EXPECT().FindInvoice(gomock.Any(), userID, visa.ID, gomock.Any(), invoice.StatusOpen).Return(nil, invoice.ErrNotFound).AnyTimes()
			m.receivables.EXPECT().ListReceivables(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()
			m.receivables.EXPECT().ListRecurringReceivables(gomock.Any(), userID).Return(nil, nil).AnyTimes()

			svc := dashboard.NewService(dashboard.Readers{
				Accounts:      m.accounts,
				Transactions:  m.transactions,
				FixedExpenses: m.fixed,
				Invoices:      m.invoices,
				Receivables:   m.receivables,
			})

			got, err := svc.Summary(context.Background(), userID)
			require.Error(t, err)
			assert.ErrorIs(t, err, errDB)
			assert.Nil(t, got)
		})
	}
}
