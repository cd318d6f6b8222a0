package dashboard_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/auth"
	"github.com/MrJamesThe3rd/carteira/internal/dashboard"
	dashboardhttp "github.com/MrJamesThe3rd/carteira/internal/http/dashboard"
)

type mocks struct {
	accounts      *dashboard.MockAccountReader
	transactions  *dashboard.MockTransactionReader
	fixedExpenses *dashboard.MockFixedExpenseReader
	invoices      *dashboard.MockInvoiceReader
	receivables   *dashboard.MockReceivableReader
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		accounts:      dashboard.NewMockAccountReader(ctrl),
		transactions:  dashboard.NewMockTransactionReader(ctrl),
		fixedExpenses: dashboard.NewMockFixedExpenseReader(ctrl),
		invoices:      dashboard.NewMockInvoiceReader(ctrl),
		receivables:   dashboard.NewMockReceivableReader(ctrl),
	}
}

func (m mocks) handler() *dashboardhttp.Handler {
	now := func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

	svc := dashboard.NewService(dashboard.Readers{
		Accounts:      m.accounts,
		Transactions:  m.transactions,
		FixedExpenses: m.fixedExpenses,
		Invoices:      m.invoices,
		Receivables:   m.receivables,
	}, dashboard.WithClock(now))

	return dashboardhttp.NewHandler(svc)
}

func (m mocks) serve(userID uuid.UUID) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	m.handler().Routes(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(auth.WithUserID(req.Context(), userID)))

	return rec
}

func TestHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	m := newMocks(ctrl)

	m.accounts.EXPECT().ListAccounts(gomock.Any(), userID).Return([]*account.Account{
		{ID: uuid.New(), Name: "Conta", Type: account.TypeChecking, Balance: decimal.NewFromInt(100)},
	}, nil).AnyTimes()
	m.transactions.EXPECT().ListTransactions(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()
	m.transactions.EXPECT().RecentTransactions(gomock.Any(), userID, dashboard.RecentTransactionsLimit).Return(nil, nil)
	m.fixedExpenses.EXPECT().ListFixedExpenses(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	m.receivables.EXPECT().ListReceivables(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()
	m.receivables.EXPECT().ListRecurringReceivables(gomock.Any(), userID).Return(nil, nil).AnyTimes()

	rec := m.serve(userID)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalBalance       string            `json:"total_balance"`
		MonthlyIncome      string            `json:"monthly_income"`
		Trend              []map[string]any  `json:"trend"`
		RecentTransactions []json.RawMessage `json:"recent_transactions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "100", body.TotalBalance)
	assert.Equal(t, "0", body.MonthlyIncome)
	require.Len(t, body.Trend, dashboard.TrendMonths)
	assert.Equal(t, "Oct", body.Trend[0]["label"])
	assert.Equal(t, "2024-03-01", body.Trend[dashboard.TrendMonths-1]["month"])
	assert.NotNil(t, body.RecentTransactions)
}

func TestHandler_SummaryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	m := newMocks(ctrl)

	var logs bytes.Buffer

	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	m.accounts.EXPECT().ListAccounts(gomock.Any(), userID).Return(nil, errors.New("connection reset"))

	rec := m.serve(userID)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to load dashboard")
	assert.NotContains(t, rec.Body.String(), "connection reset")
	assert.Contains(t, logs.String(), "dashboard request failed")
	assert.Contains(t, logs.String(), "user_id="+userID.String())
	assert.Contains(t, logs.String(), "connection reset")
}
