package export_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carteira/internal/export"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type stubLister struct {
	txs    []*transaction.Transaction
	err    error
	filter transaction.ListFilter
}

func (s *stubLister) List(_ context.Context, _ uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	s.filter = filter
	return s.txs, s.err
}

func sample() []*transaction.Transaction {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	return []*transaction.Transaction{
		{
			ID:          uuid.New(),
			Date:        date,
			Amount:      decimal.RequireFromString("-12.5"),
			Description: "Hosting",
			Category:    "Serviços",
		},
		{
			ID:                uuid.New(),
			Date:              date,
			Amount:            decimal.RequireFromString("-100"),
			Description:       "Notebook",
			InstallmentNumber: new(3),
			TotalInstallments: new(12),
		},
		{
			ID:          uuid.New(),
			Date:        date.AddDate(0, 0, 5),
			Amount:      decimal.RequireFromString("3000"),
			Description: "Salário",
			Category:    "Renda",
		},
	}
}

func TestService_Export(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lister := &stubLister{txs: sample()}

	got, err := export.NewService(lister).Export(context.Background(), uuid.New(), transaction.ListFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, &start, lister.filter.StartDate)

	_, err = export.NewService(&stubLister{err: errors.New("boom")}).Export(context.Background(), uuid.New(), transaction.ListFilter{})
	assert.Error(t, err)
}

func TestService_WriteCSV(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, export.NewService(nil).WriteCSV(&sb, sample()))

	want := "date,description,category,installment,amount\n" +
		"2024-03-10,Hosting,Serviços,,-12.50\n" +
		"2024-03-10,Notebook,,3/12,-100.00\n" +
		"2024-03-15,Salário,Renda,,3000.00\n"
	assert.Equal(t, want, sb.String())
}

func TestService_Summary(t *testing.T) {
	body := export.NewService(nil).Summary(sample())

	for _, sub := range []string{
		"* 2024-03-10 | Hosting | -12.50 | Serviços",
		"* 2024-03-10 | Notebook (3/12) | -100.00 | Sem categoria",
		"* 2024-03-15 | Salário | +3000.00 | Renda",
		"Entradas: 3000.00",
		"Saídas: 112.50",
		"Saldo: 2887.50",
	} {
		assert.Contains(t, body, sub)
	}
}

func TestService_WriteDir(t *testing.T) {
	svc := export.NewService(nil)

	t.Run("WritesBothFiles", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "2024-03")

		summary, err := svc.WriteDir(dir, sample())
		require.NoError(t, err)

		csvBody, err := os.ReadFile(filepath.Join(dir, "transactions.csv"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(csvBody), "date,description,category,installment,amount\n"))
		assert.Contains(t, string(csvBody), "2024-03-15,Salário,Renda,,3000.00")

		summaryBody, err := os.ReadFile(filepath.Join(dir, "summary.txt"))
		require.NoError(t, err)
		assert.Equal(t, summary, string(summaryBody))
	})

	t.Run("DirIsAFile", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "exports")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		_, err := svc.WriteDir(blocker, sample())
		assert.Error(t, err)
	})
}
