// Package export turns a period of transactions into files for an accountant:
// a CSV listing and a plain-text summary.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type Lister interface {
	List(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type Service struct {
	transactions Lister
}

func NewService(transactions Lister) *Service {
	return &Service{transactions: transactions}
}

func (s *Service) Export(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	txs, err := s.transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return txs, nil
}

var csvHeader = []string{"date", "description", "category", "installment", "amount"}

// WriteCSV writes one row per transaction with signed amounts.
func (s *Service) WriteCSV(w io.Writer, txs []*transaction.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.Date.Format(time.DateOnly),
			tx.Description,
			tx.Category,
			installment(tx),
			tx.Amount.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Summary lists the transactions one per line, followed by the period totals.
func (s *Service) Summary(txs []*transaction.Transaction) string {
	var (
		sb              strings.Builder
		income, expense = decimal.Zero, decimal.Zero
	)

	for _, tx := range txs {
		category := tx.Category
		if category == "" {
			category = "Sem categoria"
		}

		desc := tx.Description
		if n := installment(tx); n != "" {
			desc += " (" + n + ")"
		}

		sign := "-"
		if tx.IsIncome() {
			sign = "+"
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount.Abs())
		}

		fmt.Fprintf(&sb, "* %s | %s | %s%s | %s\n",
			tx.Date.Format(time.DateOnly), desc, sign, tx.Amount.Abs().StringFixed(2), category)
	}

	fmt.Fprintf(&sb, "\nEntradas: %s\nSaídas: %s\nSaldo: %s\n",
		income.StringFixed(2), expense.StringFixed(2), income.Sub(expense).StringFixed(2))

	return sb.String()
}

// WriteDir writes transactions.csv and summary.txt into dir, creating it when
// missing, and returns the summary.
func (s *Service) WriteDir(dir string, txs []*transaction.Transaction) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}

	if err := s.writeCSVFile(filepath.Join(dir, "transactions.csv"), txs); err != nil {
		return "", err
	}

	summary := s.Summary(txs)
	if err := os.WriteFile(filepath.Join(dir, "summary.txt"), []byte(summary), 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}

	return summary, nil
}

func (s *Service) writeCSVFile(path string, txs []*transaction.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := s.WriteCSV(f, txs); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

func installment(tx *transaction.Transaction) string {
	if !tx.IsInstallment() || tx.InstallmentNumber == nil {
		return ""
	}

	return fmt.Sprintf("%d/%d", *tx.InstallmentNumber, *tx.TotalInstallments)
}
