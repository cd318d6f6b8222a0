package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `id, user_id, account_id, closing_date, due_date, status`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var (
		inv       invoice.Invoice
		statusStr string
	)

	if err := s.Scan(&inv.ID, &inv.UserID, &inv.AccountID, &inv.ClosingDate, &inv.DueDate, &statusStr); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)

	return &inv, nil
}

func (s *Store) FindInvoice(ctx context.Context, userID, accountID uuid.UUID, closingDate time.Time, status invoice.Status) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE user_id = $1 AND account_id = $2 AND closing_date = $3 AND status = $4`

	return s.getOne(ctx, query, userID, accountID, closingDate, status)
}

func (s *Store) GetInvoice(ctx context.Context, userID, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE user_id = $1 AND id = $2`

	return s.getOne(ctx, query, userID, id)
}

func (s *Store) getOne(ctx context.Context, query string, args ...any) (*invoice.Invoice, error) {
	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if inv.Transactions, err = s.invoiceTransactions(ctx, inv.UserID, inv.ID); err != nil {
		return nil, err
	}

	return inv, nil
}

// ListInvoices returns the card's invoices newest first, without their transactions.
func (s *Store) ListInvoices(ctx context.Context, userID, accountID uuid.UUID) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE user_id = $1 AND account_id = $2
		ORDER BY closing_date DESC`

	rows, err := s.db.QueryContext(ctx, query, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return invoices, nil
}

func (s *Store) invoiceTransactions(ctx context.Context, userID, invoiceID uuid.UUID) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, account_id, amount, date, COALESCE(category, ''), description,
			installment_number, total_installments
		FROM transactions
		WHERE user_id = $1 AND invoice_id = $2
		ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, query, userID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx := transaction.Transaction{UserID: userID, InvoiceID: &invoiceID}
		if err := rows.Scan(
			&tx.ID, &tx.AccountID, &tx.Amount, &tx.Date, &tx.Category, &tx.Description,
			&tx.InstallmentNumber, &tx.TotalInstallments,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice transaction: %w", err)
		}

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice transactions: %w", err)
	}

	return txs, nil
}
