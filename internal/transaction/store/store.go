package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/procedure"
	procstore "github.com/MrJamesThe3rd/carteira/internal/procedure/store"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, user_id, account_id, amount, date, category, description,
	installment_number, total_installments, original_purchase_id, invoice_id, created_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var (
		tx       transaction.Transaction
		category sql.NullString
	)

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.AccountID, &tx.Amount, &tx.Date, &category, &tx.Description,
		&tx.InstallmentNumber, &tx.TotalInstallments, &tx.OriginalPurchaseID, &tx.InvoiceID, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Category = category.String

	return &tx, nil
}

func scanAll(rows *sql.Rows) ([]*transaction.Transaction, error) {
	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1`

	args := []any{userID}
	argIdx := 2

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

func (s *Store) RecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

// importLockKey serializes every import into one account, whatever dates the
// batches cover.
func importLockKey(accountID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(accountID[:])

	return int64(h.Sum64())
}

type importTx struct {
	tx        *sql.Tx
	userID    uuid.UUID
	accountID uuid.UUID
	procs     *procstore.Store
}

func (s *Store) BeginImport(ctx context.Context, userID, accountID uuid.UUID) (transaction.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", importLockKey(accountID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring import lock: %w", err)
	}

	return &importTx{
		tx:        dbTx,
		userID:    userID,
		accountID: accountID,
		procs:     procstore.New(dbTx),
	}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) FindDuplicates(ctx context.Context, params []transaction.ImportParams) ([]*transaction.Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	// The service decides what counts as a duplicate; the range query only narrows candidates.
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND account_id = $2 AND date >= $3 AND date <= $4
		ORDER BY date ASC`

	rows, err := itx.tx.QueryContext(ctx, query, itx.userID, itx.accountID, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("finding duplicates: %w", err)
	}
	defer rows.Close()

	return scanAll(rows)
}

// CreateTransactions goes through the same procedures as manual entries so the
// backend keeps account balances and card invoices consistent.
func (itx *importTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	for _, tx := range txs {
		var (
			id  uuid.UUID
			err error
		)

		if tx.IsIncome() {
			id, err = itx.procs.CreateIncome(ctx, procedure.CreateIncomeInput{
				UserID:      itx.userID,
				AccountID:   itx.accountID,
				Amount:      tx.Amount,
				Date:        tx.Date,
				Description: tx.Description,
				Category:    tx.Category,
			})
		} else {
			id, err = itx.procs.CreateExpense(ctx, procedure.CreateExpenseInput{
				UserID:       itx.userID,
				AccountID:    itx.accountID,
				Amount:       tx.Amount.Abs(),
				Date:         tx.Date,
				Description:  tx.Description,
				Category:     tx.Category,
				Installments: 1,
			})
		}

		if err != nil {
			return fmt.Errorf("creating transaction %q: %w", tx.Description, err)
		}

		tx.ID = id
	}

	return nil
}
