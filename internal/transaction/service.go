package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	RecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*Transaction, error)

	// BeginImport opens a transaction holding the account's import lock.
	BeginImport(ctx context.Context, userID, accountID uuid.UUID) (ImportTx, error)
}

// ImportTx holds a per-account import lock until Commit or Rollback.
type ImportTx interface {
	FindDuplicates(ctx context.Context, params []ImportParams) ([]*Transaction, error)
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo  Repository
	procs procedure.Procedures
}

func NewService(repo Repository, procs procedure.Procedures) *Service {
	return &Service{repo: repo, procs: procs}
}

// ListFilter bounds are inclusive.
type ListFilter struct {
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

type ExpenseParams struct {
	AccountID    uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	Category     string
	Installments int
}

type IncomeParams struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    string
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*Transaction, error) {
	return s.repo.RecentTransactions(ctx, userID, limit)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

// CreateExpense returns the id of the purchase; installments after the first
// reference it as their original purchase.
func (s *Service) CreateExpense(ctx context.Context, userID uuid.UUID, params ExpenseParams) (uuid.UUID, error) {
	if params.Installments == 0 {
		params.Installments = 1
	}

	in := procedure.CreateExpenseInput{
		UserID:       userID,
		AccountID:    params.AccountID,
		Amount:       params.Amount,
		Date:         params.Date,
		Description:  params.Description,
		Category:     params.Category,
		Installments: params.Installments,
	}
	if err := in.Validate(); err != nil {
		return uuid.Nil, err
	}

	return s.procs.CreateExpense(ctx, in)
}

func (s *Service) CreateIncome(ctx context.Context, userID uuid.UUID, params IncomeParams) (uuid.UUID, error) {
	in := procedure.CreateIncomeInput{
		UserID:      userID,
		AccountID:   params.AccountID,
		Amount:      params.Amount,
		Date:        params.Date,
		Description: params.Description,
		Category:    params.Category,
	}
	if err := in.Validate(); err != nil {
		return uuid.Nil, err
	}

	return s.procs.CreateIncome(ctx, in)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.procs.DeleteTransaction(ctx, procedure.DeleteInput{UserID: userID, ID: id})
}

// ImportParams is one parsed statement line with a signed amount.
type ImportParams struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    string
}

type ImportResult struct {
	Imported  []*Transaction
	New       []ImportParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming ImportParams
	Existing *Transaction
}

type dupKey struct {
	Date        string
	Amount      string
	Description string
}

func keyOf(date time.Time, amount decimal.Decimal, description string) dupKey {
	return dupKey{
		Date:        date.Format(time.DateOnly),
		Amount:      amount.StringFixed(2),
		Description: description,
	}
}

// ImportBatch writes params into accountID unless one of them already exists on
// the same date with the same amount and description. On conflict nothing is
// written and the caller gets both halves back to confirm.
func (s *Service) ImportBatch(ctx context.Context, userID, accountID uuid.UUID, params []ImportParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	itx, err := s.repo.BeginImport(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[dupKey]*Transaction, len(duplicates))
	for _, d := range duplicates {
		lookup[keyOf(d.Date, d.Amount, d.Description)] = d
	}

	var (
		newParams []ImportParams
		conflicts []Conflict
	)

	for _, p := range params {
		if existing, found := lookup[keyOf(p.Date, p.Amount, p.Description)]; found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	txs := paramsToTransactions(userID, accountID, newParams)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: txs}, nil
}

// CreateBatch writes params without the duplicate check, after the user has
// resolved the conflicts of an ImportBatch.
func (s *Service) CreateBatch(ctx context.Context, userID, accountID uuid.UUID, params []ImportParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	itx, err := s.repo.BeginImport(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	txs := paramsToTransactions(userID, accountID, params)
	if err := itx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return txs, nil
}

func paramsToTransactions(userID, accountID uuid.UUID, params []ImportParams) []*Transaction {
	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			UserID:      userID,
			AccountID:   accountID,
			Amount:      p.Amount,
			Date:        p.Date,
			Description: p.Description,
			Category:    p.Category,
		}
	}

	return txs
}
