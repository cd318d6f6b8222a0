package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/fixedexpense"
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

const selectColumns = `id, user_id, description, amount, due_day, account_id, COALESCE(category, '')`

func scanFixedExpense(s scanner) (*fixedexpense.FixedExpense, error) {
	var e fixedexpense.FixedExpense
	if err := s.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.DueDay, &e.AccountID, &e.Category); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) ListFixedExpenses(ctx context.Context, userID uuid.UUID) ([]*fixedexpense.FixedExpense, error) {
	query := `SELECT ` + selectColumns + `
		FROM fixed_expenses
		WHERE user_id = $1
		ORDER BY due_day ASC, description ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing fixed expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*fixedexpense.FixedExpense

	for rows.Next() {
		e, err := scanFixedExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fixed expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fixed expenses: %w", err)
	}

	return expenses, nil
}

func (s *Store) GetFixedExpense(ctx context.Context, userID, id uuid.UUID) (*fixedexpense.FixedExpense, error) {
	query := `SELECT ` + selectColumns + ` FROM fixed_expenses WHERE user_id = $1 AND id = $2`

	e, err := scanFixedExpense(s.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fixedexpense.ErrNotFound
		}

		return nil, fmt.Errorf("getting fixed expense: %w", err)
	}

	return e, nil
}

func (s *Store) CreateFixedExpense(ctx context.Context, e *fixedexpense.FixedExpense) error {
	query := `
		INSERT INTO fixed_expenses (user_id, description, amount, due_day, account_id, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query,
		e.UserID, e.Description, e.Amount, e.DueDay, e.AccountID, e.Category,
	).Scan(&e.ID); err != nil {
		return fmt.Errorf("creating fixed expense: %w", err)
	}

	return nil
}

func (s *Store) UpdateFixedExpense(ctx context.Context, e *fixedexpense.FixedExpense) error {
	query := `
		UPDATE fixed_expenses
		SET description = $1, amount = $2, due_day = $3, account_id = $4, category = $5
		WHERE user_id = $6 AND id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Description, e.Amount, e.DueDay, e.AccountID, e.Category, e.UserID, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating fixed expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fixedexpense.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteFixedExpense(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM fixed_expenses WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting fixed expense: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fixedexpense.ErrNotFound
	}

	return nil
}
