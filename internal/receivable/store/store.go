package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/receivable"
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

const selectReceivableColumns = `id, user_id, description, amount, due_date, status, COALESCE(category, ''), recurring_receivable_id`

func scanReceivable(s scanner) (*receivable.Receivable, error) {
	var (
		r         receivable.Receivable
		statusStr string
	)

	if err := s.Scan(&r.ID, &r.UserID, &r.Description, &r.Amount, &r.DueDate, &statusStr, &r.Category, &r.RecurringID); err != nil {
		return nil, err
	}

	r.Status = receivable.Status(statusStr)

	return &r, nil
}

func (s *Store) ListReceivables(ctx context.Context, userID uuid.UUID, filter receivable.ListFilter) ([]*receivable.Receivable, error) {
	query := `SELECT ` + selectReceivableColumns + `
		FROM receivables
		WHERE user_id = $1`

	args := []any{userID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.DueFrom != nil {
		query += fmt.Sprintf(" AND due_date >= $%d", argIdx)

		args = append(args, *filter.DueFrom)
		argIdx++
	}

	if filter.DueTo != nil {
		query += fmt.Sprintf(" AND due_date <= $%d", argIdx)

		args = append(args, *filter.DueTo)
	}

	query += " ORDER BY due_date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing receivables: %w", err)
	}
	defer rows.Close()

	var out []*receivable.Receivable

	for rows.Next() {
		r, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning receivable: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receivables: %w", err)
	}

	return out, nil
}

func (s *Store) GetReceivable(ctx context.Context, userID, id uuid.UUID) (*receivable.Receivable, error) {
	query := `SELECT ` + selectReceivableColumns + ` FROM receivables WHERE user_id = $1 AND id = $2`

	r, err := scanReceivable(s.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, receivable.ErrNotFound
		}

		return nil, fmt.Errorf("getting receivable: %w", err)
	}

	return r, nil
}

func (s *Store) CreateReceivable(ctx context.Context, r *receivable.Receivable) error {
	query := `
		INSERT INTO receivables (user_id, description, amount, due_date, status, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query,
		r.UserID, r.Description, r.Amount, r.DueDate, r.Status, r.Category,
	).Scan(&r.ID); err != nil {
		return fmt.Errorf("creating receivable: %w", err)
	}

	return nil
}

func (s *Store) UpdateReceivable(ctx context.Context, r *receivable.Receivable) error {
	query := `
		UPDATE receivables
		SET description = $1, amount = $2, due_date = $3, category = $4
		WHERE user_id = $5 AND id = $6 AND status <> 'received'
	`

	res, err := s.db.ExecContext(ctx, query, r.Description, r.Amount, r.DueDate, r.Category, r.UserID, r.ID)
	if err != nil {
		return fmt.Errorf("updating receivable: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return receivable.ErrNotFound
	}

	return nil
}

const selectRecurringColumns = `id, user_id, description, amount, start_date, recurrence_interval, end_date, COALESCE(category, '')`

func scanRecurring(s scanner) (*receivable.RecurringReceivable, error) {
	var (
		r           receivable.RecurringReceivable
		intervalStr string
	)

	if err := s.Scan(&r.ID, &r.UserID, &r.Description, &r.Amount, &r.StartDate, &intervalStr, &r.EndDate, &r.Category); err != nil {
		return nil, err
	}

	r.Interval = receivable.Interval(intervalStr)

	return &r, nil
}

func (s *Store) ListRecurringReceivables(ctx context.Context, userID uuid.UUID) ([]*receivable.RecurringReceivable, error) {
	query := `SELECT ` + selectRecurringColumns + `
		FROM recurring_receivables
		WHERE user_id = $1
		ORDER BY start_date ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing recurring receivables: %w", err)
	}
	defer rows.Close()

	var out []*receivable.RecurringReceivable

	for rows.Next() {
		r, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring receivable: %w", err)
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring receivables: %w", err)
	}

	return out, nil
}

func (s *Store) GetRecurringReceivable(ctx context.Context, userID, id uuid.UUID) (*receivable.RecurringReceivable, error) {
	query := `SELECT ` + selectRecurringColumns + ` FROM recurring_receivables WHERE user_id = $1 AND id = $2`

	r, err := scanRecurring(s.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, receivable.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring receivable: %w", err)
	}

	return r, nil
}

func (s *Store) CreateRecurringReceivable(ctx context.Context, r *receivable.RecurringReceivable) error {
	query := `
		INSERT INTO recurring_receivables (user_id, description, amount, start_date, recurrence_interval, end_date, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query,
		r.UserID, r.Description, r.Amount, r.StartDate, r.Interval, r.EndDate, r.Category,
	).Scan(&r.ID); err != nil {
		return fmt.Errorf("creating recurring receivable: %w", err)
	}

	return nil
}

func (s *Store) UpdateRecurringReceivable(ctx context.Context, r *receivable.RecurringReceivable) error {
	query := `
		UPDATE recurring_receivables
		SET description = $1, amount = $2, start_date = $3, recurrence_interval = $4, end_date = $5, category = $6
		WHERE user_id = $7 AND id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		r.Description, r.Amount, r.StartDate, r.Interval, r.EndDate, r.Category, r.UserID, r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating recurring receivable: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return receivable.ErrNotFound
	}

	return nil
}
