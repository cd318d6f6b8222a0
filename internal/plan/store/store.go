package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/plan"
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

const selectPlanColumns = `id, user_id, name, goal_amount, current_amount`

func scanPlan(s scanner) (*plan.FinancialPlan, error) {
	var p plan.FinancialPlan
	if err := s.Scan(&p.ID, &p.UserID, &p.Name, &p.GoalAmount, &p.CurrentAmount); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) ListPlans(ctx context.Context, userID uuid.UUID) ([]*plan.FinancialPlan, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectPlanColumns+` FROM financial_plans WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*plan.FinancialPlan

	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}

		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}

	return plans, nil
}

func (s *Store) GetPlan(ctx context.Context, userID, id uuid.UUID) (*plan.FinancialPlan, error) {
	p, err := scanPlan(s.db.QueryRowContext(ctx,
		`SELECT `+selectPlanColumns+` FROM financial_plans WHERE user_id = $1 AND id = $2`, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, plan.ErrNotFound
		}

		return nil, fmt.Errorf("getting plan: %w", err)
	}

	return p, nil
}

func (s *Store) CreatePlan(ctx context.Context, p *plan.FinancialPlan) error {
	query := `
		INSERT INTO financial_plans (user_id, name, goal_amount, current_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, p.UserID, p.Name, p.GoalAmount, p.CurrentAmount).Scan(&p.ID); err != nil {
		return fmt.Errorf("creating plan: %w", err)
	}

	return nil
}

func (s *Store) UpdatePlan(ctx context.Context, p *plan.FinancialPlan) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE financial_plans SET name = $1, goal_amount = $2 WHERE user_id = $3 AND id = $4`,
		p.Name, p.GoalAmount, p.UserID, p.ID)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return plan.ErrNotFound
	}

	return nil
}

func (s *Store) DeletePlan(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM financial_plans WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return plan.ErrNotFound
	}

	return nil
}
