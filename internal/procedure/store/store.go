package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so the procedures can join
// a transaction opened by another store.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store calls the backend's Postgres functions by name.
type Store struct {
	db querier
}

func New(db querier) *Store {
	return &Store{db: db}
}

var _ procedure.Procedures = (*Store)(nil)

func (s *Store) call(ctx context.Context, name string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, "SELECT "+name+placeholders(len(args)), args...); err != nil {
		return fmt.Errorf("calling %s: %w", name, err)
	}

	return nil
}

func (s *Store) callReturningID(ctx context.Context, name string, args ...any) (uuid.UUID, error) {
	var id uuid.UUID
	if err := s.db.QueryRowContext(ctx, "SELECT "+name+placeholders(len(args)), args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("calling %s: %w", name, err)
	}

	return id, nil
}

func placeholders(n int) string {
	out := "("
	for i := 1; i <= n; i++ {
		if i > 1 {
			out += ", "
		}

		out += fmt.Sprintf("$%d", i)
	}

	return out + ")"
}

func (s *Store) PayInvoice(ctx context.Context, in procedure.PayInvoiceInput) error {
	return s.call(ctx, "pay_invoice", in.UserID, in.InvoiceID, in.PayingAccountID, in.PaymentDate)
}

func (s *Store) CreateExpense(ctx context.Context, in procedure.CreateExpenseInput) (uuid.UUID, error) {
	if err := in.Validate(); err != nil {
		return uuid.Nil, err
	}

	return s.callReturningID(ctx, "create_expense",
		in.UserID, in.AccountID, in.Amount, in.Date, in.Description, in.Category, in.Installments)
}

func (s *Store) CreateIncome(ctx context.Context, in procedure.CreateIncomeInput) (uuid.UUID, error) {
	if err := in.Validate(); err != nil {
		return uuid.Nil, err
	}

	return s.callReturningID(ctx, "create_income",
		in.UserID, in.AccountID, in.Amount, in.Date, in.Description, in.Category)
}

func (s *Store) MarkReceivableReceived(ctx context.Context, in procedure.MarkReceivableReceivedInput) error {
	return s.call(ctx, "mark_receivable_received", in.UserID, in.ReceivableID, in.AccountID, in.ReceivedDate)
}

func (s *Store) ReceiveRecurringReceivable(ctx context.Context, in procedure.ReceiveRecurringReceivableInput) (uuid.UUID, error) {
	return s.callReturningID(ctx, "receive_recurring_receivable",
		in.UserID, in.RecurringID, in.AccountID, in.DueDate, in.ReceivedDate)
}

func (s *Store) DeleteTransaction(ctx context.Context, in procedure.DeleteInput) error {
	return s.call(ctx, "delete_transaction", in.UserID, in.ID)
}

func (s *Store) DeleteReceivable(ctx context.Context, in procedure.DeleteInput) error {
	return s.call(ctx, "delete_receivable", in.UserID, in.ID)
}

func (s *Store) DeleteRecurringReceivable(ctx context.Context, in procedure.DeleteInput) error {
	return s.call(ctx, "delete_recurring_receivable", in.UserID, in.ID)
}

func (s *Store) AddPlanValue(ctx context.Context, in procedure.AddPlanValueInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	return s.call(ctx, "add_plan_value", in.UserID, in.PlanID, in.Amount)
}
