package receivable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/calendar"
	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

var ErrNotAnOccurrence = errors.New("date is not an occurrence of the recurring receivable")

// MaxOccurrenceWindow caps the span Occurrences will expand.
const MaxOccurrenceWindow = 366 * 24 * time.Hour

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=receivable
type Repository interface {
	ListReceivables(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Receivable, error)
	GetReceivable(ctx context.Context, userID, id uuid.UUID) (*Receivable, error)
	CreateReceivable(ctx context.Context, r *Receivable) error
	UpdateReceivable(ctx context.Context, r *Receivable) error

	ListRecurringReceivables(ctx context.Context, userID uuid.UUID) ([]*RecurringReceivable, error)
	GetRecurringReceivable(ctx context.Context, userID, id uuid.UUID) (*RecurringReceivable, error)
	CreateRecurringReceivable(ctx context.Context, r *RecurringReceivable) error
	UpdateRecurringReceivable(ctx context.Context, r *RecurringReceivable) error
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
	Status  *Status
	DueFrom *time.Time
	DueTo   *time.Time
}

type Params struct {
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	Category    string
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Receivable, error) {
	return s.repo.ListReceivables(ctx, userID, filter)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Receivable, error) {
	return s.repo.GetReceivable(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params Params) (*Receivable, error) {
	r := &Receivable{
		UserID:      userID,
		Description: params.Description,
		Amount:      params.Amount,
		DueDate:     calendar.Date(params.DueDate),
		Status:      StatusPending,
		Category:    params.Category,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateReceivable(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// Update edits a pending receivable. Received ones are history.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params Params) (*Receivable, error) {
	r, err := s.repo.GetReceivable(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if r.Status == StatusReceived {
		return nil, ErrAlreadyReceived
	}

	r.Description = params.Description
	r.Amount = params.Amount
	r.DueDate = calendar.Date(params.DueDate)
	r.Category = params.Category

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateReceivable(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.procs.DeleteReceivable(ctx, procedure.DeleteInput{UserID: userID, ID: id})
}

type ReceiveParams struct {
	AccountID    uuid.UUID
	ReceivedDate time.Time
}

// MarkReceived credits the receivable into an account through the backend.
func (s *Service) MarkReceived(ctx context.Context, userID, id uuid.UUID, params ReceiveParams) error {
	r, err := s.repo.GetReceivable(ctx, userID, id)
	if err != nil {
		return err
	}

	switch r.Status {
	case StatusReceived:
		return ErrAlreadyReceived
	case StatusRecurringTemplate:
		return ErrTemplate
	}

	return s.procs.MarkReceivableReceived(ctx, procedure.MarkReceivableReceivedInput{
		UserID:       userID,
		ReceivableID: id,
		AccountID:    params.AccountID,
		ReceivedDate: calendar.Date(params.ReceivedDate),
	})
}

type RecurringParams struct {
	Description string
	Amount      decimal.Decimal
	StartDate   time.Time
	Interval    Interval
	EndDate     *time.Time
	Category    string
}

func (s *Service) ListRecurring(ctx context.Context, userID uuid.UUID) ([]*RecurringReceivable, error) {
	return s.repo.ListRecurringReceivables(ctx, userID)
}

func (s *Service) GetRecurring(ctx context.Context, userID, id uuid.UUID) (*RecurringReceivable, error) {
	return s.repo.GetRecurringReceivable(ctx, userID, id)
}

func (s *Service) CreateRecurring(ctx context.Context, userID uuid.UUID, params RecurringParams) (*RecurringReceivable, error) {
	r := &RecurringReceivable{UserID: userID}
	applyRecurring(r, params)

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateRecurringReceivable(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) UpdateRecurring(ctx context.Context, userID, id uuid.UUID, params RecurringParams) (*RecurringReceivable, error) {
	r, err := s.repo.GetRecurringReceivable(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	applyRecurring(r, params)

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRecurringReceivable(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) DeleteRecurring(ctx context.Context, userID, id uuid.UUID) error {
	return s.procs.DeleteRecurringReceivable(ctx, procedure.DeleteInput{UserID: userID, ID: id})
}

// Occurrences lists the due dates of a template inside [from, to]. The window
// may not run backwards or exceed MaxOccurrenceWindow.
func (s *Service) Occurrences(ctx context.Context, userID, id uuid.UUID, from, to time.Time) ([]time.Time, error) {
	from, to = calendar.Date(from), calendar.Date(to)

	if to.Before(from) {
		return nil, fmt.Errorf("%w: window ends before it starts", ErrInvalidInput)
	}

	if to.Sub(from) > MaxOccurrenceWindow {
		return nil, fmt.Errorf("%w: window is longer than 366 days", ErrInvalidInput)
	}

	r, err := s.repo.GetRecurringReceivable(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return r.Occurrences(from, to), nil
}

type ReceiveOccurrenceParams struct {
	AccountID    uuid.UUID
	DueDate      time.Time
	ReceivedDate time.Time
}

// Receive materializes the occurrence due on params.DueDate and marks it
// received. It returns the id of the materialized receivable.
func (s *Service) Receive(ctx context.Context, userID, id uuid.UUID, params ReceiveOccurrenceParams) (uuid.UUID, error) {
	r, err := s.repo.GetRecurringReceivable(ctx, userID, id)
	if err != nil {
		return uuid.Nil, err
	}

	due := calendar.Date(params.DueDate)
	if occ := r.Occurrences(due, due); len(occ) == 0 {
		return uuid.Nil, ErrNotAnOccurrence
	}

	receivableID, err := s.procs.ReceiveRecurringReceivable(ctx, procedure.ReceiveRecurringReceivableInput{
		UserID:       userID,
		RecurringID:  id,
		AccountID:    params.AccountID,
		DueDate:      due,
		ReceivedDate: calendar.Date(params.ReceivedDate),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("receiving recurring receivable: %w", err)
	}

	return receivableID, nil
}

func applyRecurring(r *RecurringReceivable, params RecurringParams) {
	r.Description = params.Description
	r.Amount = params.Amount
	r.StartDate = calendar.Date(params.StartDate)
	r.Interval = params.Interval
	r.Category = params.Category
	r.EndDate = nil

	if params.EndDate != nil {
		end := calendar.Date(*params.EndDate)
		r.EndDate = &end
	}
}
