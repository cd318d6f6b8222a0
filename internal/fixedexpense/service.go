package fixedexpense

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fixedexpense
type Repository interface {
	ListFixedExpenses(ctx context.Context, userID uuid.UUID) ([]*FixedExpense, error)
	GetFixedExpense(ctx context.Context, userID, id uuid.UUID) (*FixedExpense, error)
	CreateFixedExpense(ctx context.Context, e *FixedExpense) error
	UpdateFixedExpense(ctx context.Context, e *FixedExpense) error
	DeleteFixedExpense(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	Description string
	Amount      decimal.Decimal
	DueDay      int
	AccountID   uuid.UUID
	Category    string
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*FixedExpense, error) {
	return s.repo.ListFixedExpenses(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*FixedExpense, error) {
	return s.repo.GetFixedExpense(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params Params) (*FixedExpense, error) {
	e := &FixedExpense{UserID: userID}
	apply(e, params)

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateFixedExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params Params) (*FixedExpense, error) {
	e, err := s.repo.GetFixedExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	apply(e, params)

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateFixedExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteFixedExpense(ctx, userID, id)
}

func apply(e *FixedExpense, params Params) {
	e.Description = params.Description
	e.Amount = params.Amount
	e.DueDay = params.DueDay
	e.AccountID = params.AccountID
	e.Category = params.Category
}
