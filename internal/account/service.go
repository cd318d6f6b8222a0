package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*Account, error)
	GetAccount(ctx context.Context, userID, id uuid.UUID) (*Account, error)
	CreateAccount(ctx context.Context, a *Account) error
	UpdateAccount(ctx context.Context, a *Account) error
	DeleteAccount(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name           string
	Type           Type
	OpeningBalance decimal.Decimal
	CreditLimit    *decimal.Decimal
	ClosingDay     *int
	DueDay         *int
}

// UpdateParams leaves the balance alone: only backend procedures move money.
type UpdateParams struct {
	Name        *string
	CreditLimit *decimal.Decimal
	ClosingDay  *int
	DueDay      *int
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Account, error) {
	a := &Account{
		UserID:      userID,
		Name:        params.Name,
		Type:        params.Type,
		Balance:     params.OpeningBalance,
		CreditLimit: params.CreditLimit,
		ClosingDay:  params.ClosingDay,
		DueDay:      params.DueDay,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Account, error) {
	a, err := s.repo.GetAccount(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		a.Name = *params.Name
	}

	if params.CreditLimit != nil {
		a.CreditLimit = params.CreditLimit
	}

	if params.ClosingDay != nil {
		a.ClosingDay = params.ClosingDay
	}

	if params.DueDay != nil {
		a.DueDay = params.DueDay
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, userID, id)
}
