package plan

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=plan
type Repository interface {
	ListPlans(ctx context.Context, userID uuid.UUID) ([]*FinancialPlan, error)
	GetPlan(ctx context.Context, userID, id uuid.UUID) (*FinancialPlan, error)
	CreatePlan(ctx context.Context, p *FinancialPlan) error
	// UpdatePlan writes name and goal only.
	UpdatePlan(ctx context.Context, p *FinancialPlan) error
	DeletePlan(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo  Repository
	procs procedure.Procedures
}

func NewService(repo Repository, procs procedure.Procedures) *Service {
	return &Service{repo: repo, procs: procs}
}

type Params struct {
	Name       string
	GoalAmount decimal.Decimal
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*FinancialPlan, error) {
	return s.repo.ListPlans(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*FinancialPlan, error) {
	return s.repo.GetPlan(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params Params) (*FinancialPlan, error) {
	p := &FinancialPlan{
		UserID:        userID,
		Name:          params.Name,
		GoalAmount:    params.GoalAmount,
		CurrentAmount: decimal.Zero,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreatePlan(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params Params) (*FinancialPlan, error) {
	p, err := s.repo.GetPlan(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	p.Name = params.Name
	p.GoalAmount = params.GoalAmount

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeletePlan(ctx, userID, id)
}

// AddValue deposits amount into the plan and returns it re-read from the backend.
func (s *Service) AddValue(ctx context.Context, userID, id uuid.UUID, amount decimal.Decimal) (*FinancialPlan, error) {
	in := procedure.AddPlanValueInput{UserID: userID, PlanID: id, Amount: amount}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if err := s.procs.AddPlanValue(ctx, in); err != nil {
		return nil, err
	}

	return s.repo.GetPlan(ctx, userID, id)
}
