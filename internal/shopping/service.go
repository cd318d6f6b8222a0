package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=shopping
type Repository interface {
	ListLists(ctx context.Context, userID uuid.UUID) ([]*List, error)
	// GetList loads the list with its items.
	GetList(ctx context.Context, userID, id uuid.UUID) (*List, error)
	CreateList(ctx context.Context, l *List) error
	RenameList(ctx context.Context, userID, id uuid.UUID, name string) error
	DeleteList(ctx context.Context, userID, id uuid.UUID) error

	GetItem(ctx context.Context, userID, itemID uuid.UUID) (*Item, error)
	CreateItem(ctx context.Context, userID uuid.UUID, item *Item) error
	UpdateItem(ctx context.Context, userID uuid.UUID, item *Item) error
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ItemParams struct {
	Name      string
	Quantity  string
	UnitPrice *decimal.Decimal
}

func (s *Service) Lists(ctx context.Context, userID uuid.UUID) ([]*List, error) {
	return s.repo.ListLists(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*List, error) {
	return s.repo.GetList(ctx, userID, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, name string) (*List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	l := &List{UserID: userID, Name: name}
	if err := s.repo.CreateList(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Rename(ctx context.Context, userID, id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	return s.repo.RenameList(ctx, userID, id, name)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteList(ctx, userID, id)
}

func (s *Service) AddItem(ctx context.Context, userID, listID uuid.UUID, params ItemParams) (*Item, error) {
	item := &Item{
		ListID:    listID,
		Name:      strings.TrimSpace(params.Name),
		Quantity:  strings.TrimSpace(params.Quantity),
		UnitPrice: params.UnitPrice,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, userID, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, params ItemParams) (*Item, error) {
	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(params.Name)
	item.Quantity = strings.TrimSpace(params.Quantity)
	item.UnitPrice = params.UnitPrice

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, userID, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) TogglePurchased(ctx context.Context, userID, itemID uuid.UUID) (*Item, error) {
	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Purchased = !item.Purchased

	if err := s.repo.UpdateItem(ctx, userID, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.repo.DeleteItem(ctx, userID, itemID)
}
