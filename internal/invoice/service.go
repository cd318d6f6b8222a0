package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	// FindInvoice returns ErrNotFound when the card has no invoice with that
	// closing date and status.
	FindInvoice(ctx context.Context, userID, accountID uuid.UUID, closingDate time.Time, status Status) (*Invoice, error)
	GetInvoice(ctx context.Context, userID, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, userID, accountID uuid.UUID) ([]*Invoice, error)
}

type AccountGetter interface {
	GetAccount(ctx context.Context, userID, id uuid.UUID) (*account.Account, error)
}

type Service struct {
	repo     Repository
	accounts AccountGetter
	procs    procedure.Procedures
}

func NewService(repo Repository, accounts AccountGetter, procs procedure.Procedures) *Service {
	return &Service{repo: repo, accounts: accounts, procs: procs}
}

func (s *Service) List(ctx context.Context, userID, accountID uuid.UUID) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, userID, accountID)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, userID, id)
}

// Current returns the open invoice of the cycle that is running on today.
func (s *Service) Current(ctx context.Context, userID, accountID uuid.UUID, today time.Time) (*Invoice, error) {
	card, err := s.accounts.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if !card.IsCreditCard() || card.ClosingDay == nil {
		return nil, ErrNotCard
	}

	closing := OpenCycleClosingDate(today, *card.ClosingDay)

	return s.repo.FindInvoice(ctx, userID, accountID, closing, StatusOpen)
}

type PayParams struct {
	PayingAccountID uuid.UUID
	PaymentDate     time.Time
}

func (s *Service) Pay(ctx context.Context, userID, id uuid.UUID, params PayParams) error {
	inv, err := s.repo.GetInvoice(ctx, userID, id)
	if err != nil {
		return err
	}

	if inv.Status == StatusPaid {
		return ErrAlreadyPaid
	}

	if err := s.procs.PayInvoice(ctx, procedure.PayInvoiceInput{
		UserID:          userID,
		InvoiceID:       id,
		PayingAccountID: params.PayingAccountID,
		PaymentDate:     params.PaymentDate,
	}); err != nil {
		return fmt.Errorf("paying invoice: %w", err)
	}

	return nil
}
