package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/account"
	"github.com/MrJamesThe3rd/carteira/internal/invoice"
	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

func TestService_Current(t *testing.T) {
	userID, cardID := uuid.New(), uuid.New()
	today := date(2024, 3, 21)
	open := &invoice.Invoice{ID: uuid.New(), AccountID: cardID, ClosingDate: date(2024, 4, 20), Status: invoice.StatusOpen}

	type mocks struct {
		repo     *invoice.MockRepository
		accounts *invoice.MockAccountGetter
	}

	tests := []struct {
		name      string
		setupMock func(m mocks)
		want      *invoice.Invoice
		wantErr   error
	}{
		{
			name: "ResolvesOpenCycle",
			setupMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), userID, cardID).
					Return(&account.Account{ID: cardID, Type: account.TypeCreditCard, ClosingDay: new(20), DueDay: new(28)}, nil)
				m.repo.EXPECT().FindInvoice(gomock.Any(), userID, cardID, date(2024, 4, 20), invoice.StatusOpen).Return(open, nil)
			},
			want: open,
		},
		{
			name: "NotACard",
			setupMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), userID, cardID).
					Return(&account.Account{ID: cardID, Type: account.TypeChecking}, nil)
			},
			wantErr: invoice.ErrNotCard,
		},
		{
			name: "NoOpenInvoice",
			setupMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), userID, cardID).
					Return(&account.Account{ID: cardID, Type: account.TypeCreditCard, ClosingDay: new(20), DueDay: new(28)}, nil)
				m.repo.EXPECT().FindInvoice(gomock.Any(), userID, cardID, gomock.Any(), invoice.StatusOpen).Return(nil, invoice.ErrNotFound)
			},
			wantErr: invoice.ErrNotFound,
		},
		{
			name: "AccountMissing",
			setupMock: func(m mocks) {
				m.accounts.EXPECT().GetAccount(gomock.Any(), userID, cardID).Return(nil, account.ErrNotFound)
			},
			wantErr: account.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{repo: invoice.NewMockRepository(ctrl), accounts: invoice.NewMockAccountGetter(ctrl)}
			tt.setupMock(m)

			svc := invoice.NewService(m.repo, m.accounts, procedure.NewMockProcedures(ctrl))
			got, err := svc.Current(context.Background(), userID, cardID, today)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Pay(t *testing.T) {
	userID, invoiceID, payingID := uuid.New(), uuid.New(), uuid.New()
	paidOn := time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(repo *invoice.MockRepository, procs *procedure.MockProcedures)
		wantErr   error
	}{
		{
			name: "Success",
			setupMock: func(repo *invoice.MockRepository, procs *procedure.MockProcedures) {
				repo.EXPECT().GetInvoice(gomock.Any(), userID, invoiceID).
					Return(&invoice.Invoice{ID: invoiceID, Status: invoice.StatusClosed}, nil)
				procs.EXPECT().PayInvoice(gomock.Any(), procedure.PayInvoiceInput{
					UserID:          userID,
					InvoiceID:       invoiceID,
					PayingAccountID: payingID,
					PaymentDate:     paidOn,
				}).Return(nil)
			},
		},
		{
			name: "AlreadyPaid",
			setupMock: func(repo *invoice.MockRepository, _ *procedure.MockProcedures) {
				repo.EXPECT().GetInvoice(gomock.Any(), userID, invoiceID).
					Return(&invoice.Invoice{ID: invoiceID, Status: invoice.StatusPaid}, nil)
			},
			wantErr: invoice.ErrAlreadyPaid,
		},
		{
			name: "ProcedureFails",
			setupMock: func(repo *invoice.MockRepository, procs *procedure.MockProcedures) {
				repo.EXPECT().GetInvoice(gomock.Any(), userID, invoiceID).
					Return(&invoice.Invoice{ID: invoiceID, Status: invoice.StatusOpen}, nil)
				procs.EXPECT().PayInvoice(gomock.Any(), gomock.Any()).Return(errBackend)
			},
			wantErr: errBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			procs := procedure.NewMockProcedures(ctrl)
			tt.setupMock(repo, procs)

			svc := invoice.NewService(repo, invoice.NewMockAccountGetter(ctrl), procs)
			err := svc.Pay(context.Background(), userID, invoiceID, invoice.PayParams{PayingAccountID: payingID, PaymentDate: paidOn})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

var errBackend = errors.New("backend unavailable")
