package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/account"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		wantErr bool
	}{
		{
			name:    "Checking",
			account: account.Account{Name: "Conta", Type: account.TypeChecking},
		},
		{
			name:    "CreditCard",
			account: account.Account{Name: "Visa", Type: account.TypeCreditCard, ClosingDay: new(20), DueDay: new(28)},
		},
		{
			name:    "MissingName",
			account: account.Account{Type: account.TypeWallet},
			wantErr: true,
		},
		{
			name:    "UnknownType",
			account: account.Account{Name: "x", Type: "savings"},
			wantErr: true,
		},
		{
			name:    "CardWithoutClosingDay",
			account: account.Account{Name: "Visa", Type: account.TypeCreditCard, DueDay: new(28)},
			wantErr: true,
		},
		{
			name:    "CardDayOutOfRange",
			account: account.Account{Name: "Visa", Type: account.TypeCreditCard, ClosingDay: new(32), DueDay: new(5)},
			wantErr: true,
		},
		{
			name:    "ClosingDayOnWallet",
			account: account.Account{Name: "Cash", Type: account.TypeWallet, ClosingDay: new(10)},
			wantErr: true,
		},
		{
			name:    "NegativeLimit",
			account: account.Account{Name: "Visa", Type: account.TypeCreditCard, ClosingDay: new(1), DueDay: new(10), CreditLimit: new(decimal.NewFromInt(-1))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, account.ErrInvalidAccount)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		params    account.CreateParams
		setupMock func(m *account.MockRepository)
		wantErr   error
	}{
		{
			name: "Success",
			params: account.CreateParams{
				Name:           "Nubank",
				Type:           account.TypeChecking,
				OpeningBalance: decimal.NewFromInt(150),
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *account.Account) error {
						assert.Equal(t, userID, a.UserID)
						assert.True(t, decimal.NewFromInt(150).Equal(a.Balance))
						a.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "Invalid",
			params:  account.CreateParams{Type: account.TypeChecking},
			wantErr: account.ErrInvalidAccount,
		},
		{
			name:   "RepoError",
			params: account.CreateParams{Name: "Cash", Type: account.TypeWallet},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := account.NewService(repo).Create(context.Background(), userID, tt.params)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_Update_KeepsBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()
	existing := &account.Account{
		ID:         id,
		UserID:     userID,
		Name:       "Visa",
		Type:       account.TypeCreditCard,
		Balance:    decimal.NewFromInt(420),
		ClosingDay: new(20),
		DueDay:     new(28),
	}

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().GetAccount(gomock.Any(), userID, id).Return(existing, nil)
	repo.EXPECT().UpdateAccount(gomock.Any(), existing).Return(nil)

	got, err := account.NewService(repo).Update(context.Background(), userID, id, account.UpdateParams{
		Name:       new("Visa Gold"),
		ClosingDay: new(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "Visa Gold", got.Name)
	assert.Equal(t, 5, *got.ClosingDay)
	assert.True(t, decimal.NewFromInt(420).Equal(got.Balance))
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().GetAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, account.ErrNotFound)

	_, err := account.NewService(repo).Update(context.Background(), uuid.New(), uuid.New(), account.UpdateParams{})
	assert.ErrorIs(t, err, account.ErrNotFound)
}
