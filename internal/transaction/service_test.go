package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/procedure"
	"github.com/MrJamesThe3rd/carteira/internal/transaction"
)

func TestService_CreateExpense(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	purchaseID := uuid.New()
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    transaction.ExpenseParams
		setupMock func(m *procedure.MockProcedures)
		want      uuid.UUID
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: transaction.ExpenseParams{
				AccountID:    accountID,
				Amount:       decimal.NewFromInt(1200),
				Date:         date,
				Description:  "Notebook",
				Category:     "Eletrônicos",
				Installments: 12,
			},
			setupMock: func(m *procedure.MockProcedures) {
				m.EXPECT().
					CreateExpense(gomock.Any(), procedure.CreateExpenseInput{
						UserID:       userID,
						AccountID:    accountID,
						Amount:       decimal.NewFromInt(1200),
						Date:         date,
						Description:  "Notebook",
						Category:     "Eletrônicos",
						Installments: 12,
					}).
					Return(purchaseID, nil)
			},
			want: purchaseID,
		},
		{
			name: "DefaultsToOneInstallment",
			params: transaction.ExpenseParams{
				AccountID:   accountID,
				Amount:      decimal.NewFromInt(30),
				Date:        date,
				Description: "Padaria",
			},
			setupMock: func(m *procedure.MockProcedures) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in procedure.CreateExpenseInput) (uuid.UUID, error) {
						assert.Equal(t, 1, in.Installments)
						return purchaseID, nil
					})
			},
			want: purchaseID,
		},
		{
			name: "NegativeAmountRejected",
			params: transaction.ExpenseParams{
				AccountID:   accountID,
				Amount:      decimal.NewFromInt(-30),
				Description: "Padaria",
			},
			wantErr: true,
		},
		{
			name: "ProcedureError",
			params: transaction.ExpenseParams{
				AccountID:   accountID,
				Amount:      decimal.NewFromInt(30),
				Description: "Padaria",
			},
			setupMock: func(m *procedure.MockProcedures) {
				m.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("rpc error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			procs := procedure.NewMockProcedures(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(procs)
			}

			svc := transaction.NewService(transaction.NewMockRepository(ctrl), procs)
			got, err := svc.CreateExpense(context.Background(), userID, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CreateIncome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	procs := procedure.NewMockProcedures(ctrl)
	procs.EXPECT().
		CreateIncome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in procedure.CreateIncomeInput) (uuid.UUID, error) {
			assert.Equal(t, userID, in.UserID)
			assert.True(t, decimal.NewFromInt(5000).Equal(in.Amount))
			return id, nil
		})

	svc := transaction.NewService(transaction.NewMockRepository(ctrl), procs)

	got, err := svc.CreateIncome(context.Background(), userID, transaction.IncomeParams{
		AccountID:   uuid.New(),
		Amount:      decimal.NewFromInt(5000),
		Description: "Salário",
	})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = svc.CreateIncome(context.Background(), userID, transaction.IncomeParams{Description: "Salário"})
	assert.ErrorIs(t, err, procedure.ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()

	procs := procedure.NewMockProcedures(ctrl)
	procs.EXPECT().DeleteTransaction(gomock.Any(), procedure.DeleteInput{UserID: userID, ID: id}).Return(nil)

	svc := transaction.NewService(transaction.NewMockRepository(ctrl), procs)
	assert.NoError(t, svc.Delete(context.Background(), userID, id))
}

func TestService_List(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	filter := transaction.ListFilter{StartDate: &start}

	type testCase struct {
		name      string
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), userID, filter).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name: "Error",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), userID, filter).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo, procedure.NewMockProcedures(ctrl))
			got, err := svc.List(context.Background(), userID, filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, procedure.NewMockProcedures(ctrl))

	userID, accountID := uuid.New(), uuid.New()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.ImportParams{
		{
			Amount:      decimal.RequireFromString("-10.00"),
			Description: "COFFEE SHOP",
			Category:    "Café",
			Date:        date,
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), userID, accountID).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return(nil, nil)
	itx.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			require.Len(t, txs, 1)
			assert.Equal(t, accountID, txs[0].AccountID)
			assert.Equal(t, "Café", txs[0].Category)
			txs[0].ID = uuid.New()
			return nil
		})
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), userID, accountID, params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 1)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, procedure.NewMockProcedures(ctrl))

	userID, accountID := uuid.New(), uuid.New()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.ImportParams{
		{Amount: decimal.NewFromFloat(-10.5), Description: "COFFEE SHOP", Date: date},
		{Amount: decimal.NewFromInt(-20), Description: "LUNCH PLACE", Date: date},
	}

	// Stored numerics come back with a fixed scale.
	existing := &transaction.Transaction{
		ID:          uuid.New(),
		Amount:      decimal.RequireFromString("-10.50"),
		Description: "COFFEE SHOP",
		Date:        date,
	}

	repo.EXPECT().BeginImport(gomock.Any(), userID, accountID).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return([]*transaction.Transaction{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), userID, accountID, params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[0], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := transaction.NewService(transaction.NewMockRepository(ctrl), procedure.NewMockProcedures(ctrl))

	result, err := svc.ImportBatch(context.Background(), uuid.New(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo, procedure.NewMockProcedures(ctrl))

	userID, accountID := uuid.New(), uuid.New()
	first := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	params := []transaction.ImportParams{
		{Amount: decimal.NewFromInt(-10), Description: "COFFEE SHOP", Date: last},
		{Amount: decimal.NewFromInt(900), Description: "TRANSFER IN", Date: first},
	}

	repo.EXPECT().BeginImport(gomock.Any(), userID, accountID).Return(itx, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), userID, accountID, params)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.False(t, txs[0].IsIncome())
	assert.True(t, txs[1].IsIncome())
	assert.Equal(t, userID, txs[1].UserID)
}
