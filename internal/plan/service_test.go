package plan_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/plan"
	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

func TestFinancialPlan_Progress(t *testing.T) {
	tests := []struct {
		name    string
		goal    string
		current string
		want    string
	}{
		{name: "Empty", goal: "1000", current: "0", want: "0"},
		{name: "Partial", goal: "3000", current: "1000", want: "33.33"},
		{name: "Reached", goal: "500", current: "500", want: "100"},
		{name: "OverGoalCapped", goal: "500", current: "750", want: "100"},
		{name: "NoGoal", goal: "0", current: "10", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &plan.FinancialPlan{
				GoalAmount:    decimal.RequireFromString(tt.goal),
				CurrentAmount: decimal.RequireFromString(tt.current),
			}

			assert.True(t, decimal.RequireFromString(tt.want).Equal(p.Progress()), "got %s", p.Progress())
		})
	}
}

func TestFinancialPlan_Remaining(t *testing.T) {
	p := &plan.FinancialPlan{GoalAmount: decimal.NewFromInt(500), CurrentAmount: decimal.NewFromInt(750)}
	assert.True(t, p.Remaining().IsZero())

	p.CurrentAmount = decimal.NewFromInt(120)
	assert.True(t, decimal.NewFromInt(380).Equal(p.Remaining()))
}

func TestService_AddValue(t *testing.T) {
	userID, id := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		amount    decimal.Decimal
		setupMock func(repo *plan.MockRepository, procs *procedure.MockProcedures)
		wantErr   bool
	}{
		{
			name:   "Success",
			amount: decimal.NewFromInt(200),
			setupMock: func(repo *plan.MockRepository, procs *procedure.MockProcedures) {
				gomock.InOrder(
					procs.EXPECT().AddPlanValue(gomock.Any(), procedure.AddPlanValueInput{UserID: userID, PlanID: id, Amount: decimal.NewFromInt(200)}).Return(nil),
					repo.EXPECT().GetPlan(gomock.Any(), userID, id).Return(&plan.FinancialPlan{ID: id, CurrentAmount: decimal.NewFromInt(700)}, nil),
				)
			},
		},
		{
			name:    "NonPositive",
			amount:  decimal.Zero,
			wantErr: true,
		},
		{
			name:   "ProcedureError",
			amount: decimal.NewFromInt(10),
			setupMock: func(_ *plan.MockRepository, procs *procedure.MockProcedures) {
				procs.EXPECT().AddPlanValue(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := plan.NewMockRepository(ctrl)
			procs := procedure.NewMockProcedures(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, procs)
			}

			got, err := plan.NewService(repo, procs).AddValue(context.Background(), userID, id, tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(700).Equal(got.CurrentAmount))
		})
	}
}

func TestService_Update_LeavesCurrentAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()
	existing := &plan.FinancialPlan{ID: id, UserID: userID, Name: "Viagem", GoalAmount: decimal.NewFromInt(5000), CurrentAmount: decimal.NewFromInt(1200)}

	repo := plan.NewMockRepository(ctrl)
	repo.EXPECT().GetPlan(gomock.Any(), userID, id).Return(existing, nil)
	repo.EXPECT().UpdatePlan(gomock.Any(), existing).Return(nil)

	got, err := plan.NewService(repo, procedure.NewMockProcedures(ctrl)).Update(context.Background(), userID, id, plan.Params{
		Name:       "Viagem Japão",
		GoalAmount: decimal.NewFromInt(15000),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1200).Equal(got.CurrentAmount))
	assert.Equal(t, "Viagem Japão", got.Name)
}
