package procedure_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/carteira/internal/procedure"
)

func TestCreateExpenseInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      procedure.CreateExpenseInput
		wantErr bool
	}{
		{
			name: "Valid",
			in:   procedure.CreateExpenseInput{Amount: decimal.NewFromInt(90), Installments: 3, Description: "TV"},
		},
		{
			name:    "ZeroAmount",
			in:      procedure.CreateExpenseInput{Amount: decimal.Zero, Installments: 1, Description: "TV"},
			wantErr: true,
		},
		{
			name:    "NegativeAmount",
			in:      procedure.CreateExpenseInput{Amount: decimal.NewFromInt(-5), Installments: 1, Description: "TV"},
			wantErr: true,
		},
		{
			name:    "NoInstallments",
			in:      procedure.CreateExpenseInput{Amount: decimal.NewFromInt(90), Description: "TV"},
			wantErr: true,
		},
		{
			name:    "NoDescription",
			in:      procedure.CreateExpenseInput{Amount: decimal.NewFromInt(90), Installments: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, procedure.ErrInvalidInput)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreateIncomeInput_Validate(t *testing.T) {
	assert.NoError(t, procedure.CreateIncomeInput{Amount: decimal.NewFromInt(1), Description: "Salary"}.Validate())
	assert.ErrorIs(t, procedure.CreateIncomeInput{Amount: decimal.Zero, Description: "Salary"}.Validate(), procedure.ErrInvalidInput)
	assert.ErrorIs(t, procedure.CreateIncomeInput{Amount: decimal.NewFromInt(1)}.Validate(), procedure.ErrInvalidInput)
}

func TestAddPlanValueInput_Validate(t *testing.T) {
	assert.NoError(t, procedure.AddPlanValueInput{Amount: decimal.RequireFromString("0.01")}.Validate())
	assert.ErrorIs(t, procedure.AddPlanValueInput{Amount: decimal.NewFromInt(-10)}.Validate(), procedure.ErrInvalidInput)
}
