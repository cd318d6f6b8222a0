package shopping_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/shopping"
)

func price(s string) *decimal.Decimal {
	return new(decimal.RequireFromString(s))
}

func TestItem_Estimate(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		price    *decimal.Decimal
		want     string
	}{
		{name: "Integer", quantity: "3", price: price("4.50"), want: "13.5"},
		{name: "CommaDecimalWithUnit", quantity: "1,5 kg", price: price("10"), want: "15"},
		{name: "DotDecimal", quantity: "0.5", price: price("8"), want: "4"},
		{name: "NotNumeric", quantity: "a dozen", price: price("12"), want: "12"},
		{name: "Empty", quantity: "", price: price("7.25"), want: "7.25"},
		{name: "ZeroCountsAsOne", quantity: "0", price: price("3"), want: "3"},
		{name: "NoPrice", quantity: "4", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &shopping.Item{Name: "x", Quantity: tt.quantity, UnitPrice: tt.price}
			assert.True(t, decimal.RequireFromString(tt.want).Equal(item.Estimate()), "got %s", item.Estimate())
		})
	}
}

func TestList_Totals(t *testing.T) {
	l := &shopping.List{
		Items: []*shopping.Item{
			{Name: "Arroz", Quantity: "2", UnitPrice: price("25.90"), Purchased: true},
			{Name: "Café", Quantity: "1", UnitPrice: price("18.00")},
			{Name: "Sal"},
		},
	}

	got := l.Totals()

	assert.True(t, decimal.RequireFromString("69.80").Equal(got.Estimated))
	assert.True(t, decimal.RequireFromString("51.80").Equal(got.Purchased))
	assert.Equal(t, 3, got.Items)
	assert.Equal(t, 1, got.Done)
}

func TestService_TogglePurchased(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, itemID := uuid.New(), uuid.New()
	item := &shopping.Item{ID: itemID, Name: "Leite"}

	repo := shopping.NewMockRepository(ctrl)
	repo.EXPECT().GetItem(gomock.Any(), userID, itemID).Return(item, nil).Times(2)
	repo.EXPECT().UpdateItem(gomock.Any(), userID, item).Return(nil).Times(2)

	svc := shopping.NewService(repo)

	got, err := svc.TogglePurchased(context.Background(), userID, itemID)
	require.NoError(t, err)
	assert.True(t, got.Purchased)

	got, err = svc.TogglePurchased(context.Background(), userID, itemID)
	require.NoError(t, err)
	assert.False(t, got.Purchased)
}

func TestService_AddItem(t *testing.T) {
	userID, listID := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		params    shopping.ItemParams
		setupMock func(m *shopping.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: shopping.ItemParams{Name: "  Pão ", Quantity: "6", UnitPrice: price("0.80")},
			setupMock: func(m *shopping.MockRepository) {
				m.EXPECT().CreateItem(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, item *shopping.Item) error {
						assert.Equal(t, "Pão", item.Name)
						assert.Equal(t, listID, item.ListID)
						item.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "BlankName",
			params:  shopping.ItemParams{Name: "   "},
			wantErr: shopping.ErrInvalidInput,
		},
		{
			name:    "NegativePrice",
			params:  shopping.ItemParams{Name: "Pão", UnitPrice: price("-1")},
			wantErr: shopping.ErrInvalidInput,
		},
		{
			name:   "ListNotOwned",
			params: shopping.ItemParams{Name: "Pão"},
			setupMock: func(m *shopping.MockRepository) {
				m.EXPECT().CreateItem(gomock.Any(), userID, gomock.Any()).Return(shopping.ErrNotFound)
			},
			wantErr: shopping.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shopping.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := shopping.NewService(repo).AddItem(context.Background(), userID, listID, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_Create_RequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := shopping.NewService(shopping.NewMockRepository(ctrl)).Create(context.Background(), uuid.New(), " ")
	assert.ErrorIs(t, err, shopping.ErrInvalidInput)
}
