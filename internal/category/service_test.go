package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/carteira/internal/category"
)

func TestService_Learn(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		pattern   string
		category  string
		setupMock func(m *category.MockRepository)
		wantErr   bool
	}{
		{
			name:     "TrimsAndStores",
			pattern:  " UBER ",
			category: "Transporte ",
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().CreateMapping(gomock.Any(), userID, "UBER", "Transporte").Return(nil)
			},
		},
		{
			name:     "MissingPattern",
			pattern:  "  ",
			category: "Transporte",
			wantErr:  true,
		},
		{
			name:    "MissingCategory",
			pattern: "UBER",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := category.NewService(repo).Learn(context.Background(), userID, tt.pattern, tt.category)
			if tt.wantErr {
				assert.ErrorIs(t, err, category.ErrInvalidMapping)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Suggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().FindMatch(gomock.Any(), userID, "COMPRA UBER *TRIP").Return("Transporte", nil)

	got, err := category.NewService(repo).Suggest(context.Background(), userID, "COMPRA UBER *TRIP")
	assert.NoError(t, err)
	assert.Equal(t, "Transporte", got)
}
