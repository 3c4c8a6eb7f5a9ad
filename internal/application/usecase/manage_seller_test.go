package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
)

func TestGetSeller_Execute(t *testing.T) {
	seller, err := model.NewSeller("Dilshod Karimov", "+998907654321", "", "hash", "", time.Now().UTC())
	require.NoError(t, err)

	t.Run("attaches collection statistics", func(t *testing.T) {
		sellerRepo := &mockSellerRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Seller, error) {
				return seller, nil
			},
		}
		debtRepo := &mockDebtRepository{
			statsBySellerIDFunc: func(_ context.Context, sellerID string, _ time.Time) (model.SellerStats, error) {
				assert.Equal(t, seller.ID(), sellerID)
				return model.SellerStats{
					DebtorCount:         7,
					TotalDebtBalance:    decimal.RequireFromString("1250.50"),
					DelayedInstallments: 3,
				}, nil
			},
		}
		uc := usecase.NewGetSellerUseCase(sellerRepo, debtRepo)

		resp, err := uc.Execute(context.Background(), seller.ID())

		require.NoError(t, err)
		assert.Equal(t, seller.ID(), resp.ID)
		require.NotNil(t, resp.Stats)
		assert.Equal(t, 7, resp.Stats.DebtorCount)
		assert.Equal(t, "1250.5", resp.Stats.TotalDebtBalance.String())
		assert.Equal(t, 3, resp.Stats.DelayedInstallments)
	})

	t.Run("unknown seller", func(t *testing.T) {
		uc := usecase.NewGetSellerUseCase(&mockSellerRepository{}, &mockDebtRepository{})

		_, err := uc.Execute(context.Background(), "missing")

		assert.ErrorIs(t, err, model.ErrSellerNotFound)
	})
}
