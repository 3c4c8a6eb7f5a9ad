package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
)

func existingDebtor(t *testing.T) model.Debtor {
	t.Helper()
	debtor, err := model.NewDebtor(
		"seller-001", "Alisher Usmonov", "Chilonzor 5", "",
		[]string{"+998901234567"}, nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return debtor
}

func TestCreateDebt_Execute(t *testing.T) {
	t.Run("creates a debt with a generated schedule", func(t *testing.T) {
		debtor := existingDebtor(t)
		debtorRepo := &mockDebtorRepository{
			findByIDFunc: func(_ context.Context, sellerID, id string) (model.Debtor, error) {
				assert.Equal(t, "seller-001", sellerID)
				return debtor, nil
			},
		}
		debtRepo := &mockDebtRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateDebtUseCase(debtRepo, debtorRepo, publisher)
		resp, err := uc.Execute(context.Background(), dto.CreateDebtRequest{
			SellerID:    "seller-001",
			DebtorID:    debtor.ID(),
			ProductName: "Television",
			Amount:      decimal.NewFromInt(1000),
			Deadline:    "THREE_MONTHS",
		})

		require.NoError(t, err)
		require.Len(t, resp.Schedule, 3)
		assert.Equal(t, "333.33", resp.Schedule[0].Amount.StringFixed(2))
		assert.Equal(t, "333.34", resp.Schedule[2].Amount.StringFixed(2))
		assert.False(t, resp.Paid)

		require.Len(t, debtRepo.savedDebts, 1)
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("fails when the debtor does not exist", func(t *testing.T) {
		debtRepo := &mockDebtRepository{}
		uc := usecase.NewCreateDebtUseCase(debtRepo, &mockDebtorRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.CreateDebtRequest{
			SellerID:    "seller-001",
			DebtorID:    "missing",
			ProductName: "Television",
			Amount:      decimal.NewFromInt(1000),
			Deadline:    "THREE_MONTHS",
		})

		assert.ErrorIs(t, err, model.ErrDebtorNotFound)
		assert.Empty(t, debtRepo.savedDebts)
	})

	t.Run("rejects an invalid deadline", func(t *testing.T) {
		debtor := existingDebtor(t)
		debtorRepo := &mockDebtorRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Debtor, error) {
				return debtor, nil
			},
		}
		uc := usecase.NewCreateDebtUseCase(&mockDebtRepository{}, debtorRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.CreateDebtRequest{
			SellerID:    "seller-001",
			DebtorID:    debtor.ID(),
			ProductName: "Television",
			Amount:      decimal.NewFromInt(1000),
			Deadline:    "FORTY_MONTHS",
		})

		assert.Error(t, err)
	})
}
