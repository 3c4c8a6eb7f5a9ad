package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

func TestUpdateDebt_Execute(t *testing.T) {
	t.Run("amount change regenerates the schedule", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		debtRepo := &mockDebtRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Debt, error) {
				return debt, nil
			},
		}
		uc := usecase.NewUpdateDebtUseCase(debtRepo, &mockEventPublisher{})

		amount := decimal.NewFromInt(600)
		resp, err := uc.Execute(context.Background(), dto.UpdateDebtRequest{
			SellerID: "seller-001",
			DebtID:   debt.ID(),
			Amount:   &amount,
			Deadline: "SIX_MONTHS",
		})

		require.NoError(t, err)
		require.Len(t, resp.Schedule, 6)
		assert.Equal(t, "100", resp.Schedule[0].Amount.String())
	})

	t.Run("detail-only edit leaves the schedule alone", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		debt, _, err := debt.RecordMonthlyPayment(debt.CreatedAt())
		require.NoError(t, err)

		debtRepo := &mockDebtRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Debt, error) {
				return debt, nil
			},
		}
		uc := usecase.NewUpdateDebtUseCase(debtRepo, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.UpdateDebtRequest{
			SellerID:    "seller-001",
			DebtID:      debt.ID(),
			ProductName: "Fridge",
			Comment:     "renamed",
		})

		require.NoError(t, err)
		assert.Equal(t, "Fridge", resp.ProductName)
		require.Len(t, resp.Schedule, 3)
		assert.True(t, resp.Schedule[0].IsPaid)
	})

	t.Run("terms change rejected once payments exist", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		debt, _, err := debt.RecordMonthlyPayment(debt.CreatedAt())
		require.NoError(t, err)

		debtRepo := &mockDebtRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Debt, error) {
				return debt, nil
			},
		}
		uc := usecase.NewUpdateDebtUseCase(debtRepo, &mockEventPublisher{})

		amount := decimal.NewFromInt(900)
		_, err = uc.Execute(context.Background(), dto.UpdateDebtRequest{
			SellerID: "seller-001",
			DebtID:   debt.ID(),
			Amount:   &amount,
		})

		assert.ErrorIs(t, err, model.ErrScheduleAlreadyExists)
		assert.Empty(t, debtRepo.updatedDebts)
	})
}
