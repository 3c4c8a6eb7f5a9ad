package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

func TestGetSchedule_Execute(t *testing.T) {
	t.Run("progress rounds to the nearest percent", func(t *testing.T) {
		debt := openDebt(t, "800", valueobject.DeadlineEightMonths)
		debt, _, err := debt.RecordMonthlyPayment(time.Now().UTC())
		require.NoError(t, err)

		debtRepo := &mockDebtRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Debt, error) {
				return debt, nil
			},
		}
		uc := usecase.NewGetScheduleUseCase(debtRepo)

		resp, err := uc.Execute(context.Background(), dto.GetScheduleRequest{
			SellerID: "seller-001",
			DebtID:   debt.ID(),
		})

		require.NoError(t, err)
		require.Len(t, resp.Installments, 8)
		assert.Equal(t, 1, resp.Progress.PaidInstallments)
		assert.Equal(t, 8, resp.Progress.TotalInstallments)
		// 1 of 8 is 12.5 percent, rounded up.
		assert.Equal(t, 13, resp.Progress.Percent)
		assert.Equal(t, "100", resp.TotalPaid.String())
		assert.Equal(t, "700", resp.Remaining.String())
	})

	t.Run("settled debt reports one hundred percent", func(t *testing.T) {
		debt := openDebt(t, "200", valueobject.DeadlineTwoMonths)
		now := time.Now().UTC()
		debt, _, err := debt.RecordMonthlyPayment(now)
		require.NoError(t, err)
		debt, _, err = debt.RecordMonthlyPayment(now)
		require.NoError(t, err)

		debtRepo := &mockDebtRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Debt, error) {
				return debt, nil
			},
		}
		uc := usecase.NewGetScheduleUseCase(debtRepo)

		resp, err := uc.Execute(context.Background(), dto.GetScheduleRequest{
			SellerID: "seller-001",
			DebtID:   debt.ID(),
		})

		require.NoError(t, err)
		assert.Equal(t, 100, resp.Progress.Percent)
		assert.True(t, resp.Remaining.IsZero())
	})
}
