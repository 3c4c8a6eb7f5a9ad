package usecase_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

func TestDeletePayment_Execute(t *testing.T) {
	t.Run("reverses the payment and reopens the debt", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		debt, payment, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(300), debt.CreatedAt())
		require.NoError(t, err)
		require.True(t, debt.Paid())
		debt = debt.ClearEvents()

		debtRepo := &mockDebtRepository{
			findByIDForUpdateFunc: func(_ context.Context, _, _ string) (model.Debt, error) {
				return debt, nil
			},
		}
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _, _ string) (model.Payment, error) {
				return payment, nil
			},
		}
		publisher := &mockEventPublisher{}
		uow := &mockUnitOfWork{debts: debtRepo, payments: paymentRepo}

		uc := usecase.NewDeletePaymentUseCase(uow, publisher, slog.Default())
		err = uc.Execute(context.Background(), dto.DeletePaymentRequest{
			SellerID:  "seller-001",
			PaymentID: payment.ID,
		})

		require.NoError(t, err)
		require.Len(t, debtRepo.updatedDebts, 1)

		reopened := debtRepo.updatedDebts[0]
		assert.False(t, reopened.Paid())
		assert.Empty(t, reopened.Payments())
		for _, inst := range reopened.Schedule() {
			assert.False(t, inst.IsPaid)
			assert.True(t, inst.PaidAmount.IsZero())
		}
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("fails when payment not found", func(t *testing.T) {
		uow := &mockUnitOfWork{
			debts:    &mockDebtRepository{},
			payments: &mockPaymentRepository{},
		}
		uc := usecase.NewDeletePaymentUseCase(uow, &mockEventPublisher{}, slog.Default())

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{
			SellerID:  "seller-001",
			PaymentID: "missing",
		})

		assert.ErrorIs(t, err, model.ErrPaymentNotFound)
	})
}
