package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
	"github.com/Sidiqjon/debt-manager/pkg/events"
)

func openDebt(t *testing.T, amount string, deadline valueobject.DeadlinePeriod) model.Debt {
	t.Helper()
	debt, err := model.NewDebt(
		"debtor-001", "seller-001", "Washing machine",
		decimal.RequireFromString(amount),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		deadline, "", nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	return debt.ClearEvents()
}

func newPaymentFixture(debt model.Debt) (*usecase.CreatePaymentUseCase, *mockDebtRepository, *mockEventPublisher) {
	debtRepo := &mockDebtRepository{
		findByIDForUpdateFunc: func(_ context.Context, sellerID, id string) (model.Debt, error) {
			return debt, nil
		},
	}
	debtorRepo := &mockDebtorRepository{
		findByIDFunc: func(_ context.Context, sellerID, id string) (model.Debtor, error) {
			return model.ReconstructDebtor(
				id, sellerID, "Olim Karimov", "", "",
				[]string{"+998901112233"}, nil, false,
				time.Now().UTC(), time.Now().UTC(),
			), nil
		},
	}
	publisher := &mockEventPublisher{}
	uow := &mockUnitOfWork{debts: debtRepo, payments: &mockPaymentRepository{}, debtors: debtorRepo}
	uc := usecase.NewCreatePaymentUseCase(uow, publisher, &mockSMSGateway{}, slog.Default())
	return uc, debtRepo, publisher
}

func TestCreatePayment_Execute(t *testing.T) {
	t.Run("monthly payment settles the next installment", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		uc, debtRepo, publisher := newPaymentFixture(debt)

		resp, err := uc.Execute(context.Background(), dto.CreatePaymentRequest{
			SellerID:    "seller-001",
			DebtID:      debt.ID(),
			PaymentType: "MONTHLY_PAYMENT",
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(resp.Amount))
		require.Len(t, resp.Allocations, 1)

		require.Len(t, debtRepo.updatedDebts, 1)
		assert.True(t, debtRepo.updatedDebts[0].Schedule()[0].IsPaid)
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("backdated payment date lands on the installment", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		uc, debtRepo, _ := newPaymentFixture(debt)
		paymentDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), dto.CreatePaymentRequest{
			SellerID:    "seller-001",
			DebtID:      debt.ID(),
			PaymentType: "MONTHLY_PAYMENT",
			PaymentDate: &paymentDate,
		})

		require.NoError(t, err)
		require.Len(t, debtRepo.updatedDebts, 1)
		first := debtRepo.updatedDebts[0].Schedule()[0]
		require.NotNil(t, first.PaidDate)
		assert.True(t, paymentDate.Equal(*first.PaidDate))
	})

	t.Run("any amount payment carries its allocations", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		uc, debtRepo, _ := newPaymentFixture(debt)

		resp, err := uc.Execute(context.Background(), dto.CreatePaymentRequest{
			SellerID:    "seller-001",
			DebtID:      debt.ID(),
			PaymentType: "ANY_AMOUNT_PAYMENT",
			Amount:      decimal.NewFromInt(150),
		})

		require.NoError(t, err)
		require.Len(t, resp.Allocations, 2)
		assert.True(t, decimal.NewFromInt(100).Equal(resp.Allocations[0].Amount))
		assert.True(t, decimal.NewFromInt(50).Equal(resp.Allocations[1].Amount))
		require.Len(t, debtRepo.updatedDebts, 1)
	})

	t.Run("multiple months payment settles the selection", func(t *testing.T) {
		debt := openDebt(t, "400", valueobject.DeadlineFourMonths)
		schedule := debt.Schedule()
		uc, _, _ := newPaymentFixture(debt)

		resp, err := uc.Execute(context.Background(), dto.CreatePaymentRequest{
			SellerID:       "seller-001",
			DebtID:         debt.ID(),
			PaymentType:    "MULTIPLE_MONTHS_PAYMENT",
			InstallmentIDs: []string{schedule[0].ID, schedule[2].ID},
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(200).Equal(resp.Amount))
	})

	t.Run("rejects unknown payment type", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		uc, debtRepo, _ := newPaymentFixture(debt)

		_, err := uc.Execute(context.Background(), dto.CreatePaymentRequest{
			SellerID:    "seller-001",
			DebtID:      debt.ID(),
			PaymentType: "WEEKLY_PAYMENT",
		})

		require.Error(t, err)
		assert.Empty(t, debtRepo.updatedDebts)
	})

	t.Run("overpayment rolls back without persisting", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		uc, debtRepo, publisher := newPaymentFixture(debt)

		_, err := uc.Execute(context.Background(), dto.CreatePaymentRequest{
			SellerID:    "seller-001",
			DebtID:      debt.ID(),
			PaymentType: "ANY_AMOUNT_PAYMENT",
			Amount:      decimal.NewFromInt(1000),
		})

		require.Error(t, err)
		exceeds, ok := model.IsExceedsRemaining(err)
		require.True(t, ok)
		assert.True(t, decimal.NewFromInt(300).Equal(exceeds.Remaining))
		assert.Empty(t, debtRepo.updatedDebts)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("payment survives a broker outage", func(t *testing.T) {
		debt := openDebt(t, "300", valueobject.DeadlineThreeMonths)
		debtRepo := &mockDebtRepository{
			findByIDForUpdateFunc: func(_ context.Context, _, _ string) (model.Debt, error) {
				return debt, nil
			},
		}
		failing := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...events.DomainEvent) error {
				return assert.AnError
			},
		}

		debtorRepo := &mockDebtorRepository{
			findByIDFunc: func(_ context.Context, sellerID, id string) (model.Debtor, error) {
				return model.ReconstructDebtor(
					id, sellerID, "Olim Karimov", "", "",
					[]string{"+998901112233"}, nil, false,
					time.Now().UTC(), time.Now().UTC(),
				), nil
			},
		}
		uow := &mockUnitOfWork{debts: debtRepo, payments: &mockPaymentRepository{}, debtors: debtorRepo}
		uc := usecase.NewCreatePaymentUseCase(uow, failing, &mockSMSGateway{}, slog.Default())

		resp, err := uc.Execute(context.Background(), dto.CreatePaymentRequest{
			SellerID:    "seller-001",
			DebtID:      debt.ID(),
			PaymentType: "MONTHLY_PAYMENT",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		require.Len(t, debtRepo.updatedDebts, 1)
	})
}
