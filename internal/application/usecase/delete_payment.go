package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// DeletePaymentUseCase removes a payment and rolls its allocations back off
// the installment schedule, all inside one transaction.
type DeletePaymentUseCase struct {
	uow       port.UnitOfWork
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewDeletePaymentUseCase wires dependencies.
func NewDeletePaymentUseCase(uow port.UnitOfWork, publisher port.EventPublisher, logger *slog.Logger) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{uow: uow, publisher: publisher, logger: logger}
}

// Execute reverses the payment and publishes the reversal after commit.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, req dto.DeletePaymentRequest) error {
	now := time.Now().UTC()

	var debt model.Debt
	err := uc.uow.WithinTx(ctx, func(tx port.TxRepositories) error {
		// 1. Find the payment to learn which debt it belongs to.
		payment, err := tx.Payments().FindByID(ctx, req.SellerID, req.PaymentID)
		if err != nil {
			return fmt.Errorf("find payment: %w", err)
		}

		// 2. Lock the debt, then reverse against the locked state.
		locked, err := tx.Debts().FindByIDForUpdate(ctx, req.SellerID, payment.DebtID)
		if err != nil {
			return fmt.Errorf("find debt: %w", err)
		}

		locked, err = locked.ReversePayment(payment, now)
		if err != nil {
			return err
		}

		// 3. Persist the reopened debt; the payment row and its
		// allocations go with the aggregate update.
		if err := tx.Debts().Update(ctx, locked); err != nil {
			return fmt.Errorf("update debt: %w", err)
		}

		debt = locked
		return nil
	})
	if err != nil {
		return err
	}

	if err := uc.publisher.Publish(ctx, debt.DomainEvents()...); err != nil {
		uc.logger.Warn("publish reversal events failed", "debt_id", debt.ID(), "error", err)
	}
	return nil
}
