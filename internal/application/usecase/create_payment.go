package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

// CreatePaymentUseCase records a payment against a debt. The debt row is
// locked for the duration of the transaction so two concurrent payments
// against the same debt are applied one after the other, each seeing the
// other's result.
type CreatePaymentUseCase struct {
	uow       port.UnitOfWork
	publisher port.EventPublisher
	gateway   port.SMSGateway
	logger    *slog.Logger
}

// NewCreatePaymentUseCase wires dependencies.
func NewCreatePaymentUseCase(uow port.UnitOfWork, publisher port.EventPublisher, gateway port.SMSGateway, logger *slog.Logger) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{uow: uow, publisher: publisher, gateway: gateway, logger: logger}
}

// Execute applies the payment inside one transaction and publishes the
// resulting events after commit.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, req dto.CreatePaymentRequest) (dto.PaymentResponse, error) {
	paymentType, err := valueobject.NewPaymentType(req.PaymentType)
	if err != nil {
		return dto.PaymentResponse{}, err
	}
	now := time.Now().UTC()
	if req.PaymentDate != nil {
		now = req.PaymentDate.UTC()
	}

	var (
		debt    model.Debt
		payment model.Payment
		debtor  model.Debtor
	)
	err = uc.uow.WithinTx(ctx, func(tx port.TxRepositories) error {
		// 1. Lock and load the debt.
		locked, err := tx.Debts().FindByIDForUpdate(ctx, req.SellerID, req.DebtID)
		if err != nil {
			return fmt.Errorf("find debt: %w", err)
		}
		debtor, err = tx.Debtors().FindByID(ctx, req.SellerID, locked.DebtorID())
		if err != nil {
			return fmt.Errorf("find debtor: %w", err)
		}

		// 2. Allocate according to the payment type.
		switch paymentType {
		case valueobject.PaymentTypeMonthly:
			locked, payment, err = locked.RecordMonthlyPayment(now)
		case valueobject.PaymentTypeAnyAmount:
			locked, payment, err = locked.RecordAnyAmountPayment(req.Amount, now)
		case valueobject.PaymentTypeMultipleMonths:
			locked, payment, err = locked.RecordMultipleMonthsPayment(req.InstallmentIDs, now)
		}
		if err != nil {
			return err
		}

		// 3. Persist the debt, schedule, payment and allocations together.
		if err := tx.Debts().Update(ctx, locked); err != nil {
			return fmt.Errorf("update debt: %w", err)
		}

		debt = locked
		return nil
	})
	if err != nil {
		return dto.PaymentResponse{}, err
	}

	// 4. Publish after commit. A broker outage must not undo a recorded
	// payment, so failures are logged and swallowed.
	if err := uc.publisher.Publish(ctx, debt.DomainEvents()...); err != nil {
		uc.logger.Warn("publish payment events failed",
			"debt_id", debt.ID(), "payment_id", payment.ID, "error", err)
	}

	// 5. Confirmation SMS, best effort.
	if phones := debtor.PhoneNumbers(); len(phones) > 0 {
		text := fmt.Sprintf(
			"Hurmatli %s, %s uchun %s to'lovingiz qabul qilindi. Qoldiq: %s.",
			debtor.FullName(), debt.ProductName(),
			payment.Amount.StringFixed(2), debt.RemainingAmount().StringFixed(2),
		)
		if err := uc.gateway.Send(ctx, phones[0], text); err != nil {
			uc.logger.Warn("payment confirmation SMS failed",
				"debt_id", debt.ID(), "payment_id", payment.ID, "error", err)
		}
	}

	resp := toPaymentResponse(payment)
	resp.DebtSettled = debt.Paid()
	return resp, nil
}
