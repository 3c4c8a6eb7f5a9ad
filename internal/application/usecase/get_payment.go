package usecase

import (
	"context"
	"fmt"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// GetPaymentUseCase retrieves one payment with its allocations.
type GetPaymentUseCase struct {
	paymentRepo port.PaymentRepository
}

// NewGetPaymentUseCase wires dependencies.
func NewGetPaymentUseCase(paymentRepo port.PaymentRepository) *GetPaymentUseCase {
	return &GetPaymentUseCase{paymentRepo: paymentRepo}
}

// Execute loads the payment scoped to the requesting seller.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, req dto.GetPaymentRequest) (dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, req.SellerID, req.PaymentID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find payment: %w", err)
	}
	return toPaymentResponse(payment), nil
}

// ListPaymentsUseCase pages through payment history, optionally scoped to a
// debt or a debtor.
type ListPaymentsUseCase struct {
	paymentRepo port.PaymentRepository
}

// NewListPaymentsUseCase wires dependencies.
func NewListPaymentsUseCase(paymentRepo port.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{paymentRepo: paymentRepo}
}

// Execute lists payments most recent first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, req dto.ListPaymentsRequest) ([]dto.PaymentResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	var (
		payments []model.Payment
		err      error
	)
	switch {
	case req.DebtID != "":
		payments, err = uc.paymentRepo.ListByDebtID(ctx, req.SellerID, req.DebtID)
	case req.DebtorID != "":
		payments, err = uc.paymentRepo.ListByDebtorID(ctx, req.SellerID, req.DebtorID)
	default:
		payments, err = uc.paymentRepo.ListBySellerID(ctx, req.SellerID, limit, req.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		out = append(out, toPaymentResponse(payment))
	}
	return out, nil
}

// GetPaymentHistoryUseCase returns a debtor's full payment history together
// with the grand total, matching what the debtor detail screen shows.
type GetPaymentHistoryUseCase struct {
	paymentRepo port.PaymentRepository
}

// NewGetPaymentHistoryUseCase wires dependencies.
func NewGetPaymentHistoryUseCase(paymentRepo port.PaymentRepository) *GetPaymentHistoryUseCase {
	return &GetPaymentHistoryUseCase{paymentRepo: paymentRepo}
}

// Execute lists the debtor's payments most recent first and totals them.
func (uc *GetPaymentHistoryUseCase) Execute(ctx context.Context, sellerID, debtorID string) (dto.PaymentHistoryResponse, error) {
	payments, err := uc.paymentRepo.ListByDebtorID(ctx, sellerID, debtorID)
	if err != nil {
		return dto.PaymentHistoryResponse{}, fmt.Errorf("list payments: %w", err)
	}
	total, err := uc.paymentRepo.SumByDebtorID(ctx, sellerID, debtorID)
	if err != nil {
		return dto.PaymentHistoryResponse{}, fmt.Errorf("sum payments: %w", err)
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		out = append(out, toPaymentResponse(payment))
	}
	return dto.PaymentHistoryResponse{Payments: out, TotalPaid: total}, nil
}
