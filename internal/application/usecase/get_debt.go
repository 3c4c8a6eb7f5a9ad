package usecase

import (
	"context"
	"fmt"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

const defaultPageSize = 50

// GetDebtUseCase retrieves one debt with its schedule.
type GetDebtUseCase struct {
	debtRepo port.DebtRepository
}

// NewGetDebtUseCase wires dependencies.
func NewGetDebtUseCase(debtRepo port.DebtRepository) *GetDebtUseCase {
	return &GetDebtUseCase{debtRepo: debtRepo}
}

// Execute loads the debt scoped to the requesting seller.
func (uc *GetDebtUseCase) Execute(ctx context.Context, req dto.GetDebtRequest) (dto.DebtResponse, error) {
	debt, err := uc.debtRepo.FindByID(ctx, req.SellerID, req.DebtID)
	if err != nil {
		return dto.DebtResponse{}, fmt.Errorf("find debt: %w", err)
	}
	return toDebtResponse(debt), nil
}

// ListDebtsUseCase pages through a seller's debts, optionally scoped to one
// debtor.
type ListDebtsUseCase struct {
	debtRepo port.DebtRepository
}

// NewListDebtsUseCase wires dependencies.
func NewListDebtsUseCase(debtRepo port.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{debtRepo: debtRepo}
}

// Execute lists debts for the seller.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, req dto.ListDebtsRequest) ([]dto.DebtResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	var (
		debts []model.Debt
		err   error
	)
	if req.DebtorID != "" {
		debts, err = uc.debtRepo.FindByDebtorID(ctx, req.SellerID, req.DebtorID)
	} else {
		debts, err = uc.debtRepo.ListBySellerID(ctx, req.SellerID, req.Paid, limit, req.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}

	out := make([]dto.DebtResponse, 0, len(debts))
	for _, debt := range debts {
		out = append(out, toDebtResponse(debt))
	}
	return out, nil
}
