package usecase

import (
	"context"
	"fmt"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// DeleteDebtUseCase removes a debt with its schedule and payment history.
type DeleteDebtUseCase struct {
	debtRepo port.DebtRepository
}

// NewDeleteDebtUseCase wires dependencies.
func NewDeleteDebtUseCase(debtRepo port.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{debtRepo: debtRepo}
}

// Execute deletes the debt scoped to the requesting seller.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, req dto.DeleteDebtRequest) error {
	// Confirm ownership before touching rows.
	if _, err := uc.debtRepo.FindByID(ctx, req.SellerID, req.DebtID); err != nil {
		return fmt.Errorf("find debt: %w", err)
	}
	if err := uc.debtRepo.Delete(ctx, req.SellerID, req.DebtID); err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	return nil
}
