package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// UpdateDebtorUseCase edits a debtor's profile or favorite flag.
type UpdateDebtorUseCase struct {
	debtorRepo port.DebtorRepository
}

// NewUpdateDebtorUseCase wires dependencies.
func NewUpdateDebtorUseCase(debtorRepo port.DebtorRepository) *UpdateDebtorUseCase {
	return &UpdateDebtorUseCase{debtorRepo: debtorRepo}
}

// Execute applies the edit.
func (uc *UpdateDebtorUseCase) Execute(ctx context.Context, req dto.UpdateDebtorRequest) (dto.DebtorResponse, error) {
	now := time.Now().UTC()

	debtor, err := uc.debtorRepo.FindByID(ctx, req.SellerID, req.DebtorID)
	if err != nil {
		return dto.DebtorResponse{}, fmt.Errorf("find debtor: %w", err)
	}

	debtor = debtor.Update(req.FullName, req.Address, req.Note, req.PhoneNumbers, req.Images, now)
	if req.IsFavorite != nil {
		debtor = debtor.SetFavorite(*req.IsFavorite, now)
	}

	if err := uc.debtorRepo.Update(ctx, debtor); err != nil {
		return dto.DebtorResponse{}, fmt.Errorf("update debtor: %w", err)
	}
	return toDebtorResponse(debtor), nil
}
