package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// CreateDebtorUseCase registers a new debtor under a seller.
type CreateDebtorUseCase struct {
	debtorRepo port.DebtorRepository
}

// NewCreateDebtorUseCase wires dependencies.
func NewCreateDebtorUseCase(debtorRepo port.DebtorRepository) *CreateDebtorUseCase {
	return &CreateDebtorUseCase{debtorRepo: debtorRepo}
}

// Execute creates and persists the debtor.
func (uc *CreateDebtorUseCase) Execute(ctx context.Context, req dto.CreateDebtorRequest) (dto.DebtorResponse, error) {
	now := time.Now().UTC()

	debtor, err := model.NewDebtor(req.SellerID, req.FullName, req.Address, req.Note, req.PhoneNumbers, req.Images, now)
	if err != nil {
		return dto.DebtorResponse{}, fmt.Errorf("create debtor: %w", err)
	}

	if err := uc.debtorRepo.Save(ctx, debtor); err != nil {
		return dto.DebtorResponse{}, fmt.Errorf("save debtor: %w", err)
	}
	return toDebtorResponse(debtor), nil
}
