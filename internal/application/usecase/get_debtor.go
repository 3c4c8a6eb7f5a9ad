package usecase

import (
	"context"
	"fmt"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// GetDebtorUseCase retrieves one debtor.
type GetDebtorUseCase struct {
	debtorRepo port.DebtorRepository
}

// NewGetDebtorUseCase wires dependencies.
func NewGetDebtorUseCase(debtorRepo port.DebtorRepository) *GetDebtorUseCase {
	return &GetDebtorUseCase{debtorRepo: debtorRepo}
}

// Execute loads the debtor scoped to the requesting seller.
func (uc *GetDebtorUseCase) Execute(ctx context.Context, sellerID, debtorID string) (dto.DebtorResponse, error) {
	debtor, err := uc.debtorRepo.FindByID(ctx, sellerID, debtorID)
	if err != nil {
		return dto.DebtorResponse{}, fmt.Errorf("find debtor: %w", err)
	}
	return toDebtorResponse(debtor), nil
}

// ListDebtorsUseCase pages through a seller's debtors with optional search.
type ListDebtorsUseCase struct {
	debtorRepo port.DebtorRepository
}

// NewListDebtorsUseCase wires dependencies.
func NewListDebtorsUseCase(debtorRepo port.DebtorRepository) *ListDebtorsUseCase {
	return &ListDebtorsUseCase{debtorRepo: debtorRepo}
}

// Execute lists or searches debtors.
func (uc *ListDebtorsUseCase) Execute(ctx context.Context, req dto.ListDebtorsRequest) ([]dto.DebtorResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	var (
		debtors []model.Debtor
		err     error
	)
	if req.Search != "" {
		debtors, err = uc.debtorRepo.Search(ctx, req.SellerID, req.Search, limit, req.Offset)
	} else {
		debtors, err = uc.debtorRepo.ListBySellerID(ctx, req.SellerID, limit, req.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list debtors: %w", err)
	}

	out := make([]dto.DebtorResponse, 0, len(debtors))
	for _, debtor := range debtors {
		out = append(out, toDebtorResponse(debtor))
	}
	return out, nil
}

// DeleteDebtorUseCase removes a debtor. Debts cascade at the database level.
type DeleteDebtorUseCase struct {
	debtorRepo port.DebtorRepository
}

// NewDeleteDebtorUseCase wires dependencies.
func NewDeleteDebtorUseCase(debtorRepo port.DebtorRepository) *DeleteDebtorUseCase {
	return &DeleteDebtorUseCase{debtorRepo: debtorRepo}
}

// Execute deletes the debtor scoped to the requesting seller.
func (uc *DeleteDebtorUseCase) Execute(ctx context.Context, sellerID, debtorID string) error {
	if _, err := uc.debtorRepo.FindByID(ctx, sellerID, debtorID); err != nil {
		return fmt.Errorf("find debtor: %w", err)
	}
	if err := uc.debtorRepo.Delete(ctx, sellerID, debtorID); err != nil {
		return fmt.Errorf("delete debtor: %w", err)
	}
	return nil
}
