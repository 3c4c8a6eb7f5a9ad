package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/pkg/auth"
)

// UpdateSellerUseCase edits a seller's profile, optionally changing the
// password.
type UpdateSellerUseCase struct {
	sellerRepo port.SellerRepository
}

// NewUpdateSellerUseCase wires dependencies.
func NewUpdateSellerUseCase(sellerRepo port.SellerRepository) *UpdateSellerUseCase {
	return &UpdateSellerUseCase{sellerRepo: sellerRepo}
}

// Execute applies the edit.
func (uc *UpdateSellerUseCase) Execute(ctx context.Context, req dto.UpdateSellerRequest) (dto.SellerResponse, error) {
	now := time.Now().UTC()

	seller, err := uc.sellerRepo.FindByID(ctx, req.SellerID)
	if err != nil {
		return dto.SellerResponse{}, fmt.Errorf("find seller: %w", err)
	}

	seller = seller.UpdateProfile(req.FullName, req.PhoneNumber, req.Email, req.Image, now)

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return dto.SellerResponse{}, fmt.Errorf("hash password: %w", err)
		}
		seller, err = seller.ChangePassword(hash, now)
		if err != nil {
			return dto.SellerResponse{}, err
		}
	}

	if err := uc.sellerRepo.Update(ctx, seller); err != nil {
		return dto.SellerResponse{}, fmt.Errorf("update seller: %w", err)
	}
	return toSellerResponse(seller), nil
}

// GetSellerUseCase retrieves one seller account with collection statistics.
type GetSellerUseCase struct {
	sellerRepo port.SellerRepository
	debtRepo   port.DebtRepository
}

// NewGetSellerUseCase wires dependencies.
func NewGetSellerUseCase(sellerRepo port.SellerRepository, debtRepo port.DebtRepository) *GetSellerUseCase {
	return &GetSellerUseCase{sellerRepo: sellerRepo, debtRepo: debtRepo}
}

// Execute loads the seller and attaches debtor count, unpaid balance and
// delayed-installment count.
func (uc *GetSellerUseCase) Execute(ctx context.Context, sellerID string) (dto.SellerResponse, error) {
	// 1. Load the account.
	seller, err := uc.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return dto.SellerResponse{}, fmt.Errorf("find seller: %w", err)
	}

	// 2. Aggregate the collection position as of now.
	stats, err := uc.debtRepo.StatsBySellerID(ctx, sellerID, time.Now().UTC())
	if err != nil {
		return dto.SellerResponse{}, fmt.Errorf("seller stats: %w", err)
	}

	resp := toSellerResponse(seller)
	resp.Stats = &dto.SellerStats{
		DebtorCount:         stats.DebtorCount,
		TotalDebtBalance:    stats.TotalDebtBalance,
		DelayedInstallments: stats.DelayedInstallments,
	}
	return resp, nil
}

// ListSellersUseCase pages through seller accounts for the back office.
type ListSellersUseCase struct {
	sellerRepo port.SellerRepository
}

// NewListSellersUseCase wires dependencies.
func NewListSellersUseCase(sellerRepo port.SellerRepository) *ListSellersUseCase {
	return &ListSellersUseCase{sellerRepo: sellerRepo}
}

// Execute lists sellers.
func (uc *ListSellersUseCase) Execute(ctx context.Context, limit, offset int) ([]dto.SellerResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	sellers, err := uc.sellerRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}

	out := make([]dto.SellerResponse, 0, len(sellers))
	for _, seller := range sellers {
		out = append(out, toSellerResponse(seller))
	}
	return out, nil
}

// DeleteSellerUseCase removes a seller account. Debtors and debts cascade
// at the database level.
type DeleteSellerUseCase struct {
	sellerRepo port.SellerRepository
}

// NewDeleteSellerUseCase wires dependencies.
func NewDeleteSellerUseCase(sellerRepo port.SellerRepository) *DeleteSellerUseCase {
	return &DeleteSellerUseCase{sellerRepo: sellerRepo}
}

// Execute deletes the seller.
func (uc *DeleteSellerUseCase) Execute(ctx context.Context, sellerID string) error {
	if _, err := uc.sellerRepo.FindByID(ctx, sellerID); err != nil {
		return fmt.Errorf("find seller: %w", err)
	}
	if err := uc.sellerRepo.Delete(ctx, sellerID); err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	return nil
}
