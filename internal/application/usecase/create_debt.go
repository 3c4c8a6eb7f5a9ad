package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

// CreateDebtUseCase opens a new debt for a debtor and generates its
// installment schedule.
type CreateDebtUseCase struct {
	debtRepo   port.DebtRepository
	debtorRepo port.DebtorRepository
	publisher  port.EventPublisher
}

// NewCreateDebtUseCase wires dependencies.
func NewCreateDebtUseCase(
	debtRepo port.DebtRepository,
	debtorRepo port.DebtorRepository,
	publisher port.EventPublisher,
) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo:   debtRepo,
		debtorRepo: debtorRepo,
		publisher:  publisher,
	}
}

// Execute validates the debtor, creates the debt and publishes its events.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, req dto.CreateDebtRequest) (dto.DebtResponse, error) {
	now := time.Now().UTC()

	// 1. The debtor must exist and belong to the seller.
	if _, err := uc.debtorRepo.FindByID(ctx, req.SellerID, req.DebtorID); err != nil {
		return dto.DebtResponse{}, fmt.Errorf("find debtor: %w", err)
	}

	deadline, err := valueobject.NewDeadlinePeriod(req.Deadline)
	if err != nil && req.Deadline != "" {
		return dto.DebtResponse{}, err
	}

	// 2. Create the aggregate; the schedule is generated inside.
	debt, err := model.NewDebt(
		req.DebtorID, req.SellerID, req.ProductName,
		req.Amount, req.Date, deadline, req.Comment, req.ProductImages, now,
	)
	if err != nil {
		return dto.DebtResponse{}, fmt.Errorf("create debt: %w", err)
	}

	// 3. Persist.
	if err := uc.debtRepo.Save(ctx, debt); err != nil {
		return dto.DebtResponse{}, fmt.Errorf("save debt: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, debt.DomainEvents()...); err != nil {
		return dto.DebtResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toDebtResponse(debt), nil
}
