package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

// UpdateDebtUseCase edits a debt. Detail fields change freely; amount, date
// or deadline changes regenerate the schedule and are rejected once any
// payment progress exists.
type UpdateDebtUseCase struct {
	debtRepo  port.DebtRepository
	publisher port.EventPublisher
}

// NewUpdateDebtUseCase wires dependencies.
func NewUpdateDebtUseCase(debtRepo port.DebtRepository, publisher port.EventPublisher) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{debtRepo: debtRepo, publisher: publisher}
}

// Execute applies the edit and publishes any regeneration event.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, req dto.UpdateDebtRequest) (dto.DebtResponse, error) {
	now := time.Now().UTC()

	debt, err := uc.debtRepo.FindByID(ctx, req.SellerID, req.DebtID)
	if err != nil {
		return dto.DebtResponse{}, fmt.Errorf("find debt: %w", err)
	}

	debt = debt.UpdateDetails(req.ProductName, req.Comment, req.ProductImages, now)

	if req.Amount != nil || req.Date != nil || req.Deadline != "" {
		amount := debt.Amount()
		if req.Amount != nil {
			amount = *req.Amount
		}
		date := debt.Date()
		if req.Date != nil {
			date = *req.Date
		}
		deadline := debt.Deadline()
		if req.Deadline != "" {
			deadline, err = valueobject.NewDeadlinePeriod(req.Deadline)
			if err != nil {
				return dto.DebtResponse{}, err
			}
		}

		debt, err = debt.ChangeTerms(amount, date, deadline, now)
		if err != nil {
			return dto.DebtResponse{}, err
		}
	}

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return dto.DebtResponse{}, fmt.Errorf("update debt: %w", err)
	}

	if err := uc.publisher.Publish(ctx, debt.DomainEvents()...); err != nil {
		return dto.DebtResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toDebtResponse(debt), nil
}
