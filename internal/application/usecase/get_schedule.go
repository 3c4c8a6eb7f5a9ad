package usecase

import (
	"context"
	"fmt"

	"github.com/Sidiqjon/debt-manager/internal/application/dto"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
)

// GetScheduleUseCase retrieves a debt's installment schedule.
type GetScheduleUseCase struct {
	debtRepo port.DebtRepository
}

// NewGetScheduleUseCase wires dependencies.
func NewGetScheduleUseCase(debtRepo port.DebtRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{debtRepo: debtRepo}
}

// Execute returns the schedule in due order with progress totals.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, req dto.GetScheduleRequest) (dto.ScheduleResponse, error) {
	debt, err := uc.debtRepo.FindByID(ctx, req.SellerID, req.DebtID)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("find debt: %w", err)
	}

	installments := toDebtResponse(debt).Schedule
	paid := 0
	for _, inst := range installments {
		if inst.IsPaid {
			paid++
		}
	}
	// Rounded to the nearest whole percent, with halves rounding up.
	percent := 0
	if total := len(installments); total > 0 {
		percent = (paid*100 + total/2) / total
	}

	return dto.ScheduleResponse{
		Installments: installments,
		Progress: dto.ScheduleProgress{
			PaidInstallments:  paid,
			TotalInstallments: len(installments),
			Percent:           percent,
		},
		TotalPaid: debt.TotalPaid(),
		Remaining: debt.RemainingAmount(),
	}, nil
}
