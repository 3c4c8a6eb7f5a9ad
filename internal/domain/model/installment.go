package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

// Installment is one scheduled sub-payment of a debt. Number is 1..N and
// unique within the debt; PaidAmount is always in [0, Amount] and IsPaid
// holds exactly when PaidAmount equals Amount.
type Installment struct {
	ID         string
	DebtID     string
	Number     int
	Amount     decimal.Decimal
	PaidAmount decimal.Decimal
	DueDate    time.Time
	PaidDate   *time.Time
	IsPaid     bool
}

// Unpaid returns the portion of this installment not yet covered by payments.
func (i Installment) Unpaid() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}

// GenerateInstallmentSchedule splits a debt amount into monthly installments.
//
// Parameters:
//   - debtID:    the owning debt
//   - amount:    the total debt amount (must be positive)
//   - startDate: the debt date; installment i falls due i months later
//   - deadline:  the repayment horizon, 1..12 months
//
// The first N-1 installments carry amount/N rounded down to currency
// precision; the last installment absorbs the division remainder so the
// amounts sum to the debt amount exactly and no installment is negative.
// Rounding down can leave the leading shares at zero for sub-cent splits;
// those are created already settled so the schedule still satisfies the
// paid-iff-covered rule.
func GenerateInstallmentSchedule(
	debtID string,
	amount decimal.Decimal,
	startDate time.Time,
	deadline valueobject.DeadlinePeriod,
) []Installment {
	months := deadline.Months()
	if months <= 0 || amount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	// Round the equal share down so the remainder on the last installment
	// can never go negative (half-up rounding would overshoot the total on
	// amounts below N cents).
	monthly := amount.Div(decimal.NewFromInt(int64(months))).RoundFloor(2)

	schedule := make([]Installment, 0, months)
	for number := 1; number <= months; number++ {
		installmentAmount := monthly
		if number == months {
			// Last installment: whatever is left after N-1 equal slices.
			installmentAmount = amount.Sub(monthly.Mul(decimal.NewFromInt(int64(months - 1))))
		}

		schedule = append(schedule, Installment{
			ID:         uuid.New().String(),
			DebtID:     debtID,
			Number:     number,
			Amount:     installmentAmount,
			PaidAmount: decimal.Zero,
			DueDate:    startDate.AddDate(0, number, 0),
			IsPaid:     installmentAmount.IsZero(),
		})
	}

	return schedule
}
