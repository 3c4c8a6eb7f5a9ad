package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

func TestGenerateInstallmentSchedule_EvenSplit(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	schedule := GenerateInstallmentSchedule("debt-1", decimal.NewFromInt(1200), start, valueobject.DeadlineTwelveMonths)

	require.Len(t, schedule, 12)
	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Number)
		assert.True(t, inst.Amount.Equal(decimal.NewFromInt(100)), "installment %d amount %s", i+1, inst.Amount)
		assert.True(t, inst.DueDate.Equal(start.AddDate(0, i+1, 0)), "installment %d due %s", i+1, inst.DueDate)
		assert.False(t, inst.IsPaid)
		assert.True(t, inst.PaidAmount.IsZero())
		assert.Nil(t, inst.PaidDate)
	}
}

func TestGenerateInstallmentSchedule_RemainderOnLast(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	schedule := GenerateInstallmentSchedule("debt-1", decimal.NewFromInt(1000), start, valueobject.DeadlineThreeMonths)

	require.Len(t, schedule, 3)
	assert.Equal(t, "333.33", schedule[0].Amount.StringFixed(2))
	assert.Equal(t, "333.33", schedule[1].Amount.StringFixed(2))
	assert.Equal(t, "333.34", schedule[2].Amount.StringFixed(2))
}

func TestGenerateInstallmentSchedule_SumAlwaysExact(t *testing.T) {
	start := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	amounts := []string{"1000", "999.99", "0.01", "0.06", "0.11", "7777.77", "123456.78"}

	for months := 1; months <= 12; months++ {
		deadline, err := valueobject.DeadlinePeriodFromMonths(months)
		require.NoError(t, err)
		for _, raw := range amounts {
			amount := decimal.RequireFromString(raw)
			schedule := GenerateInstallmentSchedule("debt-1", amount, start, deadline)
			require.Len(t, schedule, months)

			sum := decimal.Zero
			for _, inst := range schedule {
				assert.False(t, inst.Amount.IsNegative(), "months=%d amount=%s installment %d is %s", months, raw, inst.Number, inst.Amount)
				sum = sum.Add(inst.Amount)
			}
			assert.True(t, sum.Equal(amount), "months=%d amount=%s sum=%s", months, raw, sum)
		}
	}
}

func TestGenerateInstallmentSchedule_SubCentSplit(t *testing.T) {
	// 0.06 cannot be split into twelve positive cent amounts. The equal
	// share rounds down to zero, the last installment carries the whole
	// amount and the zero shares are born settled so a run of monthly
	// payments walks straight to the carrying installment.
	start := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	schedule := GenerateInstallmentSchedule("debt-1", decimal.RequireFromString("0.06"), start, valueobject.DeadlineTwelveMonths)

	require.Len(t, schedule, 12)
	for _, inst := range schedule[:11] {
		assert.True(t, inst.Amount.IsZero(), "installment %d amount %s", inst.Number, inst.Amount)
		assert.True(t, inst.IsPaid, "installment %d", inst.Number)
	}
	last := schedule[11]
	assert.Equal(t, "0.06", last.Amount.StringFixed(2))
	assert.False(t, last.IsPaid)
}

func TestGenerateInstallmentSchedule_MonthEndDueDates(t *testing.T) {
	// AddDate normalizes Jan 31 + 1 month to Mar 2/3; the schedule follows
	// that convention rather than clamping to month end.
	start := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	schedule := GenerateInstallmentSchedule("debt-1", decimal.NewFromInt(200), start, valueobject.DeadlineTwoMonths)

	require.Len(t, schedule, 2)
	assert.True(t, schedule[0].DueDate.Equal(start.AddDate(0, 1, 0)))
	assert.True(t, schedule[1].DueDate.Equal(start.AddDate(0, 2, 0)))
}

func TestInstallment_Unpaid(t *testing.T) {
	inst := Installment{
		Amount:     decimal.NewFromInt(100),
		PaidAmount: decimal.NewFromInt(40),
	}
	assert.Equal(t, "60", inst.Unpaid().String())
}
