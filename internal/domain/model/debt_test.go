package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/domain/event"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

var (
	testStart = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	testNow   = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
)

func newTestDebt(t *testing.T, amount string, deadline valueobject.DeadlinePeriod) Debt {
	t.Helper()
	debt, err := NewDebt(
		"debtor-1", "seller-1", "Refrigerator",
		decimal.RequireFromString(amount),
		testStart, deadline, "", nil, testNow,
	)
	require.NoError(t, err)
	return debt.ClearEvents()
}

func TestNewDebt_Validation(t *testing.T) {
	tests := []struct {
		name     string
		debtorID string
		product  string
		amount   decimal.Decimal
	}{
		{"missing debtor", "", "TV", decimal.NewFromInt(100)},
		{"missing product", "debtor-1", "", decimal.NewFromInt(100)},
		{"zero amount", "debtor-1", "TV", decimal.Zero},
		{"negative amount", "debtor-1", "TV", decimal.NewFromInt(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDebt(tt.debtorID, "seller-1", tt.product, tt.amount, testStart, valueobject.DeadlineSixMonths, "", nil, testNow)
			assert.Error(t, err)
		})
	}
}

func TestNewDebt_GeneratesScheduleAndEvent(t *testing.T) {
	debt, err := NewDebt(
		"debtor-1", "seller-1", "TV",
		decimal.NewFromInt(600), testStart, valueobject.DeadlineSixMonths, "note", nil, testNow,
	)
	require.NoError(t, err)

	assert.Len(t, debt.Schedule(), 6)
	assert.False(t, debt.Paid())
	assert.Equal(t, "seller-1", debt.SellerID())

	events := debt.DomainEvents()
	require.Len(t, events, 1)
	created, ok := events[0].(event.DebtCreated)
	require.True(t, ok)
	assert.Equal(t, debt.ID(), created.AggregateID())
	assert.Equal(t, 6, created.Installments)
}

func TestNewDebt_DefaultsDeadlineToTwelveMonths(t *testing.T) {
	debt, err := NewDebt(
		"debtor-1", "seller-1", "TV",
		decimal.NewFromInt(1200), testStart, valueobject.DeadlinePeriod{}, "", nil, testNow,
	)
	require.NoError(t, err)
	assert.Len(t, debt.Schedule(), 12)
}

func TestRecordMonthlyPayment_SettlesEarliestUnpaid(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)
	paidAt := testNow.AddDate(0, 1, 0)

	debt, payment, err := debt.RecordMonthlyPayment(paidAt)
	require.NoError(t, err)

	assert.Equal(t, "100", payment.Amount.String())
	require.Len(t, payment.Allocations, 1)

	schedule := debt.Schedule()
	assert.True(t, schedule[0].IsPaid)
	assert.Equal(t, schedule[0].ID, payment.Allocations[0].InstallmentID)
	require.NotNil(t, schedule[0].PaidDate)
	assert.True(t, schedule[0].PaidDate.Equal(paidAt))
	assert.False(t, schedule[1].IsPaid)
	assert.False(t, debt.Paid())
}

func TestRecordMonthlyPayment_ScheduleExhausted(t *testing.T) {
	debt := newTestDebt(t, "100", valueobject.DeadlineOneMonth)

	debt, _, err := debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)
	assert.True(t, debt.Paid())

	_, _, err = debt.RecordMonthlyPayment(testNow)
	assert.ErrorIs(t, err, ErrDebtAlreadyPaid)
}

func TestRecordMonthlyPayment_SettlesDebtOnLastInstallment(t *testing.T) {
	debt := newTestDebt(t, "200", valueobject.DeadlineTwoMonths)

	debt, _, err := debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)
	debt, _, err = debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)

	assert.True(t, debt.Paid())

	var settled bool
	for _, e := range debt.DomainEvents() {
		if _, ok := e.(event.DebtSettled); ok {
			settled = true
		}
	}
	assert.True(t, settled)
}

func TestRecordMonthlyPayment_SkipsZeroSharesOfSubCentSplit(t *testing.T) {
	// 0.06 over twelve months leaves eleven zero shares and one carrying
	// installment. A single monthly payment must land on the carrying one
	// with a positive amount and settle the debt.
	debt := newTestDebt(t, "0.06", valueobject.DeadlineTwelveMonths)

	debt, payment, err := debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)

	assert.Equal(t, "0.06", payment.Amount.StringFixed(2))
	assert.True(t, payment.Amount.IsPositive())
	assert.True(t, debt.Paid())

	_, _, err = debt.RecordMonthlyPayment(testNow)
	assert.ErrorIs(t, err, ErrDebtAlreadyPaid)
}

func TestRecordAnyAmountPayment_RequiresAmount(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	_, _, err := debt.RecordAnyAmountPayment(decimal.Zero, testNow)
	assert.ErrorIs(t, err, ErrAmountRequired)
}

func TestRecordAnyAmountPayment_RejectsOverpayment(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, _, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(100), testNow)
	require.NoError(t, err)

	_, _, err = debt.RecordAnyAmountPayment(decimal.NewFromInt(250), testNow)
	require.Error(t, err)

	exceeds, ok := IsExceedsRemaining(err)
	require.True(t, ok)
	assert.Equal(t, "200", exceeds.Remaining.String())
}

func TestRecordAnyAmountPayment_SpilloverWithPartialTail(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, payment, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(150), testNow)
	require.NoError(t, err)

	assert.Equal(t, "150", payment.Amount.String())
	require.Len(t, payment.Allocations, 2)
	assert.Equal(t, "100", payment.Allocations[0].Amount.String())
	assert.Equal(t, "50", payment.Allocations[1].Amount.String())

	schedule := debt.Schedule()
	assert.True(t, schedule[0].IsPaid)
	assert.NotNil(t, schedule[0].PaidDate)

	assert.False(t, schedule[1].IsPaid)
	assert.Equal(t, "50", schedule[1].PaidAmount.String())
	// A partially covered installment carries no paid date until settled.
	assert.Nil(t, schedule[1].PaidDate)

	assert.True(t, schedule[2].PaidAmount.IsZero())
}

func TestRecordAnyAmountPayment_TopsUpPartialInstallment(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, _, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(150), testNow)
	require.NoError(t, err)

	later := testNow.Add(time.Hour)
	debt, payment, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(50), later)
	require.NoError(t, err)

	require.Len(t, payment.Allocations, 1)
	assert.Equal(t, "50", payment.Allocations[0].Amount.String())

	schedule := debt.Schedule()
	assert.True(t, schedule[1].IsPaid)
	require.NotNil(t, schedule[1].PaidDate)
	assert.True(t, schedule[1].PaidDate.Equal(later))
}

func TestRecordAnyAmountPayment_FullRemainingSettlesDebt(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, _, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(300), testNow)
	require.NoError(t, err)

	assert.True(t, debt.Paid())
	assert.True(t, debt.RemainingAmount().IsZero())
	for _, inst := range debt.Schedule() {
		assert.True(t, inst.IsPaid)
	}
}

func TestRecordMultipleMonthsPayment_SettlesSelection(t *testing.T) {
	debt := newTestDebt(t, "400", valueobject.DeadlineFourMonths)
	schedule := debt.Schedule()

	// Pay months 2 and 4, out of order.
	ids := []string{schedule[3].ID, schedule[1].ID}
	debt, payment, err := debt.RecordMultipleMonthsPayment(ids, testNow)
	require.NoError(t, err)

	assert.Equal(t, "200", payment.Amount.String())
	assert.Len(t, payment.Allocations, 2)

	schedule = debt.Schedule()
	assert.False(t, schedule[0].IsPaid)
	assert.True(t, schedule[1].IsPaid)
	assert.False(t, schedule[2].IsPaid)
	assert.True(t, schedule[3].IsPaid)
	assert.False(t, debt.Paid())
}

func TestRecordMultipleMonthsPayment_RejectsBadSelection(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)
	schedule := debt.Schedule()

	debt2, _, err := debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)

	tests := []struct {
		name string
		debt Debt
		ids  []string
	}{
		{"empty selection", debt, nil},
		{"unknown installment", debt, []string{"not-an-id"}},
		{"duplicate id", debt, []string{schedule[1].ID, schedule[1].ID}},
		{"already paid installment", debt2, []string{schedule[0].ID}},
		{"mix of known and unknown", debt, []string{schedule[1].ID, "not-an-id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.debt.Schedule()
			_, _, err := tt.debt.RecordMultipleMonthsPayment(tt.ids, testNow)
			assert.ErrorIs(t, err, ErrInvalidScheduleSelection)
			// Rejection leaves the schedule untouched.
			assert.Equal(t, before, tt.debt.Schedule())
		})
	}
}

func TestReversePayment_ExactAllocations(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, payment, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(150), testNow)
	require.NoError(t, err)

	debt, err = debt.ReversePayment(payment, testNow.Add(time.Hour))
	require.NoError(t, err)

	schedule := debt.Schedule()
	for i, inst := range schedule {
		assert.False(t, inst.IsPaid, "installment %d", i+1)
		assert.True(t, inst.PaidAmount.IsZero(), "installment %d paid %s", i+1, inst.PaidAmount)
		assert.Nil(t, inst.PaidDate, "installment %d", i+1)
	}
	assert.False(t, debt.Paid())
	assert.Empty(t, debt.Payments())
	assert.True(t, debt.RemainingAmount().Equal(decimal.NewFromInt(300)))
}

func TestReversePayment_OnlyUndoesOwnAllocations(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, first, err := debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)
	debt, second, err := debt.RecordMonthlyPayment(testNow.Add(time.Hour))
	require.NoError(t, err)

	debt, err = debt.ReversePayment(second, testNow.Add(2*time.Hour))
	require.NoError(t, err)

	schedule := debt.Schedule()
	assert.True(t, schedule[0].IsPaid)
	assert.False(t, schedule[1].IsPaid)
	assert.True(t, schedule[1].PaidAmount.IsZero())

	payments := debt.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, first.ID, payments[0].ID)
}

func TestReversePayment_ReopensSettledDebt(t *testing.T) {
	debt := newTestDebt(t, "200", valueobject.DeadlineTwoMonths)

	debt, payment, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(200), testNow)
	require.NoError(t, err)
	require.True(t, debt.Paid())

	debt, err = debt.ReversePayment(payment, testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, debt.Paid())
}

func TestReversePayment_LegacyHeuristicFallback(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, payment, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(150), testNow)
	require.NoError(t, err)

	// A payment loaded from rows written before allocations were recorded.
	legacy := payment
	legacy.Allocations = nil

	debt, err = debt.ReversePayment(legacy, testNow.Add(time.Hour))
	require.NoError(t, err)

	schedule := debt.Schedule()
	assert.False(t, schedule[0].IsPaid)
	assert.True(t, schedule[0].PaidAmount.IsZero())
	// The heuristic cannot see the partial tail; it unwinds settled
	// installments with a paid date at or before the payment time.
	assert.Equal(t, "50", schedule[1].PaidAmount.String())
	assert.False(t, debt.Paid())
}

func TestReversePayment_WrongDebt(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)
	other := newTestDebt(t, "100", valueobject.DeadlineOneMonth)

	other, payment, err := other.RecordMonthlyPayment(testNow)
	require.NoError(t, err)
	_ = other

	_, err = debt.ReversePayment(payment, testNow)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestChangeTerms_RegeneratesSchedule(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, err := debt.ChangeTerms(decimal.NewFromInt(600), testStart, valueobject.DeadlineSixMonths, testNow)
	require.NoError(t, err)

	schedule := debt.Schedule()
	require.Len(t, schedule, 6)
	assert.Equal(t, "100", schedule[0].Amount.String())
	assert.Equal(t, "600", debt.Amount().String())
}

func TestChangeTerms_RejectedAfterPayment(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, _, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(10), testNow)
	require.NoError(t, err)

	_, err = debt.ChangeTerms(decimal.NewFromInt(600), testStart, valueobject.DeadlineSixMonths, testNow)
	assert.ErrorIs(t, err, ErrScheduleAlreadyExists)
}

func TestChangeTerms_AllowedAgainAfterFullReversal(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, payment, err := debt.RecordAnyAmountPayment(decimal.NewFromInt(10), testNow)
	require.NoError(t, err)
	debt, err = debt.ReversePayment(payment, testNow.Add(time.Hour))
	require.NoError(t, err)

	debt, err = debt.ChangeTerms(decimal.NewFromInt(400), testStart, valueobject.DeadlineFourMonths, testNow)
	require.NoError(t, err)
	assert.Len(t, debt.Schedule(), 4)
}

func TestImmutability_PaymentDoesNotMutateOriginal(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)
	before := debt.Schedule()

	_, _, err := debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)

	assert.Equal(t, before, debt.Schedule())
	assert.Empty(t, debt.Payments())
}

func TestTotalPaidAndRemaining(t *testing.T) {
	debt := newTestDebt(t, "300", valueobject.DeadlineThreeMonths)

	debt, _, err := debt.RecordMonthlyPayment(testNow)
	require.NoError(t, err)
	debt, _, err = debt.RecordAnyAmountPayment(decimal.NewFromInt(30), testNow)
	require.NoError(t, err)

	assert.Equal(t, "130", debt.TotalPaid().String())
	assert.Equal(t, "170", debt.RemainingAmount().String())
}
