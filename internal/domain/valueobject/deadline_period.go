package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// DeadlinePeriod – immutable value object
// ---------------------------------------------------------------------------

// DeadlinePeriod represents the repayment horizon of a debt, one of twelve
// monthly steps. It maps to a month count used by the schedule generator.
type DeadlinePeriod struct {
	value string
}

const (
	deadlineOneMonth     = "ONE_MONTH"
	deadlineTwoMonths    = "TWO_MONTHS"
	deadlineThreeMonths  = "THREE_MONTHS"
	deadlineFourMonths   = "FOUR_MONTHS"
	deadlineFiveMonths   = "FIVE_MONTHS"
	deadlineSixMonths    = "SIX_MONTHS"
	deadlineSevenMonths  = "SEVEN_MONTHS"
	deadlineEightMonths  = "EIGHT_MONTHS"
	deadlineNineMonths   = "NINE_MONTHS"
	deadlineTenMonths    = "TEN_MONTHS"
	deadlineElevenMonths = "ELEVEN_MONTHS"
	deadlineTwelveMonths = "TWELVE_MONTHS"
)

var (
	DeadlineOneMonth     = DeadlinePeriod{value: deadlineOneMonth}
	DeadlineTwoMonths    = DeadlinePeriod{value: deadlineTwoMonths}
	DeadlineThreeMonths  = DeadlinePeriod{value: deadlineThreeMonths}
	DeadlineFourMonths   = DeadlinePeriod{value: deadlineFourMonths}
	DeadlineFiveMonths   = DeadlinePeriod{value: deadlineFiveMonths}
	DeadlineSixMonths    = DeadlinePeriod{value: deadlineSixMonths}
	DeadlineSevenMonths  = DeadlinePeriod{value: deadlineSevenMonths}
	DeadlineEightMonths  = DeadlinePeriod{value: deadlineEightMonths}
	DeadlineNineMonths   = DeadlinePeriod{value: deadlineNineMonths}
	DeadlineTenMonths    = DeadlinePeriod{value: deadlineTenMonths}
	DeadlineElevenMonths = DeadlinePeriod{value: deadlineElevenMonths}
	DeadlineTwelveMonths = DeadlinePeriod{value: deadlineTwelveMonths}
)

var deadlineMonths = map[string]int{
	deadlineOneMonth:     1,
	deadlineTwoMonths:    2,
	deadlineThreeMonths:  3,
	deadlineFourMonths:   4,
	deadlineFiveMonths:   5,
	deadlineSixMonths:    6,
	deadlineSevenMonths:  7,
	deadlineEightMonths:  8,
	deadlineNineMonths:   9,
	deadlineTenMonths:    10,
	deadlineElevenMonths: 11,
	deadlineTwelveMonths: 12,
}

// NewDeadlinePeriod creates a DeadlinePeriod from a raw string.
func NewDeadlinePeriod(s string) (DeadlinePeriod, error) {
	if _, ok := deadlineMonths[s]; !ok {
		return DeadlinePeriod{}, fmt.Errorf("invalid deadline period: %q", s)
	}
	return DeadlinePeriod{value: s}, nil
}

// DeadlinePeriodFromMonths creates a DeadlinePeriod from a month count 1..12.
func DeadlinePeriodFromMonths(months int) (DeadlinePeriod, error) {
	for s, m := range deadlineMonths {
		if m == months {
			return DeadlinePeriod{value: s}, nil
		}
	}
	return DeadlinePeriod{}, fmt.Errorf("invalid deadline month count: %d", months)
}

// Months returns the number of monthly installments for this period.
// The zero value reports 0; construction guarantees 1..12 otherwise.
func (p DeadlinePeriod) Months() int { return deadlineMonths[p.value] }

// String returns the string representation of the period.
func (p DeadlinePeriod) String() string { return p.value }

// IsZero returns true if the period has not been initialised.
func (p DeadlinePeriod) IsZero() bool { return p.value == "" }

// Equal returns true when both periods carry the same value.
func (p DeadlinePeriod) Equal(other DeadlinePeriod) bool {
	return p.value == other.value
}
