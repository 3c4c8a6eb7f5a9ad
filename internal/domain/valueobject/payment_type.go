package valueobject

import (
	"fmt"
)

// ---------------------------------------------------------------------------
// PaymentType – immutable value object
// ---------------------------------------------------------------------------

// PaymentType selects how an incoming payment is allocated across a debt's
// installment schedule.
type PaymentType struct {
	value string
}

const (
	paymentTypeMonthly        = "MONTHLY_PAYMENT"
	paymentTypeAnyAmount      = "ANY_AMOUNT_PAYMENT"
	paymentTypeMultipleMonths = "MULTIPLE_MONTHS_PAYMENT"
)

var (
	// PaymentTypeMonthly settles the earliest unpaid installment in full.
	PaymentTypeMonthly = PaymentType{value: paymentTypeMonthly}
	// PaymentTypeAnyAmount spreads a free-form amount across unpaid
	// installments in due order, allowing a partial tail.
	PaymentTypeAnyAmount = PaymentType{value: paymentTypeAnyAmount}
	// PaymentTypeMultipleMonths settles an explicit selection of unpaid
	// installments in full.
	PaymentTypeMultipleMonths = PaymentType{value: paymentTypeMultipleMonths}
)

var validPaymentTypes = map[string]PaymentType{
	paymentTypeMonthly:        PaymentTypeMonthly,
	paymentTypeAnyAmount:      PaymentTypeAnyAmount,
	paymentTypeMultipleMonths: PaymentTypeMultipleMonths,
}

// NewPaymentType creates a PaymentType from a raw string.
func NewPaymentType(s string) (PaymentType, error) {
	v, ok := validPaymentTypes[s]
	if !ok {
		return PaymentType{}, fmt.Errorf("invalid payment type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the payment type.
func (t PaymentType) String() string { return t.value }

// IsZero returns true if the payment type has not been initialised.
func (t PaymentType) IsZero() bool { return t.value == "" }

// Equal returns true when both payment types carry the same value.
func (t PaymentType) Equal(other PaymentType) bool {
	return t.value == other.value
}
