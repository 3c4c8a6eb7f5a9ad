package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

func TestNewPaymentType_ValidTypes(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.PaymentType
	}{
		{"MONTHLY_PAYMENT", valueobject.PaymentTypeMonthly},
		{"ANY_AMOUNT_PAYMENT", valueobject.PaymentTypeAnyAmount},
		{"MULTIPLE_MONTHS_PAYMENT", valueobject.PaymentTypeMultipleMonths},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			pt, err := valueobject.NewPaymentType(tc.input)
			require.NoError(t, err)
			assert.True(t, pt.Equal(tc.expected))
			assert.Equal(t, tc.input, pt.String())
			assert.False(t, pt.IsZero())
		})
	}
}

func TestNewPaymentType_Invalid(t *testing.T) {
	invalid := []string{"", "MONTHLY", "monthly_payment", "FULL_PAYMENT"}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := valueobject.NewPaymentType(input)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid payment type")
		})
	}
}

func TestPaymentType_IsZero(t *testing.T) {
	var zero valueobject.PaymentType
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
}
