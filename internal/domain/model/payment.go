package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation records how much of a payment landed on one installment. The
// set of allocations is written together with the payment, so deleting the
// payment can reverse exactly the installments it touched instead of
// guessing from timestamps.
type Allocation struct {
	InstallmentID string
	Amount        decimal.Decimal
}

// Payment is a recorded receipt of money against a debt. Payments are
// immutable once created; the only permitted mutation is deletion, which
// reverses their allocations.
type Payment struct {
	ID          string
	DebtorID    string
	DebtID      string
	Amount      decimal.Decimal
	CreatedAt   time.Time
	Allocations []Allocation
}

// HasAllocations reports whether this payment carries an explicit allocation
// record. Payments persisted before allocation tracking existed do not, and
// are reversed by the timestamp heuristic instead.
func (p Payment) HasAllocations() bool {
	return len(p.Allocations) > 0
}
