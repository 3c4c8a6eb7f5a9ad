package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain errors surfaced by the debt, schedule and payment aggregates. All
// precondition checks run before any mutation, so callers can map these
// directly to user-facing failures without worrying about partial state.
var (
	ErrDebtNotFound     = errors.New("debt not found")
	ErrDebtorNotFound   = errors.New("debtor not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrTemplateNotFound = errors.New("message template not found")
	ErrAccessDenied     = errors.New("access denied")

	// ErrDebtAlreadyPaid rejects payments against a fully settled debt.
	ErrDebtAlreadyPaid = errors.New("debt is already fully paid")

	// ErrScheduleExhausted rejects a monthly payment when every installment
	// is already settled.
	ErrScheduleExhausted = errors.New("all installments are already paid")

	// ErrAmountRequired rejects an any-amount payment without an amount.
	ErrAmountRequired = errors.New("amount is required for an any-amount payment")

	// ErrInvalidScheduleSelection rejects a multiple-months payment whose
	// selection includes unknown, foreign or already-paid installments.
	ErrInvalidScheduleSelection = errors.New("some installments were not found or are already paid")

	// ErrScheduleAlreadyExists rejects schedule regeneration once any
	// installment has been paid down.
	ErrScheduleAlreadyExists = errors.New("schedule exists and has paid installments")

	// ErrInsufficientWallet rejects an SMS send the seller cannot pay for.
	ErrInsufficientWallet = errors.New("insufficient wallet balance")

	// ErrInvalidCredentials rejects a login with a wrong phone number or
	// password without revealing which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled rejects a login by a deactivated seller.
	ErrAccountDisabled = errors.New("account is disabled")
)

// ExceedsRemainingError rejects a payment larger than the debt's remaining
// balance. It carries the balance so callers can render it.
type ExceedsRemainingError struct {
	Remaining decimal.Decimal
}

func (e *ExceedsRemainingError) Error() string {
	return fmt.Sprintf("payment amount cannot exceed remaining debt: %s", e.Remaining)
}

// IsExceedsRemaining unwraps err as an ExceedsRemainingError if it is one.
func IsExceedsRemaining(err error) (*ExceedsRemainingError, bool) {
	var target *ExceedsRemainingError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
