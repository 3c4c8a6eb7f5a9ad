package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Debt events
// ---------------------------------------------------------------------------

// DebtCreated is raised when a seller records a new credit sale.
type DebtCreated struct {
	events.BaseEvent
	DebtorID     string          `json:"debtor_id"`
	ProductName  string          `json:"product_name"`
	Amount       decimal.Decimal `json:"amount"`
	Deadline     string          `json:"deadline"`
	Installments int             `json:"installments"`
}

func NewDebtCreated(
	debtID, sellerID, debtorID, productName string,
	amount decimal.Decimal, deadline string, installments int,
) DebtCreated {
	return DebtCreated{
		BaseEvent:    events.NewBaseEvent("debt.created", debtID, "Debt", sellerID),
		DebtorID:     debtorID,
		ProductName:  productName,
		Amount:       amount,
		Deadline:     deadline,
		Installments: installments,
	}
}

// ScheduleRegenerated is raised when a debt's installment schedule is
// replaced after a terms change.
type ScheduleRegenerated struct {
	events.BaseEvent
	Amount       decimal.Decimal `json:"amount"`
	Deadline     string          `json:"deadline"`
	Installments int             `json:"installments"`
}

func NewScheduleRegenerated(debtID, sellerID string, amount decimal.Decimal, deadline string, installments int) ScheduleRegenerated {
	return ScheduleRegenerated{
		BaseEvent:    events.NewBaseEvent("debt.schedule_regenerated", debtID, "Debt", sellerID),
		Amount:       amount,
		Deadline:     deadline,
		Installments: installments,
	}
}

// ---------------------------------------------------------------------------
// Payment events
// ---------------------------------------------------------------------------

// PaymentRecorded is raised when a payment is allocated against a debt.
type PaymentRecorded struct {
	events.BaseEvent
	PaymentID   string          `json:"payment_id"`
	DebtorID    string          `json:"debtor_id"`
	PaymentType string          `json:"payment_type"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAt      time.Time       `json:"paid_at"`
}

func NewPaymentRecorded(
	debtID, sellerID, paymentID, debtorID, paymentType string,
	amount decimal.Decimal, paidAt time.Time,
) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:   events.NewBaseEvent("debt.payment_recorded", debtID, "Debt", sellerID),
		PaymentID:   paymentID,
		DebtorID:    debtorID,
		PaymentType: paymentType,
		Amount:      amount,
		PaidAt:      paidAt,
	}
}

// PaymentReversed is raised when a payment is deleted and its allocations
// are rolled back.
type PaymentReversed struct {
	events.BaseEvent
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewPaymentReversed(debtID, sellerID, paymentID string, amount decimal.Decimal) PaymentReversed {
	return PaymentReversed{
		BaseEvent: events.NewBaseEvent("debt.payment_reversed", debtID, "Debt", sellerID),
		PaymentID: paymentID,
		Amount:    amount,
	}
}

// DebtSettled is raised when the last installment of a debt is paid off.
type DebtSettled struct {
	events.BaseEvent
	DebtorID string          `json:"debtor_id"`
	Amount   decimal.Decimal `json:"amount"`
}

func NewDebtSettled(debtID, sellerID, debtorID string, amount decimal.Decimal) DebtSettled {
	return DebtSettled{
		BaseEvent: events.NewBaseEvent("debt.settled", debtID, "Debt", sellerID),
		DebtorID:  debtorID,
		Amount:    amount,
	}
}

// ---------------------------------------------------------------------------
// Messaging events
// ---------------------------------------------------------------------------

// ReminderSent is raised when a due-date reminder SMS is dispatched.
type ReminderSent struct {
	events.BaseEvent
	DebtorID  string    `json:"debtor_id"`
	DueDate   time.Time `json:"due_date"`
	Delivered bool      `json:"delivered"`
}

func NewReminderSent(debtID, sellerID, debtorID string, dueDate time.Time, delivered bool) ReminderSent {
	return ReminderSent{
		BaseEvent: events.NewBaseEvent("debt.reminder_sent", debtID, "Debt", sellerID),
		DebtorID:  debtorID,
		DueDate:   dueDate,
		Delivered: delivered,
	}
}
