package model

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/domain/event"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Debt aggregate root
// ---------------------------------------------------------------------------

// Debt is an immutable aggregate covering one credit sale, its installment
// schedule and its payment history. Mutations return a new copy. The seller
// is carried on the aggregate (resolved through the debtor at load time) so
// ownership checks and events do not need a second lookup.
type Debt struct {
	id            string
	debtorID      string
	sellerID      string
	productName   string
	amount        decimal.Decimal
	date          time.Time
	deadline      valueobject.DeadlinePeriod
	paid          bool
	comment       string
	productImages []string
	schedule      []Installment
	payments      []Payment
	createdAt     time.Time
	updatedAt     time.Time
	domainEvents  []event.DomainEvent
}

// NewDebt creates a debt and generates its installment schedule.
func NewDebt(
	debtorID, sellerID, productName string,
	amount decimal.Decimal,
	date time.Time,
	deadline valueobject.DeadlinePeriod,
	comment string,
	productImages []string,
	now time.Time,
) (Debt, error) {
	if debtorID == "" {
		return Debt{}, errors.New("debtor ID is required")
	}
	if sellerID == "" {
		return Debt{}, errors.New("seller ID is required")
	}
	if productName == "" {
		return Debt{}, errors.New("product name is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Debt{}, errors.New("amount must be positive")
	}
	if deadline.IsZero() {
		deadline = valueobject.DeadlineTwelveMonths
	}
	if date.IsZero() {
		date = now
	}

	id := uuid.New().String()
	schedule := GenerateInstallmentSchedule(id, amount, date, deadline)

	debt := Debt{
		id:            id,
		debtorID:      debtorID,
		sellerID:      sellerID,
		productName:   productName,
		amount:        amount,
		date:          date,
		deadline:      deadline,
		comment:       comment,
		productImages: productImages,
		schedule:      schedule,
		createdAt:     now,
		updatedAt:     now,
	}

	debt.domainEvents = append(debt.domainEvents, event.NewDebtCreated(
		id, sellerID, debtorID, productName, amount, deadline.String(), len(schedule),
	))

	return debt, nil
}

// ReconstructDebt rebuilds a Debt aggregate from persistence.
func ReconstructDebt(
	id, debtorID, sellerID, productName string,
	amount decimal.Decimal,
	date time.Time,
	deadline valueobject.DeadlinePeriod,
	paid bool,
	comment string,
	productImages []string,
	schedule []Installment,
	payments []Payment,
	createdAt, updatedAt time.Time,
) Debt {
	return Debt{
		id:            id,
		debtorID:      debtorID,
		sellerID:      sellerID,
		productName:   productName,
		amount:        amount,
		date:          date,
		deadline:      deadline,
		paid:          paid,
		comment:       comment,
		productImages: productImages,
		schedule:      schedule,
		payments:      payments,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Payment allocation
// ---------------------------------------------------------------------------

// RecordMonthlyPayment settles the earliest unpaid installment in full and
// returns the resulting payment.
func (d Debt) RecordMonthlyPayment(paidAt time.Time) (Debt, Payment, error) {
	if d.paid {
		return d, Payment{}, ErrDebtAlreadyPaid
	}

	next := d.copyForWrite(paidAt)

	target := -1
	for idx := range next.schedule {
		if !next.schedule[idx].IsPaid {
			target = idx
			break
		}
	}
	if target == -1 {
		return d, Payment{}, ErrScheduleExhausted
	}

	installment := &next.schedule[target]
	installment.PaidAmount = installment.Amount
	installment.IsPaid = true
	installment.PaidDate = &paidAt

	payment := Payment{
		ID:        uuid.New().String(),
		DebtorID:  d.debtorID,
		DebtID:    d.id,
		Amount:    installment.Amount,
		CreatedAt: paidAt,
		Allocations: []Allocation{
			{InstallmentID: installment.ID, Amount: installment.Amount},
		},
	}

	next.finishAllocation(payment, valueobject.PaymentTypeMonthly, paidAt)
	return next, payment, nil
}

// RecordAnyAmountPayment spreads a free-form amount across unpaid
// installments in due order. The last touched installment may end up
// partially paid.
func (d Debt) RecordAnyAmountPayment(amount decimal.Decimal, paidAt time.Time) (Debt, Payment, error) {
	if d.paid {
		return d, Payment{}, ErrDebtAlreadyPaid
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return d, Payment{}, ErrAmountRequired
	}

	remaining := d.amount.Sub(d.TotalPaid())
	if amount.GreaterThan(remaining) {
		return d, Payment{}, &ExceedsRemainingError{Remaining: remaining}
	}

	next := d.copyForWrite(paidAt)

	var allocations []Allocation
	remainingPayment := amount
	for idx := range next.schedule {
		if remainingPayment.LessThanOrEqual(decimal.Zero) {
			break
		}
		installment := &next.schedule[idx]
		if installment.IsPaid {
			continue
		}

		unpaid := installment.Unpaid()
		if remainingPayment.GreaterThanOrEqual(unpaid) {
			installment.PaidAmount = installment.Amount
			installment.IsPaid = true
			installment.PaidDate = &paidAt
			remainingPayment = remainingPayment.Sub(unpaid)
			allocations = append(allocations, Allocation{InstallmentID: installment.ID, Amount: unpaid})
		} else {
			installment.PaidAmount = installment.PaidAmount.Add(remainingPayment)
			allocations = append(allocations, Allocation{InstallmentID: installment.ID, Amount: remainingPayment})
			remainingPayment = decimal.Zero
		}
	}

	payment := Payment{
		ID:          uuid.New().String(),
		DebtorID:    d.debtorID,
		DebtID:      d.id,
		Amount:      amount,
		CreatedAt:   paidAt,
		Allocations: allocations,
	}

	next.finishAllocation(payment, valueobject.PaymentTypeAnyAmount, paidAt)
	return next, payment, nil
}

// RecordMultipleMonthsPayment settles an explicit selection of unpaid
// installments in full and records one payment covering their total.
func (d Debt) RecordMultipleMonthsPayment(installmentIDs []string, paidAt time.Time) (Debt, Payment, error) {
	if d.paid {
		return d, Payment{}, ErrDebtAlreadyPaid
	}
	if len(installmentIDs) == 0 {
		return d, Payment{}, ErrInvalidScheduleSelection
	}

	next := d.copyForWrite(paidAt)

	selected := make(map[string]struct{}, len(installmentIDs))
	for _, id := range installmentIDs {
		selected[id] = struct{}{}
	}
	if len(selected) != len(installmentIDs) {
		return d, Payment{}, ErrInvalidScheduleSelection
	}

	var allocations []Allocation
	total := decimal.Zero
	matched := 0
	for idx := range next.schedule {
		installment := &next.schedule[idx]
		if _, ok := selected[installment.ID]; !ok {
			continue
		}
		if installment.IsPaid {
			return d, Payment{}, ErrInvalidScheduleSelection
		}
		matched++

		installment.PaidAmount = installment.Amount
		installment.IsPaid = true
		installment.PaidDate = &paidAt
		total = total.Add(installment.Amount)
		allocations = append(allocations, Allocation{InstallmentID: installment.ID, Amount: installment.Amount})
	}
	if matched != len(selected) {
		return d, Payment{}, ErrInvalidScheduleSelection
	}

	payment := Payment{
		ID:          uuid.New().String(),
		DebtorID:    d.debtorID,
		DebtID:      d.id,
		Amount:      total,
		CreatedAt:   paidAt,
		Allocations: allocations,
	}

	next.finishAllocation(payment, valueobject.PaymentTypeMultipleMonths, paidAt)
	return next, payment, nil
}

// finishAllocation appends the payment to the history, re-derives the paid
// flag and emits the allocation events. Called on the already-copied next
// state only.
func (d *Debt) finishAllocation(payment Payment, paymentType valueobject.PaymentType, paidAt time.Time) {
	d.payments = append(d.payments, payment)

	d.domainEvents = append(d.domainEvents, event.NewPaymentRecorded(
		d.id, d.sellerID, payment.ID, d.debtorID, paymentType.String(), payment.Amount, paidAt,
	))

	if d.allInstallmentsPaid() {
		d.paid = true
		d.domainEvents = append(d.domainEvents, event.NewDebtSettled(d.id, d.sellerID, d.debtorID, d.amount))
	}
}

// ---------------------------------------------------------------------------
// Payment reversal
// ---------------------------------------------------------------------------

// ReversePayment undoes the allocation a deleted payment produced. When the
// payment carries allocation records the exact recorded set is reversed;
// otherwise the historical timestamp heuristic is applied: installments with
// a paid date at or before the payment's creation time are unwound most
// recently paid first. The debt is always reopened.
func (d Debt) ReversePayment(payment Payment, now time.Time) (Debt, error) {
	if payment.DebtID != d.id {
		return d, ErrPaymentNotFound
	}

	next := d.copyForWrite(now)

	if payment.HasAllocations() {
		next.reverseRecordedAllocations(payment)
	} else {
		next.reverseByTimestampHeuristic(payment)
	}

	// A deleted payment proves the debt was not settled; leave it open and
	// let a future payment re-derive the flag.
	next.paid = false

	kept := next.payments[:0]
	for _, p := range next.payments {
		if p.ID != payment.ID {
			kept = append(kept, p)
		}
	}
	next.payments = kept

	next.domainEvents = append(next.domainEvents, event.NewPaymentReversed(
		d.id, d.sellerID, payment.ID, payment.Amount,
	))

	return next, nil
}

func (d *Debt) reverseRecordedAllocations(payment Payment) {
	byID := make(map[string]*Installment, len(d.schedule))
	for idx := range d.schedule {
		byID[d.schedule[idx].ID] = &d.schedule[idx]
	}

	for _, alloc := range payment.Allocations {
		installment, ok := byID[alloc.InstallmentID]
		if !ok {
			continue
		}

		newPaid := installment.PaidAmount.Sub(alloc.Amount)
		if newPaid.LessThan(decimal.Zero) {
			newPaid = decimal.Zero
		}
		installment.PaidAmount = newPaid
		installment.IsPaid = newPaid.GreaterThanOrEqual(installment.Amount)
		if newPaid.IsZero() {
			installment.PaidDate = nil
		}
	}
}

func (d *Debt) reverseByTimestampHeuristic(payment Payment) {
	candidates := make([]*Installment, 0, len(d.schedule))
	for idx := range d.schedule {
		installment := &d.schedule[idx]
		if installment.PaidDate != nil && !installment.PaidDate.After(payment.CreatedAt) {
			candidates = append(candidates, installment)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].PaidDate.After(*candidates[j].PaidDate)
	})

	remaining := payment.Amount
	for _, installment := range candidates {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		switch {
		case installment.IsPaid && remaining.GreaterThanOrEqual(installment.Amount):
			installment.IsPaid = false
			installment.PaidDate = nil
			installment.PaidAmount = decimal.Zero
			remaining = remaining.Sub(installment.Amount)

		case remaining.LessThan(installment.Amount) && remaining.GreaterThan(decimal.Zero):
			newPaid := installment.PaidAmount.Sub(remaining)
			if newPaid.LessThan(decimal.Zero) {
				newPaid = decimal.Zero
			}
			installment.PaidAmount = newPaid
			installment.IsPaid = newPaid.GreaterThanOrEqual(installment.Amount)
			remaining = decimal.Zero
		}
	}
}

// ---------------------------------------------------------------------------
// Schedule regeneration and edits
// ---------------------------------------------------------------------------

// ChangeTerms updates the debt's amount, date and deadline and regenerates
// the installment schedule. The edit is rejected once any installment has
// been paid down or any payment exists, so payment progress is never
// silently discarded.
func (d Debt) ChangeTerms(
	amount decimal.Decimal,
	date time.Time,
	deadline valueobject.DeadlinePeriod,
	now time.Time,
) (Debt, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return d, errors.New("amount must be positive")
	}
	if !d.canRegenerateSchedule() {
		return d, ErrScheduleAlreadyExists
	}

	next := d.copyForWrite(now)
	next.amount = amount
	if !date.IsZero() {
		next.date = date
	}
	if !deadline.IsZero() {
		next.deadline = deadline
	}
	next.schedule = GenerateInstallmentSchedule(next.id, next.amount, next.date, next.deadline)
	next.paid = false

	next.domainEvents = append(next.domainEvents, event.NewScheduleRegenerated(
		next.id, next.sellerID, next.amount, next.deadline.String(), len(next.schedule),
	))

	return next, nil
}

// UpdateDetails changes the fields that never affect the schedule.
func (d Debt) UpdateDetails(productName, comment string, productImages []string, now time.Time) Debt {
	next := d.copyForWrite(now)
	if productName != "" {
		next.productName = productName
	}
	next.comment = comment
	if productImages != nil {
		next.productImages = productImages
	}
	return next
}

func (d Debt) canRegenerateSchedule() bool {
	if len(d.payments) > 0 {
		return false
	}
	for _, installment := range d.schedule {
		// Zero shares of a sub-cent split are born settled; only money
		// actually collected blocks a regeneration.
		if installment.PaidAmount.GreaterThan(decimal.Zero) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Derived values
// ---------------------------------------------------------------------------

// TotalPaid sums the debt's payment history.
func (d Debt) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.payments {
		total = total.Add(p.Amount)
	}
	return total
}

// RemainingAmount is the debt amount minus all recorded payments.
func (d Debt) RemainingAmount() decimal.Decimal {
	return d.amount.Sub(d.TotalPaid())
}

// NextUnpaidInstallment returns the earliest unpaid installment, if any.
func (d Debt) NextUnpaidInstallment() (Installment, bool) {
	for _, installment := range d.schedule {
		if !installment.IsPaid {
			return installment, true
		}
	}
	return Installment{}, false
}

func (d Debt) allInstallmentsPaid() bool {
	for _, installment := range d.schedule {
		if !installment.IsPaid {
			return false
		}
	}
	return len(d.schedule) > 0
}

// ---------------------------------------------------------------------------
// Internal copy helpers
// ---------------------------------------------------------------------------

func (d Debt) copyForWrite(now time.Time) Debt {
	next := d
	next.updatedAt = now
	next.schedule = make([]Installment, len(d.schedule))
	copy(next.schedule, d.schedule)
	next.payments = make([]Payment, len(d.payments))
	copy(next.payments, d.payments)
	next.domainEvents = copyEvents(d.domainEvents)
	return next
}

func copyEvents(events []event.DomainEvent) []event.DomainEvent {
	if events == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(events))
	copy(out, events)
	return out
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d Debt) ID() string                            { return d.id }
func (d Debt) DebtorID() string                      { return d.debtorID }
func (d Debt) SellerID() string                      { return d.sellerID }
func (d Debt) ProductName() string                   { return d.productName }
func (d Debt) Amount() decimal.Decimal               { return d.amount }
func (d Debt) Date() time.Time                       { return d.date }
func (d Debt) Deadline() valueobject.DeadlinePeriod  { return d.deadline }
func (d Debt) Paid() bool                            { return d.paid }
func (d Debt) Comment() string                       { return d.comment }
func (d Debt) ProductImages() []string               { return d.productImages }
func (d Debt) CreatedAt() time.Time                  { return d.createdAt }
func (d Debt) UpdatedAt() time.Time                  { return d.updatedAt }
func (d Debt) DomainEvents() []event.DomainEvent     { return d.domainEvents }

// Schedule returns a defensive copy of the installment schedule.
func (d Debt) Schedule() []Installment {
	if d.schedule == nil {
		return nil
	}
	out := make([]Installment, len(d.schedule))
	copy(out, d.schedule)
	return out
}

// Payments returns a defensive copy of the payment history.
func (d Debt) Payments() []Payment {
	if d.payments == nil {
		return nil
	}
	out := make([]Payment, len(d.payments))
	copy(out, d.payments)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (d Debt) ClearEvents() Debt {
	next := d
	next.domainEvents = nil
	return next
}
