// Package port declares the interfaces the domain needs from the outside
// world. Infrastructure implements them; use cases depend on them.
package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/pkg/events"
)

// DebtRepository persists Debt aggregates together with their installment
// schedules, payments and payment allocations.
type DebtRepository interface {
	// FindByID loads a debt and verifies it belongs to the given seller.
	FindByID(ctx context.Context, sellerID, id string) (model.Debt, error)
	// FindByIDForUpdate is FindByID with the debt row locked for the
	// duration of the surrounding transaction. Only valid inside a unit of
	// work; payment and reversal flows use it to serialize concurrent
	// writes against the same debt.
	FindByIDForUpdate(ctx context.Context, sellerID, id string) (model.Debt, error)
	FindByDebtorID(ctx context.Context, sellerID, debtorID string) ([]model.Debt, error)
	// ListBySellerID pages through a seller's debts; paid filters by
	// settlement status when non-nil.
	ListBySellerID(ctx context.Context, sellerID string, paid *bool, limit, offset int) ([]model.Debt, error)
	// ListDueBetween returns open debts with an unpaid installment falling
	// due in [from, to), across all sellers. The reminder job uses it.
	ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Debt, error)
	// StatsBySellerID aggregates the seller's collection position; asOf is
	// the cutoff for counting an unpaid installment as delayed.
	StatsBySellerID(ctx context.Context, sellerID string, asOf time.Time) (model.SellerStats, error)
	Save(ctx context.Context, debt model.Debt) error
	Update(ctx context.Context, debt model.Debt) error
	Delete(ctx context.Context, sellerID, id string) error
}

// PaymentRepository reads payment history across a seller's debts. Payments
// are written through DebtRepository as part of the aggregate.
type PaymentRepository interface {
	FindByID(ctx context.Context, sellerID, id string) (model.Payment, error)
	ListByDebtID(ctx context.Context, sellerID, debtID string) ([]model.Payment, error)
	ListByDebtorID(ctx context.Context, sellerID, debtorID string) ([]model.Payment, error)
	ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]model.Payment, error)
	// SumByDebtorID totals everything a debtor has paid across the
	// seller's debts.
	SumByDebtorID(ctx context.Context, sellerID, debtorID string) (decimal.Decimal, error)
}

// DebtorRepository persists a seller's debtors.
type DebtorRepository interface {
	FindByID(ctx context.Context, sellerID, id string) (model.Debtor, error)
	ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]model.Debtor, error)
	Search(ctx context.Context, sellerID, query string, limit, offset int) ([]model.Debtor, error)
	Save(ctx context.Context, debtor model.Debtor) error
	Update(ctx context.Context, debtor model.Debtor) error
	Delete(ctx context.Context, sellerID, id string) error
}

// SellerRepository persists seller accounts.
type SellerRepository interface {
	FindByID(ctx context.Context, id string) (model.Seller, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (model.Seller, error)
	List(ctx context.Context, limit, offset int) ([]model.Seller, error)
	Save(ctx context.Context, seller model.Seller) error
	Update(ctx context.Context, seller model.Seller) error
	Delete(ctx context.Context, id string) error
}

// AdminRepository persists back-office accounts.
type AdminRepository interface {
	FindByID(ctx context.Context, id string) (model.Admin, error)
	FindByUsername(ctx context.Context, username string) (model.Admin, error)
	List(ctx context.Context, limit, offset int) ([]model.Admin, error)
	Save(ctx context.Context, admin model.Admin) error
	Update(ctx context.Context, admin model.Admin) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository persists sent SMS history.
type MessageRepository interface {
	FindByID(ctx context.Context, sellerID, id string) (model.Message, error)
	ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]model.Message, error)
	ListByDebtorID(ctx context.Context, sellerID, debtorID string) ([]model.Message, error)
	Save(ctx context.Context, message model.Message) error
	Update(ctx context.Context, message model.Message) error
}

// TemplateRepository persists reusable SMS templates.
type TemplateRepository interface {
	FindByID(ctx context.Context, id string) (model.MessageTemplate, error)
	// ListVisibleTo returns the seller's own templates plus the global ones.
	ListVisibleTo(ctx context.Context, sellerID string) ([]model.MessageTemplate, error)
	Save(ctx context.Context, template model.MessageTemplate) error
	Update(ctx context.Context, template model.MessageTemplate) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher delivers domain events to the message broker. Publishing
// happens after commit; a delivery failure is logged, never rolled back.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// SMSGateway sends text messages to debtors through the SMS provider.
type SMSGateway interface {
	Send(ctx context.Context, phoneNumber, text string) error
}

// TxRepositories is the repository set bound to one open transaction.
type TxRepositories interface {
	Debts() DebtRepository
	Payments() PaymentRepository
	Debtors() DebtorRepository
	Sellers() SellerRepository
}

// UnitOfWork runs a function inside a single database transaction. The
// repositories handed to fn share that transaction; returning an error
// rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(tx TxRepositories) error) error
}
