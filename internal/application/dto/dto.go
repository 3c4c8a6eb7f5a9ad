package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateDebtRequest carries the data needed to open a new debt.
type CreateDebtRequest struct {
	SellerID      string          `json:"seller_id"`
	DebtorID      string          `json:"debtor_id"`
	ProductName   string          `json:"product_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Deadline      string          `json:"deadline"`
	Comment       string          `json:"comment,omitempty"`
	ProductImages []string        `json:"product_images,omitempty"`
}

// UpdateDebtRequest carries a debt edit. Amount, Date and Deadline changes
// regenerate the schedule and are only accepted while nothing is paid.
type UpdateDebtRequest struct {
	SellerID      string           `json:"seller_id"`
	DebtID        string           `json:"debt_id"`
	ProductName   string           `json:"product_name,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          *time.Time       `json:"date,omitempty"`
	Deadline      string           `json:"deadline,omitempty"`
	Comment       string           `json:"comment,omitempty"`
	ProductImages []string         `json:"product_images,omitempty"`
}

// GetDebtRequest identifies a debt to retrieve.
type GetDebtRequest struct {
	SellerID string `json:"seller_id"`
	DebtID   string `json:"debt_id"`
}

// ListDebtsRequest pages through a seller's debts, optionally scoped to one
// debtor or filtered by settlement status.
type ListDebtsRequest struct {
	SellerID string `json:"seller_id"`
	DebtorID string `json:"debtor_id,omitempty"`
	Paid     *bool  `json:"paid,omitempty"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// DeleteDebtRequest identifies a debt to delete.
type DeleteDebtRequest struct {
	SellerID string `json:"seller_id"`
	DebtID   string `json:"debt_id"`
}

// CreatePaymentRequest carries one payment against a debt. Amount is
// required for ANY_AMOUNT_PAYMENT; InstallmentIDs is required for
// MULTIPLE_MONTHS_PAYMENT.
type CreatePaymentRequest struct {
	SellerID       string          `json:"seller_id"`
	DebtID         string          `json:"debt_id"`
	PaymentType    string          `json:"payment_type"`
	Amount         decimal.Decimal `json:"amount,omitempty"`
	InstallmentIDs []string        `json:"installment_ids,omitempty"`
	// PaymentDate backdates the payment; nil means now.
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// DeletePaymentRequest identifies a payment to reverse and remove.
type DeletePaymentRequest struct {
	SellerID  string `json:"seller_id"`
	PaymentID string `json:"payment_id"`
}

// GetPaymentRequest identifies a payment to retrieve.
type GetPaymentRequest struct {
	SellerID  string `json:"seller_id"`
	PaymentID string `json:"payment_id"`
}

// ListPaymentsRequest pages through payment history, optionally scoped to a
// debt or a debtor.
type ListPaymentsRequest struct {
	SellerID string `json:"seller_id"`
	DebtID   string `json:"debt_id,omitempty"`
	DebtorID string `json:"debtor_id,omitempty"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// GetScheduleRequest identifies a debt whose schedule to retrieve.
type GetScheduleRequest struct {
	SellerID string `json:"seller_id"`
	DebtID   string `json:"debt_id"`
}

// CreateDebtorRequest carries a new debtor's profile.
type CreateDebtorRequest struct {
	SellerID     string   `json:"seller_id"`
	FullName     string   `json:"full_name"`
	Address      string   `json:"address,omitempty"`
	Note         string   `json:"note,omitempty"`
	PhoneNumbers []string `json:"phone_numbers"`
	Images       []string `json:"images,omitempty"`
}

// UpdateDebtorRequest carries a debtor profile edit.
type UpdateDebtorRequest struct {
	SellerID     string   `json:"seller_id"`
	DebtorID     string   `json:"debtor_id"`
	FullName     string   `json:"full_name,omitempty"`
	Address      string   `json:"address,omitempty"`
	Note         string   `json:"note,omitempty"`
	PhoneNumbers []string `json:"phone_numbers,omitempty"`
	Images       []string `json:"images,omitempty"`
	IsFavorite   *bool    `json:"is_favorite,omitempty"`
}

// ListDebtorsRequest pages through a seller's debtors with an optional name
// search.
type ListDebtorsRequest struct {
	SellerID string `json:"seller_id"`
	Search   string `json:"search,omitempty"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// RegisterSellerRequest carries a new seller account.
type RegisterSellerRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password"`
	Image       string `json:"image,omitempty"`
}

// UpdateSellerRequest carries a seller profile edit.
type UpdateSellerRequest struct {
	SellerID    string `json:"seller_id"`
	FullName    string `json:"full_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	Image       string `json:"image,omitempty"`
	Password    string `json:"password,omitempty"`
}

// LoginRequest authenticates a seller by phone number or an admin by
// username.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// CreateAdminRequest carries a new back-office account. Only super admins
// may create admins.
type CreateAdminRequest struct {
	ActorID  string `json:"actor_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SendMessageRequest sends one SMS to a debtor, either free text or a
// stored template.
type SendMessageRequest struct {
	SellerID   string `json:"seller_id"`
	DebtorID   string `json:"debtor_id"`
	Text       string `json:"text,omitempty"`
	TemplateID string `json:"template_id,omitempty"`
}

// SaveTemplateRequest creates or updates an SMS template. An admin actor
// with an empty SellerID saves a global template.
type SaveTemplateRequest struct {
	TemplateID string `json:"template_id,omitempty"`
	SellerID   string `json:"seller_id,omitempty"`
	Text       string `json:"text"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse is one entry of a debt's payment schedule.
type InstallmentResponse struct {
	ID         string          `json:"id"`
	Number     int             `json:"number"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	DueDate    time.Time       `json:"due_date"`
	PaidDate   *time.Time      `json:"paid_date,omitempty"`
	IsPaid     bool            `json:"is_paid"`
}

// ScheduleProgress summarizes how far a schedule has been paid down.
type ScheduleProgress struct {
	PaidInstallments  int `json:"paid_installments"`
	TotalInstallments int `json:"total_installments"`
	Percent           int `json:"percent"`
}

// ScheduleResponse is a debt's installment schedule with progress totals.
type ScheduleResponse struct {
	Installments []InstallmentResponse `json:"installments"`
	Progress     ScheduleProgress      `json:"progress"`
	TotalPaid    decimal.Decimal       `json:"total_paid"`
	Remaining    decimal.Decimal       `json:"remaining"`
}

// PaymentHistoryResponse is a debtor's payment history with its grand total.
type PaymentHistoryResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPaid decimal.Decimal   `json:"total_paid"`
}

// DebtResponse is the external representation of a debt.
type DebtResponse struct {
	ID            string                `json:"id"`
	DebtorID      string                `json:"debtor_id"`
	ProductName   string                `json:"product_name"`
	Amount        decimal.Decimal       `json:"amount"`
	TotalPaid     decimal.Decimal       `json:"total_paid"`
	Remaining     decimal.Decimal       `json:"remaining"`
	Date          time.Time             `json:"date"`
	Deadline      string                `json:"deadline"`
	Paid          bool                  `json:"paid"`
	Comment       string                `json:"comment,omitempty"`
	ProductImages []string              `json:"product_images,omitempty"`
	Schedule      []InstallmentResponse `json:"schedule,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// AllocationResponse shows which installment a payment slice landed on.
type AllocationResponse struct {
	InstallmentID string          `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// PaymentResponse is the external representation of a payment.
type PaymentResponse struct {
	ID          string               `json:"id"`
	DebtID      string               `json:"debt_id"`
	DebtorID    string               `json:"debtor_id"`
	Amount      decimal.Decimal      `json:"amount"`
	Allocations []AllocationResponse `json:"allocations,omitempty"`
	DebtSettled bool                 `json:"debt_settled,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// DebtorResponse is the external representation of a debtor.
type DebtorResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Address      string    `json:"address,omitempty"`
	Note         string    `json:"note,omitempty"`
	PhoneNumbers []string  `json:"phone_numbers"`
	Images       []string  `json:"images,omitempty"`
	IsFavorite   bool      `json:"is_favorite"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SellerResponse is the external representation of a seller.
type SellerResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Email       string          `json:"email,omitempty"`
	Image       string          `json:"image,omitempty"`
	Wallet      decimal.Decimal `json:"wallet"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	// Stats is attached on single-seller views only.
	Stats *SellerStats `json:"stats,omitempty"`
}

// SellerStats summarizes a seller's outstanding collections.
type SellerStats struct {
	DebtorCount         int             `json:"debtor_count"`
	TotalDebtBalance    decimal.Decimal `json:"total_debt_balance"`
	DelayedInstallments int             `json:"delayed_installments"`
}

// AdminResponse is the external representation of an admin account.
type AdminResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	Role        string    `json:"role"`
	UserID      string    `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MessageResponse is the external representation of a sent SMS.
type MessageResponse struct {
	ID        string     `json:"id"`
	DebtorID  string     `json:"debtor_id"`
	Text      string     `json:"text"`
	Status    string     `json:"status"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TemplateResponse is the external representation of an SMS template.
type TemplateResponse struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id,omitempty"`
	Text      string    `json:"text"`
	IsGlobal  bool      `json:"is_global"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
