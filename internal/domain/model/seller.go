package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Seller is a shop owner who registers debtors and tracks their debts.
// The password is stored as a bcrypt hash; the aggregate never sees the
// plaintext after construction.
type Seller struct {
	id           string
	fullName     string
	phoneNumber  string
	email        string
	passwordHash string
	image        string
	wallet       decimal.Decimal
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// SellerStats summarizes a seller's outstanding collections: how many
// debtors they carry, how much remains unpaid across open installments and
// how many unpaid installments are past due.
type SellerStats struct {
	DebtorCount         int
	TotalDebtBalance    decimal.Decimal
	DelayedInstallments int
}

// NewSeller creates an active seller with an empty wallet.
func NewSeller(fullName, phoneNumber, email, passwordHash, image string, now time.Time) (Seller, error) {
	if fullName == "" {
		return Seller{}, errors.New("full name is required")
	}
	if phoneNumber == "" {
		return Seller{}, errors.New("phone number is required")
	}
	if passwordHash == "" {
		return Seller{}, errors.New("password hash is required")
	}
	return Seller{
		id:           uuid.New().String(),
		fullName:     fullName,
		phoneNumber:  phoneNumber,
		email:        email,
		passwordHash: passwordHash,
		image:        image,
		wallet:       decimal.Zero,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructSeller rebuilds a Seller from persistence.
func ReconstructSeller(
	id, fullName, phoneNumber, email, passwordHash, image string,
	wallet decimal.Decimal,
	isActive bool,
	createdAt, updatedAt time.Time,
) Seller {
	return Seller{
		id:           id,
		fullName:     fullName,
		phoneNumber:  phoneNumber,
		email:        email,
		passwordHash: passwordHash,
		image:        image,
		wallet:       wallet,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// UpdateProfile changes the seller's contact details. Empty fields keep
// current values, except email and image which are replaced as given.
func (s Seller) UpdateProfile(fullName, phoneNumber, email, image string, now time.Time) Seller {
	next := s
	if fullName != "" {
		next.fullName = fullName
	}
	if phoneNumber != "" {
		next.phoneNumber = phoneNumber
	}
	next.email = email
	next.image = image
	next.updatedAt = now
	return next
}

// ChangePassword replaces the stored hash.
func (s Seller) ChangePassword(passwordHash string, now time.Time) (Seller, error) {
	if passwordHash == "" {
		return s, errors.New("password hash is required")
	}
	next := s
	next.passwordHash = passwordHash
	next.updatedAt = now
	return next, nil
}

// TopUpWallet credits the seller's SMS balance.
func (s Seller) TopUpWallet(amount decimal.Decimal, now time.Time) (Seller, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, errors.New("top-up amount must be positive")
	}
	next := s
	next.wallet = s.wallet.Add(amount)
	next.updatedAt = now
	return next, nil
}

// DebitWallet charges the seller's SMS balance, rejecting overdrafts.
func (s Seller) DebitWallet(amount decimal.Decimal, now time.Time) (Seller, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return s, errors.New("debit amount must be positive")
	}
	if amount.GreaterThan(s.wallet) {
		return s, ErrInsufficientWallet
	}
	next := s
	next.wallet = s.wallet.Sub(amount)
	next.updatedAt = now
	return next, nil
}

// SetActive enables or disables the seller's account.
func (s Seller) SetActive(active bool, now time.Time) Seller {
	next := s
	next.isActive = active
	next.updatedAt = now
	return next
}

func (s Seller) ID() string               { return s.id }
func (s Seller) FullName() string         { return s.fullName }
func (s Seller) PhoneNumber() string      { return s.phoneNumber }
func (s Seller) Email() string            { return s.email }
func (s Seller) PasswordHash() string     { return s.passwordHash }
func (s Seller) Image() string            { return s.image }
func (s Seller) Wallet() decimal.Decimal  { return s.wallet }
func (s Seller) IsActive() bool           { return s.isActive }
func (s Seller) CreatedAt() time.Time     { return s.createdAt }
func (s Seller) UpdatedAt() time.Time     { return s.updatedAt }
