package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Debtor is a customer a seller extends credit to. Debtors belong to exactly
// one seller and are never shared across sellers.
type Debtor struct {
	id           string
	sellerID     string
	fullName     string
	address      string
	note         string
	phoneNumbers []string
	images       []string
	isFavorite   bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewDebtor creates a debtor owned by the given seller.
func NewDebtor(sellerID, fullName, address, note string, phoneNumbers, images []string, now time.Time) (Debtor, error) {
	if sellerID == "" {
		return Debtor{}, errors.New("seller ID is required")
	}
	if fullName == "" {
		return Debtor{}, errors.New("full name is required")
	}
	if len(phoneNumbers) == 0 {
		return Debtor{}, errors.New("at least one phone number is required")
	}
	return Debtor{
		id:           uuid.New().String(),
		sellerID:     sellerID,
		fullName:     fullName,
		address:      address,
		note:         note,
		phoneNumbers: phoneNumbers,
		images:       images,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructDebtor rebuilds a Debtor from persistence.
func ReconstructDebtor(
	id, sellerID, fullName, address, note string,
	phoneNumbers, images []string,
	isFavorite bool,
	createdAt, updatedAt time.Time,
) Debtor {
	return Debtor{
		id:           id,
		sellerID:     sellerID,
		fullName:     fullName,
		address:      address,
		note:         note,
		phoneNumbers: phoneNumbers,
		images:       images,
		isFavorite:   isFavorite,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Update changes the debtor's profile fields. Empty name keeps the current
// one; nil slices keep the current lists.
func (d Debtor) Update(fullName, address, note string, phoneNumbers, images []string, now time.Time) Debtor {
	next := d
	if fullName != "" {
		next.fullName = fullName
	}
	next.address = address
	next.note = note
	if phoneNumbers != nil {
		next.phoneNumbers = phoneNumbers
	}
	if images != nil {
		next.images = images
	}
	next.updatedAt = now
	return next
}

// SetFavorite marks or unmarks the debtor on the seller's favorites list.
func (d Debtor) SetFavorite(favorite bool, now time.Time) Debtor {
	next := d
	next.isFavorite = favorite
	next.updatedAt = now
	return next
}

// BelongsTo reports whether the debtor is owned by the given seller.
func (d Debtor) BelongsTo(sellerID string) bool { return d.sellerID == sellerID }

func (d Debtor) ID() string             { return d.id }
func (d Debtor) SellerID() string       { return d.sellerID }
func (d Debtor) FullName() string       { return d.fullName }
func (d Debtor) Address() string        { return d.address }
func (d Debtor) Note() string           { return d.note }
func (d Debtor) PhoneNumbers() []string { return d.phoneNumbers }
func (d Debtor) Images() []string       { return d.images }
func (d Debtor) IsFavorite() bool       { return d.isFavorite }
func (d Debtor) CreatedAt() time.Time   { return d.createdAt }
func (d Debtor) UpdatedAt() time.Time   { return d.updatedAt }
