package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Admin roles. Super admins can manage other admins; regular admins manage
// sellers and templates.
const (
	AdminRoleAdmin = "ADMIN"
	AdminRoleSuper = "SUPER"
)

// Admin is a back-office operator account.
type Admin struct {
	id           string
	username     string
	passwordHash string
	role         string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAdmin creates an active admin with the given role.
func NewAdmin(username, passwordHash, role string, now time.Time) (Admin, error) {
	if username == "" {
		return Admin{}, errors.New("username is required")
	}
	if passwordHash == "" {
		return Admin{}, errors.New("password hash is required")
	}
	if role != AdminRoleAdmin && role != AdminRoleSuper {
		return Admin{}, errors.New("role must be ADMIN or SUPER")
	}
	return Admin{
		id:           uuid.New().String(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAdmin rebuilds an Admin from persistence.
func ReconstructAdmin(id, username, passwordHash, role string, isActive bool, createdAt, updatedAt time.Time) Admin {
	return Admin{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangePassword replaces the stored hash.
func (a Admin) ChangePassword(passwordHash string, now time.Time) (Admin, error) {
	if passwordHash == "" {
		return a, errors.New("password hash is required")
	}
	next := a
	next.passwordHash = passwordHash
	next.updatedAt = now
	return next, nil
}

// SetActive enables or disables the account.
func (a Admin) SetActive(active bool, now time.Time) Admin {
	next := a
	next.isActive = active
	next.updatedAt = now
	return next
}

// IsSuper reports whether the admin may manage other admins.
func (a Admin) IsSuper() bool { return a.role == AdminRoleSuper }

func (a Admin) ID() string           { return a.id }
func (a Admin) Username() string     { return a.username }
func (a Admin) PasswordHash() string { return a.passwordHash }
func (a Admin) Role() string         { return a.role }
func (a Admin) IsActive() bool       { return a.isActive }
func (a Admin) CreatedAt() time.Time { return a.createdAt }
func (a Admin) UpdatedAt() time.Time { return a.updatedAt }
