package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by debt-manager tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// HasRole reports whether the claims carry the given role.
func (c Claims) HasRole(role string) bool {
	return c.Role == role
}

// HasAnyRole reports whether the claims carry one of the given roles.
func (c Claims) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// IsStaff reports whether the claims belong to a back-office account.
func (c Claims) IsStaff() bool {
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}

// Role constants.
const (
	RoleSeller     = "SELLER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER"
)
