package jwt

import (
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role required by all privileged endpoints.
const RoleAdmin = "admin"

// UserClaims session token payload
type UserClaims struct {
	jwtLib.RegisteredClaims
	// Email login account of the user
	Email string `json:"email"`
	// Role role of the user, privileged endpoints require "admin"
	Role string `json:"role"`
}

// IsAdmin whether the claims carry the admin role
func (uc *UserClaims) IsAdmin() bool {
	return uc.Role == RoleAdmin
}
