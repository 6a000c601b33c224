package dto

import (
	"time"

	"github.com/smallbizniz/support-portal/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the bearer token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse is the identity record without the password hash.
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Role        domain.UserRole `json:"role"`
	DisplayName string          `json:"displayName,omitempty"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	LastLoginAt *time.Time      `json:"lastLoginAt,omitempty"`
}

// CreateUserRequest payload for direct admin provisioning.
type CreateUserRequest struct {
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	Role        domain.UserRole `json:"role"`
	DisplayName string          `json:"displayName"`
}

// UpdateRoleRequest payload.
type UpdateRoleRequest struct {
	Role domain.UserRole `json:"role"`
}

// SetActiveRequest payload.
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// CheckAdminResponse answers the capability probe.
type CheckAdminResponse struct {
	IsAdmin     bool            `json:"isAdmin"`
	UserID      string          `json:"userId"`
	Email       string          `json:"email,omitempty"`
	Role        domain.UserRole `json:"role,omitempty"`
	IsActive    bool            `json:"isActive"`
	DisplayName string          `json:"displayName,omitempty"`
}
