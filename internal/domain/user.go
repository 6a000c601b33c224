package domain

import "time"

// UserRole distinguishes administrators from portal clients.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// Valid reports whether the role is a known value.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// User is the identity record backing every authorization check.
type User struct {
	ID           string     `json:"-"`
	Email        string     `json:"email"`
	Role         UserRole   `json:"role"`
	DisplayName  string     `json:"displayName"`
	IsActive     bool       `json:"isActive"`
	PasswordHash string     `json:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// IsAdmin requires both the admin role and the active flag: a deactivated
// admin loses all admin capability immediately.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin && u.IsActive
}
