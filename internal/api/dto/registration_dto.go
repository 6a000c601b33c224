package dto

import (
	"time"

	"github.com/smallbizniz/support-portal/internal/domain"
)

// RegisterRequest payload for self-service signup.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// RegistrationResponse never exposes the encrypted password.
type RegistrationResponse struct {
	ID          string                    `json:"id"`
	Email       string                    `json:"email"`
	DisplayName string                    `json:"displayName,omitempty"`
	Status      domain.RegistrationStatus `json:"status"`
	CreatedAt   time.Time                 `json:"createdAt"`
	ApprovedAt  *time.Time                `json:"approvedAt,omitempty"`
	RejectedAt  *time.Time                `json:"rejectedAt,omitempty"`
	UserID      string                    `json:"userId,omitempty"`
}
