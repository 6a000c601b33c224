package domain

import "time"

// RegistrationStatus tracks the admin decision on a signup request.
// Transitions are pending → approved or pending → rejected, never reversed.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// RegistrationRequest is a self-service signup awaiting administrator review.
// EncryptedPassword is ciphertext in iv_hex:ciphertext_hex form; it is read
// exactly once, on approval.
type RegistrationRequest struct {
	ID                string             `json:"-"`
	Email             string             `json:"email"`
	EncryptedPassword string             `json:"encryptedPassword"`
	DisplayName       string             `json:"displayName"`
	Status            RegistrationStatus `json:"status"`
	CreatedAt         time.Time          `json:"createdAt"`
	ApprovedAt        *time.Time         `json:"approvedAt,omitempty"`
	RejectedAt        *time.Time         `json:"rejectedAt,omitempty"`
	UserID            string             `json:"userId,omitempty"`
}
