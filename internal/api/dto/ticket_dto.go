package dto

import (
	"time"

	"github.com/smallbizniz/support-portal/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Attachments []AttachmentRequest `json:"attachments"`
}

// AttachmentRequest describes an already-uploaded file accompanying a ticket.
type AttachmentRequest struct {
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	S3Key    string `json:"s3Key"`
}

// UpdateTicketStatusRequest payload for admin status changes.
type UpdateTicketStatusRequest struct {
	Status        string  `json:"status"`
	InternalNotes *string `json:"internalNotes"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	S3Key      string    `json:"s3Key"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// TicketResponse is the owner's and admin's view of a ticket.
type TicketResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"userId"`
	UserEmail     string               `json:"userEmail"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Status        domain.TicketStatus  `json:"status"`
	Attachments   []AttachmentResponse `json:"attachments"`
	InternalNotes string               `json:"internalNotes,omitempty"`
	PublicKey     string               `json:"publicKey"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// PublicTicketResponse is the unauthenticated status view: no description,
// notes, or attachment keys.
type PublicTicketResponse struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Status    domain.TicketStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}
