package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. Statuses are display
// labels; any status may be set to any other by an administrator.
type TicketStatus string

const (
	TicketStatusNotStarted     TicketStatus = "Not Started"
	TicketStatusInProgress     TicketStatus = "In Progress"
	TicketStatusMoreInfoNeeded TicketStatus = "More Info Needed"
	TicketStatusReadyToReview  TicketStatus = "Ready to Review"
	TicketStatusComplete       TicketStatus = "Complete"
)

// Valid reports whether the status is a known label.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusNotStarted, TicketStatusInProgress, TicketStatusMoreInfoNeeded,
		TicketStatusReadyToReview, TicketStatusComplete:
		return true
	}
	return false
}

// Attachment references an uploaded file by its storage key. Download URLs
// are resolved on demand and never persisted.
type Attachment struct {
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	StorageKey string    `json:"s3Key"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID            string       `json:"-"`
	UserID        string       `json:"userId"`
	UserEmail     string       `json:"userEmail"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Status        TicketStatus `json:"status"`
	Attachments   []Attachment `json:"attachments"`
	InternalNotes string       `json:"internalNotes,omitempty"`
	PublicKey     string       `json:"publicKey"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
