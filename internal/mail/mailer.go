package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/smallbizniz/support-portal/internal/domain"
)

// TicketStatusEmail notifies a ticket owner of creation or a status change.
type TicketStatusEmail struct {
	To        string
	TicketID  string
	Title     string
	Status    domain.TicketStatus
	PublicKey string
}

// AdminTicketAlert notifies an administrator of a new ticket.
type AdminTicketAlert struct {
	To          string
	TicketID    string
	Title       string
	Description string
	UserEmail   string
	CreatedAt   time.Time
}

// RegistrationAlert notifies an administrator of a pending signup.
type RegistrationAlert struct {
	To          string
	RequestID   string
	Email       string
	DisplayName string
	CreatedAt   time.Time
}

// ContactMessage relays a contact-form submission to the site owner.
type ContactMessage struct {
	To        string
	FromName  string
	FromEmail string
	Subject   string
	Message   string
}

// Mailer sends transactional email. Implementations must be safe for
// concurrent use; delivery is advisory and callers swallow failures.
type Mailer interface {
	SendTicketStatus(ctx context.Context, email TicketStatusEmail) error
	SendAdminTicketAlert(ctx context.Context, alert AdminTicketAlert) error
	SendRegistrationAlert(ctx context.Context, alert RegistrationAlert) error
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

func ticketStatusURL(baseURL, ticketID, publicKey string) string {
	return fmt.Sprintf("%s/ticket-status/%s/%s", baseURL, ticketID, publicKey)
}
