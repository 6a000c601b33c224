package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/events"
	"github.com/smallbizniz/support-portal/internal/repository"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// TicketService owns ticket creation and status transitions.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles requirements for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// AttachmentInput describes one uploaded file accompanying a new ticket.
type AttachmentInput struct {
	FileName   string
	FileSize   int64
	StorageKey string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// Create persists a new ticket in state "Not Started" with a generated
// public-access key and notifies the owner and every active admin via the
// dispatcher. The ticket is created once the write commits; notification
// outcomes never affect the result.
func (s *TicketService) Create(ctx context.Context, ownerID, ownerEmail, title, description string, attachments []AttachmentInput) (*domain.Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}

	publicKey, err := generatePublicKey()
	if err != nil {
		return nil, err
	}

	now := s.now()
	ticket := &domain.Ticket{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		UserEmail:   ownerEmail,
		Title:       title,
		Description: description,
		Status:      domain.TicketStatusNotStarted,
		Attachments: make([]domain.Attachment, 0, len(attachments)),
		PublicKey:   publicKey,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, att := range attachments {
		ticket.Attachments = append(ticket.Attachments, domain.Attachment{
			FileName:   att.FileName,
			FileSize:   att.FileSize,
			StorageKey: att.StorageKey,
			UploadedAt: now,
		})
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID:    ticket.ID,
			Title:       ticket.Title,
			Description: ticket.Description,
			UserEmail:   ticket.UserEmail,
			PublicKey:   ticket.PublicKey,
			CreatedAt:   ticket.CreatedAt,
		},
	})
	return ticket, nil
}

// UpdateStatus overwrites the ticket's status and, when provided, internal
// notes. Transitions are unordered: any status may follow any other.
func (s *TicketService) UpdateStatus(ctx context.Context, ticketID string, status domain.TicketStatus, internalNotes *string) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown ticket status", map[string]any{"status": string(status)})
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	oldStatus := ticket.Status
	ticket.Status = status
	if internalNotes != nil {
		ticket.InternalNotes = *internalNotes
	}
	ticket.UpdatedAt = s.now()

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type: events.EventTicketStatusChanged,
		Payload: events.TicketStatusChangedPayload{
			TicketID:  ticket.ID,
			Title:     ticket.Title,
			UserEmail: ticket.UserEmail,
			PublicKey: ticket.PublicKey,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket, nil
}

// GetByID fetches a ticket for authenticated access.
func (s *TicketService) GetByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// GetByPublicKey returns the ticket only when the supplied key matches the
// stored one; a wrong key is indistinguishable from a missing ticket.
func (s *TicketService) GetByPublicKey(ctx context.Context, ticketID, publicKey string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if subtle.ConstantTimeCompare([]byte(ticket.PublicKey), []byte(publicKey)) != 1 {
		return nil, apperrors.NewNotFound("ticket", nil)
	}
	return ticket, nil
}

// ListAll returns every ticket, newest first.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// ListByUser returns the owner's tickets, newest first.
func (s *TicketService) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// generatePublicKey returns 32 random bytes hex-encoded: the sole credential
// for the unauthenticated status-lookup path.
func generatePublicKey() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
