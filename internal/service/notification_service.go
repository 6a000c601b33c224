package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/events"
	"github.com/smallbizniz/support-portal/internal/mail"
	"github.com/smallbizniz/support-portal/internal/repository"
)

// NotificationService turns domain events into transactional email.
// Delivery is advisory: every failure is logged and swallowed, with no retry
// and no dead-letter. The triggering operation has already committed.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     mail.Mailer
	users      repository.UserRepository
	logger     *zap.Logger
	adminAddr  string
}

// NotificationDependencies bundles requirements for the notification service.
type NotificationDependencies struct {
	Dispatcher events.Dispatcher
	Mailer     mail.Mailer
	UserRepo   repository.UserRepository
	Logger     *zap.Logger
	// AdminAddr receives contact-form messages and backs up the admin list
	// when no active admin users exist yet.
	AdminAddr string
}

// NewNotificationService creates the service.
func NewNotificationService(deps NotificationDependencies) *NotificationService {
	return &NotificationService{
		dispatcher: deps.Dispatcher,
		mailer:     deps.Mailer,
		users:      deps.UserRepo,
		logger:     deps.Logger,
		adminAddr:  deps.AdminAddr,
	}
}

// RegisterHandlers subscribes to dispatcher events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventRegistrationSubmitted, n.handleRegistrationSubmitted)
	n.dispatcher.Subscribe(events.EventContactMessage, n.handleContactMessage)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}

	if err := n.mailer.SendTicketStatus(ctx, mail.TicketStatusEmail{
		To:        payload.UserEmail,
		TicketID:  payload.TicketID,
		Title:     payload.Title,
		Status:    domain.TicketStatusNotStarted,
		PublicKey: payload.PublicKey,
	}); err != nil {
		n.logger.Error("ticket owner notification failed",
			zap.String("ticket_id", payload.TicketID),
			zap.String("to", payload.UserEmail),
			zap.Error(err))
	}

	for _, adminEmail := range n.adminEmails(ctx) {
		if err := n.mailer.SendAdminTicketAlert(ctx, mail.AdminTicketAlert{
			To:          adminEmail,
			TicketID:    payload.TicketID,
			Title:       payload.Title,
			Description: payload.Description,
			UserEmail:   payload.UserEmail,
			CreatedAt:   payload.CreatedAt,
		}); err != nil {
			n.logger.Error("admin ticket notification failed",
				zap.String("ticket_id", payload.TicketID),
				zap.String("to", adminEmail),
				zap.Error(err))
		}
	}
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	if err := n.mailer.SendTicketStatus(ctx, mail.TicketStatusEmail{
		To:        payload.UserEmail,
		TicketID:  payload.TicketID,
		Title:     payload.Title,
		Status:    payload.NewStatus,
		PublicKey: payload.PublicKey,
	}); err != nil {
		n.logger.Error("ticket status notification failed",
			zap.String("ticket_id", payload.TicketID),
			zap.String("to", payload.UserEmail),
			zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleRegistrationSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RegistrationSubmittedPayload)
	if !ok {
		return nil
	}
	for _, adminEmail := range n.adminEmails(ctx) {
		if err := n.mailer.SendRegistrationAlert(ctx, mail.RegistrationAlert{
			To:          adminEmail,
			RequestID:   payload.RequestID,
			Email:       payload.Email,
			DisplayName: payload.DisplayName,
			CreatedAt:   payload.CreatedAt,
		}); err != nil {
			n.logger.Error("registration notification failed",
				zap.String("request_id", payload.RequestID),
				zap.String("to", adminEmail),
				zap.Error(err))
		}
	}
	return nil
}

func (n *NotificationService) handleContactMessage(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ContactMessagePayload)
	if !ok {
		return nil
	}
	if n.adminAddr == "" {
		n.logger.Warn("contact message dropped: no admin address configured",
			zap.String("from", payload.Email))
		return nil
	}
	if err := n.mailer.SendContactMessage(ctx, mail.ContactMessage{
		To:        n.adminAddr,
		FromName:  payload.Name,
		FromEmail: payload.Email,
		Subject:   payload.Subject,
		Message:   payload.Message,
	}); err != nil {
		n.logger.Error("contact message relay failed",
			zap.String("from", payload.Email),
			zap.Error(err))
	}
	return nil
}

// adminEmails loads active admin recipients; on failure it falls back to the
// configured admin address so alerts are not silently lost.
func (n *NotificationService) adminEmails(ctx context.Context) []string {
	admins, err := n.users.ListActiveAdmins(ctx)
	if err != nil {
		n.logger.Error("loading admin recipients failed", zap.Error(err))
		admins = nil
	}
	emails := make([]string, 0, len(admins))
	for _, admin := range admins {
		if admin.Email != "" {
			emails = append(emails, admin.Email)
		}
	}
	if len(emails) == 0 && n.adminAddr != "" {
		emails = append(emails, n.adminAddr)
	}
	return emails
}
