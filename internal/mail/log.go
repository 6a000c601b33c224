package mail

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer stands in when AWS SES is not configured: it logs every message
// that would have been sent instead of delivering it.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer constructs the fallback mailer.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendTicketStatus(_ context.Context, email TicketStatusEmail) error {
	m.logger.Info("email not sent (SES not configured)",
		zap.String("kind", "ticket_status"),
		zap.String("to", email.To),
		zap.String("ticket_id", email.TicketID),
		zap.String("status", string(email.Status)))
	return nil
}

func (m *LogMailer) SendAdminTicketAlert(_ context.Context, alert AdminTicketAlert) error {
	m.logger.Info("email not sent (SES not configured)",
		zap.String("kind", "admin_ticket_alert"),
		zap.String("to", alert.To),
		zap.String("ticket_id", alert.TicketID))
	return nil
}

func (m *LogMailer) SendRegistrationAlert(_ context.Context, alert RegistrationAlert) error {
	m.logger.Info("email not sent (SES not configured)",
		zap.String("kind", "registration_alert"),
		zap.String("to", alert.To),
		zap.String("request_id", alert.RequestID))
	return nil
}

func (m *LogMailer) SendContactMessage(_ context.Context, msg ContactMessage) error {
	m.logger.Info("email not sent (SES not configured)",
		zap.String("kind", "contact_message"),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
