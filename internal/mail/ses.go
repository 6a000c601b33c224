package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// SESMailer sends transactional email through AWS SES.
type SESMailer struct {
	client  *ses.Client
	from    string
	baseURL string
}

// NewSESMailer constructs the mailer. baseURL is the public site URL used in
// email links.
func NewSESMailer(client *ses.Client, from, baseURL string) *SESMailer {
	return &SESMailer{client: client, from: from, baseURL: baseURL}
}

func (m *SESMailer) send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return apperrors.NewExternalServiceError("ses", err)
	}
	return nil
}

// SendTicketStatus emails the ticket owner a status link.
func (m *SESMailer) SendTicketStatus(ctx context.Context, email TicketStatusEmail) error {
	subject, body := renderTicketStatusBody(email, ticketStatusURL(m.baseURL, email.TicketID, email.PublicKey))
	return m.send(ctx, email.To, subject, body)
}

// SendAdminTicketAlert emails an administrator about a new ticket.
func (m *SESMailer) SendAdminTicketAlert(ctx context.Context, alert AdminTicketAlert) error {
	adminURL := fmt.Sprintf("%s/admin/tickets/%s", m.baseURL, alert.TicketID)
	subject, body := renderAdminTicketBody(alert, adminURL)
	return m.send(ctx, alert.To, subject, body)
}

// SendRegistrationAlert emails an administrator about a pending signup.
func (m *SESMailer) SendRegistrationAlert(ctx context.Context, alert RegistrationAlert) error {
	subject, body := renderRegistrationBody(alert, m.baseURL+"/admin/registrations")
	return m.send(ctx, alert.To, subject, body)
}

// SendContactMessage relays a contact-form submission.
func (m *SESMailer) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	subject, body := renderContactBody(msg)
	return m.send(ctx, msg.To, subject, body)
}
