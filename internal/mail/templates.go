package mail

import (
	"fmt"
	"html"
	"strings"
)

func renderTicketStatusBody(email TicketStatusEmail, statusURL string) (subject, body string) {
	statusClass := "status-" + strings.ReplaceAll(strings.ToLower(string(email.Status)), " ", "-")
	subject = fmt.Sprintf("Ticket Update: %s", email.Title)
	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #4F46E5; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
      <h1>Ticket Update</h1>
    </div>
    <div style="background-color: #f9fafb; padding: 20px; border: 1px solid #e5e7eb;">
      <h2>%s</h2>
      <p><strong>Status:</strong> <span class="%s">%s</span></p>
      <p>Your ticket has been updated. You can view the current status using the link below:</p>
      <a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #4F46E5; color: white; text-decoration: none; border-radius: 6px;">View Ticket Status</a>
      <p style="margin-top: 20px; font-size: 12px; color: #6b7280;">Ticket ID: %s</p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(email.Title), statusClass, html.EscapeString(string(email.Status)),
		statusURL, html.EscapeString(email.TicketID))
	return subject, body
}

func renderAdminTicketBody(alert AdminTicketAlert, adminURL string) (subject, body string) {
	subject = fmt.Sprintf("New Ticket: %s", alert.Title)
	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #DC2626; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
      <h1>New Ticket Created</h1>
    </div>
    <div style="background-color: #f9fafb; padding: 20px; border: 1px solid #e5e7eb;">
      <div style="background-color: white; padding: 15px; border-radius: 6px; border-left: 4px solid #DC2626;">
        <h2>%s</h2>
        <p><strong>From:</strong> %s</p>
        <p><strong>Created:</strong> %s</p>
        <p><strong>Description:</strong></p>
        <p>%s</p>
      </div>
      <p>A new support ticket has been created and requires your attention.</p>
      <a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #DC2626; color: white; text-decoration: none; border-radius: 6px;">View Ticket in Admin Panel</a>
      <p style="margin-top: 20px; font-size: 12px; color: #6b7280;">Ticket ID: %s</p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(alert.Title), html.EscapeString(alert.UserEmail),
		alert.CreatedAt.Format("Jan 2, 2006 15:04 MST"), html.EscapeString(alert.Description),
		adminURL, html.EscapeString(alert.TicketID))
	return subject, body
}

func renderRegistrationBody(alert RegistrationAlert, adminURL string) (subject, body string) {
	subject = fmt.Sprintf("New Registration Request: %s", alert.Email)
	nameRow := ""
	if alert.DisplayName != "" {
		nameRow = fmt.Sprintf("<p><strong>Name:</strong> %s</p>", html.EscapeString(alert.DisplayName))
	}
	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #10b981; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
      <h1>New User Registration Request</h1>
    </div>
    <div style="background-color: #f9fafb; padding: 20px; border: 1px solid #e5e7eb;">
      <div style="background-color: white; padding: 15px; border-radius: 6px; border-left: 4px solid #10b981;">
        <p><strong>Email:</strong> %s</p>
        %s
        <p><strong>Requested:</strong> %s</p>
      </div>
      <p>A new user has requested access to the system and is waiting for approval.</p>
      <a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #10b981; color: white; text-decoration: none; border-radius: 6px;">Review Registration in Admin Panel</a>
      <p style="margin-top: 20px; font-size: 12px; color: #6b7280;">Registration ID: %s</p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(alert.Email), nameRow,
		alert.CreatedAt.Format("Jan 2, 2006 15:04 MST"),
		adminURL, html.EscapeString(alert.RequestID))
	return subject, body
}

func renderContactBody(msg ContactMessage) (subject, body string) {
	subject = fmt.Sprintf("Contact Form: %s", msg.Subject)
	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #4F46E5; color: white; padding: 20px; border-radius: 8px 8px 0 0;">
      <h1>Contact Form Message</h1>
    </div>
    <div style="background-color: #f9fafb; padding: 20px; border: 1px solid #e5e7eb;">
      <p><strong>From:</strong> %s &lt;%s&gt;</p>
      <p><strong>Subject:</strong> %s</p>
      <p>%s</p>
    </div>
  </div>
</body>
</html>`,
		html.EscapeString(msg.FromName), html.EscapeString(msg.FromEmail),
		html.EscapeString(msg.Subject), html.EscapeString(msg.Message))
	return subject, body
}
