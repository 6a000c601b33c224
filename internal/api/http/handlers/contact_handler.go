package handlers

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/smallbizniz/support-portal/internal/api/dto"
	"github.com/smallbizniz/support-portal/internal/events"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler accepts public contact-form submissions. Messages are not
// persisted; they are relayed to the site owner via the dispatcher.
type ContactHandler struct {
	dispatcher events.Dispatcher
}

// NewContactHandler constructs handler.
func NewContactHandler(dispatcher events.Dispatcher) *ContactHandler {
	return &ContactHandler{dispatcher: dispatcher}
}

// Submit POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return apperrors.NewValidationError("name, email, subject, message required", nil)
	}
	if !emailPattern.MatchString(req.Email) {
		return apperrors.NewValidationError("invalid email address", nil)
	}

	if h.dispatcher != nil {
		_ = h.dispatcher.Publish(c.Context(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactMessage,
			Timestamp: time.Now(),
			Payload: events.ContactMessagePayload{
				Name:    req.Name,
				Email:   req.Email,
				Subject: req.Subject,
				Message: req.Message,
			},
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Your message has been sent. We will get back to you soon.",
	})
}
