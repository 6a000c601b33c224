package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smallbizniz/support-portal/internal/api/dto"
	"github.com/smallbizniz/support-portal/internal/auth"
	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/service"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// TicketsHandler manages end-user and public ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	attachments := make([]service.AttachmentInput, 0, len(req.Attachments))
	for _, att := range req.Attachments {
		attachments = append(attachments, service.AttachmentInput{
			FileName:   att.FileName,
			FileSize:   att.FileSize,
			StorageKey: att.S3Key,
		})
	}
	ticket, err := h.service.Create(c.Context(), principal.User.ID, principal.User.Email, req.Title, req.Description, attachments)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// ListTickets GET /api/tickets returns the caller's own tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	tickets, err := h.service.ListByUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTicket GET /api/tickets/:id. Owners see their own tickets; a foreign
// ticket id reads as not found.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if ticket.UserID != principal.User.ID && !principal.IsAdmin() {
		return apperrors.NewNotFound("ticket", nil)
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// PublicStatus GET /api/ticket-status/:id/:key is the unauthenticated
// status view keyed by the ticket's public-access key.
func (h *TicketsHandler) PublicStatus(c *fiber.Ctx) error {
	ticket, err := h.service.GetByPublicKey(c.Context(), c.Params("id"), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PublicTicketResponse{
		ID:        ticket.ID,
		Title:     ticket.Title,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}})
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	attachments := make([]dto.AttachmentResponse, 0, len(ticket.Attachments))
	for _, att := range ticket.Attachments {
		attachments = append(attachments, dto.AttachmentResponse{
			FileName:   att.FileName,
			FileSize:   att.FileSize,
			S3Key:      att.StorageKey,
			UploadedAt: att.UploadedAt,
		})
	}
	return dto.TicketResponse{
		ID:            ticket.ID,
		UserID:        ticket.UserID,
		UserEmail:     ticket.UserEmail,
		Title:         ticket.Title,
		Description:   ticket.Description,
		Status:        ticket.Status,
		Attachments:   attachments,
		InternalNotes: ticket.InternalNotes,
		PublicKey:     ticket.PublicKey,
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
	}
}
