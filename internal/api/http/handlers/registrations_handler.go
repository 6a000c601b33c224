package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smallbizniz/support-portal/internal/api/dto"
	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/service"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// RegistrationsHandler covers signup submission and admin review.
type RegistrationsHandler struct {
	service *service.RegistrationService
}

// NewRegistrationsHandler constructs handler.
func NewRegistrationsHandler(registrationService *service.RegistrationService) *RegistrationsHandler {
	return &RegistrationsHandler{service: registrationService}
}

// Submit POST /api/registrations.
func (h *RegistrationsHandler) Submit(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	request, err := h.service.Submit(c.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": registrationResponse(request)})
}

// List GET /api/admin/registrations, optionally filtered to ?status=pending.
func (h *RegistrationsHandler) List(c *fiber.Ctx) error {
	var (
		requests []domain.RegistrationRequest
		err      error
	)
	switch c.Query("status") {
	case "":
		requests, err = h.service.ListAll(c.Context())
	case string(domain.RegistrationPending):
		requests, err = h.service.ListPending(c.Context())
	default:
		return apperrors.NewValidationError("unsupported status filter", nil)
	}
	if err != nil {
		return err
	}

	items := make([]dto.RegistrationResponse, 0, len(requests))
	for i := range requests {
		items = append(items, registrationResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Approve POST /api/admin/registrations/:id/approve.
func (h *RegistrationsHandler) Approve(c *fiber.Ctx) error {
	user, err := h.service.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// Reject POST /api/admin/registrations/:id/reject.
func (h *RegistrationsHandler) Reject(c *fiber.Ctx) error {
	if err := h.service.Reject(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": c.Params("id"), "status": domain.RegistrationRejected}})
}

func registrationResponse(request *domain.RegistrationRequest) dto.RegistrationResponse {
	return dto.RegistrationResponse{
		ID:          request.ID,
		Email:       request.Email,
		DisplayName: request.DisplayName,
		Status:      request.Status,
		CreatedAt:   request.CreatedAt,
		ApprovedAt:  request.ApprovedAt,
		RejectedAt:  request.RejectedAt,
		UserID:      request.UserID,
	}
}
