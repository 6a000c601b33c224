package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smallbizniz/support-portal/internal/api/dto"
	"github.com/smallbizniz/support-portal/internal/domains"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// DomainsHandler proxies domain-availability searches.
type DomainsHandler struct {
	client *domains.Client
}

// NewDomainsHandler constructs handler.
func NewDomainsHandler(client *domains.Client) *DomainsHandler {
	return &DomainsHandler{client: client}
}

// Search POST /api/domain-search.
func (h *DomainsHandler) Search(c *fiber.Ctx) error {
	var req dto.DomainSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Domain == "" {
		return apperrors.NewValidationError("domain required", nil)
	}

	availability, err := h.client.Check(c.Context(), req.Domain)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": availability})
}
