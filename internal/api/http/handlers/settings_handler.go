package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/service"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// SettingsHandler serves the singleton configuration documents. Reads are
// public so the landing page renders without credentials; writes are admin.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// GetContent GET /api/content.
func (h *SettingsHandler) GetContent(c *fiber.Ctx) error {
	content, err := h.service.LandingContent(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": content})
}

// UpdateContent PUT /api/admin/content.
func (h *SettingsHandler) UpdateContent(c *fiber.Ctx) error {
	var content domain.LandingContent
	if err := c.BodyParser(&content); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.UpdateLandingContent(c.Context(), content); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": content})
}

// GetSEO GET /api/seo.
func (h *SettingsHandler) GetSEO(c *fiber.Ctx) error {
	cfg, err := h.service.SEOConfig(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cfg})
}

// UpdateSEO PUT /api/admin/seo.
func (h *SettingsHandler) UpdateSEO(c *fiber.Ctx) error {
	var cfg domain.SEOConfig
	if err := c.BodyParser(&cfg); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.UpdateSEOConfig(c.Context(), cfg); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cfg})
}

// GetCalendar GET /api/calendar.
func (h *SettingsHandler) GetCalendar(c *fiber.Ctx) error {
	cfg, err := h.service.CalendarConfig(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cfg})
}

// UpdateCalendar PUT /api/admin/calendar.
func (h *SettingsHandler) UpdateCalendar(c *fiber.Ctx) error {
	var cfg domain.CalendarConfig
	if err := c.BodyParser(&cfg); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.UpdateCalendarConfig(c.Context(), cfg); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cfg})
}
