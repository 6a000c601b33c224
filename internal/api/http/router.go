package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smallbizniz/support-portal/internal/api/http/handlers"
	"github.com/smallbizniz/support-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	Registrations  *handlers.RegistrationsHandler
	Users          *handlers.UsersHandler
	Settings       *handlers.SettingsHandler
	Contact        *handlers.ContactHandler
	Files          *handlers.FilesHandler
	Domains        *handlers.DomainsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// Public surface.
	api.Post("/auth/login", cfg.Users.Login)
	api.Get("/check-admin", cfg.Users.CheckAdmin)
	api.Post("/registrations", cfg.Registrations.Submit)
	api.Get("/ticket-status/:id/:key", cfg.Tickets.PublicStatus)
	api.Post("/contact", cfg.Contact.Submit)
	api.Post("/domain-search", cfg.Domains.Search)
	api.Get("/content", cfg.Settings.GetContent)
	api.Get("/seo", cfg.Settings.GetSEO)
	api.Get("/calendar", cfg.Settings.GetCalendar)

	// Authenticated users with an active account.
	user := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	user.Post("/tickets", cfg.Tickets.CreateTicket)
	user.Get("/tickets", cfg.Tickets.ListTickets)
	user.Get("/tickets/:id", cfg.Tickets.GetTicket)
	user.Post("/upload", cfg.Files.Upload)
	user.Get("/download", cfg.Files.Download)

	// Active administrators.
	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/tickets", cfg.AdminTickets.ListTickets)
	admin.Patch("/tickets/:id/status", cfg.AdminTickets.UpdateStatus)
	admin.Get("/registrations", cfg.Registrations.List)
	admin.Post("/registrations/:id/approve", cfg.Registrations.Approve)
	admin.Post("/registrations/:id/reject", cfg.Registrations.Reject)
	admin.Get("/users", cfg.Users.ListUsers)
	admin.Post("/users", cfg.Users.CreateUser)
	admin.Patch("/users/:id/role", cfg.Users.UpdateRole)
	admin.Patch("/users/:id/active", cfg.Users.SetActive)
	admin.Put("/content", cfg.Settings.UpdateContent)
	admin.Put("/seo", cfg.Settings.UpdateSEO)
	admin.Put("/calendar", cfg.Settings.UpdateCalendar)
}
