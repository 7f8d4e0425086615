package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/api/http/handlers"
	"github.com/openboard/issue-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	AdminTickets   *handlers.AdminTicketsHandler
	Comments       *handlers.CommentsHandler
	Notifications  *handlers.NotificationsHandler
	Dashboard      *handlers.DashboardHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	api.Post("/tickets", cfg.Tickets.Create)
	api.Get("/tickets", cfg.Tickets.List)
	api.Get("/tickets/:id", cfg.Tickets.Get)

	api.Post("/tickets/:id/comments", cfg.Comments.Create)
	api.Get("/tickets/:id/comments", cfg.Comments.List)

	api.Get("/notifications", cfg.Notifications.List)
	api.Patch("/notifications/:id/read", cfg.Notifications.MarkRead)

	api.Get("/dashboard", cfg.Dashboard.UserSummary)

	admin := api.Group("/admin", auth.RequireAdmin())
	admin.Patch("/tickets/:id/status", cfg.AdminTickets.UpdateStatus)
	admin.Patch("/tickets/:id/assignee", cfg.AdminTickets.Assign)
	admin.Delete("/tickets/:id", cfg.AdminTickets.Delete)
	admin.Get("/stats", cfg.Dashboard.AdminOverview)
	admin.Get("/users", cfg.Users.List)
}
