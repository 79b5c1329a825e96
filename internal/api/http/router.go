package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/api/http/handlers"
	"github.com/spec-kit/agrilink/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Appointments   *handlers.AppointmentsHandler
	Submissions    *handlers.CropSubmissionsHandler
	Fertilizer     *handlers.FertilizerHandler
	Documents      *handlers.DocumentsHandler
	Services       *handlers.ServicesHandler
	Directory      *handlers.DirectoryHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. The services catalog listing is public;
// everything else under /api requires an authenticated principal, with
// per-route role guards on top.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/signup", cfg.Auth.Signup)
	api.Post("/login", cfg.Auth.Login)

	// Public catalog. The handler only honors includeInactive when an
	// officer principal happens to be attached, which never occurs here.
	api.Get("/services", cfg.Services.List)
	api.Get("/services/:id", cfg.Services.Get)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	protected.Post("/logout", cfg.Auth.Logout)

	appointments := protected.Group("/appointments")
	appointments.Post("", auth.RequireFarmer(), cfg.Appointments.Book)
	appointments.Get("", cfg.Appointments.List)
	appointments.Get("/:id", cfg.Appointments.Get)
	appointments.Put("/:id/status", cfg.Appointments.UpdateStatus)
	appointments.Delete("/:id", cfg.Appointments.Delete)

	submissions := protected.Group("/crop-submissions")
	submissions.Post("", auth.RequireFarmer(), cfg.Submissions.Create)
	submissions.Get("", cfg.Submissions.List)
	submissions.Get("/:id", cfg.Submissions.Get)
	submissions.Put("/:id", auth.RequireFarmer(), cfg.Submissions.Update)
	submissions.Put("/:id/review", auth.RequireOfficer(), cfg.Submissions.Review)

	fertilizer := protected.Group("/fertilizer-distributions")
	fertilizer.Post("", auth.RequireFarmer(), cfg.Fertilizer.Request)
	fertilizer.Get("", cfg.Fertilizer.List)
	fertilizer.Get("/:id", cfg.Fertilizer.Get)
	fertilizer.Put("/:id/status", auth.RequireOfficer(), cfg.Fertilizer.UpdateStatus)

	documents := protected.Group("/documents")
	documents.Post("", cfg.Documents.Upload)
	documents.Get("", cfg.Documents.List)
	documents.Get("/:id", cfg.Documents.Get)
	documents.Delete("/:id", cfg.Documents.Delete)

	services := protected.Group("/services", auth.RequireOfficer())
	services.Post("", cfg.Services.Create)
	services.Put("/:id", cfg.Services.Update)
	services.Delete("/:id", cfg.Services.Delete)

	protected.Get("/officers", cfg.Directory.ListOfficers)
	protected.Get("/farmers", auth.RequireOfficer(), cfg.Directory.ListFarmers)

	notifications := protected.Group("/notifications")
	notifications.Get("", cfg.Notifications.List)
	notifications.Get("/unread-count", cfg.Notifications.UnreadCount)
	notifications.Put("/:id/read", cfg.Notifications.MarkRead)
	notifications.Put("/read-all", cfg.Notifications.MarkAllRead)
}
