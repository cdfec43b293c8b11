package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/api/http/handlers"
	"github.com/offerly/console/internal/auth"
	"github.com/offerly/console/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Shell             *handlers.ShellHandler
	Menu              *handlers.MenuHandler
	Offerings         *handlers.OfferingHandler
	Dashboard         *handlers.DashboardHandler
	Login             *handlers.LoginHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	session := []fiber.Handler{cfg.SessionMiddleware.Handle, auth.RequireSession()}
	admin := auth.RequireRole(domain.RoleChurchAdmin)

	shell := app.Group("/shell", session...)
	shell.Get("/", cfg.Shell.Get)
	shell.Post("/navigate", cfg.Shell.Navigate)
	shell.Post("/sidebar/toggle", cfg.Shell.ToggleSidebar)

	menu := app.Group("/menu", session...)
	menu.Get("/", cfg.Menu.List)
	menu.Post("/logout", cfg.Menu.Logout)
	menu.Post("/:id/click", cfg.Menu.Click)

	authGroup := app.Group("/auth", session...)
	authGroup.Post("/login", cfg.Login.Submit)
	authGroup.Get("/login/status", cfg.Login.Status)
	authGroup.Post("/login/password-toggle", cfg.Login.TogglePassword)

	offerings := app.Group("/offerings", append(session, admin)...)
	offerings.Get("/", cfg.Offerings.List)
	offerings.Get("/form", cfg.Offerings.Form)
	offerings.Patch("/form", cfg.Offerings.Update)
	offerings.Post("/form/submit", cfg.Offerings.Submit)

	dashboard := app.Group("/dashboard", append(session, admin)...)
	dashboard.Get("/", cfg.Dashboard.Overview)
	dashboard.Post("/navigate/:target", cfg.Dashboard.Navigate)
}
