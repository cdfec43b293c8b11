package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/dashboard"
)

// DashboardHandler serves the church-admin dashboard.
type DashboardHandler struct{}

// NewDashboardHandler constructs handler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Overview GET /dashboard.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session.Dashboard()})
}

// Navigate POST /dashboard/navigate/:target.
func (h *DashboardHandler) Navigate(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := session.DashboardNavigate(dashboard.Target(c.Params("target"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
