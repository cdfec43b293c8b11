package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/api/dto"
	apperrors "github.com/offerly/console/pkg/util/errorutil"
)

// ShellHandler serves the frame around every page.
type ShellHandler struct{}

// NewShellHandler constructs handler.
func NewShellHandler() *ShellHandler {
	return &ShellHandler{}
}

// Get GET /shell.
func (h *ShellHandler) Get(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session.Shell()})
}

// Navigate POST /shell/navigate.
func (h *ShellHandler) Navigate(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.URL) == "" {
		return apperrors.NewValidationError("url required", nil)
	}
	view, err := session.Navigate(c.UserContext(), req.URL)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}

// ToggleSidebar POST /shell/sidebar/toggle.
func (h *ShellHandler) ToggleSidebar(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SidebarResponse{Collapsed: session.ToggleSidebar()}})
}
