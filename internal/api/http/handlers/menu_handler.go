package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/api/dto"
	"github.com/offerly/console/internal/navigation"
	apperrors "github.com/offerly/console/pkg/util/errorutil"
)

// MenuHandler serves the sidebar menu.
type MenuHandler struct{}

// NewMenuHandler constructs handler.
func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// List GET /menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session.Menu()})
}

// Click POST /menu/:id/click.
func (h *MenuHandler) Click(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	res, view, err := session.ClickMenu(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, navigation.ErrItemNotFound) {
			return apperrors.NewNotFound("menu item", map[string]any{"id": id})
		}
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.MenuClickResponse{
			Item:      res.Item,
			Toggled:   res.Toggled,
			Navigated: res.Navigated,
			Menu:      view.Menu,
		},
		"shell": view,
	})
}

// Logout POST /menu/logout.
func (h *MenuHandler) Logout(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	view, err := session.Logout(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": view})
}
