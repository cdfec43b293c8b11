package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/api/dto"
	"github.com/offerly/console/internal/login"
	apperrors "github.com/offerly/console/pkg/util/errorutil"
)

// LoginHandler serves the simulated sign-in screen.
type LoginHandler struct {
	validate *validator.Validate
}

// NewLoginHandler constructs handler.
func NewLoginHandler() *LoginHandler {
	return &LoginHandler{validate: validator.New()}
}

// Submit POST /auth/login.
func (h *LoginHandler) Submit(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("email must be a valid address", map[string]any{"fields": map[string]string{"email": "email must be a valid address"}})
	}

	state, started := session.SubmitLogin(c.UserContext(), login.Data{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	status := fiber.StatusAccepted
	if !started {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"data":  dto.LoginResponse{Started: started},
		"state": state,
	})
}

// Status GET /auth/login/status.
func (h *LoginHandler) Status(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session.LoginState()})
}

// TogglePassword POST /auth/login/password-toggle.
func (h *LoginHandler) TogglePassword(c *fiber.Ctx) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": session.TogglePasswordVisibility()})
}
