package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/auth"
	"github.com/offerly/console/internal/console"
	apperrors "github.com/offerly/console/pkg/util/errorutil"
)

func currentSession(c *fiber.Ctx) (*console.Session, error) {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("console session required")
	}
	return session, nil
}
