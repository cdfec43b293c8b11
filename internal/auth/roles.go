package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/domain"
	apperrors "github.com/offerly/console/pkg/util/errorutil"
)

// RequireSession ensures the session middleware ran.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := SessionFromContext(c); !ok {
			return apperrors.NewUnauthorized("console session required")
		}
		return c.Next()
	}
}

// RequireRole ensures the role the shell inferred for the session's current
// URL is one of allowed. A hidden menu means no role.
func RequireRole(allowed ...domain.RoleTag) fiber.Handler {
	allowedSet := make(map[domain.RoleTag]struct{}, len(allowed))
	for _, tag := range allowed {
		allowedSet[tag] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("console session required")
		}
		role := session.Visibility().Role
		if role == nil {
			return apperrors.NewForbidden("sign-in screen has no role")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[role.Tag]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
