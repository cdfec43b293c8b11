package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/offerly/console/internal/console"
)

const sessionKey = "console_session"

// SessionHeader carries a freshly issued token back to the client.
const SessionHeader = "X-Session-Token"

// SessionProvider finds and creates console sessions.
type SessionProvider interface {
	Create(ctx context.Context) (*console.Session, error)
	Get(ctx context.Context, id string) (*console.Session, error)
}

// SessionMiddleware resolves the caller's console session, starting a new
// one when the token is missing, invalid or refers to an expired session.
type SessionMiddleware struct {
	tokens     *TokenManager
	sessions   SessionProvider
	cookieName string
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, sessions SessionProvider, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, sessions: sessions, cookieName: cookieName}
}

// Handle attaches the session to the request. Tokens of a live session are
// re-issued once past half their lifetime so an active user keeps the session.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	session, claims := m.lookup(c)
	if session != nil {
		if m.tokens.NeedsRefresh(claims) {
			if err := m.issue(c, session.ID); err != nil {
				return err
			}
		}
		c.Locals(sessionKey, session)
		return c.Next()
	}

	session, err := m.sessions.Create(c.UserContext())
	if err != nil {
		return err
	}
	if err := m.issue(c, session.ID); err != nil {
		return err
	}
	c.Locals(sessionKey, session)
	return c.Next()
}

func (m *SessionMiddleware) issue(c *fiber.Ctx, sessionID string) error {
	token, exp, err := m.tokens.GenerateToken(sessionID)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Set(SessionHeader, token)
	return nil
}

// lookup resolves the session named by the request token. Token expiry is
// not checked here; the session store decides whether the session is alive.
func (m *SessionMiddleware) lookup(c *fiber.Ctx) (*console.Session, *Claims) {
	token := bearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		token = c.Cookies(m.cookieName)
	}
	if token == "" {
		return nil, nil
	}
	claims, err := m.tokens.ParseSessionToken(token)
	if err != nil {
		return nil, nil
	}
	session, err := m.sessions.Get(c.UserContext(), claims.SessionID)
	if err != nil {
		return nil, nil
	}
	return session, claims
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SessionFromContext retrieves the console session.
func SessionFromContext(c *fiber.Ctx) (*console.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*console.Session)
	return session, ok
}
