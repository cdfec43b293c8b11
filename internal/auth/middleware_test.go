package auth

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerly/console/internal/console"
	"github.com/offerly/console/internal/domain"
	apperrors "github.com/offerly/console/pkg/util/errorutil"
)

type fakeSessions struct {
	sessions map[string]*console.Session
	created  int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]*console.Session{}}
}

func (f *fakeSessions) Create(context.Context) (*console.Session, error) {
	f.created++
	id := "sess-" + string(rune('0'+f.created))
	s := console.NewSession(id, console.Options{StartURL: "/"})
	f.sessions[id] = s
	return s, nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*console.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("missing")
	}
	return s, nil
}

func newGatedApp(sessions *fakeSessions, tokens *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
	}})
	mw := NewSessionMiddleware(tokens, sessions, "offerly_session")
	app.Get("/whoami", mw.Handle, RequireSession(), func(c *fiber.Ctx) error {
		s, _ := SessionFromContext(c)
		return c.SendString(s.ID)
	})
	app.Get("/admin", mw.Handle, RequireRole(domain.RoleChurchAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestSessionMiddlewareIssuesToken(t *testing.T) {
	sessions := newFakeSessions()
	tokens := NewTokenManager("secret", 10)
	app := newGatedApp(sessions, tokens)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	token := resp.Header.Get(SessionHeader)
	require.NotEmpty(t, token)
	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, "offerly_session", resp.Cookies()[0].Name)
	assert.Equal(t, token, resp.Cookies()[0].Value)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderCookie, "offerly_session="+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(SessionHeader))
	assert.Equal(t, 1, sessions.created)
}

func TestSessionMiddlewareReplacesUnknownSession(t *testing.T) {
	sessions := newFakeSessions()
	tokens := NewTokenManager("secret", 10)
	app := newGatedApp(sessions, tokens)

	stale, _, err := tokens.GenerateToken("gone")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+stale)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(SessionHeader))
	assert.Equal(t, 1, sessions.created)
}

func TestSessionMiddlewareKeepsLiveSessionPastTokenExpiry(t *testing.T) {
	sessions := newFakeSessions()
	tokens := NewTokenManager("secret", 10)
	app := newGatedApp(sessions, tokens)

	live, err := sessions.Create(context.Background())
	require.NoError(t, err)

	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _, err := tokens.GenerateToken(live.ID)
	require.NoError(t, err)
	tokens.now = time.Now

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, live.ID, string(body))
	assert.Equal(t, 1, sessions.created)

	renewed := resp.Header.Get(SessionHeader)
	require.NotEmpty(t, renewed)
	claims, err := tokens.ParseToken(renewed)
	require.NoError(t, err)
	assert.Equal(t, live.ID, claims.SessionID)
}

func TestSessionMiddlewareDoesNotReissueFreshToken(t *testing.T) {
	sessions := newFakeSessions()
	tokens := NewTokenManager("secret", 10)
	app := newGatedApp(sessions, tokens)

	live, err := sessions.Create(context.Background())
	require.NoError(t, err)
	token, _, err := tokens.GenerateToken(live.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(SessionHeader))
	assert.Empty(t, resp.Cookies())
}

func TestRequireRole(t *testing.T) {
	sessions := newFakeSessions()
	tokens := NewTokenManager("secret", 10)
	app := newGatedApp(sessions, tokens)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	token, _, err := tokens.GenerateToken("sess-1")
	require.NoError(t, err)
	_, err = sessions.sessions["sess-1"].Navigate(context.Background(), "/church-admin/offerings")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
