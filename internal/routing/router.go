// Package routing holds the console's router collaborator: it owns the current
// URL and announces completed navigations.
package routing

import (
	"context"
	"strings"
	"sync"

	"github.com/offerly/console/internal/events"
)

// LoginPath is where unauthenticated sessions start.
const LoginPath = "/login"

// Router supplies the current URL and accepts navigation requests.
type Router interface {
	CurrentURL() string
	Navigate(ctx context.Context, target string) error
}

// redirects mirrors the empty-path redirects of the console route table.
var redirects = map[string]string{
	"":              LoginPath,
	"/":             LoginPath,
	"/church-admin": "/church-admin/dashboard",
}

// MemoryRouter keeps the location in memory and publishes
// events.EventNavigationCompleted after every navigation.
type MemoryRouter struct {
	mu         sync.RWMutex
	sessionID  string
	current    string
	dispatcher events.Dispatcher
}

// NewMemoryRouter creates a router positioned at start (after redirects).
// No event is published for the initial location.
func NewMemoryRouter(sessionID, start string, dispatcher events.Dispatcher) *MemoryRouter {
	return &MemoryRouter{
		sessionID:  sessionID,
		current:    Resolve(start),
		dispatcher: dispatcher,
	}
}

// CurrentURL returns the location after the last completed navigation.
func (r *MemoryRouter) CurrentURL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Navigate moves to target and notifies subscribers with the resolved URL.
func (r *MemoryRouter) Navigate(ctx context.Context, target string) error {
	url := Resolve(target)

	r.mu.Lock()
	r.current = url
	r.mu.Unlock()

	if r.dispatcher == nil {
		return nil
	}
	return r.dispatcher.Publish(ctx, events.New(r.sessionID, events.EventNavigationCompleted,
		events.NavigationCompletedPayload{URL: url}))
}

// Resolve applies the route table redirects. Query strings and fragments are
// carried through untouched.
func Resolve(target string) string {
	target = strings.TrimSpace(target)
	path, rest := splitPath(target)
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if to, ok := redirects[path]; ok {
		return to + rest
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path + rest
}

func splitPath(target string) (string, string) {
	if idx := strings.IndexAny(target, "?#"); idx >= 0 {
		return target[:idx], target[idx:]
	}
	return target, ""
}
