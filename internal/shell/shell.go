// Package shell decides whether the navigation menu is shown and which role
// the console simulates for the current URL.
package shell

import (
	"context"
	"strings"

	"github.com/offerly/console/internal/domain"
	"github.com/offerly/console/internal/events"
)

// Visibility is the outcome of inferring shell state from a URL.
type Visibility struct {
	ShowMenu bool             `json:"showMenu"`
	Role     *domain.UserRole `json:"role"`
}

// InferVisibility hides the menu on the login path and otherwise picks a role
// by substring match, defaulting to church admin.
func InferVisibility(currentURL string) Visibility {
	if strings.Contains(currentURL, "/login") {
		return Visibility{ShowMenu: false}
	}

	switch {
	case strings.Contains(currentURL, "/church-admin"):
		return Visibility{ShowMenu: true, Role: domain.ChurchAdminRole()}
	case strings.Contains(currentURL, "/member"):
		return Visibility{ShowMenu: true, Role: domain.MemberRole()}
	case strings.Contains(currentURL, "/super-admin"):
		return Visibility{ShowMenu: true, Role: domain.SuperAdminRole()}
	default:
		return Visibility{ShowMenu: true, Role: domain.ChurchAdminRole()}
	}
}

// RoleListener is told about the role inferred after each update.
type RoleListener func(role *domain.UserRole)

// Shell keeps the visibility of one session in sync with its router.
type Shell struct {
	visibility Visibility
	listeners  []RoleListener
}

// New creates a shell and runs the initial inference for startURL.
func New(startURL string, listeners ...RoleListener) *Shell {
	s := &Shell{listeners: listeners}
	s.Update(startURL)
	return s
}

// Attach re-runs inference on every completed navigation.
func (s *Shell) Attach(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventNavigationCompleted, func(_ context.Context, e events.Event) error {
		if payload, ok := e.Payload.(events.NavigationCompletedPayload); ok {
			s.Update(payload.URL)
		}
		return nil
	})
}

// Update infers visibility for url and notifies listeners.
func (s *Shell) Update(url string) Visibility {
	s.visibility = InferVisibility(url)
	for _, listener := range s.listeners {
		listener(s.visibility.Role)
	}
	return s.visibility
}

// Visibility returns the last inferred state.
func (s *Shell) Visibility() Visibility {
	return s.visibility
}
