package navigation

import (
	"context"
	"errors"

	"github.com/offerly/console/internal/domain"
	"github.com/offerly/console/internal/events"
	"github.com/offerly/console/internal/routing"
)

// ErrItemNotFound is returned when a click targets an unknown menu id.
var ErrItemNotFound = errors.New("menu item not found")

// ItemView is a menu entry decorated with its state against the current URL.
type ItemView struct {
	domain.MenuItem
	Active         bool       `json:"active"`
	HasActiveChild bool       `json:"hasActiveChild"`
	Children       []ItemView `json:"children,omitempty"`
}

// ClickResult describes what a menu click did.
type ClickResult struct {
	Item      domain.MenuItem `json:"item"`
	Toggled   bool            `json:"toggled"`
	Navigated bool            `json:"navigated"`
}

// Sidebar owns the menu of one session. It is not safe for concurrent use;
// the owning session serializes access.
type Sidebar struct {
	sessionID  string
	router     routing.Router
	dispatcher events.Dispatcher
	role       *domain.UserRole
	items      []domain.MenuItem
	collapsed  bool
}

// NewSidebar creates an empty sidebar bound to a router.
func NewSidebar(sessionID string, router routing.Router, dispatcher events.Dispatcher) *Sidebar {
	return &Sidebar{
		sessionID:  sessionID,
		router:     router,
		dispatcher: dispatcher,
		items:      []domain.MenuItem{},
	}
}

// SetRole rebuilds the menu when role differs from the current one.
// Expansion state is discarded with the old menu.
func (s *Sidebar) SetRole(role *domain.UserRole) bool {
	if domain.SameRole(s.role, role) {
		return false
	}
	if role != nil {
		copied := *role
		role = &copied
	}
	s.role = role
	s.items = BuildMenu(role)
	return true
}

// Role returns the role the menu was built for.
func (s *Sidebar) Role() *domain.UserRole {
	return s.role
}

// Items returns a copy of the raw menu tree.
func (s *Sidebar) Items() []domain.MenuItem {
	return cloneItems(s.items)
}

// View decorates the menu with active flags for the router's current URL.
func (s *Sidebar) View() []ItemView {
	return viewItems(s.items, s.router.CurrentURL())
}

// Click toggles a parent entry or navigates to a leaf entry's route.
func (s *Sidebar) Click(ctx context.Context, id string) (ClickResult, error) {
	item := findItem(s.items, id)
	if item == nil {
		return ClickResult{}, ErrItemNotFound
	}

	if item.HasChildren() {
		item.Expanded = !item.Expanded
		return ClickResult{Item: cloneItem(*item), Toggled: true}, nil
	}

	if err := s.router.Navigate(ctx, item.Route); err != nil {
		return ClickResult{}, err
	}
	clicked := cloneItem(*item)
	if s.dispatcher != nil {
		if err := s.dispatcher.Publish(ctx, events.New(s.sessionID, events.EventMenuItemClicked,
			events.MenuItemClickedPayload{Item: clicked})); err != nil {
			return ClickResult{}, err
		}
	}
	return ClickResult{Item: clicked, Navigated: true}, nil
}

// ToggleCollapsed flips the collapsed flag and returns the new value.
func (s *Sidebar) ToggleCollapsed() bool {
	s.collapsed = !s.collapsed
	return s.collapsed
}

// Collapsed reports whether the sidebar is collapsed.
func (s *Sidebar) Collapsed() bool {
	return s.collapsed
}

// Logout returns the session to the login screen.
func (s *Sidebar) Logout(ctx context.Context) error {
	return s.router.Navigate(ctx, routing.LoginPath)
}

func findItem(items []domain.MenuItem, id string) *domain.MenuItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
		if found := findItem(items[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

func viewItems(items []domain.MenuItem, currentURL string) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		base := item
		base.Children = nil
		view := ItemView{
			MenuItem:       base,
			Active:         IsRouteActive(item.Route, currentURL),
			HasActiveChild: HasActiveChild(item, currentURL),
		}
		if item.HasChildren() {
			view.Children = viewItems(item.Children, currentURL)
		}
		views = append(views, view)
	}
	return views
}

func cloneItems(items []domain.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, len(items))
	for i, item := range items {
		out[i] = cloneItem(item)
	}
	return out
}

func cloneItem(item domain.MenuItem) domain.MenuItem {
	if item.Children != nil {
		item.Children = cloneItems(item.Children)
	}
	return item
}
