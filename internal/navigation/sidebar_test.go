package navigation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerly/console/internal/domain"
	"github.com/offerly/console/internal/events"
	"github.com/offerly/console/internal/routing"
)

func newTestSidebar(t *testing.T, start string) (*Sidebar, *routing.MemoryRouter, *[]domain.MenuItem) {
	t.Helper()
	d := events.NewInMemoryDispatcher()
	clicked := &[]domain.MenuItem{}
	d.Subscribe(events.EventMenuItemClicked, func(_ context.Context, e events.Event) error {
		*clicked = append(*clicked, e.Payload.(events.MenuItemClickedPayload).Item)
		return nil
	})
	router := routing.NewMemoryRouter("s", start, d)
	s := NewSidebar("s", router, d)
	s.SetRole(domain.ChurchAdminRole())
	return s, router, clicked
}

func TestSidebarClickParentToggles(t *testing.T) {
	s, router, clicked := newTestSidebar(t, "/church-admin/dashboard")

	res, err := s.Click(context.Background(), "reports")
	require.NoError(t, err)
	assert.True(t, res.Toggled)
	assert.False(t, res.Navigated)
	assert.True(t, s.Items()[3].Expanded)
	assert.Equal(t, "/church-admin/dashboard", router.CurrentURL())
	assert.Empty(t, *clicked)

	_, err = s.Click(context.Background(), "reports")
	require.NoError(t, err)
	assert.False(t, s.Items()[3].Expanded)
}

func TestSidebarClickLeafNavigates(t *testing.T) {
	s, router, clicked := newTestSidebar(t, "/church-admin/dashboard")

	res, err := s.Click(context.Background(), "staff")
	require.NoError(t, err)
	assert.True(t, res.Navigated)
	assert.Equal(t, "/church-admin/users/staff", router.CurrentURL())
	require.Len(t, *clicked, 1)
	assert.Equal(t, "staff", (*clicked)[0].ID)

	view := s.View()
	assert.True(t, view[2].HasActiveChild)
	// the parent route is a substring of the child route
	assert.True(t, view[2].Active)
	assert.True(t, view[2].Children[1].Active)
	assert.False(t, view[0].Active)
}

func TestSidebarClickUnknown(t *testing.T) {
	s, _, _ := newTestSidebar(t, "/church-admin/dashboard")

	_, err := s.Click(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSidebarSetRoleRebuilds(t *testing.T) {
	s, _, _ := newTestSidebar(t, "/church-admin/dashboard")
	_, err := s.Click(context.Background(), "user-management")
	require.NoError(t, err)

	assert.False(t, s.SetRole(domain.ChurchAdminRole()))
	assert.True(t, s.Items()[2].Expanded)

	assert.True(t, s.SetRole(domain.MemberRole()))
	assert.Len(t, s.Items(), 5)

	assert.True(t, s.SetRole(domain.ChurchAdminRole()))
	assert.False(t, s.Items()[2].Expanded)

	assert.True(t, s.SetRole(nil))
	assert.Empty(t, s.Items())
}

func TestSidebarCollapseAndLogout(t *testing.T) {
	s, router, _ := newTestSidebar(t, "/church-admin/dashboard")

	assert.True(t, s.ToggleCollapsed())
	assert.True(t, s.Collapsed())
	assert.False(t, s.ToggleCollapsed())

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, "/login", router.CurrentURL())
}
