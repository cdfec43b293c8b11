// Package navigation derives the role-aware sidebar menu and tracks which
// entries are expanded and active.
package navigation

import (
	"strings"

	"github.com/offerly/console/internal/domain"
)

// BuildMenu returns a freshly allocated menu for role. A nil role or an
// unrecognized tag yields an empty menu.
func BuildMenu(role *domain.UserRole) []domain.MenuItem {
	if role == nil {
		return []domain.MenuItem{}
	}

	switch role.Tag {
	case domain.RoleChurchAdmin:
		return churchAdminMenu()
	case domain.RoleMember:
		return memberMenu()
	case domain.RoleSuperAdmin:
		return superAdminMenu()
	default:
		return []domain.MenuItem{}
	}
}

// IsRouteActive reports whether currentURL contains route. Matching is by
// substring, so "/a/b" is also active on "/a/b/c" and on "/x/a/b".
func IsRouteActive(route, currentURL string) bool {
	return strings.Contains(currentURL, route)
}

// HasActiveChild reports whether any direct child of item is active.
func HasActiveChild(item domain.MenuItem, currentURL string) bool {
	for _, child := range item.Children {
		if IsRouteActive(child.Route, currentURL) {
			return true
		}
	}
	return false
}

func churchAdminMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "dashboard", Label: "Dashboard", Icon: "dashboard", Route: "/church-admin/dashboard"},
		{ID: "offerings", Label: "Offerings", Icon: "monetization_on", Route: "/church-admin/offerings"},
		{
			ID: "user-management", Label: "User Management", Icon: "group", Route: "/church-admin/users",
			Children: []domain.MenuItem{
				{ID: "members", Label: "Members", Icon: "person", Route: "/church-admin/users/members"},
				{ID: "staff", Label: "Staff", Icon: "badge", Route: "/church-admin/users/staff"},
				{ID: "volunteers", Label: "Volunteers", Icon: "volunteer_activism", Route: "/church-admin/users/volunteers"},
			},
		},
		{
			ID: "reports", Label: "Reports", Icon: "assessment", Route: "/church-admin/reports",
			Children: []domain.MenuItem{
				{ID: "financial-reports", Label: "Financial Reports", Icon: "account_balance_wallet", Route: "/church-admin/reports/financial"},
				{ID: "attendance-reports", Label: "Attendance Reports", Icon: "people", Route: "/church-admin/reports/attendance"},
				{ID: "donation-reports", Label: "Donation Reports", Icon: "card_giftcard", Route: "/church-admin/reports/donations"},
			},
		},
		{ID: "funds", Label: "Funds", Icon: "account_balance", Route: "/church-admin/funds"},
		{ID: "donations", Label: "Donations", Icon: "volunteer_activism", Route: "/church-admin/donations"},
		{ID: "events", Label: "Events", Icon: "event", Route: "/church-admin/events"},
		{ID: "settings", Label: "Settings", Icon: "settings", Route: "/church-admin/settings"},
	}
}

func memberMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "dashboard", Label: "My Dashboard", Icon: "dashboard", Route: "/member/dashboard"},
		{ID: "my-offerings", Label: "My Offerings", Icon: "monetization_on", Route: "/member/offerings"},
		{ID: "my-donations", Label: "My Donations", Icon: "card_giftcard", Route: "/member/donations"},
		{ID: "events", Label: "Events", Icon: "event", Route: "/member/events"},
		{ID: "profile", Label: "My Profile", Icon: "person", Route: "/member/profile"},
	}
}

func superAdminMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "dashboard", Label: "Super Admin Dashboard", Icon: "admin_panel_settings", Route: "/super-admin/dashboard"},
		{ID: "churches", Label: "Churches", Icon: "church", Route: "/super-admin/churches"},
		{ID: "users", Label: "All Users", Icon: "group", Route: "/super-admin/users"},
		{ID: "reports", Label: "System Reports", Icon: "assessment", Route: "/super-admin/reports"},
		{ID: "settings", Label: "System Settings", Icon: "settings", Route: "/super-admin/settings"},
	}
}
