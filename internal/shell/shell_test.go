package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerly/console/internal/domain"
	"github.com/offerly/console/internal/events"
)

func TestInferVisibility(t *testing.T) {
	tests := []struct {
		url      string
		showMenu bool
		tag      domain.RoleTag
	}{
		{url: "/login", showMenu: false},
		{url: "/login?next=/church-admin", showMenu: false},
		{url: "/church-admin/dashboard", showMenu: true, tag: domain.RoleChurchAdmin},
		{url: "/member/profile", showMenu: true, tag: domain.RoleMember},
		{url: "/super-admin/churches", showMenu: true, tag: domain.RoleSuperAdmin},
		{url: "/elsewhere", showMenu: true, tag: domain.RoleChurchAdmin},
		// "/church-admin" is checked first, even when a later segment names another role
		{url: "/church-admin/member", showMenu: true, tag: domain.RoleChurchAdmin},
		// "/member" is a substring of "/members"
		{url: "/super-admin/members", showMenu: true, tag: domain.RoleMember},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			v := InferVisibility(tt.url)
			assert.Equal(t, tt.showMenu, v.ShowMenu)
			if !tt.showMenu {
				assert.Nil(t, v.Role)
				return
			}
			require.NotNil(t, v.Role)
			assert.Equal(t, tt.tag, v.Role.Tag)
		})
	}
}

func TestInferVisibilityRoleData(t *testing.T) {
	admin := InferVisibility("/church-admin/dashboard").Role
	assert.Equal(t, "John Admin", admin.Name)
	assert.Equal(t, "Grace Community Church", admin.ChurchName)

	super := InferVisibility("/super-admin/dashboard").Role
	assert.Equal(t, "Super Admin", super.Name)
	assert.Empty(t, super.ChurchName)
}

func TestShellFollowsNavigation(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	var roles []*domain.UserRole
	s := New("/login", func(role *domain.UserRole) { roles = append(roles, role) })
	s.Attach(d)

	assert.False(t, s.Visibility().ShowMenu)
	require.Len(t, roles, 1)
	assert.Nil(t, roles[0])

	err := d.Publish(context.Background(), events.New("s", events.EventNavigationCompleted,
		events.NavigationCompletedPayload{URL: "/member/dashboard"}))
	require.NoError(t, err)

	assert.True(t, s.Visibility().ShowMenu)
	assert.Equal(t, domain.RoleMember, s.Visibility().Role.Tag)
	require.Len(t, roles, 2)
	assert.Equal(t, domain.RoleMember, roles[1].Tag)
}
