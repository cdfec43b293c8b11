package console

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerly/console/internal/dashboard"
	"github.com/offerly/console/internal/domain"
	"github.com/offerly/console/internal/events"
	"github.com/offerly/console/internal/login"
	"github.com/offerly/console/internal/offering"
)

func ptr[T any](v T) *T { return &v }

func newTestSession(t *testing.T, start string) (*Session, events.Dispatcher) {
	t.Helper()
	d := events.NewInMemoryDispatcher()
	s := NewSession("sess-1", Options{
		StartURL:     start,
		SeedFixtures: true,
		LoginDelay:   time.Hour,
		Location:     time.UTC,
		Now:          func() time.Time { return time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC) },
		Dispatcher:   d,
	})
	t.Cleanup(s.Close)
	return s, d
}

func TestSessionStartsOnLogin(t *testing.T) {
	s, _ := newTestSession(t, "/")

	view := s.Shell()
	assert.Equal(t, "/login", view.CurrentURL)
	assert.False(t, view.ShowMenu)
	assert.Nil(t, view.Role)
	assert.Empty(t, view.Menu)
}

func TestSessionNavigationRebuildsMenu(t *testing.T) {
	s, _ := newTestSession(t, "/login")

	view, err := s.Navigate(context.Background(), "/church-admin")
	require.NoError(t, err)
	assert.Equal(t, "/church-admin/dashboard", view.CurrentURL)
	assert.True(t, view.ShowMenu)
	require.NotNil(t, view.Role)
	assert.Equal(t, domain.RoleChurchAdmin, view.Role.Tag)
	require.Len(t, view.Menu, 8)
	assert.True(t, view.Menu[0].Active)

	view, err = s.Navigate(context.Background(), "/super-admin/churches")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, view.Role.Tag)
	require.Len(t, view.Menu, 5)
	assert.True(t, view.Menu[1].Active)
}

func TestSessionMenuClick(t *testing.T) {
	s, d := newTestSession(t, "/church-admin/dashboard")
	var clicked []string
	d.Subscribe(events.EventMenuItemClicked, func(_ context.Context, e events.Event) error {
		clicked = append(clicked, e.Payload.(events.MenuItemClickedPayload).Item.ID)
		return nil
	})

	res, view, err := s.ClickMenu(context.Background(), "user-management")
	require.NoError(t, err)
	assert.True(t, res.Toggled)
	assert.True(t, view.Menu[2].Expanded)
	assert.Empty(t, clicked)

	res, view, err = s.ClickMenu(context.Background(), "volunteers")
	require.NoError(t, err)
	assert.True(t, res.Navigated)
	assert.Equal(t, "/church-admin/users/volunteers", view.CurrentURL)
	assert.True(t, view.Menu[2].HasActiveChild)
	assert.Equal(t, []string{"volunteers"}, clicked)

	view, err = s.Logout(context.Background())
	require.NoError(t, err)
	assert.False(t, view.ShowMenu)
	assert.Empty(t, view.Menu)
}

func TestSessionSubmitOffering(t *testing.T) {
	s, d := newTestSession(t, "/church-admin/offering")
	var recorded []domain.OfferingRecord
	d.Subscribe(events.EventOfferingRecorded, func(_ context.Context, e events.Event) error {
		recorded = append(recorded, e.Payload.(events.OfferingRecordedPayload).Record)
		return nil
	})

	_, err := s.UpdateOfferingForm(offering.Patch{Date: ptr("2025-09-15"), Amount: ptr(decimal.NewFromInt(5000))})
	require.NoError(t, err)

	record, view, err := s.SubmitOffering(context.Background())
	require.NoError(t, err)
	assert.Equal(t, record, s.Offerings()[0])
	assert.Len(t, s.Offerings(), 4)
	assert.Equal(t, []domain.OfferingRecord{record}, recorded)
	assert.Equal(t, "2025-09-15", view.Values.Date)
	assert.Nil(t, view.Values.Amount)

	_, view, err = s.SubmitOffering(context.Background())
	var verr *offering.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, offering.AllFields, view.Touched)
	assert.Len(t, s.Offerings(), 4)
	assert.Len(t, recorded, 1)
}

func TestSessionDashboard(t *testing.T) {
	s, _ := newTestSession(t, "/church-admin/dashboard")

	assert.Equal(t, "Grace Community Church", s.Dashboard().ChurchName)
	assert.Error(t, s.DashboardNavigate(dashboard.TargetFunds))
}

func TestSessionLogin(t *testing.T) {
	s, d := newTestSession(t, "/login")
	var submitted []string
	d.Subscribe(events.EventLoginSubmitted, func(_ context.Context, e events.Event) error {
		submitted = append(submitted, e.Payload.(events.LoginSubmittedPayload).Email)
		return nil
	})

	state, started := s.SubmitLogin(context.Background(), login.Data{Email: "a@grace.org", Password: "pw"})
	assert.True(t, started)
	assert.True(t, state.Loading)

	_, started = s.SubmitLogin(context.Background(), login.Data{Email: "b@grace.org"})
	assert.False(t, started)
	assert.Equal(t, []string{"a@grace.org"}, submitted)

	assert.True(t, s.TogglePasswordVisibility().ShowPassword)
}

func TestSessionLoginCompletionPublishesEvent(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	completed := make(chan events.LoginCompletedPayload, 1)
	d.Subscribe(events.EventLoginCompleted, func(_ context.Context, e events.Event) error {
		completed <- e.Payload.(events.LoginCompletedPayload)
		return nil
	})
	s := NewSession("sess-1", Options{StartURL: "/login", LoginDelay: 5 * time.Millisecond, Dispatcher: d})
	t.Cleanup(s.Close)

	_, started := s.SubmitLogin(context.Background(), login.Data{Email: "a@grace.org", Password: "pw", RememberMe: true})
	require.True(t, started)

	select {
	case payload := <-completed:
		assert.Equal(t, "a@grace.org", payload.Email)
		assert.True(t, payload.RememberMe)
	case <-time.After(2 * time.Second):
		t.Fatal("login never completed")
	}
	assert.False(t, s.LoginState().Loading)
}
