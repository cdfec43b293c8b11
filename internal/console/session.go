// Package console ties the per-browser pieces of the admin console into one
// session: router, shell, sidebar, offering form, ledger, dashboard and
// sign-in screen.
package console

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/offerly/console/internal/dashboard"
	"github.com/offerly/console/internal/domain"
	"github.com/offerly/console/internal/events"
	"github.com/offerly/console/internal/login"
	"github.com/offerly/console/internal/navigation"
	"github.com/offerly/console/internal/offering"
	"github.com/offerly/console/internal/routing"
	"github.com/offerly/console/internal/shell"
)

// Options configures a new session.
type Options struct {
	StartURL     string
	SeedFixtures bool
	ChurchName   string
	LoginDelay   time.Duration
	Location     *time.Location
	Now          func() time.Time
	Logger       *zap.Logger
	Dispatcher   events.Dispatcher
}

// ShellView is the frame around every page.
type ShellView struct {
	CurrentURL string                `json:"currentUrl"`
	ShowMenu   bool                  `json:"showMenu"`
	Role       *domain.UserRole      `json:"role"`
	Collapsed  bool                  `json:"sidebarCollapsed"`
	Menu       []navigation.ItemView `json:"menu"`
}

// Session is the state of one browser. Operations are serialized by mu so
// the session behaves as a single execution context.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	lastSeen   time.Time
	now        func() time.Time
	dispatcher events.Dispatcher
	router     *routing.MemoryRouter
	shell      *shell.Shell
	sidebar    *navigation.Sidebar
	form       *offering.Form
	ledger     *offering.Ledger
	dashboard  *dashboard.Dashboard
	login      *login.Form
}

// NewSession builds a session and runs the initial shell inference for the
// start URL.
func NewSession(id string, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = events.NewInMemoryDispatcher()
	}
	if opts.ChurchName == "" {
		opts.ChurchName = domain.DefaultChurchName
	}

	var seed []domain.OfferingRecord
	if opts.SeedFixtures {
		seed = offering.SampleRecords()
	}

	now := opts.Now()
	s := &Session{
		ID:         id,
		CreatedAt:  now,
		lastSeen:   now,
		now:        opts.Now,
		dispatcher: opts.Dispatcher,
		form:       offering.NewForm(offering.WithClock(opts.Now), offering.WithLocation(opts.Location)),
		ledger:     offering.NewLedger(seed...),
		dashboard:  dashboard.New(dashboard.SampleData(opts.ChurchName), opts.Now, opts.Location),
		login:      login.NewForm(opts.LoginDelay, opts.Logger.With(zap.String("session_id", id))),
	}
	s.router = routing.NewMemoryRouter(id, opts.StartURL, s.dispatcher)
	s.sidebar = navigation.NewSidebar(id, s.router, s.dispatcher)
	s.shell = shell.New(s.router.CurrentURL(), func(role *domain.UserRole) {
		s.sidebar.SetRole(role)
	})
	s.shell.Attach(s.dispatcher)
	s.login.OnDone(s.loginCompleted)
	return s
}

// loginCompleted runs on the login timer's goroutine, outside any request.
func (s *Session) loginCompleted() {
	state := s.login.State()
	_ = s.dispatcher.Publish(context.Background(), events.New(s.ID, events.EventLoginCompleted,
		events.LoginCompletedPayload{Email: state.Email, RememberMe: state.RememberMe}))
}

// Touch records activity for idle eviction.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
}

// LastSeen returns the time of the last recorded activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Visibility returns the shell's current inference.
func (s *Session) Visibility() shell.Visibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Visibility()
}

// Shell renders the frame. The menu is empty while it is hidden.
func (s *Session) Shell() ShellView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shellView()
}

func (s *Session) shellView() ShellView {
	v := s.shell.Visibility()
	view := ShellView{
		CurrentURL: s.router.CurrentURL(),
		ShowMenu:   v.ShowMenu,
		Role:       v.Role,
		Collapsed:  s.sidebar.Collapsed(),
		Menu:       []navigation.ItemView{},
	}
	if v.ShowMenu {
		view.Menu = s.sidebar.View()
	}
	return view
}

// Navigate moves the router; shell and menu follow via the navigation event.
func (s *Session) Navigate(ctx context.Context, url string) (ShellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.router.Navigate(ctx, url); err != nil {
		return ShellView{}, err
	}
	return s.shellView(), nil
}

// ToggleSidebar collapses or expands the sidebar.
func (s *Session) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebar.ToggleCollapsed()
}

// Menu returns the decorated menu for the current URL.
func (s *Session) Menu() []navigation.ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebar.View()
}

// ClickMenu handles a click on a menu entry.
func (s *Session) ClickMenu(ctx context.Context, id string) (navigation.ClickResult, ShellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.sidebar.Click(ctx, id)
	if err != nil {
		return navigation.ClickResult{}, ShellView{}, err
	}
	return res, s.shellView(), nil
}

// Logout returns to the sign-in screen.
func (s *Session) Logout(ctx context.Context) (ShellView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sidebar.Logout(ctx); err != nil {
		return ShellView{}, err
	}
	return s.shellView(), nil
}

// OfferingForm renders the offering form.
func (s *Session) OfferingForm() offering.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.View()
}

// UpdateOfferingForm applies field changes.
func (s *Session) UpdateOfferingForm(p offering.Patch) (offering.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.form.Apply(p); err != nil {
		return offering.View{}, err
	}
	return s.form.View(), nil
}

// SubmitOffering records the form. On a validation failure the returned view
// shows every field as touched.
func (s *Session) SubmitOffering(ctx context.Context) (domain.OfferingRecord, offering.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, err := s.form.Submit(s.ledger)
	if err != nil {
		return domain.OfferingRecord{}, s.form.View(), err
	}
	// listeners only observe; their failures do not undo the record
	_ = s.dispatcher.Publish(ctx, events.New(s.ID, events.EventOfferingRecorded,
		events.OfferingRecordedPayload{Record: record}))
	return record, s.form.View(), nil
}

// Offerings lists recorded offerings, newest first.
func (s *Session) Offerings() []domain.OfferingRecord {
	return s.ledger.List()
}

// Dashboard renders the dashboard.
func (s *Session) Dashboard() dashboard.Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard.Overview()
}

// DashboardNavigate opens a dashboard list view.
func (s *Session) DashboardNavigate(target dashboard.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard.Navigate(target)
}

// SubmitLogin starts the simulated sign-in.
func (s *Session) SubmitLogin(ctx context.Context, data login.Data) (login.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	started := s.login.Submit(data)
	if started {
		_ = s.dispatcher.Publish(ctx, events.New(s.ID, events.EventLoginSubmitted,
			events.LoginSubmittedPayload{Email: data.Email, RememberMe: data.RememberMe}))
	}
	return s.login.State(), started
}

// LoginState returns the sign-in screen state.
func (s *Session) LoginState() login.State {
	return s.login.State()
}

// TogglePasswordVisibility flips the sign-in screen's password visibility.
func (s *Session) TogglePasswordVisibility() login.State {
	s.login.TogglePassword()
	return s.login.State()
}

// Close stops background work owned by the session.
func (s *Session) Close() {
	s.login.Stop()
}
