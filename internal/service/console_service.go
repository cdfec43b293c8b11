package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/offerly/console/internal/config"
	"github.com/offerly/console/internal/console"
	"github.com/offerly/console/internal/events"
	"github.com/offerly/console/internal/repository"
)

// ConsoleService creates, finds and expires console sessions.
type ConsoleService struct {
	sessions   repository.SessionRepository
	activity   *ActivityService
	logger     *zap.Logger
	ttl        time.Duration
	loginDelay time.Duration
	seed       bool
	loc        *time.Location
	now        func() time.Time
}

// ConsoleDependencies encapsulates collaborators of the console service.
type ConsoleDependencies struct {
	SessionRepo repository.SessionRepository
	Activity    *ActivityService
	Logger      *zap.Logger
	Now         func() time.Time
}

// NewConsoleService builds the service.
func NewConsoleService(cfg config.Config, deps ConsoleDependencies) (*ConsoleService, error) {
	loc, err := cfg.Console.Location()
	if err != nil {
		return nil, err
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ConsoleService{
		sessions:   deps.SessionRepo,
		activity:   deps.Activity,
		logger:     deps.Logger,
		ttl:        cfg.Session.TTL(),
		loginDelay: cfg.Console.LoginDelay(),
		seed:       cfg.Console.SeedFixtures,
		loc:        loc,
		now:        deps.Now,
	}, nil
}

// Create starts a session at the root URL, which redirects to the sign-in screen.
func (s *ConsoleService) Create(ctx context.Context) (*console.Session, error) {
	dispatcher := events.NewInMemoryDispatcher()
	if s.activity != nil {
		s.activity.RegisterHandlers(dispatcher)
	}

	id := uuid.NewString()
	session := console.NewSession(id, console.Options{
		StartURL:     "/",
		SeedFixtures: s.seed,
		LoginDelay:   s.loginDelay,
		Location:     s.loc,
		Now:          s.now,
		Logger:       s.logger,
		Dispatcher:   dispatcher,
	})
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("session created", zap.String("session_id", id))
	return session, nil
}

// Get returns a live session and records the activity.
func (s *ConsoleService) Get(ctx context.Context, id string) (*console.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.expired(session) {
		_ = s.sessions.Delete(ctx, id)
		return nil, repository.ErrSessionNotFound
	}
	session.Touch()
	return session, nil
}

// Sweep evicts sessions idle for longer than the configured TTL.
func (s *ConsoleService) Sweep(ctx context.Context) (int, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	n, err := s.sessions.DeleteIdleSince(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("expired sessions evicted", zap.Int("count", n))
	}
	return n, nil
}

// Count returns the number of live sessions.
func (s *ConsoleService) Count(ctx context.Context) (int, error) {
	return s.sessions.Count(ctx)
}

func (s *ConsoleService) expired(session *console.Session) bool {
	return s.ttl > 0 && s.now().Sub(session.LastSeen()) > s.ttl
}
