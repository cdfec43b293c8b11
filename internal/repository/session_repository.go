package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/offerly/console/internal/console"
)

// ErrSessionNotFound is returned when no session has the requested id.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines access to live console sessions.
type SessionRepository interface {
	Save(ctx context.Context, session *console.Session) error
	GetByID(ctx context.Context, id string) (*console.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*console.Session
}

// NewSessionRepository returns a process-memory implementation.
func NewSessionRepository() SessionRepository {
	return &sessionRepository{sessions: make(map[string]*console.Session)}
}

func (r *sessionRepository) Save(_ context.Context, session *console.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *sessionRepository) GetByID(_ context.Context, id string) (*console.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *sessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	session.Close()
	return nil
}

func (r *sessionRepository) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	var evicted []*console.Session
	for id, session := range r.sessions {
		if session.LastSeen().Before(cutoff) {
			evicted = append(evicted, session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, session := range evicted {
		session.Close()
	}
	return len(evicted), nil
}

func (r *sessionRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
