package services

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
)

// TokenStore persists access tokens per client session.
type TokenStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionEvent is delivered to subscribers whenever a session logs in or out.
type SessionEvent struct {
	SessionID string
	LoggedIn  bool
}

// SessionService exposes the access token of a client session and notifies
// subscribers about changes.
type SessionService struct {
	store TokenStore

	mu   sync.Mutex
	next int
	subs map[int]func(SessionEvent)
}

// NewSessionService creates a session service backed by store.
func NewSessionService(store TokenStore) *SessionService {
	return &SessionService{
		store: store,
		subs:  make(map[int]func(SessionEvent)),
	}
}

// Get returns the access token of sessionID, or "" when logged out.
func (s *SessionService) Get(ctx context.Context, sessionID string) (string, error) {
	return s.store.Get(ctx, sessionID)
}

// Set stores the access token of sessionID.
func (s *SessionService) Set(ctx context.Context, sessionID, token string) error {
	if err := s.store.Set(ctx, sessionID, token); err != nil {
		return err
	}
	s.notify(SessionEvent{SessionID: sessionID, LoggedIn: true})
	return nil
}

// Clear removes the access token of sessionID.
func (s *SessionService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.notify(SessionEvent{SessionID: sessionID, LoggedIn: false})
	return nil
}

// Subscribe registers fn for session events. The returned func removes it.
func (s *SessionService) Subscribe(fn func(SessionEvent)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *SessionService) notify(ev SessionEvent) {
	s.mu.Lock()
	fns := make([]func(SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	logger.Log.Debugw("session changed", "session_id", ev.SessionID, "logged_in", ev.LoggedIn, "subscribers", len(fns))
	for _, fn := range fns {
		fn(ev)
	}
}
