// Package services holds the long-lived application state of the POS
// client: who is logged in and whether the backend is reachable. Both are
// read by the REPL and updated from background goroutines.
package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/auth"
	"github.com/dmitrijs2005/posclient/internal/logging"
)

// AuthState tracks the current user for the lifetime of the process.
//
// It starts in the loading state; Init reads the persisted session and
// clears it. Login, Register and Logout keep the held user in step with
// the auth repository, and every change is broadcast to subscribers.
type AuthState struct {
	repo auth.Repository
	log  logging.Logger

	mu      sync.RWMutex
	user    *models.User
	loading bool
	subs    map[int]func(*models.User)
	nextSub int
}

func NewAuthState(repo auth.Repository, log logging.Logger) *AuthState {
	return &AuthState{
		repo:    repo,
		log:     log.With("service", "auth_state"),
		loading: true,
		subs:    make(map[int]func(*models.User)),
	}
}

// Init restores the persisted session, if any. It is meant to be called
// once at startup.
func (s *AuthState) Init(ctx context.Context) {
	u := s.repo.CurrentUser(ctx)

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	if u != nil {
		s.log.Info(ctx, "session restored", "user_id", u.ID)
	}
	s.set(u)
}

func (s *AuthState) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repo.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.set(u)
	return u, nil
}

func (s *AuthState) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	u, err := s.repo.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	s.set(u)
	return u, nil
}

// Logout clears the persisted session and the held user. The held user is
// kept when the session could not be cleared.
func (s *AuthState) Logout(ctx context.Context) error {
	if err := s.repo.Logout(ctx); err != nil {
		return err
	}
	s.set(nil)
	return nil
}

// User returns a copy of the current user, or nil.
func (s *AuthState) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *AuthState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AuthState) IsAuthenticated() bool {
	return s.User() != nil
}

// Token returns the bearer token of the current user, or "".
func (s *AuthState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

// Subscribe registers fn to be called with the new user after every
// change. The returned function removes the subscription.
func (s *AuthState) Subscribe(fn func(*models.User)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
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

func (s *AuthState) set(u *models.User) {
	s.mu.Lock()
	s.user = u
	subs := make([]func(*models.User), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Subscribers run outside the lock so they may read the state back.
	for _, fn := range subs {
		fn(s.User())
	}
}
