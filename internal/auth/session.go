package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lexdesk/lexdesk/internal/api"
)

// ErrNotSignedIn is returned by operations that need a credential.
var ErrNotSignedIn = errors.New("not signed in")

// Session owns the bearer credential for one user. Only Restore, Login and
// Logout change it; every request made through Client reads it.
type Session struct {
	base  *api.Client
	store Store
	log   logrus.FieldLogger

	mu     sync.RWMutex
	client *api.Client
	user   *api.User
}

// NewSession binds a session to the backend client and a credential store.
// base is never mutated; the session works on its own copy.
func NewSession(base *api.Client, store Store, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{base: base, store: store, log: log, client: base.WithToken("")}
}

// Restore reloads a stored credential and validates it against /auth/me.
// A credential the backend rejects, or that cannot be checked, is cleared
// without surfacing an error; the session simply stays signed out.
func (s *Session) Restore(ctx context.Context) *api.User {
	credential, err := s.store.Get()
	if err != nil {
		s.log.WithError(err).Debug("reading stored credential")
		return nil
	}
	if credential == "" {
		return nil
	}

	user, err := s.base.WithToken(credential).Me(ctx)
	if err != nil {
		s.log.WithError(err).Debug("stored credential rejected, clearing")
		if cerr := s.store.Clear(); cerr != nil {
			s.log.WithError(cerr).Debug("clearing stored credential")
		}
		s.set("", nil)
		return nil
	}
	s.set(credential, user)
	return user
}

// Login adopts credential after the backend accepts it.
func (s *Session) Login(ctx context.Context, credential string) (*api.User, error) {
	if credential == "" {
		return nil, ErrNotSignedIn
	}
	user, err := s.base.WithToken(credential).Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("validating credential: %w", err)
	}
	if err := s.store.Set(credential); err != nil {
		return nil, fmt.Errorf("storing credential: %w", err)
	}
	s.set(credential, user)
	return user, nil
}

// Logout forgets the credential locally and in the store.
func (s *Session) Logout() error {
	s.set("", nil)
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	return nil
}

func (s *Session) set(credential string, user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = s.base.WithToken(credential)
	s.user = user
}

// User returns the signed-in user, or nil.
func (s *Session) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) SignedIn() bool { return s.User() != nil }

// Client returns the backend client carrying the current credential.
func (s *Session) Client() *api.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}
