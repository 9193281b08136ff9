// Package session holds the client's login state and keeps it in durable
// storage so a restart resumes where the user left off.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/naveenspark/lottery-wheel/internal/storage"
)

// Storage keys.
const (
	KeyUsername = "username"
	KeyToken    = "token"
)

// ErrEmptyUsername is returned by Login when no username is given.
var ErrEmptyUsername = errors.New("session: username is required")

// Session is a snapshot of the login state.
type Session struct {
	LoggedIn bool
	Username string
	Token    string
}

// Store is the single owner of the session. It is created once by the
// application root and passed to whatever needs it.
type Store struct {
	storage storage.Storage

	mu    sync.RWMutex
	state Session
}

// New restores the session from s. A stored username means logged in; the
// token may be empty.
func New(s storage.Storage) (*Store, error) {
	st := &Store{storage: s}
	username, err := s.Get(KeyUsername)
	if err != nil {
		return nil, fmt.Errorf("session.New: %w", err)
	}
	if username == "" {
		return st, nil
	}
	token, err := s.Get(KeyToken)
	if err != nil {
		return nil, fmt.Errorf("session.New: %w", err)
	}
	st.state = Session{LoggedIn: true, Username: username, Token: token}
	return st, nil
}

// Login switches to the logged-in state and persists it. An empty token
// removes any token left over from an earlier login. The in-memory state only
// changes once storage is written; a failed write is rolled back.
func (s *Store) Login(username, token string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prevUsername, err := s.storage.Get(KeyUsername)
	if err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}
	if err := s.storage.Set(KeyUsername, username); err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}
	if token != "" {
		err = s.storage.Set(KeyToken, token)
	} else {
		err = s.storage.Remove(KeyToken)
	}
	if err != nil {
		if rbErr := s.restoreUsername(prevUsername); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		return fmt.Errorf("session.Login: %w", err)
	}

	s.state = Session{LoggedIn: true, Username: username, Token: token}
	return nil
}

func (s *Store) restoreUsername(prev string) error {
	if prev == "" {
		return s.storage.Remove(KeyUsername)
	}
	return s.storage.Set(KeyUsername, prev)
}

// Logout clears the session and both persisted entries.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Session{}
	var errs []error
	if err := s.storage.Remove(KeyUsername); err != nil {
		errs = append(errs, err)
	}
	if err := s.storage.Remove(KeyToken); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}
	return nil
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LoggedIn
}

func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Username
}

// Token returns the bearer token, or "" when there is none.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}
