// Package session replaces the old ad hoc browser-storage auth flag with an
// explicit server-side session: defined init on login, defined teardown on
// logout or expiry.
package session

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// Session is one authenticated admin session.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager issues and validates sessions against the configured admin
// credentials. Safe for concurrent use.
type Manager struct {
	email    string
	password string
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewManager creates a session manager for the single configured admin user.
func NewManager(email, password string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		email:    email,
		password: password,
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Login validates the credentials and opens a new session.
func (m *Manager) Login(email, password string) (*Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(m.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	if !emailOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := &Session{
		Token:     uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	m.sessions[s.Token] = s
	return s, nil
}

// Validate returns the session for a token, expiring it lazily.
func (m *Manager) Validate(token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		return nil, ErrNotAuthenticated
	}
	return s, nil
}

// Logout tears down a session. Unknown tokens are a no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
