// Package session holds the client's authentication state: the stored
// bearer token, the claims decoded from it, and the role enum used for
// screen gating.
//
// The session is an explicit object with a single mutation point. Components
// that care about login state subscribe for change events instead of reading
// ambient global state.
package session

import (
	"sync"

	"github.com/powertrack/powertrack/internal/errors"
)

// Event describes a session state change delivered to subscribers.
type Event int

const (
	// EventLogin is sent after a token has been stored and decoded.
	EventLogin Event = iota
	// EventLogout is sent after the token has been cleared, whether by an
	// explicit logout or a forced teardown on an auth failure.
	EventLogout
)

// Session is the client's authentication state. All mutation goes through
// Login and Logout. Safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	store  *Store
	token  string
	claims *Claims
	subs   []func(Event)
}

// New creates a Session backed by store, loading any previously stored
// token. A stored token that fails to decode still counts as authenticated
// (presence only); the backend will reject it on first use and force a
// logout through the usual path.
func New(store *Store) *Session {
	s := &Session{store: store}
	if token, err := store.Token(); err == nil {
		s.token = token
		s.claims, _ = Decode(token)
	}
	return s
}

// Subscribe registers fn to be called after every session state change.
// Subscribers are invoked synchronously from the mutating call, outside the
// session lock.
func (s *Session) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Login stores the token, decodes its claims, and notifies subscribers.
// A token without a usable role claim is rejected and nothing is stored.
func (s *Session) Login(token string) error {
	claims, ok := Decode(token)
	if !ok {
		return errors.ErrTokenMalformed
	}
	if err := s.store.SetToken(token); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.claims = claims
	subs := append([]func(Event){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(EventLogin)
	}
	return nil
}

// Logout clears the token and notifies subscribers. This is the explicit
// session-teardown function; it is also invoked by the API client when the
// backend rejects the token.
func (s *Session) Logout() error {
	err := s.store.Clear()

	s.mu.Lock()
	s.token = ""
	s.claims = nil
	subs := append([]func(Event){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(EventLogout)
	}
	return err
}

// Token returns the current bearer token, or ErrNoToken when logged out.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", errors.ErrNoToken
	}
	return s.token, nil
}

// IsAuthenticated reports token presence only. It does not verify the
// signature or expiry; those are server-enforced.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// CurrentRole returns the decoded role, or false when logged out or when
// the token's role claim was unusable.
func (s *Session) CurrentRole() (Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return "", false
	}
	return ParseRole(s.claims.Role)
}

// CurrentUserID returns the subject claim, or "" when unavailable.
func (s *Session) CurrentUserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.claims == nil {
		return ""
	}
	return s.claims.UserID()
}
