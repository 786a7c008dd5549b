package session

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

// Store owns the bearer token and current user profile. It is the single
// writer for both; every other component reads through Token/CurrentUser.
type Store struct {
	api   API
	state StateStore
	log   zerolog.Logger

	lock    sync.RWMutex
	token   string
	user    User
	subs    map[int]func(loggedIn bool)
	nextSub int
}

// NewStore creates a session store. A previously persisted token is restored
// eagerly without validation; the first failed authenticated request
// downstream is what detects an expired token.
func NewStore(api API, state StateStore, log zerolog.Logger) *Store {
	s := &Store{
		api:   api,
		state: state,
		log:   log.With().Str("component", "session").Logger(),
		subs:  make(map[int]func(bool)),
	}
	if token, user, ok := state.SavedSession(); ok {
		s.token = token
		s.user = user
		s.log.Debug().Str("user", user.Email).Msg("restored persisted session")
	}
	return s
}

// Login exchanges credentials for a session. Invalid credentials surface as
// ErrInvalidCredentials; a request that never completed as ErrNetwork.
func (s *Store) Login(ctx context.Context, email, password string) error {
	sess, err := s.api.Login(ctx, email, password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthenticated) {
			return apperrors.ErrInvalidCredentials
		}
		return errors.Wrap(err, "[Login] backend login")
	}

	s.lock.Lock()
	s.token = sess.Token
	s.user = sess.User
	s.lock.Unlock()

	if err := s.state.SaveSession(sess.Token, sess.User); err != nil {
		s.log.Err(err).Msg("failed to persist session")
	}
	s.notify(true)
	return nil
}

// Logout clears the token and user synchronously. No server call is made;
// the token simply stops being attached to outbound requests.
func (s *Store) Logout() {
	s.lock.Lock()
	s.token = ""
	s.user = User{}
	s.lock.Unlock()

	if err := s.state.ClearSession(); err != nil {
		s.log.Err(err).Msg("failed to clear persisted session")
	}
	s.notify(false)
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.token
}

// CurrentUser returns the logged-in profile.
func (s *Store) CurrentUser() (User, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.user, s.token != ""
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Subscribe registers a login/logout observer and returns an unsubscribe
// function. Observers are invoked after the state change is visible.
func (s *Store) Subscribe(fn func(loggedIn bool)) func() {
	s.lock.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.lock.Unlock()

	return func() {
		s.lock.Lock()
		delete(s.subs, id)
		s.lock.Unlock()
	}
}

func (s *Store) notify(loggedIn bool) {
	s.lock.RLock()
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.lock.RUnlock()
	for _, fn := range fns {
		fn(loggedIn)
	}
}

// TokenClaims decodes the bearer token without verifying its signature,
// for display purposes only. Verification belongs to the backend.
func (s *Store) TokenClaims() (Claims, bool) {
	token := s.Token()
	if token == "" {
		return Claims{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}

	claims := Claims{}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, true
}

// UpdateProfile pushes a profile edit to the backend and replaces the stored
// user with the backend's response.
func (s *Store) UpdateProfile(ctx context.Context, name, email string) error {
	if !s.Authenticated() {
		return apperrors.ErrUnauthenticated
	}
	user, err := s.api.UpdateProfile(ctx, name, email)
	if err != nil {
		return errors.Wrap(err, "[UpdateProfile] backend update")
	}

	s.lock.Lock()
	s.user = user
	token := s.token
	s.lock.Unlock()

	if err := s.state.SaveSession(token, user); err != nil {
		s.log.Err(err).Msg("failed to persist updated profile")
	}
	return nil
}

// ChangePassword changes the logged-in user's password.
func (s *Store) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if !s.Authenticated() {
		return apperrors.ErrUnauthenticated
	}
	return s.api.ChangePassword(ctx, currentPassword, newPassword)
}

// RequestPasswordReset asks the backend to start a password reset.
func (s *Store) RequestPasswordReset(ctx context.Context, email string) error {
	return s.api.RequestPasswordReset(ctx, email)
}

// ResetPassword completes a password reset with the mailed token.
func (s *Store) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.api.ResetPassword(ctx, token, newPassword)
}
