package session_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
	"github.com/agencydesk/go-dealer-admin/session"
)

type fakeAPI struct {
	loginSession session.Session
	loginErr     error

	updatedUser       session.User
	updateErr         error
	changePasswordErr error

	resetRequests []string
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (session.Session, error) {
	if f.loginErr != nil {
		return session.Session{}, f.loginErr
	}
	return f.loginSession, nil
}

func (f *fakeAPI) RequestPasswordReset(ctx context.Context, email string) error {
	f.resetRequests = append(f.resetRequests, email)
	return nil
}

func (f *fakeAPI) ResetPassword(ctx context.Context, token, newPassword string) error {
	return nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, name, email string) (session.User, error) {
	if f.updateErr != nil {
		return session.User{}, f.updateErr
	}
	return f.updatedUser, nil
}

func (f *fakeAPI) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return f.changePasswordErr
}

type fakeStateStore struct {
	token string
	user  session.User
	saved bool
}

func (f *fakeStateStore) SavedSession() (string, session.User, bool) {
	return f.token, f.user, f.saved
}

func (f *fakeStateStore) SaveSession(token string, user session.User) error {
	f.token = token
	f.user = user
	f.saved = true
	return nil
}

func (f *fakeStateStore) ClearSession() error {
	f.token = ""
	f.user = session.User{}
	f.saved = false
	return nil
}

func TestStore_Login(t *testing.T) {
	user := session.User{ID: "u1", Email: "owner@example.com", Name: "Owner"}

	t.Run("success stores and persists the session", func(t *testing.T) {
		api := &fakeAPI{loginSession: session.Session{Token: "jwt-token", User: user}}
		state := &fakeStateStore{}
		store := session.NewStore(api, state, zerolog.Nop())

		var events []bool
		store.Subscribe(func(loggedIn bool) { events = append(events, loggedIn) })

		require.NoError(t, store.Login(context.Background(), "owner@example.com", "secret"))
		require.True(t, store.Authenticated())
		require.Equal(t, "jwt-token", store.Token())

		current, ok := store.CurrentUser()
		require.True(t, ok)
		require.Equal(t, user, current)

		require.True(t, state.saved)
		require.Equal(t, "jwt-token", state.token)
		require.Equal(t, []bool{true}, events)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		api := &fakeAPI{loginErr: &apperrors.StatusError{Status: 401, Detail: "Invalid credentials"}}
		store := session.NewStore(api, &fakeStateStore{}, zerolog.Nop())

		err := store.Login(context.Background(), "owner@example.com", "wrong")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		require.False(t, store.Authenticated())
	})
}

func TestStore_Logout(t *testing.T) {
	user := session.User{ID: "u1", Email: "owner@example.com"}
	api := &fakeAPI{loginSession: session.Session{Token: "jwt-token", User: user}}
	state := &fakeStateStore{}
	store := session.NewStore(api, state, zerolog.Nop())
	require.NoError(t, store.Login(context.Background(), "owner@example.com", "secret"))

	var events []bool
	store.Subscribe(func(loggedIn bool) { events = append(events, loggedIn) })

	store.Logout()

	require.False(t, store.Authenticated())
	require.Empty(t, store.Token())
	require.False(t, state.saved)
	require.Equal(t, []bool{false}, events)
}

func TestStore_RestoresPersistedSession(t *testing.T) {
	user := session.User{ID: "u1", Email: "owner@example.com"}
	state := &fakeStateStore{token: "persisted-token", user: user, saved: true}

	store := session.NewStore(&fakeAPI{}, state, zerolog.Nop())

	require.True(t, store.Authenticated())
	require.Equal(t, "persisted-token", store.Token())
	current, ok := store.CurrentUser()
	require.True(t, ok)
	require.Equal(t, user, current)
}

func TestStore_UpdateProfile(t *testing.T) {
	user := session.User{ID: "u1", Email: "owner@example.com", Name: "Owner"}
	updated := session.User{ID: "u1", Email: "new@example.com", Name: "New Name"}

	t.Run("replaces the stored user", func(t *testing.T) {
		api := &fakeAPI{
			loginSession: session.Session{Token: "jwt-token", User: user},
			updatedUser:  updated,
		}
		state := &fakeStateStore{}
		store := session.NewStore(api, state, zerolog.Nop())
		require.NoError(t, store.Login(context.Background(), "owner@example.com", "secret"))

		require.NoError(t, store.UpdateProfile(context.Background(), "New Name", "new@example.com"))

		current, ok := store.CurrentUser()
		require.True(t, ok)
		require.Equal(t, updated, current)
		require.Equal(t, updated, state.user)
	})

	t.Run("requires a session", func(t *testing.T) {
		store := session.NewStore(&fakeAPI{}, &fakeStateStore{}, zerolog.Nop())

		err := store.UpdateProfile(context.Background(), "Name", "email@example.com")
		require.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestStore_RequestPasswordReset(t *testing.T) {
	api := &fakeAPI{}
	store := session.NewStore(api, &fakeStateStore{}, zerolog.Nop())

	require.NoError(t, store.RequestPasswordReset(context.Background(), "owner@example.com"))
	require.Equal(t, []string{"owner@example.com"}, api.resetRequests)
}
