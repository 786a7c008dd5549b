package session

import "context"

// API is the slice of the backend the session store depends on.
type API interface {
	// Login exchanges credentials for a bearer token and profile.
	Login(ctx context.Context, email, password string) (Session, error)

	// RequestPasswordReset asks the backend to mail a reset token.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword completes a reset started with RequestPasswordReset.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// UpdateProfile changes the logged-in user's name/email and returns
	// the resulting profile.
	UpdateProfile(ctx context.Context, name, email string) (User, error)

	// ChangePassword changes the logged-in user's password.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// StateStore persists the session across restarts. Implemented by the
// localstore package.
type StateStore interface {
	// SavedSession returns the previously persisted token and user, if any.
	SavedSession() (token string, user User, ok bool)

	// SaveSession persists the token and user.
	SaveSession(token string, user User) error

	// ClearSession removes any persisted session.
	ClearSession() error
}
