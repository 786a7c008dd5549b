package backend

import (
	"context"
	"net/http"

	"github.com/agencydesk/go-dealer-admin/session"
)

var _ session.API = (*Client)(nil)

func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var sess session.Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password-request", nil, body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password", nil, body, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, name, email string) (session.User, error) {
	body := map[string]string{"name": name, "email": email}
	var user session.User
	if err := c.do(ctx, http.MethodPut, "/api/auth/profile", nil, body, &user); err != nil {
		return session.User{}, err
	}
	return user, nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{"current_password": currentPassword, "new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/api/auth/change-password", nil, body, nil)
}
