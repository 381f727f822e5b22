package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stockai/stockai-go/models"
	"github.com/stockai/stockai-go/observability"
)

// Signup registers a new account. On success the issued token and the new
// profile are persisted before the response is returned.
func (c *Client) Signup(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error) {
	payload := map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	}

	var resp models.AuthResponse
	if err := c.do(ctx, "signup", http.MethodPost, "/api/auth/signup", payload, &resp); err != nil {
		return nil, err
	}

	if err := c.session.SetSession(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	c.metrics.RecordSessionEvent("signup")
	return &resp, nil
}

// Login authenticates with email and password. On success the issued token
// and the profile are persisted before the response is returned.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp models.AuthResponse
	if err := c.do(ctx, "login", http.MethodPost, "/api/auth/login", payload, &resp); err != nil {
		return nil, err
	}

	if err := c.session.SetSession(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	c.metrics.RecordSessionEvent("login")
	return &resp, nil
}

// Logout clears the stored token and cached profile. It never fails: a
// persistence problem is logged and the in-memory session is dropped anyway.
func (c *Client) Logout() {
	if err := c.session.Clear(); err != nil {
		observability.Warn("failed to clear session file", "error", err)
	}
	c.metrics.RecordSessionEvent("logout")
}

// Me verifies the stored token against the backend and returns the verified
// profile, refreshing the local cache. A failure means the session must be
// treated as ended by the caller.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, "me", http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}

	if err := c.session.SetUser(resp.User); err != nil {
		observability.Warn("failed to refresh cached user", "error", err)
	}
	return &resp.User, nil
}

// UpdatePassword changes the current user's password. Requires a valid
// session.
func (c *Client) UpdatePassword(ctx context.Context, newPassword string) (string, error) {
	payload := map[string]string{"password": newPassword}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, "update_password", http.MethodPost, "/api/auth/update-password", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
