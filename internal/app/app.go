// Package app owns session state at the application level: it runs the
// one-time bootstrap at startup and tracks the verified current user for
// frontends.
package app

import (
	"context"
	"sync"

	"github.com/stockai/stockai-go/config"
	"github.com/stockai/stockai-go/internal/session"
	"github.com/stockai/stockai-go/models"
	"github.com/stockai/stockai-go/observability"
)

// AuthClient defines the client operations App needs, as an interface for
// testability.
type AuthClient interface {
	Signup(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout()
	Me(ctx context.Context) (*models.User, error)
	UpdatePassword(ctx context.Context, newPassword string) (string, error)
}

// App holds the application-level session state
type App struct {
	cfg    *config.Config
	store  *session.Store
	client AuthClient

	mu      sync.RWMutex
	current *models.User
}

// New creates a new App
func New(cfg *config.Config, store *session.Store, client AuthClient) *App {
	return &App{
		cfg:    cfg,
		store:  store,
		client: client,
	}
}

// Startup verifies any stored session, once, at application start. With a
// stored token and cached user the profile is re-verified against the
// backend; a rejection clears all local session state as if the user had
// logged out. Without a token the app starts unauthenticated and no backend
// call is made.
func (a *App) Startup(ctx context.Context) error {
	token := a.store.Token()
	cached := a.store.User()

	if token == "" || cached == nil {
		return nil
	}

	user, err := a.client.Me(ctx)
	if err != nil {
		observability.Info("stored session rejected, logging out", "error", err)
		observability.GetMetrics().RecordSessionEvent("expired")
		a.client.Logout()
		a.setCurrent(nil)
		return nil
	}

	a.setCurrent(user)
	return nil
}

// Login authenticates and adopts the returned profile as the current user.
func (a *App) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	a.setCurrent(&resp.User)
	return &resp.User, nil
}

// Signup registers an account and adopts the returned profile as the current
// user.
func (a *App) Signup(ctx context.Context, email, password, fullName string) (*models.User, error) {
	resp, err := a.client.Signup(ctx, email, password, fullName)
	if err != nil {
		return nil, err
	}
	a.setCurrent(&resp.User)
	return &resp.User, nil
}

// Logout ends the session locally. Never fails.
func (a *App) Logout() {
	a.client.Logout()
	a.setCurrent(nil)
}

// UpdatePassword changes the current user's password.
func (a *App) UpdatePassword(ctx context.Context, newPassword string) (string, error) {
	return a.client.UpdatePassword(ctx, newPassword)
}

// CurrentUser returns the verified current user, or nil when the session is
// unauthenticated.
func (a *App) CurrentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil
	}
	user := *a.current
	return &user
}

// IsAuthenticated reports whether a verified user is present.
func (a *App) IsAuthenticated() bool {
	return a.CurrentUser() != nil
}

func (a *App) setCurrent(user *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = user
}
