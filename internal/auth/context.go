// Package auth holds the process-wide authentication state: the cached user
// and the explicit lifecycle around it. All writes go through Login, Logout,
// and UpdateUser; everything else reads.
package auth

import (
	"context"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/log"
	"github.com/melmoskitchen/pantry/internal/session"
)

// Context is the authentication state for the running process.
type Context struct {
	client *api.Client
	store  session.Store
	logger *log.Logger

	// clearTenantOnLogout forgets the workspace on logout. Off by default:
	// the workspace stays sticky so the picker can be skipped next login.
	clearTenantOnLogout bool

	user *api.User
}

// Option configures a Context.
type Option func(*Context)

// WithClearTenantOnLogout makes Logout also forget the persisted workspace.
func WithClearTenantOnLogout() Option {
	return func(c *Context) {
		c.clearTenantOnLogout = true
	}
}

// NewContext creates an authentication context over the given client and
// session store.
func NewContext(client *api.Client, store session.Store, opts ...Option) *Context {
	c := &Context{
		client: client,
		store:  store,
		logger: log.DefaultLogger().With("component", "auth"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for a token, persists the token, and caches the
// returned user. Backend errors propagate unchanged so the caller can show
// the server's message inline.
func (c *Context) Login(ctx context.Context, creds api.Credentials) error {
	resp, err := c.client.Login(ctx, creds)
	if err != nil {
		return err
	}

	if err := c.store.SetToken(resp.Token); err != nil {
		return err
	}

	c.user = &resp.User
	c.logger.Info("logged in", "username", resp.User.Username, "role", resp.User.Role)
	return nil
}

// Logout clears the persisted token and the cached user. The workspace id is
// left in place unless configured otherwise.
func (c *Context) Logout() error {
	if err := c.store.ClearToken(); err != nil {
		return err
	}

	if c.clearTenantOnLogout {
		if err := c.store.ClearTenantID(); err != nil {
			return err
		}
	}

	c.user = nil
	c.logger.Info("logged out")
	return nil
}

// UpdateUser replaces the cached user with the server-confirmed
// representation. Never called optimistically.
func (c *Context) UpdateUser(user *api.User) {
	c.user = user
}

// CurrentUser returns the cached user, or nil before hydration.
func (c *Context) CurrentUser() *api.User {
	return c.user
}

// Authenticated reports whether a token is persisted. Token validity is not
// checked here; the backend is the enforcement boundary.
func (c *Context) Authenticated() bool {
	return c.store.Token() != ""
}

// Hydrate fills the cached user from the persisted token via the backend
// profile endpoint. A failure leaves the context unauthenticated in memory
// without touching the persisted session; the next API call surfaces the
// actual error.
func (c *Context) Hydrate(ctx context.Context) error {
	if !c.Authenticated() {
		return nil
	}

	user, err := c.client.Profile(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("hydrate failed")
		return err
	}

	c.user = user
	return nil
}
