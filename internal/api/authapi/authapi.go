// Package authapi talks to the remote auth service: session lookup,
// logout, and the provider login redirect URLs.
package authapi

import (
	"context"
	"net/url"

	"github.com/emperjs/shopfront/internal/api/client"
)

// Providers the auth service can start a login with.
const (
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
)

// Session mirrors the auth service's session record. Authenticated false
// means the remaining fields are absent.
type Session struct {
	Authenticated bool     `json:"authenticated"`
	UserID        string   `json:"userId,omitempty"`
	Roles         []string `json:"roles,omitempty"`
	Provider      string   `json:"provider,omitempty"`
	DisplayName   string   `json:"displayName,omitempty"`
	Email         string   `json:"email,omitempty"`
}

// Anonymous is the degraded session used when the lookup fails.
func Anonymous() Session { return Session{Authenticated: false} }

type Client struct {
	core *client.Client
}

func New(core *client.Client) *Client {
	return &Client{core: core}
}

// Session fetches the caller's session. Callers decide how to degrade on
// error; this function never invents a session.
func (c *Client) Session(ctx context.Context, creds client.Credentials) (Session, error) {
	var s Session
	if err := c.core.GetJSON(ctx, creds, "/auth/session", nil, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Logout ends the remote session. The auth service clears its cookie via
// Set-Cookie on the proxied response path, so there is nothing to decode.
func (c *Client) Logout(ctx context.Context, creds client.Credentials) error {
	return c.core.SendJSON(ctx, creds, "POST", "/auth/logout", nil, nil, nil)
}

// LoginStartURL builds the provider redirect target. returnTo is where the
// auth service sends the browser after the OAuth dance completes.
func (c *Client) LoginStartURL(provider, returnTo string) string {
	q := url.Values{}
	if returnTo != "" {
		q.Set("returnTo", returnTo)
	}
	return c.core.URL("/auth/"+provider+"/start", q)
}
