// Package usersapi covers the administration endpoints for user accounts:
// the filtered user list, role assignment, and the system-scoped email
// provider connection.
package usersapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
	"github.com/emperjs/shopfront/internal/app/system/paging"
)

// Record is a user row as the API returns it. is_active is a numeric flag
// on the wire.
type Record struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
	IsActive    int      `json:"is_active"`
}

// Active reports whether the account is enabled.
func (r Record) Active() bool { return r.IsActive != 0 }

// ListQuery selects and pages the user list. Set-valued fields are sent
// as canonical CSV; zero values are omitted from the query string.
type ListQuery struct {
	Name          string
	Email         string
	SellerProfile string
	Providers     []string
	Roles         []string
	Page          int
	PageSize      int
}

// ListPage is the envelope for GET /users. Filters carries the catalog of
// selectable provider and role values for the filter controls.
type ListPage struct {
	Page    paging.Page `json:"page"`
	Users   []Record    `json:"users"`
	Filters struct {
		EmailProviders []string `json:"emailProviders"`
		Roles          []string `json:"roles"`
	} `json:"filters"`
}

// Connection is an email provider connection record (system or
// seller-profile scoped; this package only touches the system scope).
type Connection struct {
	ID           string `json:"id"`
	ScopeType    string `json:"scope_type"`
	ScopeID      string `json:"scope_id"`
	Provider     string `json:"provider"`
	AccountEmail string `json:"account_email"`
	SenderEmail  string `json:"sender_email"`
	SenderName   string `json:"sender_name"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// ConnectionInput is the PUT body for upserting a provider connection.
type ConnectionInput struct {
	Provider     string `json:"provider"`
	AccountEmail string `json:"accountEmail,omitempty"`
	SenderEmail  string `json:"senderEmail,omitempty"`
	SenderName   string `json:"senderName,omitempty"`
	Status       string `json:"status,omitempty"`
}

type Client struct {
	core *client.Client
}

func New(core *client.Client) *Client {
	return &Client{core: core}
}

// List fetches a page of users matching the query.
func (c *Client) List(ctx context.Context, creds client.Credentials, q ListQuery) (ListPage, error) {
	vals, err := q.values()
	if err != nil {
		return ListPage{}, err
	}
	var page ListPage
	if err := c.core.GetJSON(ctx, creds, "/users", vals, &page); err != nil {
		return ListPage{}, err
	}
	return page, nil
}

func (q ListQuery) values() (url.Values, error) {
	vals := url.Values{}
	if v := normalize.Name(q.Name); v != "" {
		vals.Set("name", v)
	}
	if v := normalize.Email(q.Email); v != "" {
		vals.Set("email", v)
	}
	if v := normalize.Selector(q.SellerProfile); v != "" {
		vals.Set("seller_profile", v)
	}
	if csv := normalize.JoinCSV(q.Providers); csv != "" {
		vals.Set("email_providers", csv)
	}
	if csv := normalize.JoinCSV(q.Roles); csv != "" {
		vals.Set("roles", csv)
	}
	if q.Page != 0 {
		if q.Page < 1 {
			return nil, fmt.Errorf("page must be a positive integer, got %d", q.Page)
		}
		vals.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize != 0 {
		if q.PageSize < 1 {
			return nil, fmt.Errorf("pageSize must be a positive integer, got %d", q.PageSize)
		}
		vals.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return vals, nil
}

// SetRoles replaces the managed portion of a user's role assignments and
// returns the server's updated record. Roles outside the caller's
// management scope are merged server side.
func (c *Client) SetRoles(ctx context.Context, creds client.Credentials, userID string, roles []string) (Record, error) {
	body := struct {
		UserID string   `json:"userId"`
		Roles  []string `json:"roles"`
	}{UserID: userID, Roles: normalize.Selection(roles)}

	var out struct {
		User Record `json:"user"`
	}
	if err := c.core.SendJSON(ctx, creds, "PATCH", "/users/roles", nil, body, &out); err != nil {
		return Record{}, err
	}
	return out.User, nil
}

// SystemEmailProvider fetches the system-scoped connection. A nil result
// with nil error means none is configured.
func (c *Client) SystemEmailProvider(ctx context.Context, creds client.Credentials) (*Connection, error) {
	var out struct {
		Connection *Connection `json:"connection"`
	}
	if err := c.core.GetJSON(ctx, creds, "/admin/email-provider/system", nil, &out); err != nil {
		return nil, err
	}
	return out.Connection, nil
}

// UpsertSystemEmailProvider creates or replaces the system connection.
func (c *Client) UpsertSystemEmailProvider(ctx context.Context, creds client.Credentials, in ConnectionInput) (Connection, error) {
	var out struct {
		Connection Connection `json:"connection"`
	}
	if err := c.core.SendJSON(ctx, creds, "PUT", "/admin/email-provider/system", nil, in, &out); err != nil {
		return Connection{}, err
	}
	return out.Connection, nil
}

// DeleteSystemEmailProvider removes the system connection and reports
// whether one existed.
func (c *Client) DeleteSystemEmailProvider(ctx context.Context, creds client.Credentials) (bool, error) {
	var out struct {
		Deleted bool `json:"deleted"`
	}
	if err := c.core.DeleteJSON(ctx, creds, "/admin/email-provider/system", nil, &out); err != nil {
		return false, err
	}
	return out.Deleted, nil
}
