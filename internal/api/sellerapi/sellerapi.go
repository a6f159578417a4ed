// Package sellerapi covers the seller-profile endpoints: the profile
// itself, its members, access requests, invites, ownership transfer, and
// the profile-scoped email provider connection.
//
// Most operations address a profile by Selector (id or slug); request and
// invite mutations address the record by its own id.
package sellerapi

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	"github.com/emperjs/shopfront/internal/app/system/normalize"
)

// ErrEmptySelector is returned before any request is made when a selector
// carries neither an id nor a slug.
var ErrEmptySelector = errors.New("seller profile selector requires id or slug")

// Selector addresses a profile by id or slug. When both are set, both are
// sent and the server decides precedence.
type Selector struct {
	ID   string
	Slug string
}

func (s Selector) values() (url.Values, error) {
	vals := url.Values{}
	if id := normalize.Name(s.ID); id != "" {
		vals.Set("id", id)
	}
	if slug := normalize.Selector(s.Slug); slug != "" {
		vals.Set("slug", slug)
	}
	if len(vals) == 0 {
		return nil, ErrEmptySelector
	}
	return vals, nil
}

// Profile is the seller profile record.
type Profile struct {
	ID              string `json:"id"`
	TeamID          string `json:"teamId"`
	Slug            string `json:"slug"`
	DisplayName     string `json:"displayName"`
	Status          string `json:"status"`
	GrantedByUserID string `json:"grantedByUserId"`
	GrantedAt       int64  `json:"grantedAt"`
	Visibility      struct {
		IsContactEmailPublic bool `json:"isContactEmailPublic"`
		IsPhonePublic        bool `json:"isPhonePublic"`
		IsMemberListPublic   bool `json:"isMemberListPublic"`
	} `json:"visibility"`
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// ProfilePatch carries the editable identity fields. Nil means unchanged.
type ProfilePatch struct {
	Slug               *string `json:"slug,omitempty"`
	DisplayName        *string `json:"displayName,omitempty"`
	Status             *string `json:"status,omitempty"`
	IsMemberListPublic *bool   `json:"isMemberListPublic,omitempty"`
}

// Member is a profile membership row.
type Member struct {
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// Request is a seller-profile access request. Status is one of pending,
// approved, rejected, cancelled, expired.
type Request struct {
	ID                   string `json:"id"`
	RequesterUserID      string `json:"requester_user_id"`
	RequestedSlug        string `json:"requested_slug"`
	RequestedDisplayName string `json:"requested_display_name"`
	RequestNote          string `json:"request_note"`
	Status               string `json:"status"`
	ReviewedByUserID     string `json:"reviewed_by_user_id"`
	ReviewedAt           int64  `json:"reviewed_at"`
	CreatedAt            int64  `json:"created_at"`
	UpdatedAt            int64  `json:"updated_at"`
	ExpiresAt            int64  `json:"expires_at"`
}

// RequestStatuses are the filterable request states, in display order.
var RequestStatuses = []string{"pending", "approved", "rejected", "cancelled", "expired"}

// Invite is a pending or resolved membership invite.
type Invite struct {
	ID               string `json:"id"`
	SellerProfileID  string `json:"seller_profile_id"`
	InvitedEmail     string `json:"invited_email"`
	Role             string `json:"role"`
	InvitedByUserID  string `json:"invited_by_user_id"`
	AcceptedByUserID string `json:"accepted_by_user_id"`
	Status           string `json:"status"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
	ExpiresAt        int64  `json:"expires_at"`
	AcceptedAt       int64  `json:"accepted_at"`
	RevokedAt        int64  `json:"revoked_at"`
}

// InviteResult reports how an invite landed: accepted on the spot for an
// existing member account, or delivery queued (skipped when no email
// provider is connected).
type InviteResult struct {
	Invite              Invite `json:"invite"`
	AcceptedImmediately bool   `json:"acceptedImmediately"`
	Delivery            string `json:"delivery"`
}

// Transfer is an ownership transfer awaiting the target's confirmation.
type Transfer struct {
	ID              string `json:"id"`
	SellerProfileID string `json:"sellerProfileId"`
	TargetUserID    string `json:"targetUserId"`
	Status          string `json:"status"`
	CreatedAt       int64  `json:"createdAt"`
	ExpiresAt       int64  `json:"expiresAt"`
}

// TransferResult pairs the transfer with its notification delivery state.
type TransferResult struct {
	Transfer Transfer `json:"transfer"`
	Delivery string   `json:"delivery"`
}

// RequestReview is the outcome of an approve, reject, or cancel action.
// SellerProfileID is set on approval, naming the profile that was created.
type RequestReview struct {
	Request         Request `json:"request"`
	SellerProfileID string  `json:"sellerProfileId"`
}

// RequestList is the envelope for the admin review list.
type RequestList struct {
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Total    int       `json:"total"`
	Requests []Request `json:"requests"`
}

type Client struct {
	core *client.Client
}

func New(core *client.Client) *Client {
	return &Client{core: core}
}

// Profile fetches a profile by selector.
func (c *Client) Profile(ctx context.Context, creds client.Credentials, sel Selector) (Profile, error) {
	vals, err := sel.values()
	if err != nil {
		return Profile{}, err
	}
	var out struct {
		Profile Profile `json:"profile"`
	}
	if err := c.core.GetJSON(ctx, creds, "/shop/seller-profile", vals, &out); err != nil {
		return Profile{}, err
	}
	return out.Profile, nil
}

// UpdateProfile patches identity fields and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, creds client.Credentials, sel Selector, patch ProfilePatch) (Profile, error) {
	vals, err := sel.values()
	if err != nil {
		return Profile{}, err
	}
	var out struct {
		Profile Profile `json:"profile"`
	}
	if err := c.core.SendJSON(ctx, creds, "PATCH", "/shop/seller-profile", vals, patch, &out); err != nil {
		return Profile{}, err
	}
	return out.Profile, nil
}

// Members lists the profile's membership.
func (c *Client) Members(ctx context.Context, creds client.Credentials, sel Selector) ([]Member, error) {
	vals, err := sel.values()
	if err != nil {
		return nil, err
	}
	var out struct {
		Members []Member `json:"members"`
	}
	if err := c.core.GetJSON(ctx, creds, "/shop/seller-profile/members", vals, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

// CreateRequest submits a new seller-profile access request.
func (c *Client) CreateRequest(ctx context.Context, creds client.Credentials, slug, displayName, note string) (Request, error) {
	body := struct {
		Slug        string `json:"slug"`
		DisplayName string `json:"displayName"`
		RequestNote string `json:"requestNote,omitempty"`
	}{Slug: normalize.Selector(slug), DisplayName: normalize.Name(displayName), RequestNote: note}

	var out struct {
		Request Request `json:"request"`
	}
	if err := c.core.SendJSON(ctx, creds, "POST", "/shop/seller-profile/request", nil, body, &out); err != nil {
		return Request{}, err
	}
	return out.Request, nil
}

// Requests lists access requests, optionally filtered by status.
func (c *Client) Requests(ctx context.Context, creds client.Credentials, status string, page, pageSize int) (RequestList, error) {
	vals := url.Values{}
	if s := normalize.Selector(status); s != "" {
		vals.Set("status", s)
	}
	if page > 0 {
		vals.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		vals.Set("pageSize", strconv.Itoa(pageSize))
	}
	var out RequestList
	if err := c.core.GetJSON(ctx, creds, "/shop/seller-profile/requests", vals, &out); err != nil {
		return RequestList{}, err
	}
	return out, nil
}

// ReviewRequest applies approve, reject, or cancel to a request by id.
func (c *Client) ReviewRequest(ctx context.Context, creds client.Credentials, requestID, action string) (RequestReview, error) {
	vals := url.Values{"id": {requestID}}
	body := struct {
		Action string `json:"action"`
	}{Action: action}

	var out RequestReview
	if err := c.core.SendJSON(ctx, creds, "PATCH", "/shop/seller-profile/request", vals, body, &out); err != nil {
		return RequestReview{}, err
	}
	return out, nil
}

// Invites lists the profile's invites.
func (c *Client) Invites(ctx context.Context, creds client.Credentials, sel Selector) ([]Invite, error) {
	vals, err := sel.values()
	if err != nil {
		return nil, err
	}
	var out struct {
		Invites []Invite `json:"invites"`
	}
	if err := c.core.GetJSON(ctx, creds, "/shop/seller-profile/invites", vals, &out); err != nil {
		return nil, err
	}
	return out.Invites, nil
}

// CreateInvite invites an email address into the profile as admin or
// member.
func (c *Client) CreateInvite(ctx context.Context, creds client.Credentials, sel Selector, email, role string) (InviteResult, error) {
	vals, err := sel.values()
	if err != nil {
		return InviteResult{}, err
	}
	body := struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}{Email: normalize.Email(email), Role: role}

	var out InviteResult
	if err := c.core.SendJSON(ctx, creds, "POST", "/shop/seller-profile/invite", vals, body, &out); err != nil {
		return InviteResult{}, err
	}
	return out, nil
}

// RevokeInvite cancels a pending invite by id.
func (c *Client) RevokeInvite(ctx context.Context, creds client.Credentials, inviteID string) (Invite, error) {
	vals := url.Values{"id": {inviteID}}
	var out struct {
		Invite Invite `json:"invite"`
	}
	if err := c.core.DeleteJSON(ctx, creds, "/shop/seller-profile/invite", vals, &out); err != nil {
		return Invite{}, err
	}
	return out.Invite, nil
}

// StartOwnershipTransfer begins moving the profile to another member.
func (c *Client) StartOwnershipTransfer(ctx context.Context, creds client.Credentials, sel Selector, targetUserID string) (TransferResult, error) {
	vals, err := sel.values()
	if err != nil {
		return TransferResult{}, err
	}
	body := struct {
		TargetUserID string `json:"targetUserId"`
	}{TargetUserID: targetUserID}

	var out TransferResult
	if err := c.core.SendJSON(ctx, creds, "POST", "/shop/seller-profile/ownership-transfer", vals, body, &out); err != nil {
		return TransferResult{}, err
	}
	return out, nil
}

// EmailProvider fetches the profile-scoped connection. Nil with nil error
// means none is configured.
func (c *Client) EmailProvider(ctx context.Context, creds client.Credentials, sel Selector) (*usersapi.Connection, error) {
	vals, err := sel.values()
	if err != nil {
		return nil, err
	}
	var out struct {
		Connection *usersapi.Connection `json:"connection"`
	}
	if err := c.core.GetJSON(ctx, creds, "/shop/seller-profile/email-provider", vals, &out); err != nil {
		return nil, err
	}
	return out.Connection, nil
}

// UpsertEmailProvider creates or replaces the profile's connection.
func (c *Client) UpsertEmailProvider(ctx context.Context, creds client.Credentials, sel Selector, in usersapi.ConnectionInput) (usersapi.Connection, error) {
	vals, err := sel.values()
	if err != nil {
		return usersapi.Connection{}, err
	}
	var out struct {
		Connection usersapi.Connection `json:"connection"`
	}
	if err := c.core.SendJSON(ctx, creds, "PUT", "/shop/seller-profile/email-provider", vals, in, &out); err != nil {
		return usersapi.Connection{}, err
	}
	return out.Connection, nil
}

// DeleteEmailProvider removes the profile's connection.
func (c *Client) DeleteEmailProvider(ctx context.Context, creds client.Credentials, sel Selector) (bool, error) {
	vals, err := sel.values()
	if err != nil {
		return false, err
	}
	var out struct {
		Deleted bool `json:"deleted"`
	}
	if err := c.core.DeleteJSON(ctx, creds, "/shop/seller-profile/email-provider", vals, &out); err != nil {
		return false, err
	}
	return out.Deleted, nil
}
