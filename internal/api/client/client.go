// Package client provides the shared HTTP plumbing for the remote
// storefront API. Resource-specific packages (authapi, usersapi,
// sellerapi, shopapi) build on it.
//
// The remote API authenticates with browser cookies, so every outbound
// request carries the Cookie header copied from the incoming request.
// Handlers extract credentials once per request with CredentialsFrom and
// pass them to client calls alongside the request context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Credentials is the raw Cookie header forwarded to the remote API.
// Empty credentials are valid and represent an anonymous caller.
type Credentials string

// CredentialsFrom captures the caller's cookies from an incoming request.
func CredentialsFrom(r *http.Request) Credentials {
	return Credentials(r.Header.Get("Cookie"))
}

// Client issues JSON requests against a single API origin.
type Client struct {
	origin string
	http   *http.Client
	log    *zap.Logger
}

// New constructs a Client for the given API origin (scheme://host[:port],
// no trailing slash required).
func New(origin string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		origin: strings.TrimSuffix(origin, "/"),
		http:   &http.Client{Timeout: timeout},
		log:    logger,
	}
}

// Origin returns the configured API origin.
func (c *Client) Origin() string { return c.origin }

// URL joins the origin with a path and optional query values.
func (c *Client) URL(path string, q url.Values) string {
	u := c.origin + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// GetJSON issues a credentialed GET and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, creds Credentials, path string, q url.Values, out any) error {
	return c.do(ctx, creds, http.MethodGet, path, q, nil, "", out)
}

// DeleteJSON issues a credentialed DELETE and decodes the JSON body into out.
func (c *Client) DeleteJSON(ctx context.Context, creds Credentials, path string, q url.Values, out any) error {
	return c.do(ctx, creds, http.MethodDelete, path, q, nil, "", out)
}

// SendJSON issues a credentialed request with a JSON body (POST, PUT,
// PATCH) and decodes the JSON response into out. A nil body sends no
// payload; a nil out discards the response body.
func (c *Client) SendJSON(ctx context.Context, creds Credentials, method, path string, q url.Values, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(buf)
	}
	return c.do(ctx, creds, method, path, q, rd, "application/json", out)
}

// UploadJSON issues a credentialed multipart POST with a single file field
// and decodes the JSON response into out.
func (c *Client) UploadJSON(ctx context.Context, creds Credentials, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return c.do(ctx, creds, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, creds Credentials, method, path string, q url.Values, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path, q), body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if creds != "" {
		req.Header.Set("Cookie", string(creds))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if c.log != nil {
			c.log.Warn("api response decode failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Error(err))
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
