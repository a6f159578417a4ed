// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging, CORS). AppConfig is everything specific to the shopfront:
// where the backing API lives, cookie names and keys, and the public
// base URL used when building absolute links.
type AppConfig struct {
	// Backing API configuration. Every page in the app is rendered from
	// data fetched over this origin; the browser's session cookie is
	// forwarded on each call.
	APIOrigin  string        // e.g. "http://localhost:8080"
	APITimeout time.Duration // per-request ceiling for API calls

	// Session cookie name. The session itself lives in the backing API;
	// session.Load skips the auth roundtrip for requests that do not
	// carry this cookie. Blank means always ask.
	SessionName string

	// Flash message cookie configuration.
	FlashName string // cookie name for one-shot notices
	FlashKey  string // signing key; generated per process in dev when blank

	// CSRF protection key for form posts. Must be 32 bytes of entropy in
	// production.
	CSRFKey string

	// Base URL for redirect targets handed to the auth API
	// (e.g. "https://shop.emper.example").
	BaseURL string
}
