// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the shopfront.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_origin, session_name, etc.
//   - Environment variables: SHOPFRONT_API_ORIGIN, SHOPFRONT_SESSION_NAME, etc.
//   - Command-line flags: --api_origin, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_origin", Default: "http://localhost:8080", Desc: "Origin of the backing shop API"},
	{Name: "api_timeout", Default: "30s", Desc: "Per-request timeout for API calls (e.g. 10s, 1m)"},

	{Name: "session_name", Default: "emper-session", Desc: "Session cookie name shared with the auth API (blank disables the cookie-presence shortcut)"},

	{Name: "flash_name", Default: "emper-flash", Desc: "Flash notice cookie name"},
	{Name: "flash_key", Default: "", Desc: "Flash cookie signing key (generated per process in dev when blank)"},

	{Name: "csrf_key", Default: "", Desc: "CSRF signing key, 32 bytes (required in prod)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL of this app"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config
// files, environment variables (WAFFLE_* for core, SHOPFRONT_* for app),
// and command-line flags, merged with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SHOPFRONT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIOrigin:  appValues.String("api_origin"),
		APITimeout: appValues.Duration("api_timeout", 30*time.Second),

		SessionName: appValues.String("session_name"),

		FlashName: appValues.String("flash_name"),
		FlashKey:  appValues.String("flash_key"),

		CSRFKey: appValues.String("csrf_key"),

		BaseURL: appValues.String("base_url"),
	}
	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The API origin must be an absolute http(s) URL; a bad value here would
// otherwise surface as a confusing failure on the first page load. Keys
// that are allowed to default in dev are required in prod.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.APIOrigin)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("api_origin must be an absolute http(s) URL, got %q", appCfg.APIOrigin)
	}

	if coreCfg.Env == "prod" {
		if len(appCfg.CSRFKey) < 32 {
			return fmt.Errorf("csrf_key must be at least 32 bytes in prod")
		}
		if appCfg.FlashKey == "" {
			return fmt.Errorf("flash_key is required in prod")
		}
	}

	if appCfg.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive, got %s", appCfg.APITimeout)
	}
	return nil
}
