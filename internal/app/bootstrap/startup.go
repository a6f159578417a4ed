// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/app/resources"
	"github.com/emperjs/shopfront/internal/app/system/flash"
	"github.com/emperjs/shopfront/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after backends are
// built, but before the HTTP handler is. Shared templates are registered
// here so the engine boot in BuildHandler sees every set.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Backends, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n))
	}

	key, err := flashKey(coreCfg, appCfg)
	if err != nil {
		return err
	}
	flash.Init(appCfg.FlashName, key, coreCfg.Env == "prod")
	return nil
}

// flashKey resolves the flash cookie signing key. A blank key gets a
// per-process random key in dev; ValidateConfig rejects blank in prod,
// where restarts must not invalidate in-flight notices.
func flashKey(coreCfg *config.CoreConfig, appCfg AppConfig) ([]byte, error) {
	if appCfg.FlashKey != "" {
		return []byte(appCfg.FlashKey), nil
	}
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return nil, fmt.Errorf("generate flash key: no entropy available")
	}
	return key, nil
}
