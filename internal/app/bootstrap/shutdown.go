// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown tears down app resources. The API clients hold no persistent
// connections beyond the HTTP keep-alive pool, which dies with the
// process.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Backends, logger *zap.Logger) error {
	logger.Info("shopfront shutting down")
	return nil
}
