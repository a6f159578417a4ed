// internal/app/bootstrap/backends.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/emperjs/shopfront/internal/api/authapi"
	"github.com/emperjs/shopfront/internal/api/client"
	"github.com/emperjs/shopfront/internal/api/sellerapi"
	"github.com/emperjs/shopfront/internal/api/shopapi"
	"github.com/emperjs/shopfront/internal/api/usersapi"
	"github.com/emperjs/shopfront/internal/app/session"
)

// Backends holds the remote-API clients the app renders from. The app
// keeps no database of its own: everything is fetched from the backing
// API per request with the browser's credentials.
type Backends struct {
	API    *client.Client
	Auth   *authapi.Client
	Users  *usersapi.Client
	Seller *sellerapi.Client
	Shop   *shopapi.Client

	Sessions *session.Store
}

// ConnectBackends builds the shared HTTP client for the backing API and
// the typed clients layered over it. It fills WAFFLE's ConnectDB slot;
// there is no connection to establish up front, so this cannot fail once
// the config has validated.
func ConnectBackends(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Backends, error) {
	core := client.New(appCfg.APIOrigin, appCfg.APITimeout, logger)

	auth := authapi.New(core)
	return Backends{
		API:      core,
		Auth:     auth,
		Users:    usersapi.New(core),
		Seller:   sellerapi.New(core),
		Shop:     shopapi.New(core),
		Sessions: session.NewStore(auth, logger),
	}, nil
}

// EnsureReady fills WAFFLE's EnsureSchema slot. Schema belongs to the
// backing API; nothing to set up locally.
func EnsureReady(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Backends, logger *zap.Logger) error {
	return nil
}
