// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"

	adminusersfeature "github.com/emperjs/shopfront/internal/app/features/adminusers"
	errorsfeature "github.com/emperjs/shopfront/internal/app/features/errors"
	healthfeature "github.com/emperjs/shopfront/internal/app/features/health"
	homefeature "github.com/emperjs/shopfront/internal/app/features/home"
	loginfeature "github.com/emperjs/shopfront/internal/app/features/login"
	logoutfeature "github.com/emperjs/shopfront/internal/app/features/logout"
	productsfeature "github.com/emperjs/shopfront/internal/app/features/products"
	sellerprofilefeature "github.com/emperjs/shopfront/internal/app/features/sellerprofile"
	shopfeature "github.com/emperjs/shopfront/internal/app/features/shop"
	"github.com/emperjs/shopfront/internal/app/session"
	"github.com/emperjs/shopfront/internal/app/system/requestid"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, backend construction, and the
// Startup hook have completed. The template engine is booted here, after
// Startup has registered every template set, then feature routers are
// mounted with role gates applied at the mount point.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Backends, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	r.Use(requestid.Middleware)

	// Global session middleware: resolves the caller's session against
	// the auth API and caches it on the request context. Requests without
	// the session cookie skip the roundtrip.
	r.Use(session.Load(deps.Sessions, appCfg.SessionName))

	r.Use(csrf.Protect(csrfKey(coreCfg, appCfg, logger),
		csrf.Secure(coreCfg.Env == "prod"),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Auth, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	shopHandler := shopfeature.NewHandler(deps.Shop, errLog, logger)
	r.Mount("/shop", shopfeature.Routes(shopHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.Auth, appCfg.BaseURL, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(deps.Auth, deps.Sessions, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Product management for sellers
	productsHandler := productsfeature.NewHandler(deps.Shop, errLog, logger)
	r.With(session.RequireSignedIn, session.RequireRole("owner", "admin", "seller")).
		Mount("/products", productsfeature.Routes(productsHandler))

	// Seller profile workspace
	sellerHandler := sellerprofilefeature.NewHandler(deps.Seller, errLog, logger)
	r.With(session.RequireSignedIn, session.RequireRole("owner", "admin", "seller")).
		Mount("/seller", sellerprofilefeature.Routes(sellerHandler))

	// Admin console: seller-profile request review and user management
	adminHandler := adminusersfeature.NewHandler(deps.Users, deps.Seller, errLog, logger)
	r.With(session.RequireSignedIn, session.RequireRole("owner", "admin")).
		Mount("/admin", adminusersfeature.Routes(adminHandler))

	return r, nil
}

// csrfKey resolves the CSRF signing key, falling back to a per-process
// random key in dev. ValidateConfig guarantees a real key in prod.
func csrfKey(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) []byte {
	if appCfg.CSRFKey != "" {
		return []byte(appCfg.CSRFKey)
	}
	logger.Warn("csrf_key not set, using per-process random key")
	return securecookie.GenerateRandomKey(32)
}
