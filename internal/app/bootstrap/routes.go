// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	apidocsfeature "github.com/dalemusser/liftadmin/internal/app/features/apidocs"
	_ "github.com/dalemusser/liftadmin/internal/app/features/apidocs/views"
	categoriesfeature "github.com/dalemusser/liftadmin/internal/app/features/categories"
	_ "github.com/dalemusser/liftadmin/internal/app/features/categories/views"
	dashboardfeature "github.com/dalemusser/liftadmin/internal/app/features/dashboard"
	_ "github.com/dalemusser/liftadmin/internal/app/features/dashboard/views"
	errorsfeature "github.com/dalemusser/liftadmin/internal/app/features/errors"
	healthfeature "github.com/dalemusser/liftadmin/internal/app/features/health"
	partsfeature "github.com/dalemusser/liftadmin/internal/app/features/parts"
	_ "github.com/dalemusser/liftadmin/internal/app/features/parts/views"
	categorystore "github.com/dalemusser/liftadmin/internal/app/store/categories"
	dashboardstore "github.com/dalemusser/liftadmin/internal/app/store/dashboard"
	"github.com/dalemusser/liftadmin/internal/app/system/notify"
	"github.com/dalemusser/liftadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the backend client and Startup
// have completed. It boots the template engine, sets up the flash store
// shared by every page, and mounts one feature router per page: dashboard,
// categories, parts and API docs, plus health, static assets and metrics.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	dev := coreCfg.Env == "dev"
	secure := coreCfg.Env == "prod"

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(dev)
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	flash, err := notify.NewFlashStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, deps.Metrics, logger)
	if err != nil {
		logger.Error("flash store init failed", zap.Error(err))
		return nil, err
	}
	viewdata.Init(flash)

	catStore := categorystore.New(deps.API, categorystore.Paths{
		PartsCategories: appCfg.PartsCategoriesPath,
		ElevatorTypes:   appCfg.ElevatorTypesPath,
	}, logger)
	dashStore := dashboardstore.New(deps.API, dashboardstore.Paths{
		Stats:        appCfg.DashboardStatsPath,
		Trend:        appCfg.DashboardTrendPath,
		Distribution: appCfg.DashboardDistributionPath,
		Activities:   appCfg.DashboardActivitiesPath,
	}, appCfg.DashboardLive, logger)

	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.API, deps.API.BaseURL(), logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	if appCfg.MetricsEnabled {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	dashboardHandler := dashboardfeature.NewHandler(dashStore, deps.Metrics, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	loader := categoriesfeature.NewLoader(catStore, deps.API, deps.Metrics, logger)
	categoriesHandler := categoriesfeature.NewHandler(loader, logger)
	r.Mount("/categories", categoriesfeature.Routes(categoriesHandler))

	partsHandler, err := partsfeature.NewHandler(catStore, flash, logger)
	if err != nil {
		logger.Error("parts handler init failed", zap.Error(err))
		return nil, err
	}
	r.Mount("/parts", partsfeature.Routes(partsHandler,
		deps.SubmitLimiter.Middleware(http.HandlerFunc(errorsHandler.TooManyRequests)),
		csrfProtect(appCfg.SessionKey, secure, dev, errorsHandler),
	))

	docsHandler, err := apidocsfeature.NewHandler(deps.API.BaseURL(), logger)
	if err != nil {
		logger.Error("api docs init failed", zap.Error(err))
		return nil, err
	}
	r.Mount("/api-docs", apidocsfeature.Routes(docsHandler))

	return r, nil
}

// csrfProtect builds the CSRF middleware for the form routes. The token key
// is derived from the session key so one secret configures both.
func csrfProtect(sessionKey string, secure, dev bool, errs *errorsfeature.Handler) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("liftadmin-csrf:" + sessionKey))
	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/parts"),
		csrf.CookieName("liftadmin-csrf"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(errs.Forbidden)),
	)
	if !dev {
		return protect
	}
	// Local dev is served over plain http, which gorilla/csrf must be told
	// about before it checks the Origin and Referer headers.
	return func(next http.Handler) http.Handler {
		h := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
