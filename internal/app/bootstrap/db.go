// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/liftadmin/internal/app/system/apiclient"
	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
	"github.com/dalemusser/liftadmin/internal/app/system/ratelimit"
	"github.com/dalemusser/liftadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the backend client, the metrics registry and the form
// submission limiter, whose sweeper is stopped by Shutdown.
//
// The backend is probed once so operators see reachability in the startup
// log, but an unreachable backend does not stop the server: every page
// degrades on its own.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	m := metrics.New()

	cfg := apiclient.Config{
		BaseURL:    appCfg.APIBaseURL,
		Token:      appCfg.APIToken,
		StatusPath: appCfg.APIStatusPath,
		Metrics:    m,
	}
	if appCfg.OAuthEnabled() {
		cfg.OAuth = &apiclient.OAuthConfig{
			ClientID:     appCfg.OAuthClientID,
			ClientSecret: appCfg.OAuthClientSecret,
			TokenURL:     appCfg.OAuthTokenURL,
			Scopes:       appCfg.OAuthScopes,
		}
	}

	client, err := apiclient.New(cfg, logger)
	if err != nil {
		logger.Error("api client init failed", zap.Error(err))
		return DBDeps{}, err
	}

	trusted, err := ratelimit.ParsePrefixes(appCfg.TrustedProxies)
	if err != nil {
		logger.Error("trusted proxies invalid", zap.Error(err))
		return DBDeps{}, err
	}
	limiter := ratelimit.New(appCfg.SubmitRateLimit, time.Minute, trusted...)
	bg, stop := context.WithCancel(context.Background())
	go limiter.Run(bg)

	logger.Info("api client ready",
		zap.String("api", client.BaseURL()),
		zap.Bool("oauth", cfg.OAuth != nil),
		zap.Bool("token", cfg.Token != "" && cfg.OAuth == nil))

	return DBDeps{API: client, Metrics: m, SubmitLimiter: limiter, stopBackground: stop}, nil
}

// EnsureSchema has no schema to manage; it reports backend reachability so
// a misconfigured base URL shows up at startup rather than on first page load.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Probe())
	defer cancel()

	if deps.API.CheckAPIStatus(ctx) {
		logger.Info("api reachable", zap.String("api", deps.API.BaseURL()))
	} else {
		logger.Warn("api unreachable at startup; pages will show the offline banner",
			zap.String("api", deps.API.BaseURL()))
	}
	return nil
}
