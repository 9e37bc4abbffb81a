// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown runs after the HTTP server has drained. It stops the limiter's
// sweeper; the backend client holds no long-lived connections beyond the
// shared transport's idle pool.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("liftadmin shutting down", zap.String("api", appCfg.APIBaseURL))
	if deps.stopBackground != nil {
		deps.stopBackground()
	}
	return nil
}
