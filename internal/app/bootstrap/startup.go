// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/liftadmin/internal/app/resources"
	"github.com/dalemusser/liftadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the backend client
// is built but before the HTTP handler is. It registers the shared templates
// and applies the configured backend call budgets.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Probe:  appCfg.TimeoutProbe,
		Fetch:  appCfg.TimeoutFetch,
		Submit: appCfg.TimeoutSubmit,
	})
	cur := timeouts.Current()
	logger.Info("backend timeouts configured",
		zap.Duration("probe", cur.Probe),
		zap.Duration("fetch", cur.Fetch),
		zap.Duration("submit", cur.Submit))
	return nil
}
