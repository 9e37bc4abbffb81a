// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/liftadmin/internal/app/system/apiclient"
	"github.com/dalemusser/liftadmin/internal/app/system/metrics"
	"github.com/dalemusser/liftadmin/internal/app/system/ratelimit"
)

// DBDeps holds the back-end dependencies for the app. There is no local
// database; the elevator-parts API is the only backend.
type DBDeps struct {
	API     *apiclient.Client
	Metrics *metrics.Metrics

	// SubmitLimiter guards the parts forms. Its sweeper runs until
	// Shutdown calls stopBackground.
	SubmitLimiter  *ratelimit.Limiter
	stopBackground context.CancelFunc
}
