// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	categorystore "github.com/dalemusser/liftadmin/internal/app/store/categories"
	dashboardstore "github.com/dalemusser/liftadmin/internal/app/store/dashboard"
	"github.com/dalemusser/liftadmin/internal/app/system/apiclient"
	"github.com/dalemusser/liftadmin/internal/app/system/inputval"
	"github.com/dalemusser/liftadmin/internal/app/system/ratelimit"
	"github.com/dalemusser/liftadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// minSessionKeyLen is the shortest session key accepted outside dev.
const minSessionKeyLen = 32

// appConfigKeys defines the configuration keys for liftadmin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: LIFTADMIN_API_BASE_URL, LIFTADMIN_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000/api", Desc: "Elevator-parts API base URL"},
	{Name: "api_token", Default: "", Desc: "Static bearer token for the API (ignored when OAuth is set)"},
	{Name: "api_status_path", Default: apiclient.DefaultStatusPath, Desc: "Unauthenticated path probed for API reachability"},

	// OAuth2 client-credentials
	{Name: "api_oauth_client_id", Default: "", Desc: "OAuth2 client ID for the API"},
	{Name: "api_oauth_client_secret", Default: "", Desc: "OAuth2 client secret for the API"},
	{Name: "api_oauth_token_url", Default: "", Desc: "OAuth2 token endpoint"},
	{Name: "api_oauth_scopes", Default: "", Desc: "Comma-separated OAuth2 scopes"},

	// Category endpoints
	{Name: "parts_categories_path", Default: categorystore.DefaultPaths.PartsCategories, Desc: "Parts categories collection path"},
	{Name: "elevator_types_path", Default: categorystore.DefaultPaths.ElevatorTypes, Desc: "Elevator types collection path"},

	// Dashboard endpoints
	{Name: "dashboard_live", Default: false, Desc: "Fetch dashboard data from the API (off shows an empty dashboard)"},
	{Name: "dashboard_stats_path", Default: dashboardstore.DefaultPaths.Stats, Desc: "Dashboard stats path"},
	{Name: "dashboard_trend_path", Default: dashboardstore.DefaultPaths.Trend, Desc: "Dashboard sales trend path"},
	{Name: "dashboard_distribution_path", Default: dashboardstore.DefaultPaths.Distribution, Desc: "Dashboard category distribution path"},
	{Name: "dashboard_activities_path", Default: dashboardstore.DefaultPaths.Activities, Desc: "Dashboard recent activities path"},

	// Flash cookie
	{Name: "session_key", Default: "", Desc: "Flash cookie signing key (required outside dev, at least 32 bytes)"},
	{Name: "session_name", Default: "liftadmin-flash", Desc: "Flash cookie name"},
	{Name: "session_domain", Default: "", Desc: "Flash cookie domain (blank means current host)"},

	// Backend call budgets
	{Name: "timeout_probe", Default: timeouts.DefaultProbe.String(), Desc: "Timeout for the API reachability probe"},
	{Name: "timeout_fetch", Default: timeouts.DefaultFetch.String(), Desc: "Timeout for each data fetch"},
	{Name: "timeout_submit", Default: timeouts.DefaultSubmit.String(), Desc: "Timeout for form submissions to the API"},

	{Name: "submit_rate_limit", Default: 20, Desc: "Form submissions per client IP per minute (0 disables)"},
	{Name: "trusted_proxies", Default: "", Desc: "Comma-separated proxy CIDRs or IPs whose X-Forwarded-For is believed"},

	{Name: "metrics_enabled", Default: true, Desc: "Serve Prometheus metrics at /metrics"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig reads .env and config files,
// environment variables (WAFFLE_* for core, LIFTADMIN_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LIFTADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	defaults := timeouts.Current()
	appCfg := AppConfig{
		APIBaseURL:    strings.TrimSpace(appValues.String("api_base_url")),
		APIToken:      appValues.String("api_token"),
		APIStatusPath: appValues.String("api_status_path"),

		OAuthClientID:     appValues.String("api_oauth_client_id"),
		OAuthClientSecret: appValues.String("api_oauth_client_secret"),
		OAuthTokenURL:     appValues.String("api_oauth_token_url"),
		OAuthScopes:       splitList(appValues.String("api_oauth_scopes")),

		PartsCategoriesPath: appValues.String("parts_categories_path"),
		ElevatorTypesPath:   appValues.String("elevator_types_path"),

		DashboardLive:             appValues.Bool("dashboard_live"),
		DashboardStatsPath:        appValues.String("dashboard_stats_path"),
		DashboardTrendPath:        appValues.String("dashboard_trend_path"),
		DashboardDistributionPath: appValues.String("dashboard_distribution_path"),
		DashboardActivitiesPath:   appValues.String("dashboard_activities_path"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		TimeoutProbe:  appValues.Duration("timeout_probe", defaults.Probe),
		TimeoutFetch:  appValues.Duration("timeout_fetch", defaults.Fetch),
		TimeoutSubmit: appValues.Duration("timeout_submit", defaults.Submit),

		SubmitRateLimit: appValues.Int("submit_rate_limit"),
		TrustedProxies:  splitList(appValues.String("trusted_proxies")),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
	}

	// Dev runs get a throwaway key so flash cookies work out of the box.
	// Flashes do not survive a restart, which is fine locally.
	if appCfg.SessionKey == "" && coreCfg.Env == "dev" {
		appCfg.SessionKey = base64.RawStdEncoding.EncodeToString(securecookie.GenerateRandomKey(minSessionKeyLen))
		logger.Info("generated ephemeral session key for dev")
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	return validateAppConfig(coreCfg.Env, appCfg, logger)
}

func validateAppConfig(env string, appCfg AppConfig, logger *zap.Logger) error {
	if !inputval.IsValidHTTPURL(appCfg.APIBaseURL) {
		logger.Error("invalid API base URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("api_base_url %q must be an absolute http(s) URL", appCfg.APIBaseURL)
	}

	set := 0
	for _, v := range []string{appCfg.OAuthClientID, appCfg.OAuthClientSecret, appCfg.OAuthTokenURL} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return fmt.Errorf("api_oauth_client_id, api_oauth_client_secret and api_oauth_token_url must be set together")
	}
	if appCfg.OAuthTokenURL != "" && !inputval.IsValidHTTPURL(appCfg.OAuthTokenURL) {
		return fmt.Errorf("api_oauth_token_url %q must be an absolute http(s) URL", appCfg.OAuthTokenURL)
	}

	if env != "dev" && len(appCfg.SessionKey) < minSessionKeyLen {
		return fmt.Errorf("session_key must be at least %d bytes outside dev", minSessionKeyLen)
	}

	if appCfg.SubmitRateLimit < 0 {
		return fmt.Errorf("submit_rate_limit must not be negative")
	}
	if _, err := ratelimit.ParsePrefixes(appCfg.TrustedProxies); err != nil {
		logger.Error("invalid trusted_proxies", zap.Strings("trusted_proxies", appCfg.TrustedProxies), zap.Error(err))
		return fmt.Errorf("trusted_proxies: %w", err)
	}

	for name, d := range map[string]time.Duration{
		"timeout_probe":  appCfg.TimeoutProbe,
		"timeout_fetch":  appCfg.TimeoutFetch,
		"timeout_submit": appCfg.TimeoutSubmit,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
