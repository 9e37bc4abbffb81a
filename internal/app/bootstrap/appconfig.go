// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers the framework side (ports, TLS, log level,
// environment). Everything specific to the elevator-parts dashboard lives
// here: where the backend is, how to authenticate to it, which endpoints
// feed each page, and the cookie settings for flash messages.
//
// The struct is passed to every lifecycle hook.
type AppConfig struct {
	// Backend API
	APIBaseURL    string // e.g. https://api.example.com/v1
	APIToken      string // static bearer token; ignored when OAuth is configured
	APIStatusPath string // unauthenticated reachability probe

	// OAuth2 client-credentials (all three or none)
	OAuthClientID     string
	OAuthClientSecret string
	OAuthTokenURL     string
	OAuthScopes       []string

	// Category endpoints
	PartsCategoriesPath string
	ElevatorTypesPath   string

	// Dashboard endpoints; nothing is fetched unless DashboardLive is set
	DashboardLive             bool
	DashboardStatsPath        string
	DashboardTrendPath        string
	DashboardDistributionPath string
	DashboardActivitiesPath   string

	// Flash cookie
	SessionKey    string
	SessionName   string
	SessionDomain string

	// Backend call budgets
	TimeoutProbe  time.Duration
	TimeoutFetch  time.Duration
	TimeoutSubmit time.Duration

	// Form submissions allowed per client IP per minute; 0 disables
	SubmitRateLimit int
	// Proxies (CIDR or bare IP) allowed to name the client in
	// X-Forwarded-For; empty means the peer address is always used
	TrustedProxies []string

	MetricsEnabled bool
}

// OAuthEnabled reports whether client-credentials auth is configured.
func (c AppConfig) OAuthEnabled() bool {
	return c.OAuthClientID != "" && c.OAuthClientSecret != "" && c.OAuthTokenURL != ""
}
