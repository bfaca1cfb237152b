package openapi

import "strings"

// Option configures Document.
type Option func(*config)

type config struct {
	path      string
	resetPath string
	version   string
	serverURL string
}

func defaultConfig() config {
	return config{
		path:      "/signup",
		resetPath: "/signup/reset",
		version:   "1.0.0",
	}
}

// WithPath sets the route serving the form (default "/signup"). The reset
// route is derived as <path>/reset.
func WithPath(path string) Option {
	return func(cfg *config) {
		trimmed := "/" + strings.Trim(strings.TrimSpace(path), "/")
		cfg.path = trimmed
		cfg.resetPath = strings.TrimSuffix(trimmed, "/") + "/reset"
	}
}

// WithVersion sets info.version.
func WithVersion(version string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(version); trimmed != "" {
			cfg.version = trimmed
		}
	}
}

// WithServerURL adds a servers entry.
func WithServerURL(url string) Option {
	return func(cfg *config) {
		cfg.serverURL = strings.TrimSpace(url)
	}
}
