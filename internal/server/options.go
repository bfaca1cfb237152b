package server

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/internal/metrics"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/render"
)

// Option configures the server.
type Option func(*config)

type config struct {
	logger       *zap.Logger
	metrics      *metrics.Metrics
	renderers    []render.Renderer
	viewOptions  []orchestrator.Option
	sessionLimit int
	cookieName   string
	csrfField    string
	secureCookie bool
}

func defaultConfig() config {
	return config{
		logger:       zap.NewNop(),
		sessionLimit: 1024,
		cookieName:   "signup_session",
		csrfField:    "_csrf",
	}
}

// WithLogger sets the logger for requests and form state changes.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMetrics records submissions on m and serves it at /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(cfg *config) {
		cfg.metrics = m
	}
}

// WithRenderers replaces the default renderers. One of them must be named
// "vanilla"; it answers requests whose Accept header matches no renderer.
func WithRenderers(renderers ...render.Renderer) Option {
	return func(cfg *config) {
		cfg.renderers = append([]render.Renderer(nil), renderers...)
	}
}

// WithViewOptions passes options to the orchestrator rendering the form,
// theme selection for example. Form and renderer options set by the server
// are applied first.
func WithViewOptions(options ...orchestrator.Option) Option {
	return func(cfg *config) {
		cfg.viewOptions = append(cfg.viewOptions, options...)
	}
}

// WithSessionLimit bounds the number of form instances kept in memory.
func WithSessionLimit(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.sessionLimit = n
		}
	}
}

// WithCookieName sets the session cookie name.
func WithCookieName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.cookieName = name
		}
	}
}

// WithCSRFField sets the hidden field carrying the CSRF token.
func WithCSRFField(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.csrfField = name
		}
	}
}

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) Option {
	return func(cfg *config) {
		cfg.secureCookie = secure
	}
}
