package tui

import (
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/state"
)

// Theme captures optional formatting hints the driver can apply when printing
// messages. Keep minimal to avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultTheme is applied when no theme is configured.
var DefaultTheme = Theme{
	InfoPrefix:  "",
	ErrorPrefix: "✗ ",
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput redirects informational output of the default survey driver.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w == nil {
			return
		}
		if driver, ok := r.driver.(*surveyDriver); ok {
			driver.out = w
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithMaxAttempts bounds how many failed submissions Run accepts before
// giving up. Zero or negative means unlimited.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n < 0 {
			n = 0
		}
		r.maxAttempts = n
	}
}

// WithContainerOptions forwards options to the state container created by
// each Run.
func WithContainerOptions(options ...state.Option) Option {
	return func(r *Renderer) {
		r.containerOptions = append(r.containerOptions, options...)
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
