// Package signupform is the top-level entry point for the signup form:
// validate a submission, hold per-instance form state and render the form
// without importing the individual packages.
package signupform

import (
	"context"
	"io/fs"
	"net/url"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/renderers/vanilla"
	"github.com/goliatone/go-signupform/pkg/signup"
	"github.com/goliatone/go-signupform/pkg/state"
)

// RenderOptions aliases render.RenderOptions for callers rendering through
// the orchestrator.
type RenderOptions = render.RenderOptions

// Values aliases the flat submission record.
type Values = model.Values

// Result aliases the outcome of one validation.
type Result = model.Result

// Validate decodes a submitted form body and runs every signup rule on it.
func Validate(form url.Values) Result {
	return signup.Validate(signup.Decode(form))
}

// NewContainer creates the idle/pending state holder for one form instance.
func NewContainer(options ...state.Option) *state.Container {
	return state.New(options...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the signup form for snapshot with the vanilla
// renderer. It is the simplest entry point for callers that just want HTML.
func GenerateHTML(ctx context.Context, snapshot state.Snapshot, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Renderer:      "vanilla",
		Snapshot:      snapshot,
		RenderOptions: opts,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
