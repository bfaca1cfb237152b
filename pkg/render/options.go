package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers may use without touching the
// form descriptor or the container.
type RenderOptions struct {
	// Action is the URL the form posts to. Empty keeps the current URL.
	Action string
	// ResetAction is the URL the reset control posts to. Empty renders a
	// plain reset button that only clears the controls client side.
	ResetAction string
	// Hidden adds hidden inputs (CSRF tokens and similar) keyed by name.
	Hidden map[string]string
	// Fragment renders only the form element instead of a full document.
	Fragment bool
	// Theme is the resolved theme for this request. Renderers prefer it over
	// any theme they were constructed with.
	Theme *theme.RendererConfig
}
