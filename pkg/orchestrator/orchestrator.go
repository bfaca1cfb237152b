package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/renderers/vanilla"
	"github.com/goliatone/go-signupform/pkg/state"
)

const defaultRendererName = "vanilla"

// Option mutates the orchestrator during construction.
type Option func(*Orchestrator)

// WithForm replaces the built-in signup form descriptor.
func WithForm(form model.Form) Option {
	return func(o *Orchestrator) {
		o.form = form
		o.formSpecified = true
	}
}

// WithDecorators appends decorators applied to the form once, before the
// first render.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithRegistry injects a pre-populated renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer selects the renderer used when a request names none
// and its Accept header matches no registered renderer.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves theme/variant names into renderer theme
// configuration.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeManifests registers manifests with a local selector and uses
// defaultTheme/defaultVariant for requests that name none.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		selector, err := NewManifestSelector(manifests...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: theme manifests: %w", err)
			return
		}
		o.themeSelector = selector
		o.defaultTheme = defaultTheme
		o.defaultVariant = defaultVariant
	}
}

// WithThemeDefaults sets the theme and variant used when a request names
// none.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks overrides the partials used when a theme does not
// provide its own.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = copyStrings(fallbacks)
	}
}

// Orchestrator renders one form with the renderer a request asks for.
type Orchestrator struct {
	form            model.Form
	formSpecified   bool
	decorators      []model.Decorator
	registry        *render.Registry
	defaultRenderer string

	themeSelector  theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
	themeFallbacks map[string]string

	initialiseErr error
}

// New constructs an orchestrator. Construction errors surface from Form and
// Generate.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{themeFallbacks: defaultThemeFallbacks()}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Renderer names the renderer to use. When empty the Accept header is
	// negotiated, then the default renderer applies.
	Renderer string

	// Accept is the client's Accept header.
	Accept string

	// Snapshot is the state of the form instance being drawn.
	Snapshot state.Snapshot

	// RenderOptions is passed to the renderer. Its Theme is replaced when a
	// theme selector is configured.
	RenderOptions render.RenderOptions

	// ThemeName and ThemeVariant override the configured defaults.
	ThemeName    string
	ThemeVariant string
}

// Output is a rendered form plus what the caller needs to serve it.
type Output struct {
	Renderer    string
	ContentType string
	Body        []byte
}

// Form returns the decorated form descriptor.
func (o *Orchestrator) Form() (model.Form, error) {
	if o == nil {
		return model.Form{}, errors.New("orchestrator: orchestrator is nil")
	}
	if o.initialiseErr != nil {
		return model.Form{}, o.initialiseErr
	}
	return o.form, nil
}

// Generate renders the form and returns the bytes only.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	out, err := o.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

// Render resolves the renderer and theme for req and renders the form.
func (o *Orchestrator) Render(ctx context.Context, req Request) (Output, error) {
	if ctx == nil {
		return Output{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	form, err := o.Form()
	if err != nil {
		return Output{}, err
	}

	renderer, err := o.rendererFor(req.Renderer, req.Accept)
	if err != nil {
		return Output{}, err
	}

	options := req.RenderOptions
	themeCfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return Output{}, err
	}
	if themeCfg != nil {
		options.Theme = themeCfg
	}

	body, err := renderer.Render(ctx, form, req.Snapshot, options)
	if err != nil {
		return Output{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return Output{
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func (o *Orchestrator) rendererFor(name, accept string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	if name != "" {
		renderer, err := o.registry.Get(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
		return renderer, nil
	}

	if accept != "" {
		if renderer, err := o.registry.Negotiate(accept, o.defaultRenderer); err == nil {
			return renderer, nil
		}
	} else if renderer, err := o.registry.Get(o.defaultRenderer); err == nil {
		return renderer, nil
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.initialiseErr != nil {
		return
	}

	if !o.formSpecified {
		form, err := model.SignupForm(o.decorators...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: build form: %w", err)
			return
		}
		o.form = form
	} else {
		for _, decorator := range o.decorators {
			if decorator == nil {
				continue
			}
			if err := decorator.Decorate(&o.form); err != nil {
				o.initialiseErr = fmt.Errorf("orchestrator: decorate form: %w", err)
				return
			}
		}
	}

	if o.registry == nil {
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		registry, err := render.NewRegistry(renderer)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
