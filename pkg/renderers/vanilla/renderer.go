package vanilla

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	rendertemplate "github.com/goliatone/go-signupform/pkg/render/template"
	gotemplate "github.com/goliatone/go-signupform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-signupform/pkg/state"
)

const (
	templatePage = "page"
	templateForm = "form"

	// Theme partial keys that may point the renderer at other templates in
	// its bundle.
	PartialPage = "forms.page"
	PartialForm = "forms.form"
)

// Renderer draws the signup form as server-rendered HTML. Controls are
// pre-filled from the snapshot's entered values so a rejected submission
// does not lose the user's input.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithFS(cfg.templateFS),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{templates: templates, theme: cfg.theme}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces a full HTML document, or only the form element when
// options.Fragment is set.
func (r *Renderer) Render(ctx context.Context, form model.Form, snapshot state.Snapshot, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	themeCfg := r.theme
	if options.Theme != nil {
		themeCfg = options.Theme
	}

	view := pageView{
		Form:  buildFormView(form, snapshot, options),
		Theme: buildThemeView(themeCfg),
	}

	name := partial(themeCfg, PartialPage, templatePage)
	if options.Fragment {
		name = partial(themeCfg, PartialForm, templateForm)
	}
	out, err := r.templates.RenderTemplate(name, view)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render %s: %w", name, err)
	}
	return []byte(out), nil
}
