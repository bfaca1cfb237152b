package render

import (
	"context"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/state"
)

// Renderer turns the form descriptor plus the current state of one form
// instance into bytes (an HTML page, a JSON document, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, snapshot state.Snapshot, options RenderOptions) ([]byte, error)
}
