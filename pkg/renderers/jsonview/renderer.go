// Package jsonview renders the signup form state as a JSON document for
// script clients that negotiate application/json.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/state"
)

// Document is the payload produced by Render.
type Document struct {
	Form    model.Form           `json:"form"`
	State   string               `json:"state"`
	Pending bool                 `json:"pending"`
	Result  model.Result         `json:"result"`
	Hidden  []render.HiddenField `json:"hidden,omitempty"`
}

// Renderer implements render.Renderer.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent pretty-prints the output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs a JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render encodes the form descriptor with the snapshot. Errors are always
// encoded as an array so clients can test its length.
func (r *Renderer) Render(ctx context.Context, form model.Form, snapshot state.Snapshot, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := snapshot.Result.Clone()
	result.Errors = render.NormalizeMessages(result.Errors)
	if result.Errors == nil {
		result.Errors = []string{}
	}
	doc := Document{
		Form:    form,
		State:   snapshot.State,
		Pending: snapshot.Pending,
		Result:  result,
		Hidden:  render.SortedHiddenFields(options.Hidden),
	}
	if doc.State == "" {
		doc.State = state.StateIdle
	}

	var (
		out []byte
		err error
	)
	if r != nil && r.indent != "" {
		out, err = json.MarshalIndent(doc, "", r.indent)
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonview: encode: %w", err)
	}
	return out, nil
}
