package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/state"
)

const passwordHelp = "Leave blank to keep the previous value."

// Renderer runs the signup form as an interactive terminal session. It also
// satisfies render.Renderer by printing a plain-text summary of a snapshot.
type Renderer struct {
	driver           PromptDriver
	theme            Theme
	maxAttempts      int
	containerOptions []state.Option
	logger           *zap.SugaredLogger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer backed by survey unless another driver is
// supplied.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver: newSurveyDriver(),
		theme:  DefaultTheme,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Run prompts for every field, submits the answers and repeats with the
// previous answers as defaults until a submission passes validation. It
// returns the successful result, or the last failed one together with
// ErrTooManyAttempts once the attempt budget is spent.
func (r *Renderer) Run(ctx context.Context, form model.Form) (model.Result, error) {
	if r == nil || r.driver == nil {
		return model.Result{}, errors.New("tui: prompt driver is nil")
	}
	if ctx == nil {
		return model.Result{}, errors.New("tui: context is required")
	}

	container := state.New(r.containerOptions...)
	if err := r.info(ctx, r.theme.InfoPrefix+form.Title); err != nil {
		return model.Result{}, err
	}
	if form.Intro != "" {
		if err := r.info(ctx, r.theme.InfoPrefix+form.Intro); err != nil {
			return model.Result{}, err
		}
	}

	for attempt := 1; ; attempt++ {
		values, err := r.promptAll(ctx, form, container.Snapshot().Entered())
		if err != nil {
			return model.Result{}, err
		}
		result, err := container.Submit(ctx, values)
		if err != nil {
			return model.Result{}, fmt.Errorf("tui: submit: %w", err)
		}
		if result.OK() {
			r.logger.Infow("signup completed", "attempts", attempt)
			return result, nil
		}

		r.logger.Debugw("signup rejected", "attempt", attempt, "errors", len(result.Errors))
		for _, message := range result.Errors {
			if err := r.info(ctx, r.theme.ErrorPrefix+message); err != nil {
				return result, err
			}
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return result, ErrTooManyAttempts
		}
	}
}

// Render prints the form title, the error list of the snapshot and the
// entered values (passwords masked).
func (r *Renderer) Render(ctx context.Context, form model.Form, snapshot state.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%s\n", r.theme.InfoPrefix, form.Title)
	if snapshot.Pending {
		buf.WriteString("submitting...\n")
	}
	if snapshot.Result.OK() {
		return buf.Bytes(), nil
	}

	for _, message := range render.NormalizeMessages(snapshot.Result.Errors) {
		fmt.Fprintf(&buf, "%s%s\n", r.theme.ErrorPrefix, message)
	}
	entered := snapshot.Entered()
	for _, field := range form.Fields {
		fmt.Fprintf(&buf, "  %s: %s\n", field.Label, displayValue(field, entered))
	}
	return buf.Bytes(), nil
}

func (r *Renderer) promptAll(ctx context.Context, form model.Form, previous model.Values) (model.Values, error) {
	var values model.Values
	for _, field := range form.Fields {
		if err := ctx.Err(); err != nil {
			return model.Values{}, err
		}
		if err := r.promptField(ctx, field, previous, &values); err != nil {
			return model.Values{}, fmt.Errorf("tui: prompt %s: %w", field.Name, err)
		}
	}
	return values, nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, previous model.Values, values *model.Values) error {
	switch field.Kind {
	case model.FieldKindPassword:
		cfg := InputConfig{Message: field.Label, Default: previous.Text(field.Name)}
		if cfg.Default != "" {
			cfg.Help = passwordHelp
		}
		answer, err := r.driver.Password(ctx, cfg)
		if err != nil {
			return err
		}
		values.SetText(field.Name, answer)

	case model.FieldKindSelect:
		labels, selected := optionLabels(field.Options, []string{previous.Text(field.Name)})
		cfg := SelectConfig{Message: field.Label, Options: labels}
		if len(selected) > 0 {
			cfg.DefaultIndex = selected[0]
		}
		idx, err := r.driver.Select(ctx, cfg)
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Options) {
			values.SetText(field.Name, field.Options[idx].Value)
		}

	case model.FieldKindCheckboxGroup:
		labels, selected := optionLabels(field.Options, previous.Acquisition)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  field.Label,
			Options:  labels,
			Defaults: selected,
		})
		if err != nil {
			return err
		}
		for _, idx := range indices {
			if idx >= 0 && idx < len(field.Options) {
				values.Acquisition = append(values.Acquisition, field.Options[idx].Value)
			}
		}

	case model.FieldKindCheckbox:
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{Message: field.Label, Default: previous.Terms})
		if err != nil {
			return err
		}
		values.Terms = answer

	default:
		answer, err := r.driver.Input(ctx, InputConfig{Message: field.Label, Default: previous.Text(field.Name)})
		if err != nil {
			return err
		}
		values.SetText(field.Name, answer)
	}
	return nil
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	if err := r.driver.Info(ctx, msg); err != nil {
		return fmt.Errorf("tui: print: %w", err)
	}
	return nil
}

// optionLabels returns the labels of options and the indices of those whose
// value is in selected.
func optionLabels(options []model.Option, selected []string) ([]string, []int) {
	labels := make([]string, len(options))
	var indices []int
	for i, option := range options {
		labels[i] = option.Label
		for _, value := range selected {
			if value != "" && value == option.Value {
				indices = append(indices, i)
				break
			}
		}
	}
	return labels, indices
}

func displayValue(field model.Field, values model.Values) string {
	switch field.Kind {
	case model.FieldKindPassword:
		if values.Text(field.Name) == "" {
			return ""
		}
		return "********"
	case model.FieldKindCheckbox:
		if values.Terms {
			return "yes"
		}
		return "no"
	case model.FieldKindCheckboxGroup:
		return strings.Join(values.Acquisition, ", ")
	default:
		return values.Text(field.Name)
	}
}
