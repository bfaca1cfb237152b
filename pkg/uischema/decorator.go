package uischema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-signupform/pkg/model"
)

// Decorator applies copy overlays to a form descriptor.
type Decorator struct {
	store *Store
}

var _ model.Decorator = (*Decorator)(nil)

// NewDecorator builds a Decorator backed by the provided store. When store is
// nil or empty, the decorator becomes a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate applies the overlay registered for form.ID. Forms without an
// overlay are left untouched. Overlays naming unknown fields or options are
// rejected so typos do not go unnoticed.
func (d *Decorator) Decorate(form *model.Form) error {
	if d == nil || d.store.Empty() || form == nil {
		return nil
	}
	overlay, ok := d.store.Overlay(form.ID)
	if !ok {
		return nil
	}

	if err := checkFields(form, overlay); err != nil {
		return err
	}

	applyFormConfig(form, overlay.Form)
	for i := range form.Fields {
		cfg, ok := overlay.Fields[form.Fields[i].Name]
		if !ok {
			continue
		}
		applyFieldConfig(&form.Fields[i], cfg)
	}
	return nil
}

func applyFormConfig(form *model.Form, cfg FormConfig) {
	set := func(target *string, value string) {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			*target = trimmed
		}
	}
	set(&form.Title, cfg.Title)
	set(&form.Intro, cfg.Intro)
	set(&form.SubmitLabel, cfg.SubmitLabel)
	set(&form.ResetLabel, cfg.ResetLabel)
}

func applyFieldConfig(field *model.Field, cfg FieldConfig) {
	if label := strings.TrimSpace(cfg.Label); label != "" {
		field.Label = label
	}
	if len(cfg.Options) == 0 {
		return
	}
	// Copy so the descriptor never shares option slices with its source.
	options := append([]model.Option(nil), field.Options...)
	for i := range options {
		if label := strings.TrimSpace(cfg.Options[options[i].Value]); label != "" {
			options[i].Label = label
		}
	}
	field.Options = options
}

func checkFields(form *model.Form, overlay Overlay) error {
	names := make([]string, 0, len(overlay.Fields))
	for name := range overlay.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field, ok := form.Field(name)
		if !ok {
			return fmt.Errorf("uischema: form %q (file %s) has no field %q", overlay.ID, overlay.Source, name)
		}
		for value := range overlay.Fields[name].Options {
			if !hasOption(field.Options, value) {
				return fmt.Errorf("uischema: form %q (file %s) field %q has no option %q", overlay.ID, overlay.Source, name, value)
			}
		}
	}
	return nil
}

func hasOption(options []model.Option, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}
