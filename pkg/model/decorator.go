package model

import "strings"

// Decorator adjusts the form descriptor after the canonical structure has
// been built (copy overrides from configuration, for example).
type Decorator interface {
	Decorate(*Form) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Form) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *Form) error {
	return fn(form)
}

// WithTitle overrides the heading. Blank titles keep the default.
func WithTitle(title string) Decorator {
	return DecoratorFunc(func(form *Form) error {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			form.Title = trimmed
		}
		return nil
	})
}

// WithIntro overrides the text shown under the heading. Blank values keep the
// default.
func WithIntro(intro string) Decorator {
	return DecoratorFunc(func(form *Form) error {
		if trimmed := strings.TrimSpace(intro); trimmed != "" {
			form.Intro = trimmed
		}
		return nil
	})
}
