package choices

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/model"
)

const defaultRoutePath = "/api/options"

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath   string
	SearchParam string
	Guard       GuardFunc

	// Logger receives response write failures. Nil discards them.
	Logger *zap.Logger

	// Lists maps a list name to its options. Nil means the signup form's
	// role and acquisition lists.
	Lists map[string][]model.Option
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:   defaultRoutePath,
		SearchParam: "q",
	}
}

// DefaultLists returns the option lists of the signup form.
func DefaultLists() map[string][]model.Option {
	return map[string][]model.Option{
		model.FieldRole:        append([]model.Option(nil), model.RoleOptions...),
		model.FieldAcquisition: append([]model.Option(nil), model.AcquisitionOptions...),
	}
}

// ListsFromForm collects the options of every field that has any.
func ListsFromForm(form model.Form) map[string][]model.Option {
	lists := make(map[string][]model.Option)
	for _, field := range form.Fields {
		if len(field.Options) == 0 {
			continue
		}
		lists[field.Name] = form.Options(field.Name)
	}
	return lists
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Lists != nil {
		opts.Lists = copyLists(opts.Lists)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithLists(lists map[string][]model.Option) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if lists == nil {
			o.Lists = nil
			return
		}
		o.Lists = copyLists(lists)
	}
}

func copyLists(in map[string][]model.Option) map[string][]model.Option {
	out := make(map[string][]model.Option, len(in))
	for name, options := range in {
		out[name] = append([]model.Option(nil), options...)
	}
	return out
}
