package state

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/model"
)

// ValidateFunc turns submitted values into a result.
type ValidateFunc func(model.Values) model.Result

// Observer is notified after every state change.
type Observer func(Transition)

// Transition describes a state change and the snapshot after it.
type Transition struct {
	From     string
	To       string
	Snapshot Snapshot
}

// Option configures a Container.
type Option func(*Container)

// WithID labels the container in log output.
func WithID(id string) Option {
	return func(c *Container) {
		c.id = id
	}
}

// WithLogger routes transition logs to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithValidateFunc replaces the validation function. Defaults to
// signup.Validate.
func WithValidateFunc(fn ValidateFunc) Option {
	return func(c *Container) {
		if fn != nil {
			c.validate = fn
		}
	}
}

// WithObserver registers fn to run after each transition. Observers run on
// the submitting goroutine and must not call Submit or Reset.
func WithObserver(fn Observer) Option {
	return func(c *Container) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}
