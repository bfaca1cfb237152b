package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/signup"
)

const (
	StateIdle    = "idle"
	StatePending = "pending"

	EventSubmit   = "submit"
	EventComplete = "complete"
)

// Snapshot is a read-only copy of a container's state for rendering.
type Snapshot struct {
	State       string       `json:"state"`
	Pending     bool         `json:"pending"`
	Result      model.Result `json:"result"`
	Submissions int          `json:"submissions"`
}

// Entered returns the values to re-populate the form with, or an empty
// record when the last result carried none.
func (s Snapshot) Entered() model.Values {
	if s.Result.Entered == nil {
		return model.Values{}
	}
	return s.Result.Entered.Clone()
}

// Container owns the latest result of one form instance.
type Container struct {
	id        string
	validate  ValidateFunc
	logger    *zap.SugaredLogger
	observers []Observer

	// submitMu serialises Submit and Reset.
	submitMu sync.Mutex

	mu          sync.RWMutex
	result      model.Result
	submissions int

	machine *fsm.FSM
}

// New builds an idle container holding an empty result.
func New(options ...Option) *Container {
	c := &Container{
		validate: signup.Validate,
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}

	c.machine = fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: EventSubmit, Src: []string{StateIdle}, Dst: StatePending},
			{Name: EventComplete, Src: []string{StatePending}, Dst: StateIdle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debugw("form state changed", "form", c.id, "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
	return c
}

// Submit validates values and stores the result. The container is pending
// for the duration of the call.
func (c *Container) Submit(ctx context.Context, values model.Values) (model.Result, error) {
	if c == nil {
		return model.Result{}, fmt.Errorf("state: container is nil")
	}
	if err := ctx.Err(); err != nil {
		return model.Result{}, err
	}

	c.submitMu.Lock()
	defer c.submitMu.Unlock()

	if err := c.transition(ctx, EventSubmit); err != nil {
		return model.Result{}, err
	}

	result := c.validate(values)

	c.mu.Lock()
	c.result = result.Clone()
	c.submissions++
	c.mu.Unlock()

	// Always return to idle, even if the caller's context ended meanwhile.
	if err := c.transition(context.WithoutCancel(ctx), EventComplete); err != nil {
		return model.Result{}, err
	}

	if result.OK() {
		c.logger.Infow("signup submission accepted", "form", c.id)
	} else {
		c.logger.Infow("signup submission rejected", "form", c.id, "errors", len(result.Errors))
	}
	return result.Clone(), nil
}

// Reset drops the held result so the view shows empty controls again.
func (c *Container) Reset() {
	if c == nil {
		return
	}
	c.submitMu.Lock()
	defer c.submitMu.Unlock()

	c.mu.Lock()
	c.result = model.Result{}
	c.mu.Unlock()

	c.logger.Debugw("form reset", "form", c.id)
	c.notify(Transition{From: StateIdle, To: StateIdle, Snapshot: c.Snapshot()})
}

// Pending reports whether a submission is being processed.
func (c *Container) Pending() bool {
	if c == nil || c.machine == nil {
		return false
	}
	return c.machine.Is(StatePending)
}

// State returns the current state name.
func (c *Container) State() string {
	if c == nil || c.machine == nil {
		return StateIdle
	}
	return c.machine.Current()
}

// Result returns a copy of the latest result.
func (c *Container) Result() model.Result {
	if c == nil {
		return model.Result{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result.Clone()
}

// Snapshot captures the current state for rendering.
func (c *Container) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{State: StateIdle}
	}
	current := c.State()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		State:       current,
		Pending:     current == StatePending,
		Result:      c.result.Clone(),
		Submissions: c.submissions,
	}
}

func (c *Container) transition(ctx context.Context, event string) error {
	from := c.machine.Current()
	if err := c.machine.Event(ctx, event); err != nil {
		return fmt.Errorf("%w: %s from %s: %v", ErrTransition, event, from, err)
	}
	c.notify(Transition{From: from, To: c.machine.Current(), Snapshot: c.Snapshot()})
	return nil
}

func (c *Container) notify(t Transition) {
	for _, observer := range c.observers {
		observer(t)
	}
}
