package state

import "errors"

// ErrTransition wraps failures reported by the underlying state machine.
var ErrTransition = errors.New("state: transition failed")
