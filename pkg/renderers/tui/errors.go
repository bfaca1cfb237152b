package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when every allowed submission failed
	// validation.
	ErrTooManyAttempts = errors.New("tui: too many failed attempts")
)
