// Package orchestrator wires the form descriptor, its decorators, the
// renderer registry and theme selection into a single entry point: callers
// hand over a state snapshot and get rendered bytes back.
package orchestrator
