// Package tui renders the signup form in a terminal. Run walks the user
// through every field with a PromptDriver (survey by default), re-prompting
// with the previous answers until the submission is accepted.
package tui
