// Package choices serves the option lists of the signup form's choice
// fields (role, acquisition) as JSON for client-side widgets.
//
// The handler responds to GET and HEAD requests at <route>/<list> and accepts
// an optional q parameter filtering options by label or value.
package choices
