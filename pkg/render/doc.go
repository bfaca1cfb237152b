// Package render defines the renderer contract shared by the signup views,
// a name-keyed registry with Accept-header negotiation, and helpers for
// hidden inputs and error message lists.
package render
