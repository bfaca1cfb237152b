// Package signup turns one submission of the signup form into a result.
//
// Decode maps a url-encoded submission onto model.Values, supplying empty
// defaults for anything the browser did not send. Validate then evaluates
// every rule in a fixed order, collecting one message per failing rule. All
// rules run on every call; an early failure never hides a later one.
package signup
