// Package openapi describes the signup endpoints as an OpenAPI 3 document
// built with kin-openapi, so API clients can discover the form body and the
// shape of the validation result.
package openapi
