// Package model defines the signup form's data shapes: the submitted values
// record, the per-submission result consumed by views, and a static form
// descriptor (field names, labels, kinds, options) shared by the HTML and
// terminal renderers and the schema export. Field names match the HTML
// `name` attributes so url-encoded submissions map onto Values without a
// translation table.
package model
