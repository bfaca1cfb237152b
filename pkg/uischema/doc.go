// Package uischema loads copy overlays for form descriptors from JSON or
// YAML files and applies them as a model.Decorator: headings, button labels,
// field labels and option labels can be replaced without touching code.
// Overlays are keyed by form id and never add, remove or reorder fields.
package uischema
