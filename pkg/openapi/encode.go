package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes doc as indented JSON.
func MarshalJSON(doc *openapi3.T) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("openapi: document is nil")
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode json: %w", err)
	}
	return out, nil
}

// MarshalYAML encodes doc as YAML. The document goes through its JSON form
// first so kin-openapi's own marshalling rules (extensions, refs) apply.
func MarshalYAML(doc *openapi3.T) ([]byte, error) {
	raw, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("openapi: decode json: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode yaml: %w", err)
	}
	return out, nil
}

// Validate reloads the encoded document with the kin-openapi loader and runs
// its structural validation.
func Validate(ctx context.Context, doc *openapi3.T) error {
	raw, err := MarshalJSON(doc)
	if err != nil {
		return err
	}
	loader := &openapi3.Loader{Context: ctx}
	loaded, err := loader.LoadFromData(raw)
	if err != nil {
		return fmt.Errorf("openapi: load document: %w", err)
	}
	if err := loaded.Validate(ctx); err != nil {
		return fmt.Errorf("openapi: validate: %w", err)
	}
	return nil
}
