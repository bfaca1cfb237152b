// Package testsupport collects helpers shared by package tests: canonical
// submissions, golden file handling and writer capture.
package testsupport

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-signupform/pkg/model"
)

// ValidValues returns a submission that passes every signup rule.
func ValidValues() model.Values {
	return model.Values{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FirstName:       "A",
		LastName:        "B",
		Role:            "student",
		Terms:           true,
		Acquisition:     []string{"google"},
	}
}

// LoadValues reads a YAML (or JSON) fixture into model.Values, returning an
// error for callers managing setup outside of *testing.T.
func LoadValues(path string) (model.Values, error) {
	if path == "" {
		return model.Values{}, errors.New("testsupport: values path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Values{}, fmt.Errorf("testsupport: read values: %w", err)
	}
	var out model.Values
	if err := yaml.Unmarshal(data, &out); err != nil {
		return model.Values{}, fmt.Errorf("testsupport: unmarshal values: %w", err)
	}
	return out, nil
}

// MustLoadValues is LoadValues for tests.
func MustLoadValues(t *testing.T, path string) model.Values {
	t.Helper()

	values, err := LoadValues(path)
	if err != nil {
		t.Fatalf("load values: %v", err)
	}
	return values
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
