package jsonview_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/renderers/jsonview"
	"github.com/goliatone/go-signupform/pkg/signup"
	"github.com/goliatone/go-signupform/pkg/state"
)

func TestRender_FailedSubmission(t *testing.T) {
	form, err := model.SignupForm()
	if err != nil {
		t.Fatalf("signup form: %v", err)
	}
	c := state.New()
	values := model.Values{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1", FirstName: "A", LastName: "B", Role: "student", Acquisition: []string{"google"}}
	if _, err := c.Submit(context.Background(), values); err != nil {
		t.Fatalf("submit: %v", err)
	}

	out, err := jsonview.New().Render(context.Background(), form, c.Snapshot(), render.RenderOptions{
		Hidden: map[string]string{"_csrf": "tok"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc jsonview.Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{signup.MessageTermsRequired}, doc.Result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&values, doc.Result.Entered); diff != "" {
		t.Fatalf("entered mismatch (-want +got):\n%s", diff)
	}
	if doc.State != state.StateIdle || doc.Form.ID != "signup" {
		t.Fatalf("unexpected document header %+v", doc)
	}
	if diff := cmp.Diff([]render.HiddenField{{Name: "_csrf", Value: "tok"}}, doc.Hidden); diff != "" {
		t.Fatalf("hidden mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_InitialStateEncodesEmptyErrors(t *testing.T) {
	out, err := jsonview.New(jsonview.WithIndent("  ")).Render(context.Background(), model.Form{}, state.New().Snapshot(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	result := raw["result"].(map[string]any)
	if errs, ok := result["errors"].([]any); !ok || len(errs) != 0 {
		t.Fatalf("expected empty errors array, got %#v", result["errors"])
	}
	if _, ok := result["enteredValues"]; ok {
		t.Fatalf("success must not carry entered values")
	}
}
