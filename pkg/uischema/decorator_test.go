package uischema_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/uischema"
)

func loadStore(t *testing.T, overlay string) *uischema.Store {
	t.Helper()
	store, err := uischema.LoadFS(fstest.MapFS{"copy.yaml": {Data: []byte(overlay)}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func mustField(t *testing.T, form model.Form, name string) model.Field {
	t.Helper()
	field, ok := form.Field(name)
	if !ok {
		t.Fatalf("field %s not found", name)
	}
	return field
}

func TestDecorator_Decorate(t *testing.T) {
	form, err := model.SignupForm(uischema.NewDecorator(loadStore(t, yamlOverlay)))
	if err != nil {
		t.Fatalf("signup form: %v", err)
	}

	if form.Title != "Join the beta" {
		t.Fatalf("title not applied: %q", form.Title)
	}
	if form.SubmitLabel != "Create account" {
		t.Fatalf("submit label not applied: %q", form.SubmitLabel)
	}
	if form.ResetLabel != "Reset" {
		t.Fatalf("blank reset label should keep the default, got %q", form.ResetLabel)
	}
	if got := mustField(t, form, model.FieldEmail).Label; got != "Work email" {
		t.Fatalf("email label mismatch: %q", got)
	}

	role := mustField(t, form, model.FieldRole)
	if role.Label != "What best describes your role?" {
		t.Fatalf("role label should be untouched, got %q", role.Label)
	}
	if got := role.Options[3]; got.Value != "founder" || got.Label != "Founder / CEO" {
		t.Fatalf("founder option mismatch: %+v", got)
	}
	if model.RoleOptions[3].Label != "Founder" {
		t.Fatalf("package-level role options must not be mutated")
	}
}

func TestDecorator_RejectsUnknownTargets(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "forms:\n  signup:\n    fields:\n      nickname:\n        label: Nick\n",
		"unknown option": "forms:\n  signup:\n    fields:\n      role:\n        options:\n          pirate: Pirate\n",
	}
	for name, overlay := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := model.SignupForm(uischema.NewDecorator(loadStore(t, overlay)))
			if err == nil || !strings.Contains(err.Error(), "uischema:") {
				t.Fatalf("expected uischema error, got %v", err)
			}
		})
	}
}

func TestDecorator_NoOverlayIsNoop(t *testing.T) {
	want, _ := model.SignupForm()
	got, err := model.SignupForm(uischema.NewDecorator(loadStore(t, jsonOverlay)), uischema.NewDecorator(nil))
	if err != nil {
		t.Fatalf("signup form: %v", err)
	}
	if got.Title != want.Title || len(got.Fields) != len(want.Fields) {
		t.Fatalf("form changed without a matching overlay")
	}
}
