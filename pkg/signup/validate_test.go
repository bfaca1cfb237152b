package signup_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/signup"
	"github.com/goliatone/go-signupform/pkg/testsupport"
)

func validValues() model.Values {
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

func TestValidate_AllRulesPass(t *testing.T) {
	got := signup.Validate(validValues())

	if diff := cmp.Diff(model.Result{}, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if !got.OK() {
		t.Fatalf("expected OK result")
	}
}

func TestValidate_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Values)
		want   []string
	}{
		{
			name:   "invalid email",
			mutate: func(v *model.Values) { v.Email = "not-an-email" },
			want:   []string{signup.MessageInvalidEmail},
		},
		{
			name: "short matching password",
			mutate: func(v *model.Values) {
				v.Password = "abc"
				v.ConfirmPassword = "abc"
			},
			want: []string{signup.MessageShortPassword},
		},
		{
			name: "terms absent and no acquisition",
			mutate: func(v *model.Values) {
				v.Terms = false
				v.Acquisition = []string{}
			},
			want: []string{signup.MessageTermsRequired, signup.MessageNoAcquisition},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := validValues()
			tc.mutate(&values)

			got := signup.Validate(values)
			if diff := cmp.Diff(tc.want, got.Errors); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
			if got.Entered == nil {
				t.Fatalf("failed result must carry entered values")
			}
		})
	}
}

func TestValidate_SingleRuleViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Values)
		want   string
	}{
		{"email", func(v *model.Values) { v.Email = "" }, signup.MessageInvalidEmail},
		{"blank password", func(v *model.Values) { v.Password, v.ConfirmPassword = "      ", "      " }, signup.MessageShortPassword},
		{"mismatch", func(v *model.Values) { v.ConfirmPassword = "secret2" }, signup.MessagePasswordMismatch},
		{"first name", func(v *model.Values) { v.FirstName = " " }, signup.MessageMissingName},
		{"last name", func(v *model.Values) { v.LastName = "" }, signup.MessageMissingName},
		{"role", func(v *model.Values) { v.Role = "" }, signup.MessageMissingRole},
		{"terms", func(v *model.Values) { v.Terms = false }, signup.MessageTermsRequired},
		{"acquisition", func(v *model.Values) { v.Acquisition = nil }, signup.MessageNoAcquisition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := validValues()
			tc.mutate(&values)

			got := signup.Validate(values)
			if diff := cmp.Diff([]string{tc.want}, got.Errors); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_EmptySubmissionReportsEveryRuleInOrder(t *testing.T) {
	got := signup.Validate(model.Values{})

	// An empty password equals an empty confirmation, so the mismatch rule
	// passes.
	want := []string{
		signup.MessageInvalidEmail,
		signup.MessageShortPassword,
		signup.MessageMissingName,
		signup.MessageMissingRole,
		signup.MessageTermsRequired,
		signup.MessageNoAcquisition,
	}
	if diff := cmp.Diff(want, got.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_OrderIndependentOfFailureOrder(t *testing.T) {
	values := validValues()
	values.Acquisition = nil
	values.Email = "nope"
	values.ConfirmPassword = "other1"

	got := signup.Validate(values)
	want := []string{
		signup.MessageInvalidEmail,
		signup.MessagePasswordMismatch,
		signup.MessageNoAcquisition,
	}
	if diff := cmp.Diff(want, got.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_EnteredValuesAreUnmodified(t *testing.T) {
	values := model.Values{
		Email:           "  spaced@example.com ",
		Password:        " pw ",
		ConfirmPassword: "pw",
		FirstName:       " Ada ",
		LastName:        "",
		Role:            "founder",
		Terms:           false,
		Acquisition:     []string{"friend", "other"},
	}

	got := signup.Validate(values)
	if got.Entered == nil {
		t.Fatalf("expected entered values")
	}
	if diff := cmp.Diff(values, *got.Entered); diff != "" {
		t.Fatalf("entered values mismatch (-want +got):\n%s", diff)
	}

	values.Acquisition[0] = "google"
	if got.Entered.Acquisition[0] != "friend" {
		t.Fatalf("entered values share the caller's slice")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	values := validValues()
	values.Email = "bad"
	values.Terms = false

	first := signup.Validate(values)
	second := signup.Validate(values)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated validation differs (-first +second):\n%s", diff)
	}
}

func TestRules_Order(t *testing.T) {
	var names []string
	for _, rule := range signup.Rules() {
		names = append(names, rule.Name)
	}
	want := []string{"email", "password", "confirm-password", "names", "role", "terms", "acquisition"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("rule order mismatch (-want +got):\n%s", diff)
	}

	rule, ok := signup.RuleForMessage(signup.MessageMissingRole)
	if !ok || rule.Name != "role" {
		t.Fatalf("RuleForMessage resolved %#v, %v", rule, ok)
	}
	if _, ok := signup.RuleForMessage("unknown"); ok {
		t.Fatalf("unknown message should not resolve")
	}
}

func TestValidate_Fixture(t *testing.T) {
	values := testsupport.MustLoadValues(t, filepath.Join("testdata", "mismatched_passwords.yaml"))

	got := signup.Validate(values)
	want := model.Result{
		Errors:  []string{signup.MessagePasswordMismatch},
		Entered: &values,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if !got.Entered.HasAcquisition("other") {
		t.Fatalf("expected acquisition channels to be carried back")
	}
}
