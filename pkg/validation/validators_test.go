package validation_test

import (
	"testing"

	"github.com/goliatone/go-signupform/pkg/validation"
)

func TestIsEmail(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@example.org", true},
		{"not-an-email", false},
		{"", false},
		{"@example.com", false},
		{"someone@", false},
		{" a@b.com", false},
		{"a@b.com ", false},
		{"a b@c.com", false},
		{"a@b", true},
		{"user@localhost", true},
		{"o'neil+signup@mail.example.co", true},
		{"a@b@c.com", false},
		{"a@-b.com", false},
		{"a@b..com", false},
		{"a@b.com\n", false},
	}

	for _, tc := range cases {
		if got := validation.IsEmail(tc.value); got != tc.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestIsNotEmpty(t *testing.T) {
	cases := map[string]bool{
		"":        false,
		"   ":     false,
		"\t\n":    false,
		"x":       true,
		"  ada  ": true,
	}
	for value, want := range cases {
		if got := validation.IsNotEmpty(value); got != want {
			t.Errorf("IsNotEmpty(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestHasMinLength(t *testing.T) {
	cases := []struct {
		value string
		n     int
		want  bool
	}{
		{"", 0, true},
		{"", 1, false},
		{"abcde", 6, false},
		{"abcdef", 6, true},
		{"secret1", 6, true},
		{"pässwö", 6, true},
		{"pässw", 6, false},
	}
	for _, tc := range cases {
		if got := validation.HasMinLength(tc.value, tc.n); got != tc.want {
			t.Errorf("HasMinLength(%q, %d) = %v, want %v", tc.value, tc.n, got, tc.want)
		}
	}
}

func TestIsEqualToOtherValue(t *testing.T) {
	if !validation.IsEqualToOtherValue("secret1", "secret1") {
		t.Fatalf("identical strings should be equal")
	}
	if validation.IsEqualToOtherValue("secret1", "Secret1") {
		t.Fatalf("comparison must be case sensitive")
	}
	if validation.IsEqualToOtherValue("secret1", "secret1 ") {
		t.Fatalf("comparison must not trim")
	}
	if !validation.IsEqualToOtherValue("", "") {
		t.Fatalf("empty strings are equal")
	}
}
