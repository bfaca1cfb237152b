package signup

import (
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/validation"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Messages shown for each failing rule.
const (
	MessageInvalidEmail     = "Invalid email address."
	MessageShortPassword    = "You must provide a password with at least six characters."
	MessagePasswordMismatch = "Passwords do not match."
	MessageMissingName      = "Please provide both your first and last name."
	MessageMissingRole      = "Please select a role."
	MessageTermsRequired    = "You must agree to the terms and conditions."
	MessageNoAcquisition    = "Please select at least one acquisition channel."
)

// Rule is a named check over one or more fields with a fixed message.
type Rule struct {
	Name    string
	Message string
	Check   func(model.Values) bool
}

var rules = []Rule{
	{
		Name:    "email",
		Message: MessageInvalidEmail,
		Check: func(v model.Values) bool {
			return validation.IsEmail(v.Email)
		},
	},
	{
		Name:    "password",
		Message: MessageShortPassword,
		Check: func(v model.Values) bool {
			return validation.IsNotEmpty(v.Password) && validation.HasMinLength(v.Password, MinPasswordLength)
		},
	},
	{
		Name:    "confirm-password",
		Message: MessagePasswordMismatch,
		Check: func(v model.Values) bool {
			return validation.IsEqualToOtherValue(v.Password, v.ConfirmPassword)
		},
	},
	{
		Name:    "names",
		Message: MessageMissingName,
		Check: func(v model.Values) bool {
			return validation.IsNotEmpty(v.FirstName) && validation.IsNotEmpty(v.LastName)
		},
	},
	{
		Name:    "role",
		Message: MessageMissingRole,
		Check: func(v model.Values) bool {
			return validation.IsNotEmpty(v.Role)
		},
	},
	{
		Name:    "terms",
		Message: MessageTermsRequired,
		Check: func(v model.Values) bool {
			return v.Terms
		},
	},
	{
		Name:    "acquisition",
		Message: MessageNoAcquisition,
		Check: func(v model.Values) bool {
			return len(v.Acquisition) > 0
		},
	},
}

// Rules returns the rule set in evaluation order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// RuleForMessage resolves a message back to the rule that produces it.
func RuleForMessage(message string) (Rule, bool) {
	for _, rule := range rules {
		if rule.Message == message {
			return rule, true
		}
	}
	return Rule{}, false
}
