package signup

import "github.com/goliatone/go-signupform/pkg/model"

// Violations returns every rule that values fails, in evaluation order.
func Violations(values model.Values) []Rule {
	var failed []Rule
	for _, rule := range rules {
		if !rule.Check(values) {
			failed = append(failed, rule)
		}
	}
	return failed
}

// Validate evaluates all rules against values. A passing submission yields a
// result with no errors and no entered values; otherwise the result carries
// each failing rule's message and a copy of values.
func Validate(values model.Values) model.Result {
	failed := Violations(values)
	if len(failed) == 0 {
		return model.Result{}
	}

	messages := make([]string, 0, len(failed))
	for _, rule := range failed {
		messages = append(messages, rule.Message)
	}
	entered := values.Clone()
	return model.Result{
		Errors:  messages,
		Entered: &entered,
	}
}
