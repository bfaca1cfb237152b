// Package validation holds the field-level predicates used by the signup
// rules. Every predicate is total: any input string yields true or false and
// nothing panics.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmail reports whether value looks like local@domain. It accepts what a
// browser's type=email input accepts: a non-empty local part of atext and
// dots, and a hostname domain that may be a single label (user@localhost).
func IsEmail(value string) bool {
	at := strings.LastIndex(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	local, domain := value[:at], value[at+1:]
	if strings.IndexFunc(local, func(r rune) bool { return !isLocalRune(r) }) >= 0 {
		return false
	}
	return validate.Var(domain, "hostname_rfc1123") == nil
}

func isLocalRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(".!#$%&'*+/=?^_`{|}~-", r)
}

// IsNotEmpty reports whether value has content once surrounding whitespace
// is removed.
func IsNotEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// HasMinLength reports whether value holds at least n characters. Lengths are
// counted in runes.
func HasMinLength(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// IsEqualToOtherValue reports whether a and b are the same string.
func IsEqualToOtherValue(a, b string) bool {
	return a == b
}
