package models

import (
	"regexp"
	"strings"
)

// emailPattern accepts the simple local@domain.tld shape: non-empty
// local part, single "@", and at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Email is the canonical (lowercased) mail address of an account.
// Construction is the only validation point; a zero Email is invalid
// and must never leave NewEmail.
type Email struct {
	value string
}

// NewEmail lowercases raw and validates it against [emailPattern].
// Returns a *ValidationError with Prop "email" on failure.
func NewEmail(raw string) (Email, error) {
	value := strings.ToLower(raw)
	if !emailPattern.MatchString(value) {
		return Email{}, &ValidationError{Prop: "email", Reason: "invalid mail syntax"}
	}

	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}
