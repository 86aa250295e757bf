package models

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// passwordSpecials is the fixed set of allowed special characters.
const passwordSpecials = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"

const (
	passwordMinLen = 8
	passwordMaxLen = 20
)

const passwordReason = "Password must be 8-20 characters long and contain at least: " +
	"one uppercase letter (A-Z), one lowercase letter (a-z), one number (0-9), " +
	"one special character: ! @ # $ % ^ & * ( ) _ + - = [ ] { } ; : ' \" , . < > / ? ` ~"

// Password holds the raw password value between construction and
// snapshotting. The raw value never crosses the persistence boundary;
// [Password.Hash] is the only exported projection.
type Password struct {
	value string
}

// NewPassword validates the composition rules: length 8-20 and at least
// one uppercase letter, one lowercase letter, one digit and one character
// from [passwordSpecials]; no other characters are allowed.
// Returns a *ValidationError with Prop "password" on failure.
func NewPassword(raw string) (Password, error) {
	if !validPassword(raw) {
		return Password{}, &ValidationError{Prop: "password", Reason: passwordReason}
	}

	return Password{value: raw}, nil
}

func validPassword(raw string) bool {
	if len(raw) < passwordMinLen || len(raw) > passwordMaxLen {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return false
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}

// Hash computes a salted bcrypt hash of the raw value. A fresh salt is
// generated on every call, so two hashes of the same password differ.
// Callers must hash exactly once per persisted record and never re-hash
// a stored hash.
func (p Password) Hash() (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.value), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
