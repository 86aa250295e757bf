package service

import "errors"

var (
	// ErrWrongPassword is returned when Basic-Auth credentials name an
	// existing account but the password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrAlreadyActivated is returned by the inactive-only gate when the
	// account has already redeemed an activation code.
	ErrAlreadyActivated = errors.New("account is already activated")

	// ErrNotActivated is returned by the active-only gate when the
	// account has not redeemed an activation code yet.
	ErrNotActivated = errors.New("account not activated")
)
