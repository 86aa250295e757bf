package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because a user with the same email already exists.
	// It maps the PostgreSQL unique-constraint violation on users.email.
	ErrEmailAlreadyExists = errors.New("user already exists with this mail address")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidActivationCode is returned when no activation code row
	// matches the supplied (user, code) pair.
	ErrInvalidActivationCode = errors.New("invalid activation code provided")

	// ErrCodeExpired is returned when an activation code row matches the
	// supplied pair but its issuance timestamp is outside the freshness
	// window.
	ErrCodeExpired = errors.New("activation code is expired")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason the repository does not recognise.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
