package models

import "fmt"

// ValidationError reports that a single input property failed its
// construction-time validation. Prop names the offending property
// ("email" or "password") and Reason is a human-readable explanation.
//
// The struct doubles as the JSON body of a 422 response, so the field
// tags are part of the public API.
type ValidationError struct {
	Prop   string `json:"prop"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Prop, e.Reason)
}
