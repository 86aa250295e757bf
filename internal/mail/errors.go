package mail

import "errors"

// ErrMailSend is returned when an activation code could not be delivered.
// The registration use case never surfaces it to the HTTP caller; the
// background dispatcher logs it and moves on.
var ErrMailSend = errors.New("activation code couldn't be sent")
