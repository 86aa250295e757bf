package models

import (
	"math/rand/v2"
	"strconv"
)

// ActivationCode is a short-lived 4-digit numeric credential proving
// ownership of a mail address.
type ActivationCode struct {
	value string
}

// NewActivationCode draws a uniformly random code in [1000, 9999].
func NewActivationCode() ActivationCode {
	return ActivationCode{value: strconv.Itoa(1000 + rand.IntN(9000))}
}

func (c ActivationCode) String() string {
	return c.value
}
