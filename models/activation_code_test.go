package models

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewActivationCode_FourDigits(t *testing.T) {
	for range 1000 {
		code := NewActivationCode()

		require.Len(t, code.String(), 4)

		n, err := strconv.Atoi(code.String())
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}
}
