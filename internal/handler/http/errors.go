// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Avdeyev

package http

import "errors"

// ErrMalformedAuthHeader is returned when the incoming request carries no
// "Authorization" header, or one that is not a well-formed Basic scheme
// value. Callers match it with [errors.Is]; the mapper renders it as 422.
var ErrMalformedAuthHeader = errors.New("missing or malformed `Authorization` header")
