package http

import (
	"errors"
	"net/http"

	"github.com/avdeyev/go-signup/internal/service"
	"github.com/avdeyev/go-signup/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMalformedAuthHeader: http.StatusUnprocessableEntity,

	service.ErrWrongPassword:    http.StatusUnauthorized,
	service.ErrAlreadyActivated: http.StatusBadRequest,
	service.ErrNotActivated:     http.StatusForbidden,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrInvalidActivationCode: http.StatusConflict,
	store.ErrCodeExpired:           http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
