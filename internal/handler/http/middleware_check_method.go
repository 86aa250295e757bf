// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Avdeyev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered via [chi.Mux.MethodNotAllowed].
//
// Chi's default is to answer 405 when a path matches a route but the method
// does not. This override answers 404 instead, hiding the existence of the
// route from callers probing with unsupported methods. Only exact pattern
// matches are considered; parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
