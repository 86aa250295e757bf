package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))

	router.Post("/api/user", h.register)
	router.Post("/api/user/activate", h.activate)
	router.Get("/api/health", h.health)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
