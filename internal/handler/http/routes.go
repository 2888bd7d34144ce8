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

	router.Post("/auth/register", h.register)
	router.Post("/auth/login", h.login)

	router.Get("/users", h.listUsers)
	router.Get("/users/{userID}", h.getUserByID)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
