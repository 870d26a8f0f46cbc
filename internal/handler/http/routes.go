package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes answering in the negotiated request culture
	router.Group(func(r chi.Router) {
		r.Use(h.withCulture, withGZip)
		r.Get("/debug-localization", h.debugLocalization)
		r.Get("/api/messages/{key}", h.getMessage)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
