// Package http exposes a small status API next to the ingestion pipeline:
// a liveness endpoint and the catalog of past runs.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"papervec/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Runs storage.RunStore
}

// NewRouter builds the status API router.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)

	r.Method(http.MethodGet, "/healthz", NewHealthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/runs", NewRunsHandler(deps.Runs))
	})

	return r
}
