package http

import (
	"log/slog"
	"net/http"

	"papervec/internal/contextutil"
)

// LoggerMiddleware puts a request-scoped structured logger into the context
// so handlers log with the request's method and path attached.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		ctx := contextutil.WithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
