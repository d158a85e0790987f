package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"filmgate/pkg/platform/httputil"
)

// Recovery converts handler panics into 500 responses with the standard JSON
// error envelope instead of crashing the process.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					ctx := r.Context()
					logger.ErrorContext(ctx, "handler panic",
						"request_id", GetRequestID(ctx),
						"panic", rec,
					)
					httputil.WriteError(w, fmt.Errorf("%v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
