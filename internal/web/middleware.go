package web

import (
	"net/http"
	"time"

	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs one structured line per request. It must run after
// middleware.RequestID so the request ID is available.
func requestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				reqLogger := logger.With(
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"remote", r.RemoteAddr,
				)
				args := []any{
					"status", status,
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
				}
				if status >= http.StatusInternalServerError {
					reqLogger.Warn("http request", args...)
					return
				}
				reqLogger.Info("http request", args...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
