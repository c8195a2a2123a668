package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/correlation"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logger writes one access log line per request. The correlation token is
// logged only when the caller sent a valid one.
func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrapResponseWriter(w)
			next.ServeHTTP(ww, r)

			attrs := []any{
				slog.Int("status", ww.status),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.String("duration", time.Since(start).String()),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			}
			if token := correlation.FromRequest(r); token != "" {
				attrs = append(attrs, slog.String("correlation_token", token))
			}

			logger.InfoContext(r.Context(), "request", attrs...)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}
