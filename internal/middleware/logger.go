package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const idempotencyKeyHeader = "Idempotency-Key"

// Logger writes one line per request. Server errors go out at error level and
// client errors at warn, so a rejected order submission stays visible.
func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	logger = logger.With(slog.String("component", "http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrapResponseWriter(w)
			next.ServeHTTP(ww, r)

			ctx := r.Context()
			attrs := []any{
				slog.Int("status", ww.status),
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.String("duration", time.Since(start).String()),
				slog.String("request_id", chimw.GetReqID(ctx)),
			}
			if key := r.Header.Get(idempotencyKeyHeader); key != "" {
				attrs = append(attrs, slog.String("idempotency_key", key))
			}

			logAt(ctx, logger, ww.status, attrs)
		})
	}
}

func logAt(ctx context.Context, logger *slog.Logger, status int, attrs []any) {
	switch {
	case status >= http.StatusInternalServerError:
		logger.ErrorContext(ctx, "request", attrs...)
	case status >= http.StatusBadRequest:
		logger.WarnContext(ctx, "request", attrs...)
	default:
		logger.InfoContext(ctx, "request", attrs...)
	}
}

// routePattern is the matched chi pattern, so /orders/{token} is one series
// rather than one per order.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unknown"
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
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}
