package middleware

import (
	"context"
	"log/slog"
	"net/http"
)

// LoggerContextKey holds the request-scoped *slog.Logger.
const LoggerContextKey contextKey = "logger"

func withLogger(r *http.Request, logger *slog.Logger) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), LoggerContextKey, logger))
}

// WithRequestLogger stores a logger tagged with method, path and, when
// present, request id and client ip. Place it after RequestID and
// WithClientIP.
func WithRequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			if id := GetRequestID(r.Context()); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}
			if ip := GetClientIPFromContext(r.Context()); ip != "" {
				attrs = append(attrs, slog.String("client_ip", ip))
			}
			next.ServeHTTP(w, withLogger(r, base.With(attrs...)))
		})
	}
}

// WithUserLogger adds user_id and role for authenticated requests. Place
// it after WithUser.
func WithUserLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			next.ServeHTTP(w, r)
			return
		}
		logger := GetLogger(r.Context()).With(
			slog.String("user_id", user.ID.String()),
			slog.String("role", string(user.Role)),
		)
		next.ServeHTTP(w, withLogger(r, logger))
	})
}

// GetLogger returns the request-scoped logger, else the first non-nil
// fallback, else slog.Default().
func GetLogger(ctx context.Context, fallback ...*slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*slog.Logger); ok {
		return logger
	}
	if len(fallback) > 0 && fallback[0] != nil {
		return fallback[0]
	}
	return slog.Default()
}
