package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bookclub/internal/domain"
	"bookclub/internal/service"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext extracts the verified caller identity from the
// request context. Returns nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	ident, _ := ctx.Value(identityContextKey).(*domain.Identity)
	return ident
}

// Authenticate is middleware that resolves the Authorization bearer
// token, if any, into a verified identity on the request context.
// Requests without a valid token proceed anonymously; each operation's
// guard decides whether that is acceptable.
func Authenticate(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token != "" {
			ident, err := auth.VerifyToken(r.Context(), token)
			if err == nil {
				ctx := context.WithValue(r.Context(), identityContextKey, ident)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}

// RequestLog is middleware that logs each request with its status and
// duration at info level.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
