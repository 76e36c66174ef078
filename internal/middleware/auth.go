package middleware

import (
	"net/http"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/auth"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type secretChecker interface {
	IsAllowed(authorization string) bool
}

type AuthMiddlewareHandler struct {
	checker      secretChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(checker secretChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker: checker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
		},
	}
}

// AuthCheck lets through requests carrying the app secret, and scopes them
// to the user named in the X-User-ID header.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if !h.checker.IsAllowed(r.Header.Get("Authorization")) {
				log.Tracef("[invalid secret] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-secret")
				return
			}

			userID, err := auth.ParseUserID(r.Header.Get(auth.UserIDHeader))
			if err != nil {
				log.Tracef("[missing user] [auth middleware] %s: %s", r.URL.Path, err)
				http.Error(w, "missing or invalid user id", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-user")
				return
			}
			span.SetAttributes(attribute.String("user", userID.String()))

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(ctx, userID)))
		})
	}
}
