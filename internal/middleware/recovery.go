package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/auth"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a panicking handler into a 500 and marks the request span as failed.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				panicErr := fmt.Errorf("panic: %v", recovered)
				span := trace.SpanFromContext(r.Context())
				span.RecordError(panicErr)
				span.SetStatus(codes.Error, "handler panic")

				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"user":   r.Header.Get(auth.UserIDHeader),
				}).Errorf("%s\n%s", panicErr, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
