package api

import (
	"net/http"
	"time"

	"portfolio-api/src/utils"

	"github.com/sirupsen/logrus"
)

// APIKeyMiddleware enforces the shared-secret header on everything behind it.
// An empty configured key disables the check, for local development.
func APIKeyMiddleware(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected != "" && r.Header.Get("x-api-key") != expected {
				utils.WriteError(w, utils.NewHTTPError(http.StatusUnauthorized, utils.KindUnauthorized, "invalid or missing api key"), false)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger stores the service logger in the request context and emits
// one line per request.
func RequestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := utils.WithLogger(r.Context(), logger)
			next.ServeHTTP(w, r.WithContext(ctx))
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Info("request handled")
		})
	}
}
