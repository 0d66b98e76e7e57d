package middleware

import (
	"crypto/subtle"
	"net/http"

	"sportello-booking/pkg/utils"

	"go.uber.org/zap"
)

// AdminToken guards admin routes with the shared token from config. There are
// no user accounts on this site, so a static operator token is the whole auth
// surface.
func AdminToken(token string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				utils.ResponseForbidden(w, "Admin access is not configured")
				return
			}

			supplied := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
				logger.Warn("Admin token rejected",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr),
				)
				utils.ResponseUnauthorized(w, "Invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
