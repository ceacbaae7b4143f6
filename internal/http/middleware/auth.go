package middleware

import (
	"log/slog"
	"net/http"

	"github.com/giladbarnea/assetvista-core/internal/http/response"
	"github.com/giladbarnea/assetvista-core/internal/security"
	"github.com/giladbarnea/assetvista-core/internal/service"
)

// RequireSession gates every collection endpoint. It fails closed: a missing
// cookie, an invalid or expired session, and a session-store failure all deny
// with 401 before the handler does any work. Store failures are logged, never
// surfaced to the caller.
func RequireSession(auth service.AuthServiceInterface, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := security.GetCookie(r, security.SessionCookieName)
			ok, err := auth.Verify(r.Context(), token)
			if err != nil {
				logger.Error("session check failed", "path", r.URL.Path, "error", err)
				response.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !ok {
				response.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
