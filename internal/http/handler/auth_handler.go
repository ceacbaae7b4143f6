package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/giladbarnea/assetvista-core/internal/http/response"
	"github.com/giladbarnea/assetvista-core/internal/security"
	"github.com/giladbarnea/assetvista-core/internal/service"
)

type AuthHandler struct {
	auth    service.AuthServiceInterface
	cookies *security.CookieManager
	ttl     time.Duration
	logger  *slog.Logger
}

func NewAuthHandler(auth service.AuthServiceInterface, cookies *security.CookieManager, ttl time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies, ttl: ttl, logger: logger}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, _, err := h.auth.Login(r.Context(), body.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, service.ErrAuthNotConfigured):
			h.logger.Error("login rejected: password hash or salt not configured")
			response.Error(w, http.StatusInternalServerError, "Server configuration error")
		default:
			h.logger.Error("login failed", "error", err)
			response.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.cookies.SetSessionCookie(w, token, h.ttl)
	response.OK(w)
}

// Logout always succeeds from the client's perspective: the cookie is
// cleared even when the store delete fails.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := security.GetCookie(r, security.SessionCookieName)
	if err := h.auth.Logout(r.Context(), token); err != nil {
		h.logger.Error("session delete failed", "error", err)
	}
	h.cookies.ClearSessionCookie(w)
	response.OK(w)
}

// Session reports authentication state as a bare {authenticated: bool} body,
// outside the usual envelope.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := security.GetCookie(r, security.SessionCookieName)
	ok, err := h.auth.Verify(r.Context(), token)

	status := http.StatusOK
	switch {
	case err != nil:
		h.logger.Error("session check failed", "error", err)
		status = http.StatusInternalServerError
		ok = false
	case !ok:
		status = http.StatusUnauthorized
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]bool{"authenticated": ok})
}
