package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/giladbarnea/assetvista-core/internal/http/response"
)

// Fixed-window counter per client IP. INCR and PEXPIRE run as one script so
// a crashed request can never leave a counter without an expiry.
var loginRateLimitScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window_ms = tonumber(ARGV[2])

local count = redis.call("INCR", key)
if count == 1 then
  redis.call("PEXPIRE", key, window_ms)
end
if count > limit then
  return 0
end
return 1
`)

// LoginRateLimit throttles login attempts per client IP to blunt offline
// password guessing. The limiter fails open on Redis errors: rate limiting is
// hardening, not an authorization check.
func LoginRateLimit(client redis.UniversalClient, perMinute int, logger *slog.Logger) func(http.Handler) http.Handler {
	window := time.Minute
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:login:%s", clientIP(r))
			allowed, err := loginRateLimitScript.Run(r.Context(), client,
				[]string{key}, perMinute, window.Milliseconds()).Int()
			if err != nil {
				logger.Error("login rate limiter unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if allowed == 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				response.Error(w, http.StatusTooManyRequests, "Too many login attempts")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
