package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shivamkr082003/Brainly/internal/api"
)

// RateLimit caps requests per client IP using a fixed window counter in
// Redis (INCR, with the expiry set when the window opens). A nil client
// disables the limiter entirely, so deployments without Redis keep working.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rdb == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if host, _, err := net.SplitHostPort(ip); err == nil {
				ip = host
			}
			key := "ratelimit:" + r.URL.Path + ":" + ip

			n, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis being down should not take signin down with it.
				next.ServeHTTP(w, r)
				return
			}
			if n == 1 {
				rdb.Expire(r.Context(), key, window)
			}
			if n > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window/time.Second)))
				api.Message(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
