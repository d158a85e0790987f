package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	dErrors "filmgate/pkg/domain-errors"
	"filmgate/pkg/platform/httputil"
)

// RateLimit applies a per-client token bucket, keyed by remote host. A limit
// of 0 disables limiting entirely. Burst is the ceiling of the rate so short
// spikes up to one second's allowance pass.
func RateLimit(limit float64, logger *slog.Logger) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	burst := int(limit)
	if burst < 1 {
		burst = 1
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limiterFor := func(host string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[host]
		if !ok {
			l = rate.NewLimiter(rate.Limit(limit), burst)
			limiters[host] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !limiterFor(host).Allow() {
				logger.WarnContext(r.Context(), "rate limit exceeded",
					"request_id", GetRequestID(r.Context()),
					"client", host,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
