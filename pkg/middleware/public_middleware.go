package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/limiter"
	"github.com/blogbuster/pkg/portal"
)

// PublicMiddleware rate limits reader traffic per client IP.
type PublicMiddleware struct {
	rateLimiter  *limiter.MemoryLimiter
	isProduction bool
}

func MakePublicMiddleware(perMinute int, isProduction bool) PublicMiddleware {
	return PublicMiddleware{
		rateLimiter:  limiter.NewMemoryLimiter(1*time.Minute, perMinute),
		isProduction: isProduction,
	}
}

func (p PublicMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if err := p.GuardDependencies(); err != nil {
			return err
		}

		ip := strings.TrimSpace(portal.ParseClientIP(r))
		if ip == "" {
			ip = "unknown"
		}

		if !p.isProduction && isLoopback(ip) {
			return next(w, r)
		}

		if !p.rateLimiter.Allow(ip) {
			slog.Warn("rate limited", "ip", ip, "path", r.URL.Path, "request_id", portal.RequestID(r))

			w.Header().Set("Retry-After", "60")

			return endpoint.TooManyRequests("slow down")
		}

		return next(w, r)
	}
}

func (p PublicMiddleware) GuardDependencies() *endpoint.ApiError {
	if p.rateLimiter == nil {
		err := fmt.Errorf("public middleware missing dependencies: %s", "rateLimiter")

		return endpoint.LogInternalError("public middleware missing dependencies", err)
	}

	return nil
}

func isLoopback(ip string) bool {
	parsed := net.ParseIP(ip)

	return parsed != nil && parsed.IsLoopback()
}
