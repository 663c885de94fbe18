package portal

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

func ParseClientIP(r *http.Request) string {
	xff := strings.TrimSpace(r.Header.Get(ForwardedForHeader))
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}

// RequestID returns the request id stored in the context by the request id
// middleware, falling back to the inbound header.
func RequestID(r *http.Request) string {
	if r == nil {
		return ""
	}

	if v, ok := r.Context().Value(RequestIDKey).(string); ok {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}

	return strings.TrimSpace(r.Header.Get(RequestIDHeader))
}
