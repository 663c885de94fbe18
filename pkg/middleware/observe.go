package middleware

import (
	"net/http"

	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/metrics"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}

	s.ResponseWriter.WriteHeader(code)
}

// Observe counts every response of the named page by its final status.
func Observe(collectors *metrics.Collectors, page string) endpoint.Middleware {
	return func(next endpoint.ApiHandler) endpoint.ApiHandler {
		return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
			sw := &statusWriter{ResponseWriter: w}

			err := next(sw, r)

			switch {
			case err != nil:
				collectors.PageServed(page, err.Status)
			case sw.status != 0:
				collectors.PageServed(page, sw.status)
			default:
				collectors.PageServed(page, http.StatusOK)
			}

			return err
		}
	}
}
