package middleware

import (
	"github.com/blogbuster/pkg/endpoint"
)

type Pipeline struct {
	PublicMiddleware PublicMiddleware
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}

// Public is the stack every reader-facing page goes through.
func (m Pipeline) Public(h endpoint.ApiHandler) endpoint.ApiHandler {
	return m.Chain(h, RequestID, m.PublicMiddleware.Handle)
}
