package handler

import (
	"errors"
	"net/http"

	"github.com/blogbuster/database"
	"github.com/blogbuster/handler/payload"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/portal"
)

type KeepAliveDBHandler struct {
	env *env.HealthEnvironment
	db  *database.Connection
}

func MakeKeepAliveDBHandler(e *env.HealthEnvironment, db *database.Connection) KeepAliveDBHandler {
	return KeepAliveDBHandler{env: e, db: db}
}

func (h KeepAliveDBHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	user, pass, ok := r.BasicAuth()

	if !ok || h.env.HasInvalidCreds(user, pass) {
		return endpoint.LogUnauthorisedError("invalid credentials", errors.New("invalid credentials"))
	}

	if err := h.db.Ping(r.Context()); err != nil {
		return endpoint.LogInternalError("database ping failed", err)
	}

	data := payload.KeepAliveResponse{
		Message:  "pong",
		DateTime: database.Now().Format(portal.DatesLayout),
	}

	return respondNoCache(w, r, data)
}
