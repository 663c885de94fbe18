package kernel

import (
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/blogbuster/database"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/metal/router"
)

func (a *App) SetRouter(r router.Router) {
	a.router = &r
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	if err := a.logs.Close(); err != nil {
		slog.Error("close logs", "error", err)
	}
}

func (a *App) CloseDB() {
	if a.db == nil {
		return
	}

	a.db.Close()
}

func (a *App) CloseTracer() {
	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("shutdown tracer", "error", err)
	}
}

func (a *App) FlushSentry() {
	if a.sentry == nil {
		return
	}

	sentry.Flush(2 * time.Second)
}

func (a *App) IsLocal() bool {
	return a.env != nil && a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env != nil && a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
