package kernel

import (
	"context"
	"fmt"
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/blogbuster/database"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/metal/router"
	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/llogs"
	"github.com/blogbuster/pkg/metrics"
	"github.com/blogbuster/pkg/middleware"
	"github.com/blogbuster/pkg/portal"
	"github.com/blogbuster/pkg/scheduler"
)

type App struct {
	router    *router.Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	tracer    *portal.TracerProvider
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	metrics   *metrics.Collectors
	dbPing    *scheduler.Scheduler
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	logs, err := MakeLogs(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	sentryHub, err := MakeSentry(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	tracer, err := portal.NewTracerProvider(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	db, err := MakeDbConnection(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > %w", err)
	}

	collectors := metrics.NewCollectors()

	dbPing, err := MakeDBPing(env, db, collectors)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not schedule the db ping: %w", err)
	}

	app := App{
		env:       env,
		validator: validator,
		logs:      logs,
		sentry:    sentryHub,
		tracer:    tracer,
		db:        db,
		metrics:   collectors,
		dbPing:    dbPing,
	}

	app.SetRouter(router.Router{
		Env:        env,
		Db:         db,
		Collectors: collectors,
		Mux:        baseHttp.NewServeMux(),
		Pipeline: middleware.Pipeline{
			PublicMiddleware: middleware.MakePublicMiddleware(env.Network.RateLimit, env.App.IsProduction()),
		},
	})

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	r := a.router

	r.Home()
	r.Posts()
	r.Categories()
	r.Tags()
	r.Guides()
	r.Reviews()
	r.HowTos()
	r.KeepAliveDB()
	r.Metrics()
}

// Run serves until a shutdown signal arrives. The db ping, when scheduled,
// stops with the server.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.dbPing != nil {
		if err := a.dbPing.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", a.dbPing.Name(), err)
		}
	}

	addr := a.env.Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	slog.Info("serving pages", "address", addr, "env", a.env.App.Type)

	return endpoint.RunServer(addr, server)
}

func (a *App) Handler() baseHttp.Handler {
	cfg := endpoint.ServerHandlerConfig{
		IsProduction: a.IsProduction(),
	}

	if mux := a.GetMux(); mux != nil {
		cfg.Mux = mux
	}

	if a.env != nil {
		cfg.DevHost = a.env.Network.DevOrigin
	}

	if a.sentry != nil && a.sentry.Handler != nil {
		cfg.Wrap = a.sentry.Handler.Handle
	}

	return endpoint.NewServerHandler(cfg)
}
