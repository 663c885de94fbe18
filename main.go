package main

import (
	"log/slog"
	"os"

	_ "github.com/lib/pq"

	"github.com/blogbuster/metal/kernel"
	"github.com/blogbuster/pkg/portal"
)

func main() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		slog.Error("could not load the environment", "error", err)
		os.Exit(1)
	}

	app, err := kernel.MakeApp(secrets, validate)
	if err != nil {
		slog.Error("could not bootstrap the app", "error", err)
		os.Exit(1)
	}

	defer app.CloseDB()
	defer app.CloseLogs()
	defer app.CloseTracer()
	defer app.FlushSentry()

	app.Boot()

	if err := app.Run(); err != nil {
		slog.Error("server stopped with an error", "error", err)
	}
}
