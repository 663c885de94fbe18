package llogs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/blogbuster/metal/env"
)

// FilesLogs sends the default slog logger to a dated file. Production gets
// JSON lines, every other environment plain text.
type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
	env    *env.Environment
}

func MakeFilesLogs(e *env.Environment) (Driver, error) {
	manager := &FilesLogs{env: e}
	manager.path = manager.DefaultPath()

	if err := os.MkdirAll(filepath.Dir(manager.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	resource, err := os.OpenFile(manager.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	opts := &slog.HandlerOptions{Level: e.Logs.SlogLevel()}

	var handler slog.Handler = slog.NewTextHandler(resource, opts)
	if e.App.IsProduction() {
		handler = slog.NewJSONHandler(resource, opts)
	}

	manager.file = resource
	manager.logger = slog.New(handler).With("app", e.App.Name)

	slog.SetDefault(manager.logger)

	return manager, nil
}

func (manager *FilesLogs) DefaultPath() string {
	logs := manager.env.Logs

	return fmt.Sprintf(logs.Dir, time.Now().UTC().Format(logs.DateFormat))
}

func (manager *FilesLogs) Logger() *slog.Logger {
	return manager.logger
}

func (manager *FilesLogs) Close() error {
	if manager.file == nil {
		return nil
	}

	if err := manager.file.Close(); err != nil {
		return fmt.Errorf("error closing log file: %w", err)
	}

	return nil
}
