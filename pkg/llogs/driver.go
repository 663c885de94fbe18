package llogs

import "log/slog"

type Driver interface {
	Logger() *slog.Logger
	Close() error
}
