package kernel

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/blogbuster/database"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/pkg/llogs"
	"github.com/blogbuster/pkg/metrics"
	"github.com/blogbuster/pkg/portal"
	"github.com/blogbuster/pkg/scheduler"
)

const (
	defaultRateLimit = 120
	dbPingJob        = "db-ping"
	dbPingTimeout    = 5 * time.Second
)

func MakeSentry(env *env.Environment) (*portal.Sentry, error) {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Environment: string(env.App.Stage()),
		Debug:       env.App.IsLocal(),
	}

	if err := sentry.Init(cOptions); err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}, nil
}

func MakeDbConnection(env *env.Environment) (*database.Connection, error) {
	dbConn, err := database.MakeConnection(env)
	if err != nil {
		return nil, fmt.Errorf("sql: error connecting to PostgreSQL: %w", err)
	}

	return dbConn, nil
}

func MakeLogs(env *env.Environment) (llogs.Driver, error) {
	lDriver, err := llogs.MakeFilesLogs(env)
	if err != nil {
		return nil, fmt.Errorf("logs: error opening logs file: %w", err)
	}

	return lDriver, nil
}

// MakeDBPing returns nil when no ping schedule is configured.
func MakeDBPing(env *env.Environment, db *database.Connection, collectors *metrics.Collectors) (*scheduler.Scheduler, error) {
	if !env.Health.HasSchedule() {
		return nil, nil
	}

	return scheduler.New(
		dbPingJob,
		env.Health.DBPing,
		func(ctx context.Context) error {
			return db.Ping(ctx)
		},
		scheduler.WithJobTimeout(dbPingTimeout),
		scheduler.WithObserver(collectors.ObserveJob),
	)
}

func MakeEnv(validate *portal.Validator) (*env.Environment, error) {
	port, err := strconv.Atoi(env.GetEnvVar("ENV_DB_PORT"))
	if err != nil {
		return nil, fmt.Errorf("invalid value for ENV_DB_PORT: %w", err)
	}

	rateLimit := defaultRateLimit
	if raw := env.GetEnvVar("ENV_HTTP_RATE_LIMIT"); raw != "" {
		if rateLimit, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("invalid value for ENV_HTTP_RATE_LIMIT: %w", err)
		}
	}

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	db := env.DBEnvironment{
		UserName:     env.GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"),
		UserPassword: env.GetSecretOrEnv("pg_password", "ENV_DB_USER_PASSWORD"),
		DatabaseName: env.GetSecretOrEnv("pg_dbname", "ENV_DB_DATABASE_NAME"),
		Port:         port,
		Host:         env.GetEnvVar("ENV_DB_HOST"),
		DriverName:   database.DriverName,
		SSLMode:      env.GetEnvVar("ENV_DB_SSL_MODE"),
		TimeZone:     env.GetEnvVar("ENV_DB_TIMEZONE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost:  env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort:  env.GetEnvVar("ENV_HTTP_PORT"),
		DevOrigin: env.GetEnvVar("ENV_HTTP_DEV_ORIGIN"),
		RateLimit: rateLimit,
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	healthEnv := env.HealthEnvironment{
		Username: env.GetSecretOrEnv("health_username", "ENV_HEALTH_USERNAME"),
		Password: env.GetSecretOrEnv("health_password", "ENV_HEALTH_PASSWORD"),
		DBPing:   env.GetEnvVar("ENV_HEALTH_DB_PING"),
	}

	sections := []struct {
		name  string
		model any
	}{
		{"APP", app},
		{"Sql", db},
		{"logs", logsEnv},
		{"NETWORK", netEnv},
		{"SENTRY", sentryEnv},
		{"health", healthEnv},
	}

	for _, section := range sections {
		if _, err := validate.Rejects(section.model); err != nil {
			return nil, fmt.Errorf("invalid [%s] model: %s", section.name, validate.GetErrorsAsJson())
		}
	}

	blog := &env.Environment{
		App:     app,
		DB:      db,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Health:  healthEnv,
		Tracing: env.NewTracingEnvironment(),
	}

	if _, err := validate.Rejects(blog); err != nil {
		return nil, fmt.Errorf("invalid [blogbuster] model: %s", validate.GetErrorsAsJson())
	}

	return blog, nil
}
