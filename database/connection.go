package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/blogbuster/metal/env"
)

const DriverName = "postgres"

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

// GormConfig is shared by every connection: unique violations come back as
// gorm.ErrDuplicatedKey and timestamps use the package clock.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return Now()
		},
	}
}

func MakeConnection(e *env.Environment) (*Connection, error) {
	driver, err := gorm.Open(postgres.Open(e.DB.GetDSN()), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Connection{
		driver:     driver,
		driverName: e.DB.DriverName,
		env:        e,
	}, nil
}

// NewConnectionFromGorm wraps an already opened gorm handle (sqlite in tests,
// sqlmock-backed postgres for failure paths).
func NewConnectionFromGorm(db *gorm.DB) *Connection {
	return &Connection{driver: db, driverName: db.Dialector.Name()}
}

func (c *Connection) DriverName() string {
	return c.driverName
}

func (c *Connection) Migrate() error {
	if err := c.driver.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()
	if err != nil {
		slog.Error("There was an error closing the db", "error", err)

		return false
	}

	if err = sqlDB.Close(); err != nil {
		slog.Error("There was an error closing the db", "error", err)

		return false
	}

	return true
}

func (c *Connection) Ping(ctx context.Context) error {
	driver, err := c.driver.DB()
	if err != nil {
		return fmt.Errorf("retrieve db driver: %w", err)
	}

	if err := driver.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	stats := driver.Stats()
	slog.Debug("Database driver is healthy", "open", stats.OpenConnections, "in_use", stats.InUse, "idle", stats.Idle)

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
