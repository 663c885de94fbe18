package seeds

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/pkg/cli"
)

// Seeder fills a database with demo content and the default sidebar. Every
// step is idempotent: rows that already exist are left alone.
type Seeder struct {
	db      *database.Connection
	env     *env.Environment
	printer cli.Printer
}

func MakeSeeder(db *database.Connection, env *env.Environment, printer cli.Printer) *Seeder {
	return &Seeder{
		db:      db,
		env:     env,
		printer: printer,
	}
}

func (s *Seeder) TruncateDB() error {
	return database.NewTruncate(s.db, s.env).Execute()
}

// SeedSettings makes sure the homepage copy row exists.
func (s *Seeder) SeedSettings(ctx context.Context) error {
	if _, err := (repository.Settings{DB: s.db}).Load(ctx); err != nil {
		return fmt.Errorf("seed homepage settings: %w", err)
	}

	return nil
}
