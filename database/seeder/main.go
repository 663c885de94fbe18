package main

import (
	"context"
	"fmt"
	"os"

	"github.com/blogbuster/database/seeder/seeds"
	"github.com/blogbuster/metal/kernel"
	"github.com/blogbuster/pkg/cli"
	"github.com/blogbuster/pkg/portal"
)

const usage = "usage: seeder [all|demo|widgets|fresh]"

func main() {
	printer := cli.NewPrinter(os.Stdout)

	command := "all"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(context.Background(), command, printer); err != nil {
		printer.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, printer cli.Printer) error {
	environment, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		return err
	}

	logs, err := kernel.MakeLogs(environment)
	if err != nil {
		return err
	}
	defer logs.Close()

	dbConnection, err := kernel.MakeDbConnection(environment)
	if err != nil {
		return err
	}
	defer dbConnection.Close()

	if err := dbConnection.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	seeder := seeds.MakeSeeder(dbConnection, environment, printer)

	steps := map[string][]string{
		"all":     {"settings", "demo", "widgets"},
		"demo":    {"demo"},
		"widgets": {"widgets"},
		"fresh":   {"truncate", "settings", "demo", "widgets"},
	}

	plan, ok := steps[command]
	if !ok {
		return fmt.Errorf("unknown command %q, %s", command, usage)
	}

	for i, step := range plan {
		printer.Step(i+1, len(plan), "Running "+step+" ...")

		if err := runStep(ctx, seeder, step, printer); err != nil {
			return fmt.Errorf("%s: %w", step, err)
		}
	}

	printer.Success("db seeded as expected ....")

	return nil
}

func runStep(ctx context.Context, seeder *seeds.Seeder, step string, printer cli.Printer) error {
	switch step {
	case "truncate":
		if err := seeder.TruncateDB(); err != nil {
			return err
		}

		printer.Success("db truncated successfully ...")
	case "settings":
		return seeder.SeedSettings(ctx)
	case "demo":
		return seeder.SeedDemoContent(ctx)
	case "widgets":
		created, err := seeder.SeedWidgets(ctx)
		if err != nil {
			return err
		}

		printer.Success(fmt.Sprintf("Seeded %d sidebar widgets.", created))
	}

	return nil
}
