package seeds

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/database/testdb"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/pkg/cli"
)

func setupSeeder(t *testing.T) (*Seeder, *database.Connection, *bytes.Buffer) {
	t.Helper()

	conn := testdb.Open(t)
	out := &bytes.Buffer{}
	e := &env.Environment{App: env.AppEnvironment{Type: "local"}}

	return MakeSeeder(conn, e, cli.NewPrinter(out)), conn, out
}

func count(t *testing.T, conn *database.Connection, model any) int64 {
	t.Helper()

	var total int64
	if err := conn.Sql().Model(model).Count(&total).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	return total
}

func TestSeedDemoContentIsIdempotent(t *testing.T) {
	seeder, conn, out := setupSeeder(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := seeder.SeedDemoContent(ctx); err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
	}

	if got := count(t, conn, &database.Category{}); got != 3 {
		t.Fatalf("expected 3 categories, got %d", got)
	}

	if got := count(t, conn, &database.Tag{}); got != int64(len(demoTags)) {
		t.Fatalf("expected %d tags, got %d", len(demoTags), got)
	}

	if got := count(t, conn, &database.Post{}); got != int64(len(demoPosts)) {
		t.Fatalf("expected %d posts, got %d", len(demoPosts), got)
	}

	if !strings.Contains(out.String(), "and 4 posts") || !strings.Contains(out.String(), "and 0 posts") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	router, err := repository.Posts{DB: conn}.FindPublishedBy(ctx, "how-to-reset-your-wi-fi-router-and-when-you-should")
	if err != nil || router == nil {
		t.Fatalf("expected the router post to be published: %v", err)
	}

	if !router.Featured || router.Category == nil || router.Category.Name != "Troubleshooting" || len(router.Tags) != 3 {
		t.Fatalf("router post not wired: %+v", router)
	}
}

func TestSeedWidgetsCreatesTheDefaultSidebar(t *testing.T) {
	seeder, conn, _ := setupSeeder(t)
	ctx := context.Background()

	created, err := seeder.SeedWidgets(ctx)
	if err != nil || created != len(database.WidgetTypes) {
		t.Fatalf("expected every widget type, got %d (%v)", created, err)
	}

	created, err = seeder.SeedWidgets(ctx)
	if err != nil || created != 0 {
		t.Fatalf("expected a second run to skip, got %d (%v)", created, err)
	}

	widgets, err := repository.Widgets{DB: conn}.Active(ctx)
	if err != nil {
		t.Fatalf("active widgets: %v", err)
	}

	for i, widget := range widgets {
		if widget.SortOrder != uint(i+1) {
			t.Fatalf("widget %s out of order", widget.WidgetType)
		}

		if _, ok := widget.Config(); !ok {
			t.Fatalf("widget %s has no config", widget.WidgetType)
		}
	}

	cfg, _ := widgets[0].Config()

	popular, ok := cfg.(*database.PopularPostsWidget)
	if !ok || popular.PostCount != 5 || popular.TimePeriodDays != 30 {
		t.Fatalf("unexpected popular posts config %+v", cfg)
	}
}

func TestTruncateThenReseed(t *testing.T) {
	seeder, conn, _ := setupSeeder(t)
	ctx := context.Background()

	if err := seeder.SeedDemoContent(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := seeder.SeedSettings(ctx); err != nil {
		t.Fatalf("settings: %v", err)
	}

	if err := seeder.TruncateDB(); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if got := count(t, conn, &database.Post{}); got != 0 {
		t.Fatalf("expected no posts after truncate, got %d", got)
	}

	if err := seeder.SeedDemoContent(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	if got := count(t, conn, &database.Post{}); got != int64(len(demoPosts)) {
		t.Fatalf("expected a full reseed, got %d posts", got)
	}
}
