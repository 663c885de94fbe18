package repository_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/database/repository/pagination"
	"github.com/blogbuster/database/repository/queries"
	"github.com/blogbuster/metal/env"
)

func newPostgresConnection(t *testing.T) *database.Connection {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres tests skipped in short mode")
	}

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed")
	}

	if err := exec.Command("docker", "ps").Run(); err != nil {
		t.Skip("docker not running")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	pg, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("blogbuster"),
		postgres.WithUsername("tester"),
		postgres.WithPassword("secret-pass"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pg)

	if err != nil {
		t.Fatalf("container run err: %v", err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("host err: %v", err)
	}

	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port err: %v", err)
	}

	e := &env.Environment{
		DB: env.DBEnvironment{
			UserName:     "tester",
			UserPassword: "secret-pass",
			DatabaseName: "blogbuster",
			Port:         port.Int(),
			Host:         host,
			DriverName:   database.DriverName,
			SSLMode:      "disable",
			TimeZone:     "UTC",
		},
	}

	conn, err := database.MakeConnection(e)
	if err != nil {
		t.Fatalf("make connection: %v", err)
	}

	if err := conn.Migrate(); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

func TestPostgresSlugCollisionAndFilters(t *testing.T) {
	conn := newPostgresConnection(t)
	ctx := context.Background()

	author, err := repository.Users{DB: conn}.FirstOrCreate(ctx, database.UsersAttrs{Username: "editor"})
	if err != nil {
		t.Fatalf("author: %v", err)
	}

	posts := repository.Posts{DB: conn}
	attrs := database.PostsAttrs{
		AuthorID: author.ID,
		Title:    "Café Wi-Fi Survival Guide",
		Content:  "Bring 100% of your chargers",
		Status:   database.StatusPublished,
	}

	post, err := posts.Create(ctx, attrs)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if post.Slug != "cafe-wi-fi-survival-guide" || post.PublishedAt == nil {
		t.Fatalf("unexpected post %+v", post)
	}

	if _, err := posts.Create(ctx, attrs); !errors.Is(err, database.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken from postgres, got %v", err)
	}

	result, err := posts.Paginated(ctx, &queries.PostFilters{Text: "100%"}, pagination.FromQuery("5", pagination.PostsPerPage))
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}

	if result.Page != 1 || len(result.Data) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	rows, err := repository.Categories{DB: conn}.WithPostCounts(ctx, 10)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected no categories, got %v %v", rows, err)
	}
}
