package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/database/testdb"
)

var baseTime = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	t      *testing.T
	ctx    context.Context
	conn   *database.Connection
	author *database.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	conn := testdb.Open(t)
	ctx := context.Background()

	author, err := repository.Users{DB: conn}.FirstOrCreate(ctx, database.UsersAttrs{Username: "editor", DisplayName: "The Editor"})
	if err != nil {
		t.Fatalf("create author: %v", err)
	}

	return &fixture{t: t, ctx: ctx, conn: conn, author: author}
}

func (f *fixture) posts() repository.Posts {
	return repository.Posts{DB: f.conn}
}

func (f *fixture) category(name string) *database.Category {
	f.t.Helper()

	category, err := repository.Categories{DB: f.conn}.Create(f.ctx, database.CategoriesAttrs{Name: name})
	if err != nil {
		f.t.Fatalf("create category %s: %v", name, err)
	}

	return category
}

func (f *fixture) tag(name string) *database.Tag {
	f.t.Helper()

	tag, err := repository.Tags{DB: f.conn}.Create(f.ctx, database.TagAttrs{Name: name})
	if err != nil {
		f.t.Fatalf("create tag %s: %v", name, err)
	}

	return tag
}

type postOption func(*database.PostsAttrs)

func inCategory(c *database.Category) postOption {
	return func(a *database.PostsAttrs) { a.CategoryID = &c.ID }
}

func tagged(tags ...*database.Tag) postOption {
	return func(a *database.PostsAttrs) {
		for _, tag := range tags {
			a.TagIDs = append(a.TagIDs, tag.ID)
		}
	}
}

func draft() postOption {
	return func(a *database.PostsAttrs) {
		a.Status = database.StatusDraft
		a.PublishedAt = nil
	}
}

func featured() postOption {
	return func(a *database.PostsAttrs) { a.Featured = true }
}

func publishedAt(at time.Time) postOption {
	return func(a *database.PostsAttrs) { a.PublishedAt = &at }
}

// post creates a published post, by default published at baseTime.
func (f *fixture) post(title string, opts ...postOption) *database.Post {
	f.t.Helper()

	at := baseTime
	attrs := database.PostsAttrs{
		AuthorID:    f.author.ID,
		Title:       title,
		Content:     "Some body text about " + title,
		Status:      database.StatusPublished,
		PublishedAt: &at,
	}

	for _, opt := range opts {
		opt(&attrs)
	}

	post, err := f.posts().Create(f.ctx, attrs)
	if err != nil {
		f.t.Fatalf("create post %s: %v", title, err)
	}

	return post
}

func (f *fixture) setViews(post *database.Post, views uint64) {
	f.t.Helper()

	if err := f.conn.Sql().Model(post).UpdateColumn("views", views).Error; err != nil {
		f.t.Fatalf("set views: %v", err)
	}
}

func ids[T repository.Identifiable](items []T) []uint64 {
	out := make([]uint64, len(items))
	for i, item := range items {
		out[i] = item.GetID()
	}

	return out
}
