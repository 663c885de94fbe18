package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/database/testdb"
	"github.com/blogbuster/handler/payload"
	"github.com/blogbuster/handler/sidebar"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/metrics"
)

var publishedBase = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

type site struct {
	t         *testing.T
	ctx       context.Context
	conn      *database.Connection
	author    *database.User
	assembler *sidebar.Assembler
	metrics   *metrics.Collectors
}

func newSite(t *testing.T) *site {
	t.Helper()

	conn := testdb.Open(t)
	ctx := context.Background()

	author, err := repository.Users{DB: conn}.FirstOrCreate(ctx, database.UsersAttrs{Username: "editor"})
	if err != nil {
		t.Fatalf("author: %v", err)
	}

	collectors := metrics.NewCollectors()

	return &site{
		t:         t,
		ctx:       ctx,
		conn:      conn,
		author:    author,
		assembler: sidebar.NewAssembler(conn, collectors),
		metrics:   collectors,
	}
}

func (s *site) post(title string, status database.PostStatus, featured bool, offset time.Duration, category *database.Category) *database.Post {
	s.t.Helper()

	at := publishedBase.Add(offset)
	attrs := database.PostsAttrs{
		AuthorID:    s.author.ID,
		Title:       title,
		Content:     "Body of " + title,
		Status:      status,
		Featured:    featured,
		PublishedAt: &at,
	}

	if status == database.StatusDraft {
		attrs.PublishedAt = nil
	}

	if category != nil {
		attrs.CategoryID = &category.ID
	}

	post, err := repository.Posts{DB: s.conn}.Create(s.ctx, attrs)
	if err != nil {
		s.t.Fatalf("create post: %v", err)
	}

	return post
}

func (s *site) category(name string) *database.Category {
	s.t.Helper()

	category, err := repository.Categories{DB: s.conn}.Create(s.ctx, database.CategoriesAttrs{Name: name})
	if err != nil {
		s.t.Fatalf("create category: %v", err)
	}

	return category
}

func request(target string, slug string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)

	if slug != "" {
		req.SetPathValue("slug", slug)
	}

	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	return out
}

func expectStatus(t *testing.T, apiErr *endpoint.ApiError, status int) {
	t.Helper()

	if apiErr == nil || apiErr.Status != status {
		t.Fatalf("expected status %d, got %#v", status, apiErr)
	}
}

func TestPostsIndexClampsOutOfRangePage(t *testing.T) {
	s := newSite(t)

	for i := 0; i < 12; i++ {
		s.post(fmt.Sprintf("Listing post %d", i), database.StatusPublished, false, time.Duration(i)*time.Hour, nil)
	}

	h := MakePostsHandler(s.conn, s.assembler, s.metrics)
	rec := httptest.NewRecorder()

	if err := h.Index(rec, request("/posts/?page=999", "")); err != nil {
		t.Fatalf("index: %v", err)
	}

	page := decode[payload.PostListPage](t, rec)

	if page.Posts.Page != 2 || len(page.Posts.Data) != 3 || page.Posts.TotalPages != 2 {
		t.Fatalf("expected clamped last page, got page %d with %d items", page.Posts.Page, len(page.Posts.Data))
	}

	if page.Categories == nil || page.SidebarWidgets == nil {
		t.Fatalf("expected shared context on the listing")
	}
}

func TestPostsIndexEchoesFilters(t *testing.T) {
	s := newSite(t)

	s.post("Router tips", database.StatusPublished, false, 0, nil)
	s.post("Speaker tips", database.StatusPublished, false, time.Hour, nil)

	h := MakePostsHandler(s.conn, s.assembler, s.metrics)
	rec := httptest.NewRecorder()

	if err := h.Index(rec, request("/posts/?q=router&category=&tag=", "")); err != nil {
		t.Fatalf("index: %v", err)
	}

	page := decode[payload.PostListPage](t, rec)

	if page.SearchQuery != "router" || len(page.Posts.Data) != 1 || page.Posts.Data[0].Title != "Router tips" {
		t.Fatalf("unexpected filtered page %+v", page.Posts)
	}

	if page.Posts.Data[0].Content != "" {
		t.Fatalf("listing cards should not carry the body")
	}
}

func TestPostShowCountsViewAndHidesDrafts(t *testing.T) {
	s := newSite(t)

	tech := s.category("Tech")
	post := s.post("Detail post", database.StatusPublished, false, 0, tech)
	sibling := s.post("Sibling post", database.StatusPublished, false, time.Hour, tech)
	hidden := s.post("Draft post", database.StatusDraft, false, 0, tech)

	h := MakePostsHandler(s.conn, s.assembler, s.metrics)
	rec := httptest.NewRecorder()

	if err := h.Show(rec, request("/post/"+post.Slug+"/", post.Slug)); err != nil {
		t.Fatalf("show: %v", err)
	}

	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("expected an uncached detail page, got %q", rec.Header().Get("Cache-Control"))
	}

	page := decode[payload.PostPage](t, rec)

	if page.Post.Views != 1 || page.Post.Content == "" {
		t.Fatalf("expected counted view and full body, got %+v", page.Post)
	}

	if len(page.RelatedPosts) != 1 || page.RelatedPosts[0].UUID != sibling.UUID {
		t.Fatalf("expected the sibling as related post, got %+v", page.RelatedPosts)
	}

	var stored database.Post
	s.conn.Sql().First(&stored, post.ID)

	if stored.Views != 1 || testutil.ToFloat64(s.metrics.ViewIncrements) != 1 {
		t.Fatalf("expected one stored view")
	}

	expectStatus(t, h.Show(httptest.NewRecorder(), request("/post/x/", hidden.Slug)), http.StatusNotFound)
	expectStatus(t, h.Show(httptest.NewRecorder(), request("/post/x/", "missing")), http.StatusNotFound)
}

func TestCategoryAndTagPages(t *testing.T) {
	s := newSite(t)

	tech := s.category("Tech")
	s.post("Tech post", database.StatusPublished, false, 0, tech)

	tag, err := repository.Tags{DB: s.conn}.Create(s.ctx, database.TagAttrs{Name: "Unused"})
	if err != nil {
		t.Fatalf("tag: %v", err)
	}

	categories := MakeCategoriesHandler(s.conn, s.assembler)
	rec := httptest.NewRecorder()

	if err := categories.Show(rec, request("/category/tech/", "tech")); err != nil {
		t.Fatalf("category: %v", err)
	}

	categoryPage := decode[payload.CategoryPage](t, rec)
	if categoryPage.Category.Slug != "tech" || categoryPage.Posts.Total != 1 {
		t.Fatalf("unexpected category page %+v", categoryPage.Posts)
	}

	tags := MakeTagsHandler(s.conn, s.assembler)
	rec = httptest.NewRecorder()

	if err := tags.Show(rec, request("/tag/unused/", tag.Slug)); err != nil {
		t.Fatalf("tag: %v", err)
	}

	tagPage := decode[payload.TagPage](t, rec)
	if tagPage.Posts.Total != 0 || tagPage.Posts.Data == nil || tagPage.Posts.Page != 1 {
		t.Fatalf("expected an empty first page, got %+v", tagPage.Posts)
	}

	expectStatus(t, categories.Show(httptest.NewRecorder(), request("/category/nope/", "nope")), http.StatusNotFound)
	expectStatus(t, tags.Show(httptest.NewRecorder(), request("/tag/nope/", "nope")), http.StatusNotFound)
}

func TestHomeKeepsFeaturedOutOfOtherLists(t *testing.T) {
	s := newSite(t)

	lead := s.post("Lead", database.StatusPublished, true, 10*time.Hour, nil)
	for i := 0; i < 3; i++ {
		s.post(fmt.Sprintf("Regular %d", i), database.StatusPublished, false, time.Duration(i)*time.Hour, nil)
	}

	h := MakeHomeHandler(s.conn, s.assembler)
	rec := httptest.NewRecorder()

	if err := h.Handle(rec, request("/", "")); err != nil {
		t.Fatalf("home: %v", err)
	}

	page := decode[payload.HomePage](t, rec)

	if len(page.FeaturedPosts) != 1 || page.FeaturedPosts[0].UUID != lead.UUID {
		t.Fatalf("expected the lead as featured post, got %+v", page.FeaturedPosts)
	}

	for _, list := range [][]payload.PostResponse{page.RecentPosts, page.TrendingPosts} {
		if len(list) != 3 {
			t.Fatalf("expected three posts, got %d", len(list))
		}

		for _, post := range list {
			if post.UUID == lead.UUID {
				t.Fatalf("featured post repeated in a list")
			}
		}
	}

	if page.HomepageSettings.HeroHeading != database.DefaultHomepageSettings().HeroHeading {
		t.Fatalf("expected default homepage copy, got %+v", page.HomepageSettings)
	}
}

func TestGuidesPagesAndConditionalGet(t *testing.T) {
	s := newSite(t)

	guide := &database.BuyingGuide{Title: "Best headphones", Summary: "s", Published: true}
	if err := (repository.BuyingGuides{DB: s.conn}).Create(s.ctx, guide); err != nil {
		t.Fatalf("guide: %v", err)
	}

	h := MakeGuidesHandler(s.conn, s.assembler)
	rec := httptest.NewRecorder()

	if err := h.Index(rec, request("/guides/", "")); err != nil {
		t.Fatalf("index: %v", err)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected an etag")
	}

	page := decode[payload.GuidesPage](t, rec)
	if len(page.Guides) != 1 || len(page.FeaturedGuides) != 1 {
		t.Fatalf("expected the guide listed and backfilled, got %+v", page.Guides)
	}

	req := request("/guides/", "")
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()

	if err := h.Index(rec, req); err != nil {
		t.Fatalf("index: %v", err)
	}

	if rec.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	if err := h.Show(rec, request("/guides/best-headphones/", "best-headphones")); err != nil {
		t.Fatalf("show: %v", err)
	}

	expectStatus(t, h.Show(httptest.NewRecorder(), request("/guides/nope/", "nope")), http.StatusNotFound)
}

func TestReviewAndHowToPages(t *testing.T) {
	s := newSite(t)

	review := &database.ProductReview{ProductName: "Pixel 10", Summary: "s", Verdict: "v", OverallScore: 9.26, Published: true}
	if err := (repository.Reviews{DB: s.conn}).Create(s.ctx, review); err != nil {
		t.Fatalf("review: %v", err)
	}

	reviews := MakeReviewsHandler(s.conn, s.assembler)
	rec := httptest.NewRecorder()

	if err := reviews.Show(rec, request("/reviews/pixel-10/", "pixel-10")); err != nil {
		t.Fatalf("review show: %v", err)
	}

	reviewPage := decode[payload.ReviewPage](t, rec)
	if reviewPage.Review.OverallScore != 9.3 {
		t.Fatalf("expected rounded score, got %v", reviewPage.Review.OverallScore)
	}

	if err := reviews.Index(httptest.NewRecorder(), request("/reviews/", "")); err != nil {
		t.Fatalf("review index: %v", err)
	}

	howTos := MakeHowTosHandler(s.conn, s.assembler)
	rec = httptest.NewRecorder()

	if err := howTos.Index(rec, request("/how-to/", "")); err != nil {
		t.Fatalf("how-to index: %v", err)
	}

	if list := decode[payload.HowTosPage](t, rec); len(list.SeriesList) != 0 || list.SeriesList == nil {
		t.Fatalf("expected an empty series list")
	}

	expectStatus(t, howTos.Show(httptest.NewRecorder(), request("/how-to/nope/", "nope")), http.StatusNotFound)
	expectStatus(t, reviews.Show(httptest.NewRecorder(), request("/reviews/nope/", "nope")), http.StatusNotFound)
}

func TestKeepAliveDB(t *testing.T) {
	s := newSite(t)
	health := &env.HealthEnvironment{Username: "health-user", Password: "health-pass"}
	h := MakeKeepAliveDBHandler(health, s.conn)

	expectStatus(t, h.Handle(httptest.NewRecorder(), request("/ping-db", "")), http.StatusUnauthorized)

	req := request("/ping-db", "")
	req.SetBasicAuth("health-user", "health-pass")
	rec := httptest.NewRecorder()

	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("ping: %v", err)
	}

	if resp := decode[payload.KeepAliveResponse](t, rec); resp.Message != "pong" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
