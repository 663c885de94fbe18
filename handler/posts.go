package handler

import (
	"net/http"
	"strings"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/database/repository/pagination"
	"github.com/blogbuster/database/repository/queries"
	"github.com/blogbuster/handler/paginate"
	"github.com/blogbuster/handler/payload"
	"github.com/blogbuster/handler/sidebar"
	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/metrics"
)

const (
	listingTags  = 12
	relatedPosts = 3
)

type PostsHandler struct {
	posts   repository.Posts
	tags    repository.Tags
	sidebar *sidebar.Assembler
	metrics *metrics.Collectors
}

func MakePostsHandler(db *database.Connection, assembler *sidebar.Assembler, collectors *metrics.Collectors) PostsHandler {
	return PostsHandler{
		posts:   repository.Posts{DB: db},
		tags:    repository.Tags{DB: db},
		sidebar: assembler,
		metrics: collectors,
	}
}

func (h PostsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	ctx := r.Context()
	query := r.URL.Query()

	filters := queries.PostFilters{
		Text:     query.Get("q"),
		Category: query.Get("category"),
		Tag:      query.Get("tag"),
	}

	result, err := h.posts.Paginated(ctx, &filters, paginate.NewFrom(r.URL, pagination.PostsPerPage))
	if err != nil {
		return endpoint.LogInternalError("could not list posts", err)
	}

	tags, err := h.tags.All(ctx, listingTags)
	if err != nil {
		return endpoint.LogInternalError("could not list tags", err)
	}

	shared, err := h.sidebar.Shared(ctx, nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.PostListPage{
		SharedContext:    shared,
		Posts:            pagination.HydratePagination(result, payload.GetPostCard),
		SearchQuery:      strings.TrimSpace(filters.Text),
		SelectedCategory: strings.TrimSpace(filters.Category),
		SelectedTag:      strings.TrimSpace(filters.Tag),
		Tags:             payload.GetTagsResponse(tags),
	})
}

// Show counts a view before composing, so the page is never cached.
func (h PostsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	ctx := r.Context()
	slug := payload.GetSlugFrom(r)

	post, err := h.posts.FindPublishedBy(ctx, slug)
	if err != nil {
		return endpoint.LogInternalError("could not load the post", err)
	}

	if post == nil {
		return endpoint.NotFound("post not found: " + slug)
	}

	if err := h.posts.IncrementViews(ctx, post); err != nil {
		return endpoint.LogInternalError("could not count the view", err)
	}

	h.metrics.ViewCounted()

	related, err := h.posts.SameCategory(ctx, post, relatedPosts)
	if err != nil {
		return endpoint.LogInternalError("could not load related posts", err)
	}

	shared, err := h.sidebar.Shared(ctx, post)
	if err != nil {
		return sharedContextError(err)
	}

	return respondNoCache(w, r, payload.PostPage{
		SharedContext: shared,
		Post:          payload.GetPostResponse(*post),
		RelatedPosts:  payload.GetPostCards(related),
	})
}
