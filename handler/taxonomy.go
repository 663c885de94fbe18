package handler

import (
	"net/http"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/database/repository/pagination"
	"github.com/blogbuster/handler/paginate"
	"github.com/blogbuster/handler/payload"
	"github.com/blogbuster/handler/sidebar"
	"github.com/blogbuster/pkg/endpoint"
)

type CategoriesHandler struct {
	categories repository.Categories
	posts      repository.Posts
	sidebar    *sidebar.Assembler
}

func MakeCategoriesHandler(db *database.Connection, assembler *sidebar.Assembler) CategoriesHandler {
	return CategoriesHandler{
		categories: repository.Categories{DB: db},
		posts:      repository.Posts{DB: db},
		sidebar:    assembler,
	}
}

func (h CategoriesHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	ctx := r.Context()
	slug := payload.GetSlugFrom(r)

	category, err := h.categories.FindBy(ctx, slug)
	if err != nil {
		return endpoint.LogInternalError("could not load the category", err)
	}

	if category == nil {
		return endpoint.NotFound("category not found: " + slug)
	}

	result, err := h.posts.InCategory(ctx, category, paginate.NewFrom(r.URL, pagination.PostsPerPage))
	if err != nil {
		return endpoint.LogInternalError("could not list category posts", err)
	}

	shared, err := h.sidebar.Shared(ctx, nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.CategoryPage{
		SharedContext: shared,
		Category:      *payload.GetCategoryResponse(category),
		Posts:         pagination.HydratePagination(result, payload.GetPostCard),
	})
}

type TagsHandler struct {
	tags    repository.Tags
	posts   repository.Posts
	sidebar *sidebar.Assembler
}

func MakeTagsHandler(db *database.Connection, assembler *sidebar.Assembler) TagsHandler {
	return TagsHandler{
		tags:    repository.Tags{DB: db},
		posts:   repository.Posts{DB: db},
		sidebar: assembler,
	}
}

func (h TagsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	ctx := r.Context()
	slug := payload.GetSlugFrom(r)

	tag, err := h.tags.FindBy(ctx, slug)
	if err != nil {
		return endpoint.LogInternalError("could not load the tag", err)
	}

	if tag == nil {
		return endpoint.NotFound("tag not found: " + slug)
	}

	result, err := h.posts.WithTag(ctx, tag, paginate.NewFrom(r.URL, pagination.PostsPerPage))
	if err != nil {
		return endpoint.LogInternalError("could not list tagged posts", err)
	}

	shared, err := h.sidebar.Shared(ctx, nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.TagPage{
		SharedContext: shared,
		Tag:           payload.TagResponse{UUID: tag.UUID, Name: tag.Name, Slug: tag.Slug},
		Posts:         pagination.HydratePagination(result, payload.GetPostCard),
	})
}
