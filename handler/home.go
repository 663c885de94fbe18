package handler

import (
	"net/http"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/handler/payload"
	"github.com/blogbuster/handler/sidebar"
	"github.com/blogbuster/pkg/endpoint"
)

const (
	homeFeaturedPosts = 1
	homeRecentPosts   = 6
	homeTrendingPosts = 4
	homeSpotlight     = 4
	homeQuickTips     = 6
)

type HomeHandler struct {
	posts      repository.Posts
	categories repository.Categories
	quickTips  repository.QuickTips
	settings   repository.Settings
	sidebar    *sidebar.Assembler
}

func MakeHomeHandler(db *database.Connection, assembler *sidebar.Assembler) HomeHandler {
	return HomeHandler{
		posts:      repository.Posts{DB: db},
		categories: repository.Categories{DB: db},
		quickTips:  repository.QuickTips{DB: db},
		settings:   repository.Settings{DB: db},
		sidebar:    assembler,
	}
}

func (h HomeHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	ctx := r.Context()

	featured, err := h.posts.Featured(ctx, homeFeaturedPosts)
	if err != nil {
		return endpoint.LogInternalError("could not load featured posts", err)
	}

	exclude := make([]uint64, 0, len(featured))
	for _, post := range featured {
		exclude = append(exclude, post.ID)
	}

	recent, err := h.posts.Recent(ctx, homeRecentPosts, exclude...)
	if err != nil {
		return endpoint.LogInternalError("could not load recent posts", err)
	}

	trending, err := h.posts.Trending(ctx, homeTrendingPosts, exclude...)
	if err != nil {
		return endpoint.LogInternalError("could not load trending posts", err)
	}

	spotlight, err := h.categories.Spotlight(ctx, homeSpotlight)
	if err != nil {
		return endpoint.LogInternalError("could not load spotlight categories", err)
	}

	tips, err := h.quickTips.Active(ctx, homeQuickTips)
	if err != nil {
		return endpoint.LogInternalError("could not load quick tips", err)
	}

	settings, err := h.settings.Load(ctx)
	if err != nil {
		return endpoint.LogInternalError("could not load homepage settings", err)
	}

	shared, err := h.sidebar.Shared(ctx, nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.HomePage{
		SharedContext:     shared,
		FeaturedPosts:     payload.GetPostCards(featured),
		RecentPosts:       payload.GetPostCards(recent),
		TrendingPosts:     payload.GetPostCards(trending),
		CategorySpotlight: payload.GetCategoriesResponse(spotlight),
		QuickTips:         payload.GetQuickTipsResponse(tips),
		HomepageSettings:  payload.GetHomepageSettingsResponse(*settings),
	})
}
