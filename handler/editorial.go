package handler

import (
	"net/http"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/handler/payload"
	"github.com/blogbuster/handler/sidebar"
	"github.com/blogbuster/pkg/endpoint"
)

type GuidesHandler struct {
	guides  repository.BuyingGuides
	sidebar *sidebar.Assembler
}

func MakeGuidesHandler(db *database.Connection, assembler *sidebar.Assembler) GuidesHandler {
	return GuidesHandler{guides: repository.BuyingGuides{DB: db}, sidebar: assembler}
}

func (h GuidesHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	guides, err := h.guides.Published(r.Context())
	if err != nil {
		return endpoint.LogInternalError("could not list buying guides", err)
	}

	shared, err := h.sidebar.Shared(r.Context(), nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.GuidesPage{
		SharedContext: shared,
		Guides:        payload.MapAll(guides, payload.GetGuideResponse),
	})
}

func (h GuidesHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	guide, err := h.guides.FindPublishedBy(r.Context(), slug)
	if err != nil {
		return endpoint.LogInternalError("could not load the buying guide", err)
	}

	if guide == nil {
		return endpoint.NotFound("buying guide not found: " + slug)
	}

	shared, err := h.sidebar.Shared(r.Context(), nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.GuidePage{SharedContext: shared, Guide: payload.GetGuideResponse(*guide)})
}

type ReviewsHandler struct {
	reviews repository.Reviews
	sidebar *sidebar.Assembler
}

func MakeReviewsHandler(db *database.Connection, assembler *sidebar.Assembler) ReviewsHandler {
	return ReviewsHandler{reviews: repository.Reviews{DB: db}, sidebar: assembler}
}

func (h ReviewsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	reviews, err := h.reviews.Published(r.Context())
	if err != nil {
		return endpoint.LogInternalError("could not list reviews", err)
	}

	shared, err := h.sidebar.Shared(r.Context(), nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.ReviewsPage{
		SharedContext: shared,
		Reviews:       payload.MapAll(reviews, payload.GetReviewResponse),
	})
}

func (h ReviewsHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	review, err := h.reviews.FindPublishedBy(r.Context(), slug)
	if err != nil {
		return endpoint.LogInternalError("could not load the review", err)
	}

	if review == nil {
		return endpoint.NotFound("review not found: " + slug)
	}

	shared, err := h.sidebar.Shared(r.Context(), nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.ReviewPage{SharedContext: shared, Review: payload.GetReviewResponse(*review)})
}

type HowTosHandler struct {
	howTos  repository.HowTos
	sidebar *sidebar.Assembler
}

func MakeHowTosHandler(db *database.Connection, assembler *sidebar.Assembler) HowTosHandler {
	return HowTosHandler{howTos: repository.HowTos{DB: db}, sidebar: assembler}
}

func (h HowTosHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	series, err := h.howTos.Published(r.Context())
	if err != nil {
		return endpoint.LogInternalError("could not list how-to series", err)
	}

	shared, err := h.sidebar.Shared(r.Context(), nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.HowTosPage{
		SharedContext: shared,
		SeriesList:    payload.MapAll(series, payload.GetHowToResponse),
	})
}

func (h HowTosHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	series, err := h.howTos.FindPublishedBy(r.Context(), slug)
	if err != nil {
		return endpoint.LogInternalError("could not load the how-to series", err)
	}

	if series == nil {
		return endpoint.NotFound("how-to series not found: " + slug)
	}

	shared, err := h.sidebar.Shared(r.Context(), nil)
	if err != nil {
		return sharedContextError(err)
	}

	return respond(w, r, payload.HowToPage{SharedContext: shared, Series: payload.GetHowToResponse(*series)})
}
