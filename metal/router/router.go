package router

import (
	baseHttp "net/http"

	"github.com/blogbuster/database"
	"github.com/blogbuster/handler"
	"github.com/blogbuster/handler/sidebar"
	"github.com/blogbuster/metal/env"
	"github.com/blogbuster/pkg/endpoint"
	"github.com/blogbuster/pkg/metrics"
	"github.com/blogbuster/pkg/middleware"
)

type Router struct {
	Env        *env.Environment
	Mux        *baseHttp.ServeMux
	Pipeline   middleware.Pipeline
	Db         *database.Connection
	Collectors *metrics.Collectors
	Assembler  *sidebar.Assembler
}

// PublicPipelineFor runs a reader page through the public stack and counts
// its responses under page.
func (r *Router) PublicPipelineFor(page string, apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			middleware.Observe(r.Collectors, page),
			r.Pipeline.Public,
		),
	)
}

func (r *Router) sidebar() *sidebar.Assembler {
	if r.Assembler == nil {
		r.Assembler = sidebar.NewAssembler(r.Db, r.Collectors)
	}

	return r.Assembler
}

func (r *Router) Home() {
	abstract := handler.MakeHomeHandler(r.Db, r.sidebar())

	r.Mux.HandleFunc("GET /{$}", r.PublicPipelineFor("home", abstract.Handle))
}

func (r *Router) Posts() {
	abstract := handler.MakePostsHandler(r.Db, r.sidebar(), r.Collectors)

	r.Mux.HandleFunc("GET /posts/{$}", r.PublicPipelineFor("posts", abstract.Index))
	r.Mux.HandleFunc("GET /post/{slug}/{$}", r.PublicPipelineFor("post", abstract.Show))
}

func (r *Router) Categories() {
	abstract := handler.MakeCategoriesHandler(r.Db, r.sidebar())

	r.Mux.HandleFunc("GET /category/{slug}/{$}", r.PublicPipelineFor("category", abstract.Show))
}

func (r *Router) Tags() {
	abstract := handler.MakeTagsHandler(r.Db, r.sidebar())

	r.Mux.HandleFunc("GET /tag/{slug}/{$}", r.PublicPipelineFor("tag", abstract.Show))
}

func (r *Router) Guides() {
	abstract := handler.MakeGuidesHandler(r.Db, r.sidebar())

	r.Mux.HandleFunc("GET /guides/{$}", r.PublicPipelineFor("guides", abstract.Index))
	r.Mux.HandleFunc("GET /guides/{slug}/{$}", r.PublicPipelineFor("guide", abstract.Show))
}

func (r *Router) Reviews() {
	abstract := handler.MakeReviewsHandler(r.Db, r.sidebar())

	r.Mux.HandleFunc("GET /reviews/{$}", r.PublicPipelineFor("reviews", abstract.Index))
	r.Mux.HandleFunc("GET /reviews/{slug}/{$}", r.PublicPipelineFor("review", abstract.Show))
}

func (r *Router) HowTos() {
	abstract := handler.MakeHowTosHandler(r.Db, r.sidebar())

	r.Mux.HandleFunc("GET /how-to/{$}", r.PublicPipelineFor("how-tos", abstract.Index))
	r.Mux.HandleFunc("GET /how-to/{slug}/{$}", r.PublicPipelineFor("how-to", abstract.Show))
}

func (r *Router) KeepAliveDB() {
	abstract := handler.MakeKeepAliveDBHandler(&r.Env.Health, r.Db)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle, middleware.RequestID),
	)

	r.Mux.HandleFunc("GET /ping-db", apiHandler)
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", r.Collectors.Handler())
}
