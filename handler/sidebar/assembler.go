package sidebar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/handler/payload"
	"github.com/blogbuster/pkg/metrics"
)

const MenuCategories = 10

const (
	outcomeRendered = "rendered"
	outcomeSkipped  = "skipped"
	outcomeFailed   = "failed"
)

// Assembler builds the context every page shares: the category menu, the
// featured editorial strips and one fragment per active sidebar widget.
type Assembler struct {
	posts      repository.Posts
	categories repository.Categories
	quickTips  repository.QuickTips
	guides     repository.BuyingGuides
	reviews    repository.Reviews
	howTos     repository.HowTos
	widgets    repository.Widgets
	metrics    *metrics.Collectors
	now        func() time.Time
}

func NewAssembler(db *database.Connection, collectors *metrics.Collectors) *Assembler {
	return &Assembler{
		posts:      repository.Posts{DB: db},
		categories: repository.Categories{DB: db},
		quickTips:  repository.QuickTips{DB: db},
		guides:     repository.BuyingGuides{DB: db},
		reviews:    repository.Reviews{DB: db},
		howTos:     repository.HowTos{DB: db},
		widgets:    repository.Widgets{DB: db},
		metrics:    collectors,
		now:        database.Now,
	}
}

// Shared is merged into every page. current is the post being shown, or nil.
func (a *Assembler) Shared(ctx context.Context, current *database.Post) (payload.SharedContext, error) {
	var shared payload.SharedContext

	categories, err := a.categories.All(ctx, MenuCategories)
	if err != nil {
		return shared, err
	}

	guides, reviews, howTos, err := a.Featured(ctx)
	if err != nil {
		return shared, err
	}

	widgets, err := a.Widgets(ctx, current)
	if err != nil {
		return shared, err
	}

	shared.Categories = payload.GetCategoriesResponse(categories)
	shared.FeaturedGuides = payload.MapAll(guides, payload.GetGuideResponse)
	shared.FeaturedReviews = payload.MapAll(reviews, payload.GetReviewResponse)
	shared.FeaturedHowTos = payload.MapAll(howTos, payload.GetHowToResponse)
	shared.SidebarWidgets = widgets

	return shared, nil
}

// Featured returns up to three guides, reviews and how-to series each,
// featured entries first and topped up with the latest published ones.
func (a *Assembler) Featured(ctx context.Context) ([]database.BuyingGuide, []database.ProductReview, []database.HowToSeries, error) {
	guides, err := a.guides.FeaturedWithBackfill(ctx, repository.FeaturedLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("featured guides: %w", err)
	}

	reviews, err := a.reviews.FeaturedWithBackfill(ctx, repository.FeaturedLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("featured reviews: %w", err)
	}

	howTos, err := a.howTos.FeaturedWithBackfill(ctx, repository.FeaturedLimit)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("featured how-tos: %w", err)
	}

	return guides, reviews, howTos, nil
}

// Widgets returns the active widgets in display order. A widget without a
// stored config keeps its slot with a nil fragment.
func (a *Assembler) Widgets(ctx context.Context, current *database.Post) ([]payload.WidgetContext, error) {
	widgets, err := a.widgets.Active(ctx)
	if err != nil {
		return nil, err
	}

	contexts := make([]payload.WidgetContext, 0, len(widgets))

	for i := range widgets {
		widget := &widgets[i]

		item := payload.WidgetContext{
			Type:      widget.WidgetType,
			Title:     widget.Title,
			SortOrder: widget.SortOrder,
		}

		cfg, ok := widget.Config()
		if !ok {
			slog.Debug("sidebar widget has no config", "widget_type", widget.WidgetType, "widget_id", widget.ID)
			a.metrics.Fragment(string(widget.WidgetType), outcomeSkipped)
			contexts = append(contexts, item)

			continue
		}

		fragment, err := a.fragment(ctx, cfg, current)
		if err != nil {
			a.metrics.Fragment(string(widget.WidgetType), outcomeFailed)

			return nil, fmt.Errorf("widget [%s]: %w", widget.WidgetType, err)
		}

		outcome := outcomeRendered
		if fragment == nil {
			outcome = outcomeSkipped
		}

		a.metrics.Fragment(string(widget.WidgetType), outcome)

		item.Fragment = fragment
		contexts = append(contexts, item)
	}

	return contexts, nil
}

// Related resolves the related posts widget for current.
func (a *Assembler) Related(ctx context.Context, current *database.Post, cfg *database.RelatedPostsWidget) ([]database.Post, error) {
	return a.posts.Related(ctx, current, cfg.ShowByCategory, cfg.ShowByTags, int(cfg.PostCount))
}

func (a *Assembler) fragment(ctx context.Context, cfg database.WidgetConfig, current *database.Post) (any, error) {
	switch c := cfg.(type) {
	case *database.PopularPostsWidget:
		since := a.now().AddDate(0, 0, -int(c.TimePeriodDays))

		posts, err := a.posts.Popular(ctx, since, int(c.PostCount))
		if err != nil {
			return nil, err
		}

		return payload.PostsFragment{Posts: payload.GetPostCards(posts)}, nil

	case *database.RelatedPostsWidget:
		if current == nil {
			return nil, nil
		}

		posts, err := a.Related(ctx, current, c)
		if err != nil {
			return nil, err
		}

		return payload.PostsFragment{Posts: payload.GetPostCards(posts)}, nil

	case *database.AuthorBioWidget:
		return payload.GetAuthorBioFragment(c), nil

	case *database.SocialShareWidget:
		return payload.GetSocialShareFragment(c), nil

	case *database.NewsletterWidget:
		return payload.GetNewsletterFragment(c), nil

	case *database.CategoriesWidget:
		rows, err := a.categories.WithPostCounts(ctx, int(c.MaxCategories))
		if err != nil {
			return nil, err
		}

		categories := make([]payload.CategoryCountResponse, 0, len(rows))
		for i := range rows {
			categories = append(categories, payload.CategoryCountResponse{
				CategoryResponse: *payload.GetCategoryResponse(&rows[i].Category),
				PostCount:        rows[i].PostCount,
			})
		}

		return payload.CategoriesFragment{Categories: categories, ShowPostCount: c.ShowPostCount}, nil

	case *database.RecentPostsWidget:
		posts, err := a.posts.Recent(ctx, int(c.PostCount))
		if err != nil {
			return nil, err
		}

		return payload.PostsFragment{Posts: payload.GetPostCards(posts)}, nil

	case *database.QuickTipsWidget:
		tips, err := a.quickTips.Active(ctx, int(c.TipCount))
		if err != nil {
			return nil, err
		}

		return payload.QuickTipsFragment{Tips: payload.GetQuickTipsResponse(tips)}, nil

	case *database.BuyingGuidesWidget:
		guides, err := a.guides.Latest(ctx, int(c.GuideCount))
		if err != nil {
			return nil, err
		}

		return payload.GuidesFragment{Guides: payload.MapAll(guides, payload.GetGuideResponse)}, nil
	}

	return nil, fmt.Errorf("%w: %s", database.ErrUnknownWidgetType, cfg.WidgetType())
}
