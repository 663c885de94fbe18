package payload

import "github.com/blogbuster/database/repository/pagination"

// SharedContext is merged into every page: the category menu, the featured
// editorial strips and the sidebar.
type SharedContext struct {
	Categories      []CategoryResponse `json:"categories"`
	FeaturedGuides  []GuideResponse    `json:"featured_guides"`
	FeaturedReviews []ReviewResponse   `json:"featured_reviews"`
	FeaturedHowTos  []HowToResponse    `json:"featured_howtos"`
	SidebarWidgets  []WidgetContext    `json:"sidebar_widgets"`
}

type HomePage struct {
	SharedContext
	FeaturedPosts     []PostResponse           `json:"featured_posts"`
	RecentPosts       []PostResponse           `json:"recent_posts"`
	TrendingPosts     []PostResponse           `json:"trending_posts"`
	CategorySpotlight []CategoryResponse       `json:"category_spotlight"`
	QuickTips         []QuickTipResponse       `json:"quick_tips"`
	HomepageSettings  HomepageSettingsResponse `json:"homepage_settings"`
}

type PostListPage struct {
	SharedContext
	Posts            *pagination.Pagination[PostResponse] `json:"posts"`
	SearchQuery      string                               `json:"search_query"`
	SelectedCategory string                               `json:"selected_category"`
	SelectedTag      string                               `json:"selected_tag"`
	Tags             []TagResponse                        `json:"tags"`
}

type PostPage struct {
	SharedContext
	Post         PostResponse   `json:"post"`
	RelatedPosts []PostResponse `json:"related_posts"`
}

type CategoryPage struct {
	SharedContext
	Category CategoryResponse                     `json:"category"`
	Posts    *pagination.Pagination[PostResponse] `json:"posts"`
}

type TagPage struct {
	SharedContext
	Tag   TagResponse                          `json:"tag"`
	Posts *pagination.Pagination[PostResponse] `json:"posts"`
}

type GuidesPage struct {
	SharedContext
	Guides []GuideResponse `json:"guides"`
}

type GuidePage struct {
	SharedContext
	Guide GuideResponse `json:"guide"`
}

type ReviewsPage struct {
	SharedContext
	Reviews []ReviewResponse `json:"reviews"`
}

type ReviewPage struct {
	SharedContext
	Review ReviewResponse `json:"review"`
}

type HowTosPage struct {
	SharedContext
	SeriesList []HowToResponse `json:"series_list"`
}

type HowToPage struct {
	SharedContext
	Series HowToResponse `json:"series"`
}

type KeepAliveResponse struct {
	Message  string `json:"message"`
	DateTime string `json:"date_time"`
}
