package database

// Models lists every schema model in dependency order.
func Models() []any {
	return []any{
		&User{},
		&Category{},
		&Tag{},
		&Post{},
		&BuyingGuide{},
		&GuidePick{},
		&ProductReview{},
		&ReviewScore{},
		&HowToSeries{},
		&HowToStep{},
		&QuickTip{},
		&HomepageSettings{},
		&SidebarWidget{},
		&PopularPostsWidget{},
		&RelatedPostsWidget{},
		&AuthorBioWidget{},
		&SocialShareWidget{},
		&NewsletterWidget{},
		&CategoriesWidget{},
		&RecentPostsWidget{},
		&QuickTipsWidget{},
		&BuyingGuidesWidget{},
	}
}

var schemaTables = []string{
	"users",
	"categories",
	"tags",
	"posts",
	"post_tags",
	"buying_guides",
	"guide_picks",
	"product_reviews",
	"review_scores",
	"how_to_series",
	"how_to_steps",
	"quick_tips",
	"homepage_settings",
	"sidebar_widgets",
	"popular_posts_widgets",
	"related_posts_widgets",
	"author_bio_widgets",
	"social_share_widgets",
	"newsletter_widgets",
	"categories_widgets",
	"recent_posts_widgets",
	"quick_tips_widgets",
	"buying_guides_widgets",
}

func GetSchemaTables() []string {
	return append([]string(nil), schemaTables...)
}

func isValidTable(seed string) bool {
	for _, table := range schemaTables {
		if seed == table {
			return true
		}
	}

	return false
}
