package seeds

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
)

// DefaultWidgets is the stock sidebar, one widget per type in display order.
func DefaultWidgets() []database.WidgetAttrs {
	return []database.WidgetAttrs{
		{
			Type: database.WidgetPopularPosts, Title: "Popular Posts", IsActive: true, SortOrder: 1,
			Config: &database.PopularPostsWidget{PostCount: 5, TimePeriodDays: 30},
		},
		{
			Type: database.WidgetRelatedPosts, Title: "Related Posts", IsActive: true, SortOrder: 2,
			Config: &database.RelatedPostsWidget{PostCount: 4, ShowByCategory: true, ShowByTags: true},
		},
		{
			Type: database.WidgetAuthorBio, Title: "About the Author", IsActive: true, SortOrder: 3,
			Config: &database.AuthorBioWidget{
				BioText:         "Tech writer with 10+ years of experience covering gadgets, software and emerging technologies.",
				ShowSocialLinks: true,
			},
		},
		{
			Type: database.WidgetSocialShare, Title: "Share This Post", IsActive: true, SortOrder: 4,
			Config: &database.SocialShareWidget{ShowFacebook: true, ShowTwitter: true, ShowLinkedIn: true, ShowPinterest: true, ShowEmail: true},
		},
		{
			Type: database.WidgetNewsletter, Title: "Stay Updated", IsActive: true, SortOrder: 5,
			Config: &database.NewsletterWidget{
				Description: "Get the latest tech news, reviews, and tutorials delivered to your inbox weekly.",
				ButtonText:  "Subscribe Now",
				PrivacyText: "We respect your privacy. Unsubscribe anytime.",
			},
		},
		{
			Type: database.WidgetCategories, Title: "Categories", IsActive: true, SortOrder: 6,
			Config: &database.CategoriesWidget{ShowPostCount: true, MaxCategories: 8},
		},
		{
			Type: database.WidgetRecentPosts, Title: "Recent Posts", IsActive: true, SortOrder: 7,
			Config: &database.RecentPostsWidget{PostCount: 5},
		},
		{
			Type: database.WidgetQuickTips, Title: "Quick Tips", IsActive: true, SortOrder: 8,
			Config: &database.QuickTipsWidget{TipCount: 3},
		},
		{
			Type: database.WidgetBuyingGuides, Title: "Buying Guides", IsActive: true, SortOrder: 9,
			Config: &database.BuyingGuidesWidget{GuideCount: 3},
		},
	}
}

// SeedWidgets creates every default widget whose type is still free and
// returns how many were created.
func (s *Seeder) SeedWidgets(ctx context.Context) (int, error) {
	repo := repository.Widgets{DB: s.db}
	created := 0

	for _, attrs := range DefaultWidgets() {
		existing, err := repo.FindByType(ctx, attrs.Type)
		if err != nil {
			return created, err
		}

		if existing != nil {
			s.printer.Muted(fmt.Sprintf("- %s widget already exists", attrs.Title))
			continue
		}

		if _, err := repo.Create(ctx, attrs); err != nil {
			return created, err
		}

		s.printer.Info(fmt.Sprintf("✓ Created %s widget", attrs.Title))
		created++
	}

	return created, nil
}
