package seeds

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
	"github.com/blogbuster/pkg/gorm"
)

type demoPost struct {
	title    string
	category string
	excerpt  string
	content  string
	tags     []string
	featured bool
}

var demoCategories = []database.CategoriesAttrs{
	{Name: "Tech Essentials", Description: "Core how-tos that help you get more from the devices you rely on every day."},
	{Name: "Buying Guides", Description: "Curated shopping advice with detailed recommendation lists."},
	{Name: "Troubleshooting", Description: "Step-by-step fixes for the most common device and software problems."},
}

var demoTags = []string{"Windows", "Android", "iOS", "Smart Home", "Streaming", "Productivity", "Security"}

var demoPosts = []demoPost{
	{
		title:    "How to Reset Your Wi-Fi Router (and When You Should)",
		category: "Troubleshooting",
		excerpt:  "Routers need reboots just like computers do. Here is how to reset yours safely without wiping important settings.",
		content: "If your Wi-Fi network suddenly slows down or devices refuse to connect, restarting the router should be your first step. " +
			"Unplug the router, wait a full minute, then plug it back in and allow another 30 seconds for the connection to stabilise. " +
			"Still stuck? Log in to the admin page, check for firmware updates and confirm that DHCP is enabled. " +
			"Finish with a speed test to make sure your ISP delivers the bandwidth you pay for.",
		tags:     []string{"Smart Home", "Windows", "Android"},
		featured: true,
	},
	{
		title:    "The Best Noise-Cancelling Headphones of 2025",
		category: "Buying Guides",
		excerpt:  "We tested more than a dozen flagship ANC headphones. These four models deliver the best mix of sound, comfort and smart features.",
		content: "Premium noise-cancelling headphones are part of the everyday commute. We scored comfort, sound profile, noise reduction and companion apps. " +
			"The Sony WH-1000XM5 still leads overall thanks to its warm sound signature and adaptive ANC. " +
			"AirPods Max pair perfectly with iOS, while the Bose QuietComfort Ultra is the pick for travel. " +
			"Gamers should look at the SteelSeries Arctis Nova Pro Wireless for simultaneous 2.4GHz and Bluetooth pairing.",
		tags:     []string{"Productivity", "Smart Home"},
		featured: true,
	},
	{
		title:    "5 iPhone Privacy Settings Our Editors Always Enable",
		category: "Tech Essentials",
		excerpt:  "Strengthen your iPhone privacy in five minutes. These built-in settings make sure apps only see what you approve.",
		content: "Start by visiting Settings > Privacy & Security and flip on App Privacy Report. " +
			"Disable precise location for social apps and set Photos access to Selected Photos. " +
			"Enable Lockdown Mode if you store sensitive work files and use Hide My Email for newsletters. " +
			"Finally, block cross-site tracking in Safari for a cleaner browsing footprint.",
		tags: []string{"iOS", "Security"},
	},
	{
		title:    "Stream TV Like a Pro: 4 Essential Tips",
		category: "Tech Essentials",
		excerpt:  "Buffering and subscription chaos are fixable. Here is how to keep watchlists organised across apps.",
		content: "Consolidate your streaming history with a single watchlist so you never lose your place. " +
			"Use your router's Quality of Service feature to prioritise the streaming box on movie nights. " +
			"When bandwidth dips, forcing 1080p instead of 4K prevents buffering. " +
			"Audit subscriptions every quarter, since many people pay for a service they rarely open.",
		tags: []string{"Streaming", "Smart Home"},
	},
}

func (s *Seeder) SeedEditor(ctx context.Context) (*database.User, error) {
	return repository.Users{DB: s.db}.FirstOrCreate(ctx, database.UsersAttrs{
		Username:    "editor",
		FirstName:   "Tech",
		LastName:    "Editor",
		DisplayName: "Tech Editor",
		Email:       "editor@example.com",
	})
}

func (s *Seeder) SeedCategories(ctx context.Context) (map[string]*database.Category, error) {
	repo := repository.Categories{DB: s.db}
	categories := make(map[string]*database.Category, len(demoCategories))

	for _, attrs := range demoCategories {
		category, err := repo.FirstOrCreate(ctx, attrs)
		if err != nil {
			return nil, err
		}

		categories[category.Name] = category
	}

	return categories, nil
}

func (s *Seeder) SeedTags(ctx context.Context) (map[string]*database.Tag, error) {
	repo := repository.Tags{DB: s.db}
	tags := make(map[string]*database.Tag, len(demoTags))

	for _, name := range demoTags {
		tag, err := repo.FirstOrCreate(ctx, database.TagAttrs{Name: name})
		if err != nil {
			return nil, err
		}

		tags[tag.Name] = tag
	}

	return tags, nil
}

// SeedPosts creates the demo posts that are not there yet, matched by title,
// and returns how many were created.
func (s *Seeder) SeedPosts(ctx context.Context, author *database.User, categories map[string]*database.Category, tags map[string]*database.Tag) (int, error) {
	repo := repository.Posts{DB: s.db}
	created := 0

	for _, data := range demoPosts {
		var existing database.Post

		err := s.db.Sql().WithContext(ctx).Where("title = ?", data.title).First(&existing).Error
		if err == nil {
			continue
		}

		if gorm.IsFoundButHasErrors(err) {
			return created, fmt.Errorf("issue finding post [%s]: %w", data.title, err)
		}

		publishedAt := database.Now()
		attrs := database.PostsAttrs{
			AuthorID:    author.ID,
			Title:       data.title,
			Excerpt:     data.excerpt,
			Content:     data.content,
			Status:      database.StatusPublished,
			Featured:    data.featured,
			PublishedAt: &publishedAt,
		}

		if category, ok := categories[data.category]; ok {
			attrs.CategoryID = &category.ID
		}

		for _, name := range data.tags {
			if tag, ok := tags[name]; ok {
				attrs.TagIDs = append(attrs.TagIDs, tag.ID)
			}
		}

		if _, err := repo.Create(ctx, attrs); err != nil {
			return created, err
		}

		created++
	}

	return created, nil
}

// SeedDemoContent seeds the editor, categories, tags and posts in order.
func (s *Seeder) SeedDemoContent(ctx context.Context) error {
	author, err := s.SeedEditor(ctx)
	if err != nil {
		return err
	}

	categories, err := s.SeedCategories(ctx)
	if err != nil {
		return err
	}

	tags, err := s.SeedTags(ctx)
	if err != nil {
		return err
	}

	created, err := s.SeedPosts(ctx, author, categories, tags)
	if err != nil {
		return err
	}

	s.printer.Success(fmt.Sprintf("Seeded %d categories, %d tags, and %d posts.", len(categories), len(tags), created))

	return nil
}
