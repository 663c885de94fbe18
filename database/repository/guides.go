package repository

import (
	"context"

	"github.com/blogbuster/database"
	baseGorm "gorm.io/gorm"
)

type BuyingGuides struct {
	DB *database.Connection
}

func (g BuyingGuides) feed() feed[database.BuyingGuide] {
	return feed[database.BuyingGuide]{
		db:    g.DB,
		table: "buying_guides",
		order: guidesOrder,
		kind:  "buying guide",
		preload: func(query *baseGorm.DB) *baseGorm.DB {
			return query.
				Preload("Category").
				Preload("Picks", func(db *baseGorm.DB) *baseGorm.DB {
					return db.Order("guide_picks.sort_order asc, guide_picks.id asc")
				})
		},
	}
}

func (g BuyingGuides) Create(ctx context.Context, guide *database.BuyingGuide) error {
	return g.feed().create(ctx, guide)
}

func (g BuyingGuides) FindPublishedBy(ctx context.Context, slug string) (*database.BuyingGuide, error) {
	return g.feed().findBy(ctx, slug)
}

// Published lists every published guide, newest first.
func (g BuyingGuides) Published(ctx context.Context) ([]database.BuyingGuide, error) {
	return g.feed().list(ctx, false, nil, 0)
}

func (g BuyingGuides) Latest(ctx context.Context, limit int) ([]database.BuyingGuide, error) {
	return g.feed().list(ctx, false, nil, limit)
}

func (g BuyingGuides) Featured(ctx context.Context, limit int) ([]database.BuyingGuide, error) {
	return g.feed().list(ctx, true, nil, limit)
}

func (g BuyingGuides) Filler(ctx context.Context, exclude []uint64, limit int) ([]database.BuyingGuide, error) {
	return g.feed().list(ctx, false, exclude, limit)
}

func (g BuyingGuides) FeaturedWithBackfill(ctx context.Context, limit int) ([]database.BuyingGuide, error) {
	return Backfill(
		limit,
		func(limit int) ([]database.BuyingGuide, error) { return g.Featured(ctx, limit) },
		func(exclude []uint64, limit int) ([]database.BuyingGuide, error) {
			return g.Filler(ctx, exclude, limit)
		},
	)
}
