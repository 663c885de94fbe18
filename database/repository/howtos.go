package repository

import (
	"context"

	"github.com/blogbuster/database"
	baseGorm "gorm.io/gorm"
)

type HowTos struct {
	DB *database.Connection
}

func (h HowTos) feed() feed[database.HowToSeries] {
	return feed[database.HowToSeries]{
		db:    h.DB,
		table: "how_to_series",
		order: howTosOrder,
		kind:  "how-to series",
		preload: func(query *baseGorm.DB) *baseGorm.DB {
			return query.Preload("Steps", func(db *baseGorm.DB) *baseGorm.DB {
				return db.Order("how_to_steps.step_number asc, how_to_steps.id asc")
			})
		},
	}
}

func (h HowTos) Create(ctx context.Context, series *database.HowToSeries) error {
	return h.feed().create(ctx, series)
}

func (h HowTos) FindPublishedBy(ctx context.Context, slug string) (*database.HowToSeries, error) {
	return h.feed().findBy(ctx, slug)
}

func (h HowTos) Published(ctx context.Context) ([]database.HowToSeries, error) {
	return h.feed().list(ctx, false, nil, 0)
}

func (h HowTos) Featured(ctx context.Context, limit int) ([]database.HowToSeries, error) {
	return h.feed().list(ctx, true, nil, limit)
}

func (h HowTos) Filler(ctx context.Context, exclude []uint64, limit int) ([]database.HowToSeries, error) {
	return h.feed().list(ctx, false, exclude, limit)
}

func (h HowTos) FeaturedWithBackfill(ctx context.Context, limit int) ([]database.HowToSeries, error) {
	return Backfill(
		limit,
		func(limit int) ([]database.HowToSeries, error) { return h.Featured(ctx, limit) },
		func(exclude []uint64, limit int) ([]database.HowToSeries, error) {
			return h.Filler(ctx, exclude, limit)
		},
	)
}
