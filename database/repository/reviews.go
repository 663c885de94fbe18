package repository

import (
	"context"

	"github.com/blogbuster/database"
	baseGorm "gorm.io/gorm"
)

type Reviews struct {
	DB *database.Connection
}

func (r Reviews) feed() feed[database.ProductReview] {
	return feed[database.ProductReview]{
		db:    r.DB,
		table: "product_reviews",
		order: reviewsOrder,
		kind:  "product review",
		preload: func(query *baseGorm.DB) *baseGorm.DB {
			return query.Preload("Scores", func(db *baseGorm.DB) *baseGorm.DB {
				return db.Order("review_scores.id asc")
			})
		},
	}
}

func (r Reviews) Create(ctx context.Context, review *database.ProductReview) error {
	return r.feed().create(ctx, review)
}

func (r Reviews) FindPublishedBy(ctx context.Context, slug string) (*database.ProductReview, error) {
	return r.feed().findBy(ctx, slug)
}

func (r Reviews) Published(ctx context.Context) ([]database.ProductReview, error) {
	return r.feed().list(ctx, false, nil, 0)
}

func (r Reviews) Featured(ctx context.Context, limit int) ([]database.ProductReview, error) {
	return r.feed().list(ctx, true, nil, limit)
}

func (r Reviews) Filler(ctx context.Context, exclude []uint64, limit int) ([]database.ProductReview, error) {
	return r.feed().list(ctx, false, exclude, limit)
}

func (r Reviews) FeaturedWithBackfill(ctx context.Context, limit int) ([]database.ProductReview, error) {
	return Backfill(
		limit,
		func(limit int) ([]database.ProductReview, error) { return r.Featured(ctx, limit) },
		func(exclude []uint64, limit int) ([]database.ProductReview, error) {
			return r.Filler(ctx, exclude, limit)
		},
	)
}
