package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/blogbuster/database"
	"github.com/blogbuster/pkg/portal"
)

const (
	postsOrder   = "posts.published_at desc, posts.created_at desc, posts.id desc"
	guidesOrder  = "buying_guides.created_at desc, buying_guides.id desc"
	reviewsOrder = "product_reviews.published_at desc, product_reviews.created_at desc, product_reviews.id desc"
	howTosOrder  = "how_to_series.created_at desc, how_to_series.id desc"
	tipsOrder    = "quick_tips.sort_order asc, quick_tips.created_at desc, quick_tips.id desc"
)

func validate(attrs any) error {
	validator := portal.GetDefaultValidator()

	if _, err := validator.Passes(attrs); err != nil {
		return fmt.Errorf("%w: %s", err, validator.GetErrorsAsJson())
	}

	return nil
}

// translateWrite maps a duplicate key on a slugged table to ErrSlugTaken.
func translateWrite(err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", database.ErrSlugTaken, err)
	}

	return err
}

func excludeIDs(query *gorm.DB, column string, ids []uint64) *gorm.DB {
	if len(ids) == 0 {
		return query
	}

	return query.Where(column+" NOT IN ?", ids)
}
