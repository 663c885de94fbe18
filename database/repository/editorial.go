package repository

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
	"github.com/blogbuster/pkg/gorm"
	baseGorm "gorm.io/gorm"
)

// feed is the published-content query shared by guides, reviews and how-tos.
// Each of those tables carries published and featured flags and a slug.
type feed[T any] struct {
	db      *database.Connection
	table   string
	order   string
	kind    string
	preload func(query *baseGorm.DB) *baseGorm.DB
}

func (f feed[T]) published(ctx context.Context) *baseGorm.DB {
	query := f.db.Sql().
		WithContext(ctx).
		Model(new(T)).
		Where(f.table+".published = ?", true)

	return f.preload(query)
}

func (f feed[T]) findBy(ctx context.Context, slug string) (*T, error) {
	var item T

	err := f.published(ctx).
		Where(f.table+".slug = ?", slug).
		First(&item).Error

	if gorm.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("issue finding %s [%s]: %w", f.kind, slug, err)
	}

	return &item, nil
}

func (f feed[T]) list(ctx context.Context, featuredOnly bool, exclude []uint64, limit int) ([]T, error) {
	var items []T

	query := excludeIDs(f.published(ctx), f.table+".id", exclude).Order(f.order)

	if featuredOnly {
		query = query.Where(f.table+".featured = ?", true)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("issue listing %s: %w", f.kind, err)
	}

	return items, nil
}

func (f feed[T]) create(ctx context.Context, item *T) error {
	if err := f.db.Sql().WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("issue creating %s: %w", f.kind, translateWrite(err))
	}

	return nil
}
