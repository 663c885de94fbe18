package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogbuster/database"
	"github.com/blogbuster/pkg/gorm"
)

type Tags struct {
	DB *database.Connection
}

func (t Tags) Create(ctx context.Context, attrs database.TagAttrs) (*database.Tag, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	tag := database.Tag{Name: attrs.Name, Slug: attrs.Slug}

	if err := t.DB.Sql().WithContext(ctx).Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("issue creating tag [%s]: %w", attrs.Name, translateWrite(err))
	}

	return &tag, nil
}

func (t Tags) FirstOrCreate(ctx context.Context, attrs database.TagAttrs) (*database.Tag, error) {
	var tag database.Tag

	err := t.DB.Sql().WithContext(ctx).Where("name = ?", attrs.Name).First(&tag).Error

	if err == nil {
		return &tag, nil
	}

	if gorm.IsFoundButHasErrors(err) {
		return nil, fmt.Errorf("issue finding tag [%s]: %w", attrs.Name, err)
	}

	return t.Create(ctx, attrs)
}

func (t Tags) FindBy(ctx context.Context, slug string) (*database.Tag, error) {
	var tag database.Tag

	err := t.DB.Sql().
		WithContext(ctx).
		Where("LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&tag).Error

	if gorm.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("issue finding tag [%s]: %w", slug, err)
	}

	return &tag, nil
}

func (t Tags) All(ctx context.Context, limit int) ([]database.Tag, error) {
	var tags []database.Tag

	query := t.DB.Sql().WithContext(ctx).Order("tags.name asc, tags.id asc")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("issue listing tags: %w", err)
	}

	return tags, nil
}
