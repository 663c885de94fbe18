package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogbuster/database"
	"github.com/blogbuster/pkg/gorm"
)

type Categories struct {
	DB *database.Connection
}

// CategoryCount is a category annotated with the number of posts filed under
// it, drafts included.
type CategoryCount struct {
	database.Category
	PostCount int64
}

func (c Categories) Create(ctx context.Context, attrs database.CategoriesAttrs) (*database.Category, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	category := database.Category{
		Name:        attrs.Name,
		Slug:        attrs.Slug,
		Description: attrs.Description,
	}

	if err := c.DB.Sql().WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("issue creating category [%s]: %w", attrs.Name, translateWrite(err))
	}

	return &category, nil
}

// FirstOrCreate returns the category with the given name, creating it when
// missing.
func (c Categories) FirstOrCreate(ctx context.Context, attrs database.CategoriesAttrs) (*database.Category, error) {
	var category database.Category

	err := c.DB.Sql().
		WithContext(ctx).
		Where("name = ?", attrs.Name).
		First(&category).Error

	if err == nil {
		return &category, nil
	}

	if gorm.IsFoundButHasErrors(err) {
		return nil, fmt.Errorf("issue finding category [%s]: %w", attrs.Name, err)
	}

	return c.Create(ctx, attrs)
}

func (c Categories) FindBy(ctx context.Context, slug string) (*database.Category, error) {
	var category database.Category

	err := c.DB.Sql().
		WithContext(ctx).
		Where("LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&category).Error

	if gorm.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("issue finding category [%s]: %w", slug, err)
	}

	return &category, nil
}

// All lists categories by name. A limit of zero or less lists every one.
func (c Categories) All(ctx context.Context, limit int) ([]database.Category, error) {
	var categories []database.Category

	query := c.DB.Sql().
		WithContext(ctx).
		Order("categories.name asc, categories.id asc")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("issue listing categories: %w", err)
	}

	return categories, nil
}

// WithPostCounts lists categories by post count, busiest first, ties broken
// by name.
func (c Categories) WithPostCounts(ctx context.Context, limit int) ([]CategoryCount, error) {
	var rows []CategoryCount

	err := c.DB.Sql().
		WithContext(ctx).
		Model(&database.Category{}).
		Select("categories.*, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.category_id = categories.id").
		Group("categories.id").
		Order("post_count desc, categories.name asc").
		Limit(limit).
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("issue counting category posts: %w", err)
	}

	return rows, nil
}

// Spotlight lists categories holding at least one published post.
func (c Categories) Spotlight(ctx context.Context, limit int) ([]database.Category, error) {
	var categories []database.Category

	err := c.DB.Sql().
		WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM posts WHERE posts.category_id = categories.id AND posts.status = ?)", database.StatusPublished).
		Order("categories.name asc, categories.id asc").
		Limit(limit).
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing spotlight categories: %w", err)
	}

	return categories, nil
}
