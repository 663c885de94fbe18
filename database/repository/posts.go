package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository/pagination"
	"github.com/blogbuster/database/repository/queries"
	"github.com/blogbuster/pkg/gorm"
	baseGorm "gorm.io/gorm"
)

type Posts struct {
	DB *database.Connection
}

func (p Posts) published(ctx context.Context) *baseGorm.DB {
	return p.DB.Sql().
		WithContext(ctx).
		Model(&database.Post{}).
		Where("posts.status = ?", database.StatusPublished)
}

func (p Posts) withRelations(query *baseGorm.DB) *baseGorm.DB {
	return query.
		Preload("Author").
		Preload("Category").
		Preload("Tags", func(db *baseGorm.DB) *baseGorm.DB {
			return db.Order("tags.name asc")
		})
}

func (p Posts) Create(ctx context.Context, attrs database.PostsAttrs) (*database.Post, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	post := database.Post{
		AuthorID:      attrs.AuthorID,
		CategoryID:    attrs.CategoryID,
		Title:         attrs.Title,
		Slug:          attrs.Slug,
		Excerpt:       attrs.Excerpt,
		Content:       attrs.Content,
		FeaturedImage: attrs.FeaturedImage,
		Status:        attrs.Status,
		Featured:      attrs.Featured,
		PublishedAt:   attrs.PublishedAt,
	}

	err := p.DB.Sql().WithContext(ctx).Transaction(func(tx *baseGorm.DB) error {
		if err := tx.Omit("Author", "Category", "Tags").Create(&post).Error; err != nil {
			return translateWrite(err)
		}

		if len(attrs.TagIDs) == 0 {
			return nil
		}

		var tags []database.Tag
		if err := tx.Where("id IN ?", attrs.TagIDs).Find(&tags).Error; err != nil {
			return err
		}

		return tx.Model(&post).Association("Tags").Append(&tags)
	})

	if err != nil {
		return nil, fmt.Errorf("issue creating post [%s]: %w", attrs.Title, err)
	}

	return &post, nil
}

// Save persists editorial changes to an existing post.
func (p Posts) Save(ctx context.Context, post *database.Post) error {
	if err := p.DB.Sql().WithContext(ctx).Omit("Author", "Category", "Tags").Save(post).Error; err != nil {
		return fmt.Errorf("issue saving post [%s]: %w", post.Slug, translateWrite(err))
	}

	return nil
}

// FindPublishedBy returns nil when no published post has the slug.
func (p Posts) FindPublishedBy(ctx context.Context, slug string) (*database.Post, error) {
	var post database.Post

	err := p.withRelations(p.published(ctx)).
		Where("posts.slug = ?", slug).
		First(&post).Error

	if gorm.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("issue finding post [%s]: %w", slug, err)
	}

	return &post, nil
}

// Paginated lists published posts matching filters. The requested page is
// clamped into range before fetching.
func (p Posts) Paginated(ctx context.Context, filters *queries.PostFilters, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	var numItems int64
	var posts []database.Post

	query := queries.ApplyPostsFilters(filters, p.published(ctx))

	if err := pagination.Count[*int64](&numItems, query, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, fmt.Errorf("issue counting posts: %w", err)
	}

	paginate.SetNumItems(numItems)
	paginate.Clamp()

	err := p.withRelations(query).
		Order(postsOrder).
		Limit(paginate.GetLimit()).
		Offset(paginate.Offset()).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing posts: %w", err)
	}

	return pagination.MakePagination(posts, paginate), nil
}

func (p Posts) Featured(ctx context.Context, limit int) ([]database.Post, error) {
	var posts []database.Post

	err := p.withRelations(p.published(ctx)).
		Where("posts.featured = ?", true).
		Order(postsOrder).
		Limit(limit).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing featured posts: %w", err)
	}

	return posts, nil
}

func (p Posts) Recent(ctx context.Context, limit int, exclude ...uint64) ([]database.Post, error) {
	var posts []database.Post

	err := excludeIDs(p.withRelations(p.published(ctx)), "posts.id", exclude).
		Order(postsOrder).
		Limit(limit).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing recent posts: %w", err)
	}

	return posts, nil
}

// Trending is the all-time most viewed list used on the homepage.
func (p Posts) Trending(ctx context.Context, limit int, exclude ...uint64) ([]database.Post, error) {
	var posts []database.Post

	err := excludeIDs(p.withRelations(p.published(ctx)), "posts.id", exclude).
		Order("posts.views desc, " + postsOrder).
		Limit(limit).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing trending posts: %w", err)
	}

	return posts, nil
}

// Popular is the most viewed posts published at or after since.
func (p Posts) Popular(ctx context.Context, since time.Time, limit int) ([]database.Post, error) {
	var posts []database.Post

	err := p.published(ctx).
		Preload("Category").
		Where("posts.published_at >= ?", since).
		Order("posts.views desc, " + postsOrder).
		Limit(limit).
		Find(&posts).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing popular posts: %w", err)
	}

	return posts, nil
}

// Related narrows the published posts, minus current, first to the current
// category (when byCategory and the post has one) and then, within that set,
// to posts sharing any tag (when byTags and the post has tags).
func (p Posts) Related(ctx context.Context, current *database.Post, byCategory, byTags bool, limit int) ([]database.Post, error) {
	var posts []database.Post

	query := p.published(ctx).
		Preload("Category").
		Where("posts.id <> ?", current.ID)

	if byCategory && current.CategoryID != nil {
		query = query.Where("posts.category_id = ?", *current.CategoryID)
	}

	if byTags {
		tagIDs, err := p.tagIDsOf(ctx, current)
		if err != nil {
			return nil, err
		}

		if len(tagIDs) > 0 {
			query = query.Where("posts.id IN (SELECT post_tags.post_id FROM post_tags WHERE post_tags.tag_id IN ?)", tagIDs)
		}
	}

	if err := query.Order(postsOrder).Limit(limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("issue listing related posts: %w", err)
	}

	return posts, nil
}

// SameCategory is the post page's fallback list: published posts sharing the
// category, or sharing no category when the post has none.
func (p Posts) SameCategory(ctx context.Context, current *database.Post, limit int) ([]database.Post, error) {
	var posts []database.Post

	query := p.published(ctx).
		Preload("Category").
		Where("posts.id <> ?", current.ID)

	if current.CategoryID == nil {
		query = query.Where("posts.category_id IS NULL")
	} else {
		query = query.Where("posts.category_id = ?", *current.CategoryID)
	}

	if err := query.Order(postsOrder).Limit(limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("issue listing same-category posts: %w", err)
	}

	return posts, nil
}

func (p Posts) InCategory(ctx context.Context, category *database.Category, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	return p.Paginated(ctx, &queries.PostFilters{Category: category.Slug}, paginate)
}

func (p Posts) WithTag(ctx context.Context, tag *database.Tag, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	return p.Paginated(ctx, &queries.PostFilters{Tag: tag.Slug}, paginate)
}

// IncrementViews is a plain read-modify-write on the loaded value. Two
// concurrent readers of the same post may both write views+1, losing one hit.
func (p Posts) IncrementViews(ctx context.Context, post *database.Post) error {
	post.Views++

	err := p.DB.Sql().
		WithContext(ctx).
		Model(post).
		UpdateColumn("views", post.Views).Error

	if err != nil {
		return fmt.Errorf("issue counting view for post [%s]: %w", post.Slug, err)
	}

	return nil
}

func (p Posts) tagIDsOf(ctx context.Context, post *database.Post) ([]uint64, error) {
	if post.Tags != nil {
		return post.TagIDs(), nil
	}

	var ids []uint64

	err := p.DB.Sql().
		WithContext(ctx).
		Table("post_tags").
		Where("post_id = ?", post.ID).
		Pluck("tag_id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("issue loading tags of post [%s]: %w", post.Slug, err)
	}

	return ids, nil
}
