package payload

import (
	"time"

	"github.com/blogbuster/database"
)

type PostResponse struct {
	UUID          string            `json:"uuid"`
	Slug          string            `json:"slug"`
	Title         string            `json:"title"`
	Excerpt       string            `json:"excerpt"`
	Content       string            `json:"content,omitempty"`
	FeaturedImage string            `json:"featured_image"`
	Featured      bool              `json:"featured"`
	Views         uint64            `json:"views"`
	ReadingTime   int               `json:"reading_time"`
	PublishedAt   *time.Time        `json:"published_at"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Author        *UserResponse     `json:"author,omitempty"`
	Category      *CategoryResponse `json:"category"`
	Tags          []TagResponse     `json:"tags,omitempty"`
}

// GetPostResponse maps a post for a detail page, body included.
func GetPostResponse(p database.Post) PostResponse {
	response := GetPostCard(p)
	response.Content = p.Content

	return response
}

// GetPostCard maps a post for listings and widgets, without the body.
func GetPostCard(p database.Post) PostResponse {
	return PostResponse{
		UUID:          p.UUID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		Featured:      p.Featured,
		Views:         p.Views,
		ReadingTime:   p.ReadingTime(),
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Author:        GetUserResponse(p.Author),
		Category:      GetCategoryResponse(p.Category),
		Tags:          GetTagsResponse(p.Tags),
	}
}

func GetPostCards(posts []database.Post) []PostResponse {
	data := make([]PostResponse, 0, len(posts))

	for _, post := range posts {
		data = append(data, GetPostCard(post))
	}

	return data
}
