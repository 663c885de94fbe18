package payload

import (
	"net/http"
	"strings"
	"time"

	"github.com/blogbuster/database"
	"github.com/blogbuster/pkg/portal"
)

type UserResponse struct {
	UUID        string `json:"uuid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	FullName    string `json:"full_name"`
	Bio         string `json:"bio"`
}

type CategoryResponse struct {
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TagResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func GetSlugFrom(r *http.Request) string {
	str := portal.NewStringable(r.PathValue("slug"))

	return strings.TrimSpace(str.ToLower())
}

func GetUserResponse(u *database.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		UUID:        u.UUID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		FullName:    u.FullName(),
		Bio:         u.Bio,
	}
}

func GetCategoryResponse(c *database.Category) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		UUID:        c.UUID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func GetCategoriesResponse(categories []database.Category) []CategoryResponse {
	data := make([]CategoryResponse, 0, len(categories))

	for i := range categories {
		data = append(data, *GetCategoryResponse(&categories[i]))
	}

	return data
}

func GetTagsResponse(tags []database.Tag) []TagResponse {
	data := make([]TagResponse, 0, len(tags))

	for _, tag := range tags {
		data = append(data, TagResponse{UUID: tag.UUID, Name: tag.Name, Slug: tag.Slug})
	}

	return data
}
