package queries

import "github.com/blogbuster/pkg/portal"

// PostFilters carries the listing query string: q, category and tag.
type PostFilters struct {
	Text     string
	Category string
	Tag      string
}

func (f PostFilters) GetText() string {
	return f.sanitiseString(f.Text)
}

func (f PostFilters) GetCategory() string {
	return f.sanitiseString(f.Category)
}

func (f PostFilters) GetTag() string {
	return f.sanitiseString(f.Tag)
}

func (f PostFilters) IsEmpty() bool {
	return f.GetText() == "" && f.GetCategory() == "" && f.GetTag() == ""
}

func (f PostFilters) sanitiseString(seed string) string {
	return portal.NewStringable(seed).ToLower()
}
