package queries

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ApplyPostsFilters narrows a query whose master table is "posts". Text is a
// case-insensitive substring match over title, content and excerpt; category
// and tag are case-insensitive slug matches.
func ApplyPostsFilters(filters *PostFilters, query *gorm.DB) *gorm.DB {
	if filters == nil {
		return query
	}

	if text := filters.GetText(); text != "" {
		needle := Contains(text)

		query = query.Where(
			`(LOWER(posts.title) LIKE ? ESCAPE '\' OR LOWER(posts.content) LIKE ? ESCAPE '\' OR LOWER(posts.excerpt) LIKE ? ESCAPE '\')`,
			needle, needle, needle,
		)
	}

	if category := filters.GetCategory(); category != "" {
		query = query.Where(
			"posts.category_id IN (SELECT categories.id FROM categories WHERE LOWER(categories.slug) = ?)",
			category,
		)
	}

	if tag := filters.GetTag(); tag != "" {
		query = query.Where(
			"posts.id IN (SELECT post_tags.post_id FROM post_tags JOIN tags ON tags.id = post_tags.tag_id WHERE LOWER(tags.slug) = ?)",
			tag,
		)
	}

	return query
}

// Contains builds a LIKE pattern matching value anywhere, with wildcards in
// value escaped.
func Contains(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}
