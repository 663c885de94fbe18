package database

import "time"

type UsersAttrs struct {
	Username    string `validate:"required,min=3,max=150"`
	FirstName   string `validate:"max=150"`
	LastName    string `validate:"max=150"`
	DisplayName string `validate:"max=255"`
	Email       string `validate:"omitempty,email"`
	Bio         string
}

type CategoriesAttrs struct {
	Name        string `validate:"required,max=100"`
	Slug        string `validate:"omitempty,max=100"`
	Description string
}

type TagAttrs struct {
	Name string `validate:"required,max=50"`
	Slug string `validate:"omitempty,max=50"`
}

type PostsAttrs struct {
	AuthorID      uint64 `validate:"required"`
	CategoryID    *uint64
	TagIDs        []uint64
	Title         string     `validate:"required,max=200"`
	Slug          string     `validate:"omitempty,max=200"`
	Excerpt       string     `validate:"max=300"`
	Content       string     `validate:"required"`
	FeaturedImage string     `validate:"max=255"`
	Status        PostStatus `validate:"omitempty,oneof=draft published"`
	Featured      bool
	PublishedAt   *time.Time
}

type QuickTipAttrs struct {
	Title       string `validate:"required,max=120"`
	Description string `validate:"required,max=280"`
	IsActive    bool
	SortOrder   uint
}

type WidgetAttrs struct {
	Type      WidgetType `validate:"required"`
	Title     string     `validate:"required,max=100"`
	IsActive  bool
	SortOrder uint
	Config    WidgetConfig
}
