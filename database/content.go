package database

import (
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

const wordsPerMinute = 200

type User struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UUID        string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	Username    string    `gorm:"size:150;uniqueIndex;not null"`
	FirstName   string    `gorm:"size:150"`
	LastName    string    `gorm:"size:150"`
	DisplayName string    `gorm:"size:255"`
	Email       string    `gorm:"size:254"`
	Bio         string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (u *User) FullName() string {
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}

	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}

	return u.Username
}

type Category struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UUID        string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name        string    `gorm:"size:100;uniqueIndex;not null"`
	Slug        string    `gorm:"size:100;uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (c Category) GetID() uint64 {
	return c.ID
}

type Tag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UUID      string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name      string    `gorm:"size:50;uniqueIndex;not null"`
	Slug      string    `gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Post struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement"`
	UUID          string     `gorm:"type:varchar(36);uniqueIndex;not null"`
	Title         string     `gorm:"size:200;not null"`
	Slug          string     `gorm:"size:200;uniqueIndex;not null"`
	AuthorID      uint64     `gorm:"not null;index"`
	Author        *User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CategoryID    *uint64    `gorm:"index"`
	Category      *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Tags          []Tag      `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
	FeaturedImage string     `gorm:"size:255"`
	Excerpt       string     `gorm:"size:300"`
	Content       string     `gorm:"type:text;not null"`
	Status        PostStatus `gorm:"size:10;not null;index:idx_posts_status_published,priority:2"`
	Featured      bool       `gorm:"not null"`
	Views         uint64     `gorm:"not null"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
	PublishedAt   *time.Time `gorm:"index:idx_posts_status_published,priority:1,sort:desc"`
}

func (p Post) GetID() uint64 {
	return p.ID
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// ReadingTime is the estimated read in minutes at 200 words per minute,
// never less than one.
func (p *Post) ReadingTime() int {
	words := len(strings.Fields(p.Content))

	return max(1, int(math.RoundToEven(float64(words)/wordsPerMinute)))
}

func (p *Post) TagIDs() []uint64 {
	ids := make([]uint64, 0, len(p.Tags))

	for _, tag := range p.Tags {
		ids = append(ids, tag.ID)
	}

	return ids
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.UUID = ensureUUID(u.UUID)

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	c.UUID = ensureUUID(c.UUID)

	return nil
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	slug, err := deriveSlug(c.Slug, c.Name)
	c.Slug = slug

	return err
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	t.UUID = ensureUUID(t.UUID)

	return nil
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	slug, err := deriveSlug(t.Slug, t.Name)
	t.Slug = slug

	return err
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	p.UUID = ensureUUID(p.UUID)

	return nil
}

func (p *Post) BeforeSave(tx *gorm.DB) error {
	slug, err := deriveSlug(p.Slug, p.Title)
	if err != nil {
		return err
	}

	p.Slug = slug

	switch p.Status {
	case "":
		p.Status = StatusDraft
	case StatusDraft, StatusPublished:
	default:
		return ErrInvalidChoice
	}

	p.PublishedAt = stampOnPublish(p.IsPublished(), p.PublishedAt)

	return nil
}
