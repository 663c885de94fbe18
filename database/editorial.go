package database

import (
	"time"

	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type BuyingGuide struct {
	ID         uint64      `gorm:"primaryKey;autoIncrement"`
	UUID       string      `gorm:"type:varchar(36);uniqueIndex;not null"`
	Title      string      `gorm:"size:200;not null"`
	Slug       string      `gorm:"size:200;uniqueIndex;not null"`
	Summary    string      `gorm:"type:text;not null"`
	CategoryID *uint64     `gorm:"index"`
	Category   *Category   `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	HeroQuote  string      `gorm:"size:200"`
	Published  bool        `gorm:"not null;index"`
	Featured   bool        `gorm:"not null"`
	Picks      []GuidePick `gorm:"foreignKey:GuideID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `gorm:"not null;index"`
	UpdatedAt  time.Time   `gorm:"not null"`
}

func (g BuyingGuide) GetID() uint64 {
	return g.ID
}

type GuidePick struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	GuideID      uint64 `gorm:"not null;index"`
	Title        string `gorm:"size:150;not null"`
	Verdict      string `gorm:"size:80;not null"`
	Tagline      string `gorm:"size:200"`
	Pros         string `gorm:"type:text"`
	Cons         string `gorm:"type:text"`
	PriceRange   string `gorm:"size:80"`
	AffiliateURL string `gorm:"size:200"`
	Rating       uint8  `gorm:"not null"`
	SortOrder    uint   `gorm:"not null"`
}

type ProductReview struct {
	ID           uint64        `gorm:"primaryKey;autoIncrement"`
	UUID         string        `gorm:"type:varchar(36);uniqueIndex;not null"`
	ProductName  string        `gorm:"size:200;not null"`
	Slug         string        `gorm:"size:200;uniqueIndex;not null"`
	Summary      string        `gorm:"type:text;not null"`
	Verdict      string        `gorm:"size:200;not null"`
	AffiliateURL string        `gorm:"size:200"`
	HeroImage    string        `gorm:"size:255"`
	OverallScore float64       `gorm:"type:numeric(3,1);not null"`
	Pros         string        `gorm:"type:text"`
	Cons         string        `gorm:"type:text"`
	WhyTrustUs   string        `gorm:"type:text"`
	Methodology  string        `gorm:"type:text"`
	Published    bool          `gorm:"not null;index"`
	Featured     bool          `gorm:"not null"`
	Scores       []ReviewScore `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	PublishedAt  *time.Time    `gorm:"index"`
	CreatedAt    time.Time     `gorm:"not null"`
	UpdatedAt    time.Time     `gorm:"not null"`
}

func (r ProductReview) GetID() uint64 {
	return r.ID
}

type ReviewScore struct {
	ID       uint64  `gorm:"primaryKey;autoIncrement"`
	ReviewID uint64  `gorm:"not null;index"`
	Label    string  `gorm:"size:80;not null"`
	Score    float64 `gorm:"type:numeric(3,1);not null"`
}

type HowToSeries struct {
	ID            uint64      `gorm:"primaryKey;autoIncrement"`
	UUID          string      `gorm:"type:varchar(36);uniqueIndex;not null"`
	Title         string      `gorm:"size:200;not null"`
	Slug          string      `gorm:"size:200;uniqueIndex;not null"`
	Intro         string      `gorm:"type:text;not null"`
	Difficulty    Difficulty  `gorm:"size:20;not null"`
	EstimatedTime string      `gorm:"size:80"`
	Prerequisites string      `gorm:"type:text"`
	Published     bool        `gorm:"not null;index"`
	Featured      bool        `gorm:"not null"`
	Steps         []HowToStep `gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time   `gorm:"not null;index"`
	UpdatedAt     time.Time   `gorm:"not null"`
}

func (HowToSeries) TableName() string {
	return "how_to_series"
}

func (h HowToSeries) GetID() uint64 {
	return h.ID
}

type HowToStep struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	SeriesID     uint64 `gorm:"not null;index"`
	StepNumber   uint   `gorm:"not null"`
	Title        string `gorm:"size:150;not null"`
	Instructions string `gorm:"type:text;not null"`
	Tip          string `gorm:"size:200"`
}

type QuickTip struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UUID        string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	Title       string    `gorm:"size:120;not null"`
	Description string    `gorm:"size:280;not null"`
	IsActive    bool      `gorm:"not null;index"`
	SortOrder   uint      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (g *BuyingGuide) BeforeCreate(tx *gorm.DB) error {
	g.UUID = ensureUUID(g.UUID)

	return nil
}

func (g *BuyingGuide) BeforeSave(tx *gorm.DB) error {
	slug, err := deriveSlug(g.Slug, g.Title)
	g.Slug = slug

	return err
}

func (p *GuidePick) BeforeSave(tx *gorm.DB) error {
	if p.Rating == 0 {
		p.Rating = 4
	}

	if p.Rating > 5 {
		return ErrOutOfRange
	}

	return nil
}

func (r *ProductReview) BeforeCreate(tx *gorm.DB) error {
	r.UUID = ensureUUID(r.UUID)

	return nil
}

func (r *ProductReview) BeforeSave(tx *gorm.DB) error {
	slug, err := deriveSlug(r.Slug, r.ProductName)
	if err != nil {
		return err
	}

	r.Slug = slug
	r.OverallScore = roundScore(r.OverallScore)

	if !inRange(r.OverallScore, 0, 10) {
		return ErrOutOfRange
	}

	r.PublishedAt = stampOnPublish(r.Published, r.PublishedAt)

	return nil
}

func (s *ReviewScore) BeforeSave(tx *gorm.DB) error {
	s.Score = roundScore(s.Score)

	if !inRange(s.Score, 0, 10) {
		return ErrOutOfRange
	}

	return nil
}

func (h *HowToSeries) BeforeCreate(tx *gorm.DB) error {
	h.UUID = ensureUUID(h.UUID)

	return nil
}

func (h *HowToSeries) BeforeSave(tx *gorm.DB) error {
	slug, err := deriveSlug(h.Slug, h.Title)
	if err != nil {
		return err
	}

	h.Slug = slug

	switch h.Difficulty {
	case "":
		h.Difficulty = DifficultyBeginner
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		return ErrInvalidChoice
	}

	return nil
}

func (q *QuickTip) BeforeCreate(tx *gorm.DB) error {
	q.UUID = ensureUUID(q.UUID)

	return nil
}
