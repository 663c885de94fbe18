package database

import (
	"time"

	"gorm.io/gorm"
)

type WidgetType string

const (
	WidgetPopularPosts WidgetType = "popular_posts"
	WidgetRelatedPosts WidgetType = "related_posts"
	WidgetAuthorBio    WidgetType = "author_bio"
	WidgetSocialShare  WidgetType = "social_share"
	WidgetNewsletter   WidgetType = "newsletter"
	WidgetCategories   WidgetType = "categories"
	WidgetRecentPosts  WidgetType = "recent_posts"
	WidgetQuickTips    WidgetType = "quick_tips"
	WidgetBuyingGuides WidgetType = "buying_guides"
)

var WidgetTypes = []WidgetType{
	WidgetPopularPosts,
	WidgetRelatedPosts,
	WidgetAuthorBio,
	WidgetSocialShare,
	WidgetNewsletter,
	WidgetCategories,
	WidgetRecentPosts,
	WidgetQuickTips,
	WidgetBuyingGuides,
}

func (t WidgetType) Valid() bool {
	for _, known := range WidgetTypes {
		if t == known {
			return true
		}
	}

	return false
}

// WidgetConfig is the closed set of per-type widget settings. Only the nine
// config models in this package implement it.
type WidgetConfig interface {
	WidgetType() WidgetType
	OwnerID() uint64
	attachTo(widgetID uint64)
}

type SidebarWidget struct {
	ID         uint64       `gorm:"primaryKey;autoIncrement"`
	WidgetType WidgetType   `gorm:"size:20;uniqueIndex;not null"`
	Title      string       `gorm:"size:100;not null"`
	IsActive   bool         `gorm:"not null;index"`
	SortOrder  uint         `gorm:"not null"`
	CreatedAt  time.Time    `gorm:"not null"`
	UpdatedAt  time.Time    `gorm:"not null"`
	config     WidgetConfig `gorm:"-"`
}

// Config returns the settings matching the widget's type. ok is false when
// the row has no config.
func (w *SidebarWidget) Config() (WidgetConfig, bool) {
	if w.config == nil || w.config.WidgetType() != w.WidgetType {
		return nil, false
	}

	return w.config, true
}

// SetConfig binds cfg to the widget, refusing a variant of another type.
func (w *SidebarWidget) SetConfig(cfg WidgetConfig) error {
	if cfg == nil {
		w.config = nil
		return nil
	}

	if cfg.WidgetType() != w.WidgetType {
		return ErrWidgetConfigMismatch
	}

	if w.ID != 0 {
		cfg.attachTo(w.ID)
	}

	w.config = cfg

	return nil
}

func (w *SidebarWidget) BeforeSave(tx *gorm.DB) error {
	if !w.WidgetType.Valid() {
		return ErrUnknownWidgetType
	}

	return nil
}

type PopularPostsWidget struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID       uint64         `gorm:"not null;uniqueIndex"`
	Widget         *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	PostCount      uint           `gorm:"not null"`
	TimePeriodDays uint           `gorm:"not null"`
}

type RelatedPostsWidget struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID       uint64         `gorm:"not null;uniqueIndex"`
	Widget         *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	PostCount      uint           `gorm:"not null"`
	ShowByCategory bool           `gorm:"not null"`
	ShowByTags     bool           `gorm:"not null"`
}

type AuthorBioWidget struct {
	ID              uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID        uint64         `gorm:"not null;uniqueIndex"`
	Widget          *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	BioText         string         `gorm:"type:text;not null"`
	ShowSocialLinks bool           `gorm:"not null"`
	Avatar          string         `gorm:"size:255"`
}

type SocialShareWidget struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID      uint64         `gorm:"not null;uniqueIndex"`
	Widget        *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	ShowFacebook  bool           `gorm:"not null"`
	ShowTwitter   bool           `gorm:"not null"`
	ShowLinkedIn  bool           `gorm:"column:show_linkedin;not null"`
	ShowPinterest bool           `gorm:"not null"`
	ShowEmail     bool           `gorm:"not null"`
}

type NewsletterWidget struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID    uint64         `gorm:"not null;uniqueIndex"`
	Widget      *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	Description string         `gorm:"type:text;not null"`
	ButtonText  string         `gorm:"size:50;not null"`
	PrivacyText string         `gorm:"size:200;not null"`
}

type CategoriesWidget struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID      uint64         `gorm:"not null;uniqueIndex"`
	Widget        *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	ShowPostCount bool           `gorm:"not null"`
	MaxCategories uint           `gorm:"not null"`
}

type RecentPostsWidget struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID  uint64         `gorm:"not null;uniqueIndex"`
	Widget    *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	PostCount uint           `gorm:"not null"`
}

type QuickTipsWidget struct {
	ID       uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID uint64         `gorm:"not null;uniqueIndex"`
	Widget   *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	TipCount uint           `gorm:"not null"`
}

type BuyingGuidesWidget struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement"`
	WidgetID   uint64         `gorm:"not null;uniqueIndex"`
	Widget     *SidebarWidget `gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
	GuideCount uint           `gorm:"not null"`
}

func (*PopularPostsWidget) WidgetType() WidgetType { return WidgetPopularPosts }
func (*RelatedPostsWidget) WidgetType() WidgetType { return WidgetRelatedPosts }
func (*AuthorBioWidget) WidgetType() WidgetType    { return WidgetAuthorBio }
func (*SocialShareWidget) WidgetType() WidgetType  { return WidgetSocialShare }
func (*NewsletterWidget) WidgetType() WidgetType   { return WidgetNewsletter }
func (*CategoriesWidget) WidgetType() WidgetType   { return WidgetCategories }
func (*RecentPostsWidget) WidgetType() WidgetType  { return WidgetRecentPosts }
func (*QuickTipsWidget) WidgetType() WidgetType    { return WidgetQuickTips }
func (*BuyingGuidesWidget) WidgetType() WidgetType { return WidgetBuyingGuides }

func (c *PopularPostsWidget) OwnerID() uint64 { return c.WidgetID }
func (c *RelatedPostsWidget) OwnerID() uint64 { return c.WidgetID }
func (c *AuthorBioWidget) OwnerID() uint64    { return c.WidgetID }
func (c *SocialShareWidget) OwnerID() uint64  { return c.WidgetID }
func (c *NewsletterWidget) OwnerID() uint64   { return c.WidgetID }
func (c *CategoriesWidget) OwnerID() uint64   { return c.WidgetID }
func (c *RecentPostsWidget) OwnerID() uint64  { return c.WidgetID }
func (c *QuickTipsWidget) OwnerID() uint64    { return c.WidgetID }
func (c *BuyingGuidesWidget) OwnerID() uint64 { return c.WidgetID }

func (c *PopularPostsWidget) attachTo(id uint64) { c.WidgetID = id }
func (c *RelatedPostsWidget) attachTo(id uint64) { c.WidgetID = id }
func (c *AuthorBioWidget) attachTo(id uint64)    { c.WidgetID = id }
func (c *SocialShareWidget) attachTo(id uint64)  { c.WidgetID = id }
func (c *NewsletterWidget) attachTo(id uint64)   { c.WidgetID = id }
func (c *CategoriesWidget) attachTo(id uint64)   { c.WidgetID = id }
func (c *RecentPostsWidget) attachTo(id uint64)  { c.WidgetID = id }
func (c *QuickTipsWidget) attachTo(id uint64)    { c.WidgetID = id }
func (c *BuyingGuidesWidget) attachTo(id uint64) { c.WidgetID = id }

func DefaultPopularPosts() *PopularPostsWidget {
	return &PopularPostsWidget{PostCount: 5, TimePeriodDays: 30}
}

func DefaultRelatedPosts() *RelatedPostsWidget {
	return &RelatedPostsWidget{PostCount: 5, ShowByCategory: true, ShowByTags: true}
}

func DefaultSocialShare() *SocialShareWidget {
	return &SocialShareWidget{ShowFacebook: true, ShowTwitter: true, ShowLinkedIn: true, ShowPinterest: true, ShowEmail: true}
}

func DefaultNewsletter() *NewsletterWidget {
	return &NewsletterWidget{
		Description: "Get the latest tech news and tutorials delivered to your inbox.",
		ButtonText:  "Subscribe Now",
		PrivacyText: "We respect your privacy.",
	}
}

func DefaultCategories() *CategoriesWidget {
	return &CategoriesWidget{ShowPostCount: true, MaxCategories: 10}
}

func DefaultRecentPosts() *RecentPostsWidget {
	return &RecentPostsWidget{PostCount: 5}
}

func DefaultQuickTips() *QuickTipsWidget {
	return &QuickTipsWidget{TipCount: 3}
}

func DefaultBuyingGuides() *BuyingGuidesWidget {
	return &BuyingGuidesWidget{GuideCount: 3}
}
