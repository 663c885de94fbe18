package payload

import "github.com/blogbuster/database"

// WidgetContext is one sidebar entry. Fragment holds the data for the widget's
// type and is nil when the widget has nothing to show, such as a missing
// config or related posts outside a post page.
type WidgetContext struct {
	Type      database.WidgetType `json:"type"`
	Title     string              `json:"title"`
	SortOrder uint                `json:"sort_order"`
	Fragment  any                 `json:"fragment"`
}

type PostsFragment struct {
	Posts []PostResponse `json:"posts"`
}

type CategoryCountResponse struct {
	CategoryResponse
	PostCount int64 `json:"post_count"`
}

type CategoriesFragment struct {
	Categories    []CategoryCountResponse `json:"categories"`
	ShowPostCount bool                    `json:"show_post_count"`
}

type QuickTipsFragment struct {
	Tips []QuickTipResponse `json:"tips"`
}

type GuidesFragment struct {
	Guides []GuideResponse `json:"guides"`
}

type AuthorBioFragment struct {
	BioText         string `json:"bio_text"`
	ShowSocialLinks bool   `json:"show_social_links"`
	Avatar          string `json:"avatar"`
}

type SocialShareFragment struct {
	ShowFacebook  bool `json:"show_facebook"`
	ShowTwitter   bool `json:"show_twitter"`
	ShowLinkedIn  bool `json:"show_linkedin"`
	ShowPinterest bool `json:"show_pinterest"`
	ShowEmail     bool `json:"show_email"`
}

type NewsletterFragment struct {
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
	PrivacyText string `json:"privacy_text"`
}

func GetAuthorBioFragment(c *database.AuthorBioWidget) AuthorBioFragment {
	return AuthorBioFragment{BioText: c.BioText, ShowSocialLinks: c.ShowSocialLinks, Avatar: c.Avatar}
}

func GetSocialShareFragment(c *database.SocialShareWidget) SocialShareFragment {
	return SocialShareFragment{
		ShowFacebook:  c.ShowFacebook,
		ShowTwitter:   c.ShowTwitter,
		ShowLinkedIn:  c.ShowLinkedIn,
		ShowPinterest: c.ShowPinterest,
		ShowEmail:     c.ShowEmail,
	}
}

func GetNewsletterFragment(c *database.NewsletterWidget) NewsletterFragment {
	return NewsletterFragment{Description: c.Description, ButtonText: c.ButtonText, PrivacyText: c.PrivacyText}
}
