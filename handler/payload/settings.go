package payload

import "github.com/blogbuster/database"

type HomepageSettingsResponse struct {
	HeroOverline          string `json:"hero_overline"`
	HeroHeading           string `json:"hero_heading"`
	HeroSubheading        string `json:"hero_subheading"`
	HeroPrimaryCtaLabel   string `json:"hero_primary_cta_label"`
	HeroSecondaryCtaLabel string `json:"hero_secondary_cta_label"`
	NewsletterOverline    string `json:"newsletter_overline"`
	NewsletterHeading     string `json:"newsletter_heading"`
	NewsletterBody        string `json:"newsletter_body"`
	NewsletterCtaLabel    string `json:"newsletter_cta_label"`
	NewsletterDisclaimer  string `json:"newsletter_disclaimer"`
}

func GetHomepageSettingsResponse(s database.HomepageSettings) HomepageSettingsResponse {
	return HomepageSettingsResponse{
		HeroOverline:          s.HeroOverline,
		HeroHeading:           s.HeroHeading,
		HeroSubheading:        s.HeroSubheading,
		HeroPrimaryCtaLabel:   s.HeroPrimaryCtaLabel,
		HeroSecondaryCtaLabel: s.HeroSecondaryCtaLabel,
		NewsletterOverline:    s.NewsletterOverline,
		NewsletterHeading:     s.NewsletterHeading,
		NewsletterBody:        s.NewsletterBody,
		NewsletterCtaLabel:    s.NewsletterCtaLabel,
		NewsletterDisclaimer:  s.NewsletterDisclaimer,
	}
}
