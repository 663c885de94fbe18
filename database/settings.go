package database

import "gorm.io/gorm"

const HomepageSettingsID uint64 = 1

// HomepageSettings is a single-row table. Every write is forced onto
// HomepageSettingsID.
type HomepageSettings struct {
	ID                    uint64 `gorm:"primaryKey;autoIncrement:false"`
	HeroOverline          string `gorm:"size:120;not null"`
	HeroHeading           string `gorm:"size:200;not null"`
	HeroSubheading        string `gorm:"size:280;not null"`
	HeroPrimaryCtaLabel   string `gorm:"size:50;not null"`
	HeroSecondaryCtaLabel string `gorm:"size:50;not null"`
	NewsletterOverline    string `gorm:"size:120;not null"`
	NewsletterHeading     string `gorm:"size:180;not null"`
	NewsletterBody        string `gorm:"size:280;not null"`
	NewsletterCtaLabel    string `gorm:"size:80;not null"`
	NewsletterDisclaimer  string `gorm:"size:160;not null"`
}

func DefaultHomepageSettings() HomepageSettings {
	return HomepageSettings{
		ID:                    HomepageSettingsID,
		HeroOverline:          "Lifewire-inspired",
		HeroHeading:           "Smart guides for the tech you actually use.",
		HeroSubheading:        "Reviews, explainers, and troubleshooting tips crafted with the same editorial polish you love on Lifewire.",
		HeroPrimaryCtaLabel:   "Browse articles",
		HeroSecondaryCtaLabel: "Latest drops",
		NewsletterOverline:    "Inbox utility",
		NewsletterHeading:     "Weekly digest with zero fluff.",
		NewsletterBody:        "Get Lifewire-inspired explainers and buying advice each Monday. We only send the good stuff.",
		NewsletterCtaLabel:    "Subscribe",
		NewsletterDisclaimer:  "No spam. Unsubscribe anytime.",
	}
}

func (s *HomepageSettings) BeforeSave(tx *gorm.DB) error {
	s.ID = HomepageSettingsID

	return nil
}
