package repository

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
)

type Settings struct {
	DB *database.Connection
}

// Load returns the homepage settings row, creating it with the default copy
// on first use.
func (s Settings) Load(ctx context.Context) (*database.HomepageSettings, error) {
	var settings database.HomepageSettings

	err := s.DB.Sql().
		WithContext(ctx).
		Attrs(database.DefaultHomepageSettings()).
		FirstOrCreate(&settings, database.HomepageSettings{ID: database.HomepageSettingsID}).Error

	if database.IsUniqueViolation(err) {
		// a concurrent first request inserted the row
		err = s.DB.Sql().WithContext(ctx).First(&settings, database.HomepageSettingsID).Error
	}

	if err != nil {
		return nil, fmt.Errorf("issue loading homepage settings: %w", err)
	}

	return &settings, nil
}

// Save writes settings onto the singleton row whatever ID it carries.
func (s Settings) Save(ctx context.Context, settings *database.HomepageSettings) error {
	settings.ID = database.HomepageSettingsID

	if err := s.DB.Sql().WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("issue saving homepage settings: %w", err)
	}

	return nil
}
