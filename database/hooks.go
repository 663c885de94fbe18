package database

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blogbuster/pkg/portal"
)

func ensureUUID(current string) string {
	if strings.TrimSpace(current) != "" {
		return current
	}

	return uuid.NewString()
}

// deriveSlug keeps an explicit slug and otherwise slugifies source. It never
// rewrites a slug that is already set.
func deriveSlug(current, source string) (string, error) {
	if slug := strings.TrimSpace(current); slug != "" {
		return slug, nil
	}

	if slug := portal.Slugify(source); slug != "" {
		return slug, nil
	}

	return "", ErrEmptySlug
}

// stampOnPublish returns the first-publish timestamp: untouched when already
// set, Now() when the record is published for the first time.
func stampOnPublish(published bool, current *time.Time) *time.Time {
	if !published || current != nil {
		return current
	}

	now := Now()

	return &now
}

func roundScore(score float64) float64 {
	return math.RoundToEven(score*10) / 10
}

func inRange(value, lower, upper float64) bool {
	return value >= lower && value <= upper
}
