package portal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

// ToSlug folds the value into a URL-safe token: accents are dropped, anything
// outside [a-z0-9] becomes a single dash and surrounding dashes are trimmed.
func (s Stringable) ToSlug() string {
	folding := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)

	ascii, _, err := transform.String(folding, s.ToLower())
	if err != nil {
		ascii = s.ToLower()
	}

	var builder strings.Builder
	pendingDash := false

	for _, r := range ascii {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')

		if !isAlnum {
			pendingDash = builder.Len() > 0
			continue
		}

		if pendingDash {
			builder.WriteByte('-')
			pendingDash = false
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

func Slugify(value string) string {
	return NewStringable(value).ToSlug()
}
