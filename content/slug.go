package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// SlugStore is the read-only slice of a repository needed for uniqueness
// checks. excludeID skips the entity being updated; uuid.Nil means no
// exclusion.
type SlugStore interface {
	SlugExists(slug string, excludeID uuid.UUID) (bool, error)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lowercased, every run
// of characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug returns a slug for title that no other entity of the
// store's type currently owns, appending -1, -2, ... until the probe finds a
// free one. The probe loop is unbounded, so pathological numbers of
// identically titled entities degrade to O(n) existence checks. The result
// is only unique at the moment of the check; no lock is held, and the
// store's unique index on slug remains the final arbiter under concurrent
// creates.
func GenerateUniqueSlug(store SlugStore, title string, excludeID uuid.UUID) (string, error) {
	base := Slugify(title)
	slug := base
	for count := 1; ; count++ {
		exists, err := store.SlugExists(slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, count)
	}
}
