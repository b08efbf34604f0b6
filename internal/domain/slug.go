package domain

import "strings"

// Slugify derives a URL-safe slug from a display name: lowercase with
// runs of whitespace collapsed to single hyphens. "Small Dogs" becomes
// "small-dogs".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
