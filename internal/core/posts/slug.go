package posts

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a post title: lowercased,
// with everything outside [a-z0-9], whitespace, and hyphens stripped,
// whitespace runs collapsed to single hyphens, and hyphen runs collapsed.
// The result is a pure function of the title, so re-deriving from the
// same title always yields the same slug.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	return s
}
