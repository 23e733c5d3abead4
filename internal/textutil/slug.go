package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes characters and strips combining marks, so "Décor"
// folds to "Decor" before ASCII filtering.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a product name into a URL-safe slug: lowercase, accents
// folded, runs of whitespace/underscores/hyphens collapsed to a single
// hyphen, all other characters removed, and no leading or trailing hyphen.
// Non-ASCII letters with no ASCII base form are dropped, so the result can
// be empty for input that contains no usable characters.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if folded, _, err := transform.String(deaccent, name); err == nil {
		name = folded
	}

	var b strings.Builder
	b.Grow(len(name))
	pendingDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || r == '_' || unicode.IsSpace(r):
			pendingDash = true
		default:
			// punctuation and unmapped symbols vanish entirely
		}
	}
	return b.String()
}
