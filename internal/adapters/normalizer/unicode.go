package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// UnicodeNormalizer keeps letters and numbers from every script and maps each
// of them to a single canonical lowercase rune.
type UnicodeNormalizer struct{}

// NewUnicodeNormalizer creates the default normalizer.
func NewUnicodeNormalizer() ports.Normalizer {
	return &UnicodeNormalizer{}
}

// IsAlphanumeric reports whether r takes part in a comparison.
func IsAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

var notAlphanumeric = runes.Predicate(func(r rune) bool { return !IsAlphanumeric(r) })

// CanonicalCase maps r to the lowercase form of its uppercase form, repeated
// until stable. Every case variant of a letter ends on the same rune, and the
// mapping never turns one rune into several.
func CanonicalCase(r rune) rune {
	for i := 0; i < 4; i++ {
		next := unicode.ToLower(unicode.ToUpper(r))
		if next == r {
			break
		}
		r = next
	}
	return r
}

// Normalize implements ports.Normalizer
func (n *UnicodeNormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	// The trailing filter drops anything a case mapping turned into a non-alphanumeric.
	t := transform.Chain(
		runes.Remove(notAlphanumeric),
		runes.Map(CanonicalCase),
		runes.Remove(notAlphanumeric),
	)
	out, _, _ := transform.String(t, text)
	return out
}
