// palindrome.go
// Package palindrome reports whether a sentence reads the same forwards and
// backwards once everything except letters and digits is removed and case
// is ignored.
//
// Letters and digits are classified with unicode.IsLetter and
// unicode.IsNumber, so every script takes part in the comparison. Each of them
// is lowered to one canonical rune, so a single letter never expands into
// several and all case variants of a letter compare equal. Use pkg/checker with
// WithASCIINormalizer to compare only [A-Za-z0-9].
package palindrome

import (
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	core "github.com/baditaflorin/go_palindrome/internal/core/palindrome"
)

var defaultNormalizer = normalizer.NewUnicodeNormalizer()

// Normalize returns the letters and digits of text, lowered, in their original order.
// Normalizing an already normalized string returns it unchanged.
func Normalize(text string) string {
	return defaultNormalizer.Normalize(text)
}

// IsPalindrome reports whether the normalized form of text equals its own reverse.
// It is defined for every string: inputs without letters or digits are palindromes.
func IsPalindrome(text string) bool {
	return core.IsMirrored(Normalize(text))
}
