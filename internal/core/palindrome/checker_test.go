package palindrome

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := NewChecker(logger.NewNopLogger(), normalizer.NewUnicodeNormalizer())
	require.NoError(t, err)
	return c
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "Empty string", text: "", expected: true},
		{name: "Only punctuation", text: "!!!", expected: true},
		{name: "Single letter", text: "a", expected: true},
		{name: "Single digit", text: "7", expected: true},
		{name: "Mixed case word", text: "Level", expected: true},
		{name: "Upper case word", text: "LEVEL", expected: true},
		{name: "Sentence with punctuation", text: "A man, a plan, a canal: Panama", expected: true},
		{name: "Quotes and spaces", text: "No 'x' in Nixon", expected: true},
		{name: "Digits", text: "12 3-21", expected: true},
		{name: "Plain word", text: "hello", expected: false},
		{name: "Almost palindrome", text: "race a car", expected: false},
		{name: "Accented", text: "Ésé", expected: true},
	}

	c := newTestChecker(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := c.Check(context.Background(), tc.text)
			assert.Equal(t, tc.expected, result.Palindrome, "normalized=%q", result.Normalized)
			assert.Equal(t, tc.text, result.Input)
		})
	}
}

func TestCheckMatchesReversedNormalForm(t *testing.T) {
	c := newTestChecker(t)
	n := normalizer.NewUnicodeNormalizer()

	for _, text := range []string{"Was it a car or a cat I saw?", "abc", "Step on no pets", "ab ba c", "ΣΑΣ"} {
		normalized := n.Normalize(text)
		assert.Equal(t, normalized == reverse(normalized), c.Check(context.Background(), text).Palindrome, text)
	}
}

func TestCheckDetails(t *testing.T) {
	c := newTestChecker(t)

	result := c.Check(context.Background(), "Ésé!")
	assert.Equal(t, "ésé", result.Normalized)
	assert.Equal(t, 3, result.Details["normalized_length"])
	assert.Equal(t, "*normalizer.UnicodeNormalizer", result.Details["normalizer"])
	assert.Equal(t, "Palindrome", result.Verdict())
}

func TestCheckCancelled(t *testing.T) {
	c := newTestChecker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := c.Check(ctx, "level")
	assert.False(t, result.Palindrome)
	assert.Equal(t, "check cancelled", result.Details["error"])
}

func TestNewCheckerRequiresCollaborators(t *testing.T) {
	_, err := NewChecker(nil, normalizer.NewUnicodeNormalizer())
	assert.Error(t, err)

	_, err = NewChecker(logger.NewNopLogger(), nil)
	assert.Error(t, err)
}

func TestIsMirrored(t *testing.T) {
	assert.True(t, IsMirrored(""))
	assert.True(t, IsMirrored("x"))
	assert.True(t, IsMirrored("abba"))
	assert.True(t, IsMirrored("σασ"))
	assert.False(t, IsMirrored("ab"))
	// é and e differ, so the multi-byte rune is compared whole.
	assert.False(t, IsMirrored("éxe"))
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
