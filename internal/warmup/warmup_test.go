package warmup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
)

func TestGeneratePalindrome(t *testing.T) {
	n := normalizer.NewUnicodeNormalizer()

	for _, size := range []int{0, 16, 100, 500} {
		text := GeneratePalindrome(size)
		assert.True(t, palindrome.IsMirrored(n.Normalize(text)), "size %d: %q", size, text)
	}
}

func TestGenerateSampleText(t *testing.T) {
	n := normalizer.NewUnicodeNormalizer()

	text := GenerateSampleText(100)
	assert.GreaterOrEqual(t, len(text), 100)
	assert.False(t, palindrome.IsMirrored(n.Normalize(text)))
}

func TestWarmUpRunsEveryComponent(t *testing.T) {
	norm := normalizer.NewUnicodeNormalizer()
	checker, err := palindrome.NewChecker(logger.NewNopLogger(), norm)
	require.NoError(t, err)

	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{
		Concurrency:    2,
		Iterations:     10,
		SampleTextSize: 64,
	})
	mgr.RegisterNormalizer(norm)
	mgr.RegisterChecker(checker)

	runs := mgr.WarmUp(context.Background())
	assert.Equal(t, int64(2*10*2), runs)
}

func TestWarmUpStopsOnCancelledContext(t *testing.T) {
	mgr := NewManager(logger.NewNopLogger(), WarmupConfig{Concurrency: 0, Iterations: 1000})
	mgr.RegisterNormalizer(normalizer.NewASCIINormalizer())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, int64(0), mgr.WarmUp(ctx))
}
