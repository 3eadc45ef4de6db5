// Package checker is the configurable entry point for palindrome checks.
package checker

import (
	"context"
	"sync"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/adapters/normalizer"
	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/core/palindrome"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/go_palindrome/internal/warmup"
)

// Checker tests texts for palindromes using a configurable normalizer.
type Checker struct {
	checker    ports.PalindromeChecker
	logger     ports.Logger
	normalizer ports.Normalizer
	warmOnce   sync.Once
}

// Option defines a functional option for configuring a Checker.
type Option func(*config)

type config struct {
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithPortLogger sets a logger that already satisfies ports.Logger.
func WithPortLogger(l ports.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = l
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithNormalizerType selects one of the built-in normalizers.
func WithNormalizerType(t normalizer.NormalizerType) Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(t)
	}
}

// WithASCIINormalizer restricts comparison to ASCII letters and digits.
func WithASCIINormalizer() Option {
	return WithNormalizerType(normalizer.ASCIINormalizerType)
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a Checker. Without options it discards log records and uses
// the Unicode normalizer.
func New(opts ...Option) (*Checker, error) {
	cfg := &config{
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.NewNopLogger()
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewUnicodeNormalizer()
	}

	core, err := palindrome.NewChecker(cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		checker:    core,
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
	}

	if cfg.WarmUp {
		c.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return c, nil
}

// Check tests text and returns the full result.
func (c *Checker) Check(ctx context.Context, text string) domain.Result {
	return c.checker.Check(ctx, text)
}

// IsPalindrome reports whether text is a palindrome.
func (c *Checker) IsPalindrome(text string) bool {
	return c.checker.Check(context.Background(), text).Palindrome
}

// Normalize returns the form of text that is compared.
func (c *Checker) Normalize(text string) string {
	return c.normalizer.Normalize(text)
}

// WarmUp exercises the checker once; later and concurrent calls are no-ops.
// It returns the number of warm-up runs performed by this call.
func (c *Checker) WarmUp(ctx context.Context, wc warmup.WarmupConfig) int64 {
	var runs int64
	ran := false
	c.warmOnce.Do(func() {
		mgr := warmup.NewManager(c.logger, wc)
		mgr.RegisterChecker(c.checker)
		mgr.RegisterNormalizer(c.normalizer)
		runs = mgr.WarmUp(ctx)
		ran = true
	})
	if !ran {
		c.logger.Debug("Checker already warmed up, skipping")
	}
	return runs
}
