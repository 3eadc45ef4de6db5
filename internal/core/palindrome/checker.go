package palindrome

import (
	"context"
	"errors"
	"fmt"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// Checker implements the palindrome test over normalized text.
type Checker struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewChecker creates a new palindrome checker.
func NewChecker(logger ports.Logger, normalizer ports.Normalizer) (*Checker, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}

	return &Checker{
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Check normalizes text and reports whether it reads the same in both directions.
func (c *Checker) Check(ctx context.Context, text string) domain.Result {
	c.logger.Debug("Starting palindrome check", "text", text)

	details := make(map[string]interface{})

	normalized := c.normalizer.Normalize(text)
	details["normalized_length"] = len([]rune(normalized))
	details["normalizer"] = fmt.Sprintf("%T", c.normalizer)

	c.logger.Debug("Normalized text", "normalized", normalized)

	select {
	case <-ctx.Done():
		c.logger.Error("Check cancelled", "error", ctx.Err())
		details["error"] = "check cancelled"
		return domain.Result{
			Input:      text,
			Normalized: normalized,
			Palindrome: false,
			Details:    details,
		}
	default:
	}

	palindrome := IsMirrored(normalized)

	c.logger.Debug("Computed palindrome check",
		"palindrome", palindrome,
		"details", details,
	)

	return domain.Result{
		Input:      text,
		Normalized: normalized,
		Palindrome: palindrome,
		Details:    details,
	}
}

// IsMirrored reports whether s equals its own reverse, comparing whole runes.
// The empty string is mirrored.
func IsMirrored(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
