package ports

import (
	"context"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// PalindromeChecker defines the interface for testing a text for palindromes.
type PalindromeChecker interface {
	Check(ctx context.Context, text string) domain.Result
}
