package ports

// Normalizer defines the interface for text normalization.
// Implementations keep only the characters that take part in a palindrome
// comparison, in their original order, folded to a single case.
type Normalizer interface {
	Normalize(text string) string
}
