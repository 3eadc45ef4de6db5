package normalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_palindrome/internal/ports"
)

// NormalizerType selects a normalization strategy.
type NormalizerType int

const (
	// UnicodeNormalizerType keeps letters and numbers of every script and lowers each to one canonical rune.
	UnicodeNormalizerType NormalizerType = iota
	// ASCIINormalizerType keeps only ASCII letters and digits.
	ASCIINormalizerType
)

// String returns the configuration name of the type.
func (t NormalizerType) String() string {
	switch t {
	case ASCIINormalizerType:
		return "ascii"
	default:
		return "unicode"
	}
}

// ParseNormalizerType maps a configuration name onto a NormalizerType.
func ParseNormalizerType(name string) (NormalizerType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode":
		return UnicodeNormalizerType, nil
	case "ascii":
		return ASCIINormalizerType, nil
	default:
		return UnicodeNormalizerType, fmt.Errorf("unknown normalizer %q: must be 'unicode' or 'ascii'", name)
	}
}

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case ASCIINormalizerType:
		return NewASCIINormalizer()
	default:
		return NewUnicodeNormalizer()
	}
}
