package normalizer

import (
	"github.com/baditaflorin/go_palindrome/internal/pool"
	"github.com/baditaflorin/go_palindrome/internal/ports"
)

const (
	asciiDrop byte = iota
	asciiKeep
	asciiLower
)

// ASCIINormalizer retains only [A-Za-z0-9] and lowercases letters.
// Bytes outside the ASCII range are dropped, which removes multi-byte
// UTF-8 sequences entirely.
type ASCIINormalizer struct {
	// Pre-computed decision table for ASCII characters (0-127)
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewASCIINormalizer creates a new ASCII-only normalizer.
func NewASCIINormalizer() ports.Normalizer {
	n := &ASCIINormalizer{
		bytePool: pool.NewBufferPool(256),
	}

	for i := 0; i < 128; i++ {
		switch {
		case i >= 'a' && i <= 'z', i >= '0' && i <= '9':
			n.asciiTable[i] = asciiKeep
		case i >= 'A' && i <= 'Z':
			n.asciiTable[i] = asciiLower
		default:
			n.asciiTable[i] = asciiDrop
		}
	}

	return n
}

// Normalize filters text to lowercase ASCII letters and digits.
func (n *ASCIINormalizer) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}

	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 128 {
			continue
		}
		switch n.asciiTable[b] {
		case asciiKeep:
			*buffer = append(*buffer, b)
		case asciiLower:
			*buffer = append(*buffer, b+('a'-'A'))
		}
	}

	return string(*buffer)
}
