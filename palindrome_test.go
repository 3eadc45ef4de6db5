// palindrome_test.go
package palindrome

import (
	"testing"
	"unicode"
)

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{name: "Empty string", text: "", expected: true},
		{name: "Only punctuation", text: "!!!", expected: true},
		{name: "Single letter", text: "a", expected: true},
		{name: "Single upper case letter", text: "Z", expected: true},
		{name: "Single digit", text: "0", expected: true},
		{name: "Mixed case", text: "Level", expected: true},
		{name: "Upper case", text: "LEVEL", expected: true},
		{name: "Sentence", text: "A man, a plan, a canal: Panama", expected: true},
		{name: "Question", text: "Was it a car or a cat I saw?", expected: true},
		{name: "Negative", text: "hello", expected: false},
		{name: "Trailing newline ignored", text: "racecar\n", expected: true},
		{name: "Digits compared", text: "1a2", expected: false},
		{name: "Cherokee mixed case", text: "Ꭰꭰ", expected: true},
		{name: "Greek with final sigma", text: "ΣΑς", expected: true},
		{name: "Ligature is one letter", text: "ﬁ", expected: true},
		{name: "Apostrophe n is one letter", text: "ŉ", expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPalindrome(tc.text); got != tc.expected {
				t.Errorf("IsPalindrome(%q) = %v, expected %v (normalized %q)", tc.text, got, tc.expected, Normalize(tc.text))
			}
		})
	}
}

func TestIsPalindromeIsCaseInsensitive(t *testing.T) {
	for _, pair := range [][2]string{
		{"Level", "LEVEL"},
		{"Ꭰꭰ", "ᎠᎠ"},
		{"ſos", "SOS"},
		{"Ǆ x ǅ", "ǆ X ǆ"},
	} {
		if IsPalindrome(pair[0]) != IsPalindrome(pair[1]) {
			t.Errorf("verdicts differ for %q and %q", pair[0], pair[1])
		}
	}
}

func TestEveryAlphanumericRune(t *testing.T) {
	if testing.Short() {
		t.Skip("walks the whole Unicode range")
	}

	var failures int
	for r := rune(0); r <= unicode.MaxRune && failures < 10; r++ {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			continue
		}
		single := string(r)
		if !IsPalindrome(single) {
			t.Errorf("IsPalindrome(%q) = false (normalized %q)", single, Normalize(single))
			failures++
		}
		if once := Normalize(single); Normalize(once) != once {
			t.Errorf("Normalize not idempotent for %U: %q then %q", r, once, Normalize(once))
			failures++
		}
		upper, lower := string(unicode.ToUpper(r)), string(unicode.ToLower(r))
		if IsPalindrome(upper+lower) != IsPalindrome(lower+upper) || !IsPalindrome(single+upper+lower) {
			t.Errorf("case changes the verdict for %U", r)
			failures++
		}
	}
}

func TestIsPalindromeAgreesWithReversedNormalForm(t *testing.T) {
	for _, text := range []string{"", "ab", "Step on no pets!", "Never odd or even", "abc cba d", "ΣΑΣ"} {
		normalized := Normalize(text)
		runes := []rune(normalized)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		expected := normalized == string(runes)
		if got := IsPalindrome(text); got != expected {
			t.Errorf("IsPalindrome(%q) = %v, expected %v", text, got, expected)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, text := range []string{"", "Level", "A man, a plan, a canal: Panama", "Straße 12", "İstanbul", "Ꭰꭰ", "ﬁ ŉ ᾀ"} {
		once := Normalize(text)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", text, once, twice)
		}
	}
}
