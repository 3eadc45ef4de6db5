package domain

// Verdict messages printed for a checked sentence.
const (
	VerdictPalindrome    = "Palindrome"
	VerdictNotPalindrome = "Not a palindrome"
)

// Result holds the outcome of a palindrome check.
type Result struct {
	Input      string
	Normalized string
	Palindrome bool
	Details    map[string]interface{}
}

// Verdict returns the fixed message for the result.
func (r Result) Verdict() string {
	if r.Palindrome {
		return VerdictPalindrome
	}
	return VerdictNotPalindrome
}
