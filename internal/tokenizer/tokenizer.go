package tokenizer

import (
	"regexp"
	"strings"
)

// tokenRegex matches maximal runs of Latin letters, digits, '.' and '%',
// or a single Han ideograph. CJK text has no separating whitespace, so every
// ideograph becomes its own token. Anything else is a separator.
var tokenRegex = regexp.MustCompile(`[a-z0-9.%]+|\p{Han}`)

// whitespaceRegex matches runs of whitespace for Normalize.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize trims, collapses internal whitespace to single spaces and lowercases.
// Alias and keyword matching is done against the normalized form.
func Normalize(text string) string {
	return strings.ToLower(whitespaceRegex.ReplaceAllString(strings.TrimSpace(text), " "))
}

// Tokenize converts a string into a slice of lexical tokens.
// It lowercases the text, then extracts Latin/alphanumeric runs and single CJK characters.
func Tokenize(text string) []string {
	if text == "" {
		return make([]string, 0)
	}
	tokens := tokenRegex.FindAllString(strings.ToLower(text), -1)
	if tokens == nil {
		return make([]string, 0) // Return empty slice instead of nil
	}
	return tokens
}

// TermFrequencies counts token occurrences.
func TermFrequencies(tokens []string) map[string]int {
	freqs := make(map[string]int, len(tokens))
	for _, token := range tokens {
		freqs[token]++
	}
	return freqs
}
