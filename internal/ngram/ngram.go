// Package ngram extracts overlapping token windows.
package ngram

import (
	"strings"

	"lexstat/internal/freq"
)

// NGram is an ordered tuple of consecutive tokens.
type NGram []string

// String joins the tokens with single spaces. Tokens never contain
// whitespace, so the result identifies the n-gram uniquely.
func (g NGram) String() string {
	return strings.Join(g, " ")
}

// Generate returns every window of n consecutive tokens, in order.
// The result has max(0, len(tokens)-n+1) elements; n <= 0 yields none.
func Generate(tokens []string, n int) []NGram {
	if n <= 0 || n > len(tokens) {
		return []NGram{}
	}
	grams := make([]NGram, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, NGram(tokens[i:i+n:i+n]))
	}
	return grams
}

// Count builds a frequency table of the n-grams of tokens keyed by NGram.String.
func Count(tokens []string, n int) *freq.Counter[string] {
	counter := freq.New[string]()
	for _, gram := range Generate(tokens, n) {
		counter.Add(gram.String())
	}
	return counter
}
