// Package metrics derives document-level statistics from tokens and sentences.
package metrics

import "lexstat/internal/textutil"

// DefaultBins is the sentence-length histogram resolution.
const DefaultBins = 20

// SentenceLengths returns the token count of every sentence in text.
// A document without sentences yields an empty slice.
func SentenceLengths(text string) []int {
	sentences := textutil.SplitSentences(text)
	lengths := make([]int, len(sentences))
	for i, sentence := range sentences {
		lengths[i] = len(textutil.Tokenize(sentence))
	}
	return lengths
}

// AverageSentenceLength returns the mean of lengths, or 0 when there are none.
func AverageSentenceLength(lengths []int) float64 {
	if len(lengths) == 0 {
		return 0
	}
	var sum int
	for _, n := range lengths {
		sum += n
	}
	return float64(sum) / float64(len(lengths))
}

// TypeTokenRatio returns distinct tokens divided by total tokens, or 0 for no tokens.
func TypeTokenRatio(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	distinct := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		distinct[token] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(tokens))
}
