// Package analysis runs the lexical statistics pipeline over one document.
package analysis

import (
	"lexstat/internal/freq"
	"lexstat/internal/metrics"
	"lexstat/internal/ngram"
	"lexstat/internal/textutil"
)

// Defaults used when Options fields are zero.
const (
	DefaultTopWords  = 10
	DefaultTopNGrams = 5
)

// Options bounds the listings in a Report. Zero selects the default and a
// negative limit keeps every entry.
type Options struct {
	TopWords  int
	TopNGrams int
	Bins      int
}

func (o Options) withDefaults() Options {
	if o.TopWords == 0 {
		o.TopWords = DefaultTopWords
	}
	if o.TopNGrams == 0 {
		o.TopNGrams = DefaultTopNGrams
	}
	if o.Bins <= 0 {
		o.Bins = metrics.DefaultBins
	}
	return o
}

// Report is the result of analyzing one document. It is not modified after
// Analyze returns.
type Report struct {
	TopWords              []freq.Entry[string] `json:"top_words"`
	SentenceLengths       []int                `json:"sentence_lengths"`
	AverageSentenceLength float64              `json:"average_sentence_length"`
	Histogram             []metrics.Bin        `json:"sentence_length_histogram"`
	TypeTokenRatio        float64              `json:"type_token_ratio"`
	TopBigrams            []freq.Entry[string] `json:"top_bigrams"`
	TopTrigrams           []freq.Entry[string] `json:"top_trigrams"`
	TokenCount            int                  `json:"token_count"`
	TypeCount             int                  `json:"type_count"`
	SentenceCount         int                  `json:"sentence_count"`
}

// Analyze tokenizes text once and derives every statistic from it.
func Analyze(text string, opts Options) Report {
	opts = opts.withDefaults()

	tokens := textutil.Tokenize(text)
	words := freq.FromSlice(tokens)
	lengths := metrics.SentenceLengths(text)

	return Report{
		TopWords:              words.MostCommon(opts.TopWords),
		SentenceLengths:       lengths,
		AverageSentenceLength: metrics.AverageSentenceLength(lengths),
		Histogram:             metrics.Histogram(lengths, opts.Bins),
		TypeTokenRatio:        metrics.TypeTokenRatio(tokens),
		TopBigrams:            ngram.Count(tokens, 2).MostCommon(opts.TopNGrams),
		TopTrigrams:           ngram.Count(tokens, 3).MostCommon(opts.TopNGrams),
		TokenCount:            len(tokens),
		TypeCount:             words.Len(),
		SentenceCount:         len(lengths),
	}
}
