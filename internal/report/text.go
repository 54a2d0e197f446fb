package report

import (
	"bufio"
	"fmt"
	"io"

	"lexstat/internal/analysis"
	"lexstat/internal/freq"
)

// WriteSummary prints the top words followed by the average sentence length.
func WriteSummary(w io.Writer, rep analysis.Report) error {
	bw := bufio.NewWriter(w)
	writeEntries(bw, rep.TopWords)
	fmt.Fprintf(bw, "Average sentence length: %.2f words\n", rep.AverageSentenceLength)
	return bw.Flush()
}

// WriteDetails prints the type-token ratio and the n-gram listings. limit is
// the n-gram count shown in the section headers.
func WriteDetails(w io.Writer, rep analysis.Report, limit int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Type-Token Ratio: %.3f\n", rep.TypeTokenRatio)
	fmt.Fprintf(bw, "Top %d Bigrams:\n", limit)
	writeEntries(bw, rep.TopBigrams)
	fmt.Fprintf(bw, "Top %d Trigrams:\n", limit)
	writeEntries(bw, rep.TopTrigrams)
	return bw.Flush()
}

func writeEntries(w io.Writer, entries []freq.Entry[string]) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %d\n", e.Key, e.Count)
	}
}
