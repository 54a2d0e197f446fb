package analysis

import (
	"reflect"
	"testing"

	"lexstat/internal/freq"
)

func TestAnalyzeSmallDocument(t *testing.T) {
	rep := Analyze("A cat sat. It slept! A cat ran.", Options{})

	wantWords := []freq.Entry[string]{
		{Key: "a", Count: 2},
		{Key: "cat", Count: 2},
		{Key: "sat", Count: 1},
		{Key: "it", Count: 1},
		{Key: "slept", Count: 1},
		{Key: "ran", Count: 1},
	}
	if !reflect.DeepEqual(rep.TopWords, wantWords) {
		t.Fatalf("TopWords = %v want %v", rep.TopWords, wantWords)
	}
	if !reflect.DeepEqual(rep.SentenceLengths, []int{3, 2, 3}) {
		t.Fatalf("SentenceLengths = %v", rep.SentenceLengths)
	}
	if got, want := rep.AverageSentenceLength, 8.0/3.0; got != want {
		t.Fatalf("AverageSentenceLength = %v want %v", got, want)
	}
	if got, want := rep.TypeTokenRatio, 6.0/8.0; got != want {
		t.Fatalf("TypeTokenRatio = %v want %v", got, want)
	}
	if rep.TopBigrams[0] != (freq.Entry[string]{Key: "a cat", Count: 2}) {
		t.Fatalf("top bigram = %v", rep.TopBigrams[0])
	}
	if len(rep.TopBigrams) != 5 {
		t.Fatalf("expected 5 bigrams, got %d", len(rep.TopBigrams))
	}
	if rep.TopTrigrams[0] != (freq.Entry[string]{Key: "a cat sat", Count: 1}) {
		t.Fatalf("top trigram = %v", rep.TopTrigrams[0])
	}
	if rep.TokenCount != 8 || rep.TypeCount != 6 || rep.SentenceCount != 3 {
		t.Fatalf("totals = %d/%d/%d", rep.TokenCount, rep.TypeCount, rep.SentenceCount)
	}
	if len(rep.Histogram) != 20 {
		t.Fatalf("expected 20 histogram bins, got %d", len(rep.Histogram))
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	rep := Analyze("   \n", Options{TopWords: 3, TopNGrams: 2, Bins: 4})
	if len(rep.TopWords) != 0 || len(rep.TopBigrams) != 0 || len(rep.TopTrigrams) != 0 {
		t.Fatalf("expected empty listings, got %+v", rep)
	}
	if len(rep.SentenceLengths) != 0 || rep.AverageSentenceLength != 0 {
		t.Fatalf("expected no sentences, got %v avg %v", rep.SentenceLengths, rep.AverageSentenceLength)
	}
	if rep.TypeTokenRatio != 0 {
		t.Fatalf("TypeTokenRatio = %v want 0", rep.TypeTokenRatio)
	}
	if len(rep.Histogram) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(rep.Histogram))
	}
}

func TestAnalyzeLimits(t *testing.T) {
	rep := Analyze("one two three four five six. seven eight nine ten eleven twelve.", Options{TopWords: 3, TopNGrams: 2})
	if len(rep.TopWords) != 3 {
		t.Fatalf("expected 3 words, got %d", len(rep.TopWords))
	}
	if len(rep.TopBigrams) != 2 || len(rep.TopTrigrams) != 2 {
		t.Fatalf("expected 2 n-grams each, got %d/%d", len(rep.TopBigrams), len(rep.TopTrigrams))
	}
	if rep.TopWords[0].Key != "one" || rep.TopBigrams[1].Key != "two three" {
		t.Fatalf("unexpected ordering: %v %v", rep.TopWords, rep.TopBigrams)
	}
}

func TestAnalyzeCountsSumToTokens(t *testing.T) {
	rep := Analyze("Hello, world! Hello.", Options{TopWords: -1})
	sum := 0
	for _, e := range rep.TopWords {
		sum += e.Count
	}
	if sum != rep.TokenCount {
		t.Fatalf("sum of counts %d != token count %d", sum, rep.TokenCount)
	}
}
