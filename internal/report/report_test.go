package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lexstat/internal/analysis"
)

const sampleText = "The cat sat. The cat ran! A dog sat."

func TestTextOutput(t *testing.T) {
	rep := analysis.Analyze(sampleText, analysis.Options{})

	var buf bytes.Buffer
	if err := WriteSummary(&buf, rep); err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}
	if err := WriteDetails(&buf, rep, 5); err != nil {
		t.Fatalf("WriteDetails returned error: %v", err)
	}

	want := strings.Join([]string{
		"the: 2",
		"cat: 2",
		"sat: 2",
		"ran: 1",
		"a: 1",
		"dog: 1",
		"Average sentence length: 3.00 words",
		"Type-Token Ratio: 0.667",
		"Top 5 Bigrams:",
		"the cat: 2",
		"cat sat: 1",
		"sat the: 1",
		"cat ran: 1",
		"ran a: 1",
		"Top 5 Trigrams:",
		"the cat sat: 1",
		"cat sat the: 1",
		"sat the cat: 1",
		"the cat ran: 1",
		"cat ran a: 1",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("text output mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestTextOutputEmpty(t *testing.T) {
	rep := analysis.Analyze("", analysis.Options{})

	var buf bytes.Buffer
	if err := WriteSummary(&buf, rep); err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}
	if err := WriteDetails(&buf, rep, 5); err != nil {
		t.Fatalf("WriteDetails returned error: %v", err)
	}
	want := "Average sentence length: 0.00 words\nType-Token Ratio: 0.000\nTop 5 Bigrams:\nTop 5 Trigrams:\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWriteTable(t *testing.T) {
	rep := analysis.Analyze(sampleText, analysis.Options{})

	var buf bytes.Buffer
	if err := WriteTable(&buf, rep, 5); err != nil {
		t.Fatalf("WriteTable returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"METRIC", "Tokens", "3.00 words", "0.667", "TOP 5 BIGRAMS", "the cat sat", "╭"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output:\n%s", want, out)
		}
	}
}

func TestRenderTableNoHeaders(t *testing.T) {
	if got := renderTable(nil, [][]string{{"x"}}, nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	rep := analysis.Analyze(sampleText, analysis.Options{})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	var decoded struct {
		TopWords []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"top_words"`
		TypeTokenRatio float64 `json:"type_token_ratio"`
		SentenceCount  int     `json:"sentence_count"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.TopWords) != 6 || decoded.TopWords[0].Key != "the" {
		t.Fatalf("unexpected top words: %+v", decoded.TopWords)
	}
	if decoded.SentenceCount != 3 {
		t.Fatalf("sentence_count = %d want 3", decoded.SentenceCount)
	}
}
