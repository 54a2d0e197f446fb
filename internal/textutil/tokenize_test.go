package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "punctuation is dropped",
			input: "Hello, world! Hello.",
			want:  []string{"hello", "world", "hello"},
		},
		{
			name:  "short tokens kept",
			input: "A cat sat",
			want:  []string{"a", "cat", "sat"},
		},
		{
			name:  "digits and underscores",
			input: "snake_case v2 42",
			want:  []string{"snake_case", "v2", "42"},
		},
		{
			name:  "apostrophe splits",
			input: "Don't stop",
			want:  []string{"don", "t", "stop"},
		},
		{
			name:  "unicode letters",
			input: "Ünïcode ÉTÉ naïve",
			want:  []string{"ünïcode", "été", "naïve"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only punctuation",
			input: "... !? --",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if got == nil {
				t.Fatal("Tokenize returned nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two sentences",
			input: "A cat sat. It slept!",
			want:  []string{"A cat sat.", "It slept!"},
		},
		{
			name:  "trailing fragment",
			input: "First one? and then some",
			want:  []string{"First one?", "and then some"},
		},
		{
			name:  "whitespace runs and newlines",
			input: "  One.\n\n  Two!\tThree?  ",
			want:  []string{"One.", "Two!", "Three?"},
		},
		{
			name:  "punctuation without whitespace does not split",
			input: "Version 1.2 is out.Really",
			want:  []string{"Version 1.2 is out.Really"},
		},
		{
			name:  "ellipsis",
			input: "Wait... what?",
			want:  []string{"Wait...", "what?"},
		},
		{
			name:  "no terminal punctuation",
			input: "just words here",
			want:  []string{"just words here"},
		},
		{
			name:  "empty document",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  []string{},
		},
		{
			name:  "information separator splits",
			input: "what?\x1cNext.",
			want:  []string{"what?", "Next."},
		},
		{
			name:  "information separators trimmed",
			input: "\x1fDone.\x1e",
			want:  []string{"Done."},
		},
		{
			name:  "unicode spaces split",
			input: "One.\u00a0Two!\u2003Three",
			want:  []string{"One.", "Two!", "Three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitSentences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentencesPreserveTokens(t *testing.T) {
	inputs := []string{
		"A cat sat. It slept!",
		"Hello, world! Hello.",
		"one two. three\nfour? five",
		"",
	}
	for _, input := range inputs {
		var total int
		for _, sentence := range SplitSentences(input) {
			total += len(Tokenize(sentence))
		}
		if want := len(Tokenize(input)); total != want {
			t.Errorf("sentence tokens for %q = %d, want %d", input, total, want)
		}
	}
}
