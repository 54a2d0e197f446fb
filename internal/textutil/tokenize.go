package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches runs of word characters: letters, digits and underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lowercases text and returns its word tokens in order.
// Punctuation and whitespace are delimiters and never appear in the output.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	lowered := cases.Lower(language.Und).String(text)
	tokens := wordPattern.FindAllString(lowered, -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// SplitSentences trims the document and splits it after every '.', '!' or
// '?' that is followed by whitespace. The whitespace between sentences is
// dropped. A trailing fragment without terminal punctuation is returned as
// the last sentence. An empty or whitespace-only document has no sentences.
func SplitSentences(text string) []string {
	text = strings.TrimFunc(text, isSpace)
	if text == "" {
		return []string{}
	}

	var sentences []string
	start := 0
	var prev rune
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isSpace(r) && isSentenceTerminal(prev) {
			next := skipSpace(text, i)
			sentences = append(sentences, text[start:i])
			start = next
			prev = 0
			i = next
			continue
		}
		prev = r
		i += size
	}
	return append(sentences, text[start:])
}

// isSpace extends unicode.IsSpace with the information separators
// U+001C..U+001F, which plain-text exports use as record breaks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isSpace(r) {
			break
		}
		i += size
	}
	return i
}
